// Package protoerr holds the application-layer errors the connection state
// machine raises, distinct from codec/wire decode errors (§7).
package protoerr

import "fmt"

// VersionMismatchError is raised when a Handshake declares next_state=Login
// with a protocol_version other than the one this core speaks.
type VersionMismatchError struct {
	Expected int32
	Actual   int32
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("protoerr: client protocol version %d does not match server version %d", e.Actual, e.Expected)
}

// PhaseViolationError is raised when a packet arrives that has no meaning
// in the connection's current phase, or a Handshake names an invalid
// next_state.
type PhaseViolationError struct {
	Phase  string
	Detail string
}

func (e *PhaseViolationError) Error() string {
	return fmt.Sprintf("protoerr: phase violation in %s: %s", e.Phase, e.Detail)
}

// VerifyTokenMismatchError is raised when the decrypted verify token in
// EncryptionResponse doesn't match the one the server sent.
type VerifyTokenMismatchError struct{}

func (e *VerifyTokenMismatchError) Error() string {
	return "protoerr: verify token mismatch in encryption response"
}
