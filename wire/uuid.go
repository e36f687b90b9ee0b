package wire

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// UUID is the 16-byte wire form, always big-endian regardless of
// DefaultBigEndian (it is not a fixed-width numeric primitive, it is a
// byte array with a conventional textual rendering). The session layer
// uses google/uuid.UUID for string parsing and comparison; this type only
// exists to put those same 16 bytes on the wire.
type UUID [16]byte

// ParseUUID accepts a UUID string with or without dashes.
func ParseUUID(s string) (UUID, error) {
	var u UUID
	s = strings.ReplaceAll(s, "-", "")
	if len(s) != 32 {
		return u, fmt.Errorf("wire: invalid UUID length: expected 32 hex characters, got %d", len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return u, fmt.Errorf("wire: invalid UUID format: %w", err)
	}
	copy(u[:], raw)
	return u, nil
}

func (u UUID) ToBytes() (ByteArray, error) {
	return append(ByteArray(nil), u[:]...), nil
}

func (u *UUID) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 16, "UUID"); err != nil {
		return 0, err
	}
	copy(u[:], data[:16])
	return 16, nil
}

// String renders the canonical dashed hex form.
func (u UUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}
