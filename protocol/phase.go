// Package protocol holds the shared phase/direction vocabulary; the packet
// bodies themselves live in the phase subpackages (handshake, status,
// login, play), each exposing a Serverbound/Clientbound codec.Table.
package protocol

// Phase is the connection's current protocol phase (§2 of the spec). It is
// never sent on the wire — server and client transition in lockstep via
// Handshake's next_state field and Login Success.
type Phase uint8

const (
	PhaseHandshake Phase = iota
	PhaseStatus
	PhaseLogin
	PhasePlay
)

func (p Phase) String() string {
	switch p {
	case PhaseHandshake:
		return "Handshake"
	case PhaseStatus:
		return "Status"
	case PhaseLogin:
		return "Login"
	case PhasePlay:
		return "Play"
	default:
		return "Unknown"
	}
}

// Bound is the direction a packet travels.
type Bound uint8

const (
	Serverbound Bound = iota
	Clientbound
)

// WireVersion is the fixed protocol version this core speaks: 757 / 1.18.1.
const WireVersion = 757

// HumanVersion is the version string reported in status responses.
const HumanVersion = "1.18.1"
