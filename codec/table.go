package codec

import (
	"fmt"

	"github.com/go-mclib/mcserver/wire"
)

// Packet is satisfied by every protocol packet body: a record that also
// knows its own wire tag (the packet ID within its phase/direction table).
type Packet interface {
	wire.Encoder
	wire.Decoder
	PacketID() wire.VarInt
}

// Table is one of the "four bidirectional tables, one per phase" from
// §4.1: a VarInt-discriminant dispatch table for a single phase and
// direction. Discriminant allocation is dense but not contiguous
// (documented per packet, not generated from position), so Table is a map
// keyed by wire tag rather than a slice.
type Table struct {
	name    string
	entries map[int32]func() Packet
}

// NewTable returns an empty table; name is used only for error messages.
func NewTable(name string) *Table {
	return &Table{name: name, entries: make(map[int32]func() Packet)}
}

// Register binds a wire tag to a zero-value constructor for the packet
// type it identifies. Registering the same tag twice is a programmer
// error (schema misconfiguration), so it panics rather than returning an
// error — table construction happens once at package init, not per
// connection.
func (t *Table) Register(id wire.VarInt, newPacket func() Packet) {
	if _, exists := t.entries[int32(id)]; exists {
		panic(fmt.Sprintf("%s: duplicate wire tag registration for %d", t.name, int32(id)))
	}
	t.entries[int32(id)] = newPacket
}

// New constructs a fresh zero-value packet for the given wire tag, or
// reports UnrecognizedEnumDiscriminant if no packet occupies that slot.
func (t *Table) New(id wire.VarInt) (Packet, error) {
	ctor, ok := t.entries[int32(id)]
	if !ok {
		return nil, &UnrecognizedEnumDiscriminant{UnionName: t.name, ExpectedSet: t.expected(), Actual: int64(id)}
	}
	return ctor(), nil
}

func (t *Table) expected() []int64 {
	out := make([]int64, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, int64(k))
	}
	return out
}
