package codec_test

import (
	"testing"

	"github.com/go-mclib/mcserver/codec"
	"github.com/go-mclib/mcserver/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePacket struct{ id wire.VarInt }

func (p *fakePacket) ToBytes() (wire.ByteArray, error)           { return wire.ByteArray{}, nil }
func (p *fakePacket) FromBytes(data wire.ByteArray) (int, error) { return 0, nil }
func (p *fakePacket) PacketID() wire.VarInt                      { return p.id }

func TestTableNewConstructsRegisteredPacket(t *testing.T) {
	tbl := codec.NewTable("test.table")
	tbl.Register(0x05, func() codec.Packet { return &fakePacket{id: 0x05} })

	pkt, err := tbl.New(0x05)
	require.NoError(t, err)
	assert.Equal(t, wire.VarInt(0x05), pkt.PacketID())
}

func TestTableNewUnregisteredIDFails(t *testing.T) {
	tbl := codec.NewTable("test.table")
	_, err := tbl.New(0x99)
	require.Error(t, err)

	var discErr *codec.UnrecognizedEnumDiscriminant
	require.ErrorAs(t, err, &discErr)
	assert.EqualValues(t, 0x99, discErr.Actual)
}

func TestTableRegisterDuplicatePanics(t *testing.T) {
	tbl := codec.NewTable("test.table")
	tbl.Register(0x01, func() codec.Packet { return &fakePacket{} })

	assert.Panics(t, func() {
		tbl.Register(0x01, func() codec.Packet { return &fakePacket{} })
	})
}
