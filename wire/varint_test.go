package wire_test

import (
	"testing"

	"github.com/go-mclib/mcserver/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// varIntTestCases is the canonical corpus from the protocol docs' VarInt
// examples table.
var varIntTestCases = []struct {
	value   int32
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{2, []byte{0x02}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{25565, []byte{0xdd, 0xc7, 0x01}},
	{2097151, []byte{0xff, 0xff, 0x7f}},
	{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
	{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
}

func TestVarIntToBytes(t *testing.T) {
	for _, tc := range varIntTestCases {
		got, err := wire.VarInt(tc.value).ToBytes()
		require.NoError(t, err)
		assert.Equal(t, wire.ByteArray(tc.encoded), got, "VarInt(%d)", tc.value)
	}
}

func TestVarIntFromBytes(t *testing.T) {
	for _, tc := range varIntTestCases {
		var v wire.VarInt
		n, err := v.FromBytes(tc.encoded)
		require.NoError(t, err)
		assert.Equal(t, len(tc.encoded), n)
		assert.Equal(t, tc.value, int32(v), "decode %x", tc.encoded)
	}
}

func TestVarIntFromBytesTrailingGarbage(t *testing.T) {
	var v wire.VarInt
	n, err := v.FromBytes(wire.ByteArray{0xdd, 0xc7, 0x01, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.EqualValues(t, 25565, v)
}

func TestVarIntFromBytesTooBig(t *testing.T) {
	var v wire.VarInt
	_, err := v.FromBytes(wire.ByteArray{0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	assert.ErrorIs(t, err, wire.ErrVarIntTooBig)
}

func TestVarIntFromBytesTruncated(t *testing.T) {
	var v wire.VarInt
	_, err := v.FromBytes(wire.ByteArray{0x80})
	assert.ErrorIs(t, err, wire.ErrUnexpectedEOF)
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 9223372036854775807, -9223372036854775808, 300}
	for _, value := range values {
		encoded, err := wire.VarLong(value).ToBytes()
		require.NoError(t, err)

		var decoded wire.VarLong
		n, err := decoded.FromBytes(encoded)
		require.NoError(t, err)
		assert.Equal(t, len(encoded), n)
		assert.Equal(t, value, int64(decoded))
	}
}
