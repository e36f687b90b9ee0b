package codec_test

import (
	"testing"

	"github.com/go-mclib/mcserver/codec"
	"github.com/go-mclib/mcserver/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	ID    wire.VarInt
	Name  wire.String
	Flag  wire.Bool
	Value wire.Long
}

func TestEncodeDecodeRecordRoundTrip(t *testing.T) {
	original := sampleRecord{ID: 42, Name: "steve", Flag: true, Value: -100}

	encoded, err := codec.EncodeRecord(&original)
	require.NoError(t, err)

	var decoded sampleRecord
	n, err := codec.DecodeRecord(encoded, &decoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, original, decoded)
}

type paddedRecord struct {
	A wire.Byte `codec:"pad_before=2,pad_after=1"`
	B wire.Byte
}

func TestEncodeDecodeRecordHonorsPadding(t *testing.T) {
	original := paddedRecord{A: 7, B: 9}

	encoded, err := codec.EncodeRecord(&original)
	require.NoError(t, err)
	assert.Equal(t, wire.ByteArray{0x00, 0x00, 7, 0x00, 9}, encoded)

	var decoded paddedRecord
	n, err := codec.DecodeRecord(encoded, &decoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, original, decoded)
}

type skippedFieldRecord struct {
	Kept   wire.VarInt
	Ignore wire.VarInt `codec:"-"`
}

func TestEncodeRecordSkipsIgnoredFields(t *testing.T) {
	original := skippedFieldRecord{Kept: 5, Ignore: 999}

	encoded, err := codec.EncodeRecord(&original)
	require.NoError(t, err)

	expected, err := wire.VarInt(5).ToBytes()
	require.NoError(t, err)
	assert.Equal(t, expected, encoded)
}

func TestDecodeRecordRequiresPointer(t *testing.T) {
	var rec sampleRecord
	_, err := codec.DecodeRecord(wire.ByteArray{0x00}, rec)
	assert.Error(t, err)
}
