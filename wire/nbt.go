package wire

import (
	"bytes"
	"fmt"

	"github.com/Tnze/go-mc/nbt"
)

// NbtBlob carries an arbitrary NBT-encoded value (network format: nameless
// root). The payload has no length prefix on the wire — a TAG_End (0x00)
// closes an empty compound, any other leading byte starts a tag whose own
// structure determines how many bytes it occupies. Decoding therefore has
// to track the underlying reader's position rather than consume a known
// span.
type NbtBlob struct {
	Value any
}

func (n NbtBlob) ToBytes() (ByteArray, error) {
	if n.Value == nil {
		return ByteArray{0x00}, nil
	}
	var buf bytes.Buffer
	encoder := nbt.NewEncoder(&buf)
	encoder.NetworkFormat(true)
	if err := encoder.Encode(n.Value, ""); err != nil {
		return nil, fmt.Errorf("wire: NbtBlob encode: %w", err)
	}
	return ByteArray(buf.Bytes()), nil
}

func (n *NbtBlob) FromBytes(data ByteArray) (int, error) {
	if len(data) == 0 {
		return 0, ErrUnexpectedEOF
	}
	if data[0] == 0x00 {
		n.Value = nil
		return 1, nil
	}
	r := bytes.NewReader(data)
	decoder := nbt.NewDecoder(r)
	decoder.NetworkFormat(true)
	var value any
	if _, err := decoder.Decode(&value); err != nil {
		return 0, &InvalidFormatError{Kind: "NBT", Err: err}
	}
	n.Value = value
	return len(data) - r.Len(), nil
}
