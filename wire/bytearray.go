// Package wire implements the Minecraft Java Edition wire primitives: the
// fixed vocabulary of types every packet field is built from (VarInt,
// strings, prefixed collections, positions, angles, UUIDs, JSON and NBT
// wrappers). Every type here satisfies the Encoder/Decoder contract defined
// below: ToBytes encodes to a fresh byte slice, FromBytes
// decodes a value from the front of a slice and reports how many bytes it
// consumed.
package wire

import "fmt"

// ByteArray is the in-memory representation a packet body is built from.
// Framing (codec package's record walker, transport's frame reader) always
// hands a fully-buffered slice to Decode, never a streaming io.Reader — the
// length prefix is known before any field is decoded.
type ByteArray []byte

// Encoder is satisfied by every wire primitive and every record/packet built
// from them.
type Encoder interface {
	ToBytes() (ByteArray, error)
}

// Decoder is satisfied by every wire primitive and every record/packet built
// from them. FromBytes must not retain data past the call; the number of
// bytes consumed is returned so callers can advance an offset.
type Decoder interface {
	FromBytes(data ByteArray) (int, error)
}

// SizedDecoder is for values whose length is supplied externally — an
// unprefixed trailing byte payload that only makes sense once the frame's
// total length is known. Every Decoder is trivially a SizedDecoder
// (decoding the same bytes regardless of an externally declared length).
// UnprefixedBytes implements this form; its plain FromBytes takes all the
// data it is given.
type SizedDecoder interface {
	FromBytesSized(data ByteArray, n int) (int, error)
}

func requireLen(data ByteArray, n int, what string) error {
	if len(data) < n {
		return fmt.Errorf("%s: %w (need %d bytes, have %d)", what, ErrUnexpectedEOF, n, len(data))
	}
	return nil
}
