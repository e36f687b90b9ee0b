// Package transport implements §4.4 of the protocol: length-prefixed frame
// reading/writing and the AES-128/CFB-8 cipher wrapper that installs onto a
// connection after the Login key exchange.
package transport

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/go-mclib/mcserver/wire"
)

// FrameReader reads length-prefixed frames from a byte stream. Framing
// always operates on plaintext — any cipher wrapping happens at the
// underlying io.Reader, below the frame reader, never interposed between
// reads within a frame.
type FrameReader struct {
	r io.Reader
	// CompressionThreshold mirrors the Login SetCompression packet's
	// threshold. Negative disables compression (the core's default,
	// per spec.md's Non-goals); see DESIGN.md for the compression hook.
	CompressionThreshold int
}

// NewFrameReader wraps r with compression disabled.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r, CompressionThreshold: -1}
}

// ReadFrame reads one frame's packet ID and body.
func (fr *FrameReader) ReadFrame() (packetID wire.VarInt, body wire.ByteArray, err error) {
	var length wire.VarInt
	if err := readVarIntFrom(fr.r, &length); err != nil {
		return 0, nil, fmt.Errorf("transport: read frame length: %w", err)
	}
	if length < 0 {
		return 0, nil, fmt.Errorf("transport: negative frame length %d", length)
	}

	raw := make([]byte, length)
	if _, err := io.ReadFull(fr.r, raw); err != nil {
		return 0, nil, fmt.Errorf("transport: read frame body (%d bytes): %w", length, err)
	}

	if fr.CompressionThreshold >= 0 {
		return decodeCompressedFrame(raw)
	}
	return decodeUncompressedFrame(raw)
}

func decodeUncompressedFrame(raw wire.ByteArray) (wire.VarInt, wire.ByteArray, error) {
	var id wire.VarInt
	n, err := id.FromBytes(raw)
	if err != nil {
		return 0, nil, fmt.Errorf("transport: read packet ID: %w", err)
	}
	return id, raw[n:], nil
}

func decodeCompressedFrame(raw wire.ByteArray) (wire.VarInt, wire.ByteArray, error) {
	var dataLength wire.VarInt
	n, err := dataLength.FromBytes(raw)
	if err != nil {
		return 0, nil, fmt.Errorf("transport: read data length: %w", err)
	}
	rest := raw[n:]

	// dataLength == 0 means this frame was left uncompressed despite
	// compression being enabled (below-threshold exemption).
	if dataLength == 0 {
		return decodeUncompressedFrame(rest)
	}

	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return 0, nil, fmt.Errorf("transport: zlib reader: %w", err)
	}
	defer zr.Close()
	uncompressed, err := io.ReadAll(zr)
	if err != nil {
		return 0, nil, fmt.Errorf("transport: zlib decompress: %w", err)
	}
	return decodeUncompressedFrame(uncompressed)
}

// FrameWriter writes length-prefixed frames to a byte stream.
type FrameWriter struct {
	w io.Writer
	// CompressionThreshold mirrors FrameReader's; see its doc comment.
	CompressionThreshold int
}

// NewFrameWriter wraps w with compression disabled.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w, CompressionThreshold: -1}
}

// WriteFrame writes one frame for the given packet ID and body.
func (fw *FrameWriter) WriteFrame(packetID wire.VarInt, body wire.ByteArray) error {
	idBytes, err := packetID.ToBytes()
	if err != nil {
		return err
	}
	payload := append(idBytes, body...)

	var framed []byte
	if fw.CompressionThreshold >= 0 {
		framed, err = fw.compressedFrame(payload)
	} else {
		framed, err = fw.uncompressedFrame(payload)
	}
	if err != nil {
		return err
	}
	_, err = fw.w.Write(framed)
	return err
}

func (fw *FrameWriter) uncompressedFrame(payload []byte) ([]byte, error) {
	lenBytes, err := wire.VarInt(len(payload)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(lenBytes, payload...), nil
}

func (fw *FrameWriter) compressedFrame(payload []byte) ([]byte, error) {
	if len(payload) < fw.CompressionThreshold {
		dataLenBytes, err := wire.VarInt(0).ToBytes()
		if err != nil {
			return nil, err
		}
		content := append(dataLenBytes, payload...)
		lenBytes, err := wire.VarInt(len(content)).ToBytes()
		if err != nil {
			return nil, err
		}
		return append(lenBytes, content...), nil
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(payload); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	dataLenBytes, err := wire.VarInt(len(payload)).ToBytes()
	if err != nil {
		return nil, err
	}
	content := append(dataLenBytes, compressed.Bytes()...)
	lenBytes, err := wire.VarInt(len(content)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(lenBytes, content...), nil
}

// readVarIntFrom reads a VarInt one byte at a time directly from r, since
// wire.VarInt.FromBytes expects a fully-buffered slice and the length
// prefix precedes any buffering.
func readVarIntFrom(r io.Reader, out *wire.VarInt) error {
	var buf [1]byte
	var result int32
	var n uint
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		b := buf[0]
		result |= int32(b&0x7F) << (7 * n)
		n++
		if b&0x80 == 0 {
			break
		}
		if n >= 5 {
			return wire.ErrVarIntTooBig
		}
	}
	*out = wire.VarInt(result)
	return nil
}
