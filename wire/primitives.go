package wire

import (
	"encoding/binary"
	"math"
)

// DefaultBigEndian is the build-time flag from spec §3.1: fixed-width
// primitives are little-endian unless this is flipped. It is a single
// package-level var rather than a build tag so tests can exercise both
// branches; production builds never change it after init.
var DefaultBigEndian = false

func byteOrder() binary.ByteOrder {
	if DefaultBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Bool occupies one byte: 0 or 1 on the wire, read back as `byte > 0`.
type Bool bool

func (b Bool) ToBytes() (ByteArray, error) {
	if b {
		return ByteArray{0x01}, nil
	}
	return ByteArray{0x00}, nil
}

func (b *Bool) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 1, "Bool"); err != nil {
		return 0, err
	}
	*b = data[0] > 0
	return 1, nil
}

// Byte is a signed 8-bit integer.
type Byte int8

func (v Byte) ToBytes() (ByteArray, error) { return ByteArray{byte(v)}, nil }
func (v *Byte) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 1, "Byte"); err != nil {
		return 0, err
	}
	*v = Byte(int8(data[0]))
	return 1, nil
}

// UnsignedByte is an unsigned 8-bit integer.
type UnsignedByte uint8

func (v UnsignedByte) ToBytes() (ByteArray, error) { return ByteArray{byte(v)}, nil }
func (v *UnsignedByte) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 1, "UnsignedByte"); err != nil {
		return 0, err
	}
	*v = UnsignedByte(data[0])
	return 1, nil
}

// Short is a signed 16-bit integer, little-endian by default (spec §3.1).
type Short int16

func (v Short) ToBytes() (ByteArray, error) {
	b := make(ByteArray, 2)
	byteOrder().PutUint16(b, uint16(v))
	return b, nil
}
func (v *Short) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 2, "Short"); err != nil {
		return 0, err
	}
	*v = Short(int16(byteOrder().Uint16(data)))
	return 2, nil
}

// UnsignedShort is an unsigned 16-bit integer, little-endian by default.
type UnsignedShort uint16

func (v UnsignedShort) ToBytes() (ByteArray, error) {
	b := make(ByteArray, 2)
	byteOrder().PutUint16(b, uint16(v))
	return b, nil
}
func (v *UnsignedShort) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 2, "UnsignedShort"); err != nil {
		return 0, err
	}
	*v = UnsignedShort(byteOrder().Uint16(data))
	return 2, nil
}

// Int is a signed 32-bit integer, little-endian by default.
type Int int32

func (v Int) ToBytes() (ByteArray, error) {
	b := make(ByteArray, 4)
	byteOrder().PutUint32(b, uint32(v))
	return b, nil
}
func (v *Int) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 4, "Int"); err != nil {
		return 0, err
	}
	*v = Int(int32(byteOrder().Uint32(data)))
	return 4, nil
}

// Long is a signed 64-bit integer, little-endian by default.
type Long int64

func (v Long) ToBytes() (ByteArray, error) {
	b := make(ByteArray, 8)
	byteOrder().PutUint64(b, uint64(v))
	return b, nil
}
func (v *Long) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 8, "Long"); err != nil {
		return 0, err
	}
	*v = Long(int64(byteOrder().Uint64(data)))
	return 8, nil
}

// Float is an IEEE-754 single-precision float, little-endian by default.
type Float float32

func (v Float) ToBytes() (ByteArray, error) {
	b := make(ByteArray, 4)
	byteOrder().PutUint32(b, math.Float32bits(float32(v)))
	return b, nil
}
func (v *Float) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 4, "Float"); err != nil {
		return 0, err
	}
	*v = Float(math.Float32frombits(byteOrder().Uint32(data)))
	return 4, nil
}

// Double is an IEEE-754 double-precision float, little-endian by default.
type Double float64

func (v Double) ToBytes() (ByteArray, error) {
	b := make(ByteArray, 8)
	byteOrder().PutUint64(b, math.Float64bits(float64(v)))
	return b, nil
}
func (v *Double) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 8, "Double"); err != nil {
		return 0, err
	}
	*v = Double(math.Float64frombits(byteOrder().Uint64(data)))
	return 8, nil
}
