package wire

import "encoding/binary"

// PackedPosition is a block position packed into a single u64: x as a
// 26-bit signed field, z as a 26-bit signed field, y as a 12-bit signed
// field. Per spec §3.3/§9 this is always big-endian, regardless of
// DefaultBigEndian.
type PackedPosition struct {
	X int32 // -33554432 .. 33554431
	Y int16 // -2048 .. 2047
	Z int32 // -33554432 .. 33554431
}

func (p PackedPosition) ToBytes() (ByteArray, error) {
	value := uint64(0)
	value |= uint64(p.X&0x3FFFFFF) << 38
	value |= uint64(p.Z&0x3FFFFFF) << 12
	value |= uint64(p.Y) & 0xFFF

	data := make(ByteArray, 8)
	binary.BigEndian.PutUint64(data, value)
	return data, nil
}

func (p *PackedPosition) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 8, "PackedPosition"); err != nil {
		return 0, err
	}
	value := binary.BigEndian.Uint64(data)

	x := int32(value >> 38)
	if x >= 0x2000000 {
		x -= 0x4000000
	}
	z := int32((value >> 12) & 0x3FFFFFF)
	if z >= 0x2000000 {
		z -= 0x4000000
	}
	y := int16(value & 0xFFF)
	if y >= 0x800 {
		y -= 0x1000
	}

	p.X, p.Y, p.Z = x, y, z
	return 8, nil
}
