package wire

// Angle is a single byte representing 1/256 of a full turn. Reading yields
// degrees = byte * 360/256; writing truncates (degrees mod 360) * 256/360
// to a byte. NaN/Inf input is a programmer error, not a wire error: callers
// must normalize before constructing an Angle.
type Angle uint8

// AngleFromDegrees converts a float degree value into the wire byte form.
func AngleFromDegrees(degrees float64) Angle {
	norm := degrees - float64(int(degrees/360))*360
	if norm < 0 {
		norm += 360
	}
	return Angle(uint8(norm * 256 / 360))
}

// Degrees converts the wire byte back into a float degree value in [0, 360).
func (a Angle) Degrees() float64 {
	return float64(a) * 360 / 256
}

func (a Angle) ToBytes() (ByteArray, error) {
	return ByteArray{byte(a)}, nil
}

func (a *Angle) FromBytes(data ByteArray) (int, error) {
	if err := requireLen(data, 1, "Angle"); err != nil {
		return 0, err
	}
	*a = Angle(data[0])
	return 1, nil
}
