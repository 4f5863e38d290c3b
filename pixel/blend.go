package pixel

// Blend composites src over dst using src's alpha as the interpolation
// weight. The result is always opaque.
func Blend(dst, src uint32) uint32 {
	d := Unpack(dst)
	s := Unpack(src)

	if s.A == 0xFF {
		d.R, d.G, d.B = s.R, s.G, s.B
	} else {
		a := float32(s.A) / 255
		mix := func(sc, dc uint8) uint8 {
			return uint8(float32(sc)*a + float32(dc)*(1-a))
		}
		d.R = mix(s.R, d.R)
		d.G = mix(s.G, d.G)
		d.B = mix(s.B, d.B)
	}
	d.A = 0xFF
	return d.Pack()
}
