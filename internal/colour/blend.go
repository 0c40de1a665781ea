package colour

// Blend linearly interpolates each channel of a towards b by amount
// (0-1). Channel values are truncated, not rounded, so
// Blend(black, white, 0.5) yields #7F7F7F.
func Blend(a, b RGB, amount float32) RGB {
	return RGB{
		R: blendComp(a.R, b.R, amount),
		G: blendComp(a.G, b.G, amount),
		B: blendComp(a.B, b.B, amount),
	}
}

func blendComp(a, b uint8, amount float32) uint8 {
	v := float32(a) + (float32(b)-float32(a))*amount
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
