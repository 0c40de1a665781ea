package scheme

import (
	"github.com/jmylchreest/materialise/internal/colour"
	"github.com/jmylchreest/materialise/internal/hct"
)

// Tonal is a tonal palette: a fixed hue and chroma from which colours
// at any tone can be produced. Chroma may be reduced per-tone when the
// requested value is outside the sRGB gamut at that tone.
type Tonal struct {
	Hue    float32
	Chroma float32
}

// Tone returns the palette colour at the given tone (0-100).
func (p Tonal) Tone(tone float32) colour.RGB {
	h := hct.New(p.Hue, p.Chroma, tone)
	return colour.ToRGB(h.AsRGBA())
}
