// Package hct implements the HCT (hue, chroma, tone) colour space,
// a perceptually accurate colour system built on CAM16 hue and chroma
// with L*a*b* lightness as tone.
package hct

import (
	"fmt"
	"image/color"

	"github.com/jmylchreest/materialise/internal/cam/cam16"
	"github.com/jmylchreest/materialise/internal/cam/cie"
)

// HCT represents a colour as hue, chroma, and tone.
type HCT struct {
	// Hue is the spectral identity of the colour (red, green, blue etc)
	// in degrees (0-360).
	Hue float32

	// Chroma is the colorfulness or saturation of the colour. Greyscale
	// colours have no chroma, and fully saturated ones have high chroma.
	// The maximum varies as a function of hue and tone, but 150 is an
	// upper bound.
	Chroma float32

	// Tone is the L* component from the L*a*b* colour system, which is
	// linear in the human perception of lightness (0-100).
	Tone float32

	// R, G, B, A are the sRGB standard gamma-corrected 0-1 normalised
	// representation of the colour. Components are not premultiplied
	// by alpha.
	R, G, B, A float32
}

// New returns a new HCT representation for the given hue (0-360),
// chroma, and tone (0-100). The colour is kept within the sRGB gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func New(hue, chroma, tone float32) HCT {
	r, g, b := SolveToRGB(hue, chroma, tone)
	return SRGBToHCT(r, g, b)
}

// FromColor constructs an HCT colour from a standard [color.Color].
func FromColor(c color.Color) HCT {
	return Uint32ToHCT(c.RGBA())
}

// RGBA implements the [color.Color] interface, premultiplying the RGB
// components by alpha.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return cie.SRGBFloatToUint32(h.R, h.G, h.B, h.A)
}

// AsRGBA returns a standard [color.RGBA] value.
func (h HCT) AsRGBA() color.RGBA {
	r, g, b, a := cie.SRGBFloatToUint8(h.R, h.G, h.B, h.A)
	return color.RGBA{r, g, b, a}
}

// SetUint32 sets components from alpha-premultiplied uint32 values.
func (h *HCT) SetUint32(r, g, b, a uint32) {
	fa := float32(a) / 65535
	fr := (float32(r) / 65535) / fa
	fg := (float32(g) / 65535) / fa
	fb := (float32(b) / 65535) / fa
	*h = SRGBToHCT(fr, fg, fb)
	h.A = fa
}

// WithHue returns a copy of this colour with the given hue (0-360).
// Chroma may decrease because chroma has a different maximum for any
// given hue and tone.
func (h HCT) WithHue(hue float32) HCT {
	r, g, b := SolveToRGB(hue, h.Chroma, h.Tone)
	return SRGBToHCT(r, g, b)
}

// WithChroma returns a copy of this colour with the given chroma,
// kept within the sRGB gamut.
func (h HCT) WithChroma(chroma float32) HCT {
	r, g, b := SolveToRGB(h.Hue, chroma, h.Tone)
	return SRGBToHCT(r, g, b)
}

// WithTone returns a copy of this colour with the given tone (0-100),
// kept within the sRGB gamut.
func (h HCT) WithTone(tone float32) HCT {
	r, g, b := SolveToRGB(h.Hue, h.Chroma, tone)
	return SRGBToHCT(r, g, b)
}

// SRGBToHCT returns an HCT colour from the given sRGB coordinates,
// under standard viewing conditions. The RGB value range is 0-1, and
// the values are gamma corrected. Alpha is always 1.
func SRGBToHCT(r, g, b float32) HCT {
	x, y, z := cie.SRGBToXYZ(r, g, b)
	cam := cam16.FromXYZ(100*x, 100*y, 100*z)
	l, _, _ := cie.XYZToLAB(x, y, z)
	return HCT{Hue: cam.Hue, Chroma: cam.Chroma, Tone: l, R: r, G: g, B: b, A: 1}
}

// Uint32ToHCT returns an HCT colour from alpha-premultiplied uint32
// colour coordinates as used for interchange among [color.Color] types.
func Uint32ToHCT(r, g, b, a uint32) HCT {
	h := HCT{}
	h.SetUint32(r, g, b, a)
	return h
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}
