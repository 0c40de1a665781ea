package hct

import (
	"image/color"

	"github.com/jmylchreest/materialise/internal/cam/cie"
)

// ContrastRatio returns the WCAG contrast ratio between the given two
// colours, between 1 and 21.
func ContrastRatio(a, b color.Color) float32 {
	ah := FromColor(a)
	bh := FromColor(b)
	return ToneContrastRatio(ah.Tone, bh.Tone)
}

// ToneContrastRatio returns the contrast ratio between the given two
// tones, which are clamped to 0-100. The ratio will be between 1 and 21.
func ToneContrastRatio(a, b float32) float32 {
	a = clamp(a, 0, 100)
	b = clamp(b, 0, 100)
	return ContrastRatioOfYs(cie.LToY(a), cie.LToY(b))
}

// ContrastRatioOfYs returns the contrast ratio of two XYZ relative
// luminance (Y) values.
func ContrastRatioOfYs(a, b float32) float32 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 5) / (darker + 5)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
