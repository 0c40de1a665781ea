package scheme

import (
	"github.com/chewxy/math32"

	"github.com/jmylchreest/materialise/internal/cam/cam16"
	"github.com/jmylchreest/materialise/internal/hct"
)

// Scheme holds the six key tonal palettes derived from a seed colour
// plus the parameters that drove the derivation. It is an immutable
// value: construct one per invocation with [New].
type Scheme struct {
	Seed     hct.HCT
	Dark     bool
	Variant  Variant
	Contrast float32

	Primary        Tonal
	Secondary      Tonal
	Tertiary       Tonal
	Neutral        Tonal
	NeutralVariant Tonal
	Error          Tonal
}

// New derives the key palettes for the given seed and variant.
// Contrast is clamped to [-1, 1]; 0 is the standard contrast level.
func New(seed hct.HCT, dark bool, variant Variant, contrast float32) *Scheme {
	s := &Scheme{
		Seed:     seed,
		Dark:     dark,
		Variant:  variant,
		Contrast: clampF(contrast, -1, 1),
		Error:    Tonal{Hue: 25, Chroma: 84},
	}
	hue := seed.Hue
	chroma := seed.Chroma

	switch variant {
	case TonalSpot:
		s.Primary = Tonal{hue, 36}
		s.Secondary = Tonal{hue, 16}
		s.Tertiary = Tonal{rot(hue, 60), 24}
		s.Neutral = Tonal{hue, 6}
		s.NeutralVariant = Tonal{hue, 8}
	case Content, Fidelity:
		s.Primary = Tonal{hue, chroma}
		s.Secondary = Tonal{hue, math32.Max(chroma-32, chroma*0.5)}
		if variant == Fidelity {
			// Complementary tertiary.
			s.Tertiary = Tonal{rot(hue, 180), chroma}
		} else {
			// Analogous tertiary.
			s.Tertiary = Tonal{rot(hue, 60), chroma / 2}
		}
		s.Neutral = Tonal{hue, chroma / 8}
		s.NeutralVariant = Tonal{hue, chroma/8 + 4}
	case Expressive:
		s.Primary = Tonal{rot(hue, 240), 40}
		s.Secondary = Tonal{rotatedHue(hue, expressiveHues, expressiveSecondaryRotations), 24}
		s.Tertiary = Tonal{rotatedHue(hue, expressiveHues, expressiveTertiaryRotations), 32}
		s.Neutral = Tonal{rot(hue, 15), 8}
		s.NeutralVariant = Tonal{rot(hue, 15), 12}
	case Monochrome:
		s.Primary = Tonal{hue, 0}
		s.Secondary = Tonal{hue, 0}
		s.Tertiary = Tonal{hue, 0}
		s.Neutral = Tonal{hue, 0}
		s.NeutralVariant = Tonal{hue, 0}
		s.Error = Tonal{25, 0}
	case Neutral:
		s.Primary = Tonal{hue, 12}
		s.Secondary = Tonal{hue, 8}
		s.Tertiary = Tonal{hue, 16}
		s.Neutral = Tonal{hue, 2}
		s.NeutralVariant = Tonal{hue, 2}
	case Vibrant:
		s.Primary = Tonal{hue, 200}
		s.Secondary = Tonal{rotatedHue(hue, vibrantHues, vibrantSecondaryRotations), 24}
		s.Tertiary = Tonal{rotatedHue(hue, vibrantHues, vibrantTertiaryRotations), 32}
		s.Neutral = Tonal{hue, 10}
		s.NeutralVariant = Tonal{hue, 12}
	case FruitSalad:
		s.Primary = Tonal{rot(hue, -50), 48}
		s.Secondary = Tonal{rot(hue, -50), 36}
		s.Tertiary = Tonal{hue, 36}
		s.Neutral = Tonal{hue, 10}
		s.NeutralVariant = Tonal{hue, 16}
	case Rainbow:
		s.Primary = Tonal{hue, 48}
		s.Secondary = Tonal{hue, 16}
		s.Tertiary = Tonal{rot(hue, 60), 24}
		s.Neutral = Tonal{hue, 0}
		s.NeutralVariant = Tonal{hue, 0}
	default:
		return New(seed, dark, TonalSpot, contrast)
	}
	return s
}

var (
	expressiveHues               = []float32{0, 21, 51, 121, 151, 191, 271, 321, 360}
	expressiveSecondaryRotations = []float32{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiaryRotations  = []float32{120, 120, 20, 45, 20, 15, 20, 120, 120}

	vibrantHues               = []float32{0, 41, 61, 101, 131, 181, 251, 301, 360}
	vibrantSecondaryRotations = []float32{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRotations  = []float32{35, 30, 20, 25, 30, 35, 30, 25, 25}
)

// rotatedHue rotates the source hue by the rotation matching the hue
// breakpoint band it falls in.
func rotatedHue(sourceHue float32, hues, rotations []float32) float32 {
	sourceHue = cam16.SanitizeDegrees(sourceHue)
	for i := 0; i < len(hues)-1; i++ {
		if hues[i] <= sourceHue && sourceHue < hues[i+1] {
			return rot(sourceHue, rotations[i])
		}
	}
	return sourceHue
}

func rot(hue, by float32) float32 {
	return cam16.SanitizeDegrees(hue + by)
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
