package hct

import (
	"testing"

	"github.com/chewxy/math32"
)

func expect(t *testing.T, ref, val float32) {
	t.Helper()
	if math32.Abs(ref-val) > 0.001 {
		t.Errorf("expected value: %g != %g", ref, val)
	}
}

func expectTol(t *testing.T, ref, val, tol float32, str string) {
	t.Helper()
	if math32.Abs(ref-val) > tol {
		t.Errorf("expected value: %g != %g with tolerance: %g for %s", ref, val, tol, str)
	}
}

func TestHCT(t *testing.T) {
	h := SRGBToHCT(1, 1, 1)
	expect(t, 209.492, h.Hue)
	expect(t, 2.869, h.Chroma)
	expect(t, 100, h.Tone)

	r, g, b := SolveToRGB(120, 60, 50)
	h = SRGBToHCT(r, g, b)
	expectTol(t, 120.114, h.Hue, 0.05, h.String())
	expectTol(t, 52.82, h.Chroma, 0.05, h.String()) // can't do 60
	expectTol(t, 50, h.Tone, 0.01, h.String())
}

func TestHCTGrey(t *testing.T) {
	h := New(200, 0, 50)
	if h.Chroma > 3 {
		t.Errorf("expected a greyscale colour, got chroma %g", h.Chroma)
	}
	expectTol(t, 50, h.Tone, 0.5, h.String())
	if h.R != h.G || h.G != h.B {
		t.Errorf("expected equal channels, got (%g, %g, %g)", h.R, h.G, h.B)
	}
}

func TestHCTAll(t *testing.T) {
	hues := []float32{15, 45, 75, 105, 135, 165, 195, 225, 255, 285, 315, 345}
	chromas := []float32{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	tones := []float32{20, 30, 40, 50, 60, 70, 80}

	for _, hue := range hues {
		for _, chroma := range chromas {
			for _, tone := range tones {
				h := New(hue, chroma, tone)
				hs := h.String()
				if chroma > 0 {
					expectTol(t, hue, h.Hue, 4.0, hs)
				}
				if h.Chroma > chroma+2.5 {
					t.Errorf("chroma overshoot: requested %g, got %g for %s", chroma, h.Chroma, hs)
				}
				if !(h.Hue > 209 && h.Hue < 210 && h.Chroma > 0.78) {
					expectTol(t, tone, h.Tone, 0.5, hs)
				}
			}
		}
	}
}

func TestHCTRoundTrip(t *testing.T) {
	// Any 8-bit colour, taken to HCT and back, must land within one
	// step per channel. Saturated blues are the hardest cases for the
	// solver, so the grid includes the cube corners.
	steps := []float32{0, 42, 85, 128, 170, 213, 255}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				h := SRGBToHCT(r/255, g/255, b/255)
				nr, ng, nb := SolveToRGB(h.Hue, h.Chroma, h.Tone)
				rr := math32.Round(nr * 255)
				rg := math32.Round(ng * 255)
				rb := math32.Round(nb * 255)
				if math32.Abs(rr-r) > 1 || math32.Abs(rg-g) > 1 || math32.Abs(rb-b) > 1 {
					t.Errorf("(%g, %g, %g) -> %s -> (%g, %g, %g)", r, g, b, h.String(), rr, rg, rb)
				}
			}
		}
	}
}

func TestWith(t *testing.T) {
	h := New(30, 40, 50)

	ht := h.WithTone(80)
	expectTol(t, 80, ht.Tone, 0.5, ht.String())
	expectTol(t, h.Hue, ht.Hue, 4, ht.String())

	hc := h.WithChroma(10)
	expectTol(t, 10, hc.Chroma, 2.5, hc.String())
	expectTol(t, h.Tone, hc.Tone, 0.5, hc.String())

	hh := h.WithHue(200)
	expectTol(t, 200, hh.Hue, 4, hh.String())
	expectTol(t, h.Tone, hh.Tone, 0.5, hh.String())
}

func TestToneContrastRatio(t *testing.T) {
	expectTol(t, 21, ToneContrastRatio(0, 100), 0.01, "black vs white")
	expectTol(t, 1, ToneContrastRatio(50, 50), 0.01, "identical tones")
	if ToneContrastRatio(20, 80) < 4.5 {
		t.Errorf("expected AA contrast between tones 20 and 80")
	}
}

func BenchmarkHCT(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(120, 45, 56)
	}
}
