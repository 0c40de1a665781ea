package colour

import (
	"testing"

	"github.com/jmylchreest/materialise/internal/hct"
)

func TestScoreEmptyInput(t *testing.T) {
	if got := Score(nil, 4); got != nil {
		t.Errorf("Score(nil) = %v, want nil", got)
	}
	if got := Score([]Weighted{{Colour: RGB{255, 0, 0}, Population: 1}}, 0); got != nil {
		t.Errorf("Score with desired 0 = %v, want nil", got)
	}
}

func TestScorePrefersChromaAndPopulation(t *testing.T) {
	candidates := []Weighted{
		{Colour: RGB{255, 0, 0}, Population: 500},   // vivid red, dominant
		{Colour: RGB{0, 0, 255}, Population: 100},   // vivid blue, minor
		{Colour: RGB{128, 128, 128}, Population: 0}, // no population
	}

	got := Score(candidates, 4)
	if len(got) == 0 {
		t.Fatal("expected at least one scored colour")
	}
	if got[0] != (RGB{255, 0, 0}) {
		t.Errorf("top colour = %v, want vivid red", got[0])
	}
}

func TestScoreFiltersLowChroma(t *testing.T) {
	candidates := []Weighted{
		{Colour: RGB{0, 128, 255}, Population: 100},
		{Colour: RGB{120, 120, 122}, Population: 900}, // near-grey despite dominance
	}

	got := Score(candidates, 4)
	for _, c := range got {
		if c == (RGB{120, 120, 122}) {
			t.Errorf("near-grey colour %v should have been filtered", c)
		}
	}
}

func TestScoreFallbackToMostPopulous(t *testing.T) {
	// Everything is grey, so every candidate is filtered; the most
	// populous colour is returned rather than nothing.
	candidates := []Weighted{
		{Colour: RGB{40, 40, 40}, Population: 10},
		{Colour: RGB{200, 200, 200}, Population: 500},
		{Colour: RGB{128, 128, 128}, Population: 90},
	}

	got := Score(candidates, 4)
	if len(got) != 1 {
		t.Fatalf("expected exactly the fallback colour, got %d colours", len(got))
	}
	if got[0] != (RGB{200, 200, 200}) {
		t.Errorf("fallback = %v, want the most populous grey", got[0])
	}
}

func TestScoreDeduplicatesNearbyHues(t *testing.T) {
	candidates := []Weighted{
		{Colour: RGB{255, 0, 0}, Population: 400}, // red
		{Colour: RGB{250, 10, 5}, Population: 350}, // nearly the same red
		{Colour: RGB{0, 0, 255}, Population: 300}, // blue
	}

	got := Score(candidates, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct colours, got %d", len(got))
	}
	if hueDistanceOf(t, got[0], got[1]) < 15 {
		t.Errorf("chosen colours %v and %v are hue duplicates", got[0], got[1])
	}
}

func TestScoreDeterministic(t *testing.T) {
	candidates := []Weighted{
		{Colour: RGB{255, 80, 0}, Population: 120},
		{Colour: RGB{0, 160, 90}, Population: 300},
		{Colour: RGB{40, 60, 220}, Population: 250},
		{Colour: RGB{220, 20, 120}, Population: 80},
	}

	first := Score(candidates, 4)
	for i := 0; i < 3; i++ {
		again := Score(candidates, 4)
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d != %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Errorf("run %d: colour %d = %v, want %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 float32
		want   float32
	}{
		{name: "same hue", h1: 100, h2: 100, want: 0},
		{name: "simple difference", h1: 10, h2: 40, want: 30},
		{name: "wraparound", h1: 350, h2: 10, want: 20},
		{name: "opposite", h1: 0, h2: 180, want: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hueDistance(tt.h1, tt.h2); got != tt.want {
				t.Errorf("hueDistance(%g, %g) = %g, want %g", tt.h1, tt.h2, got, tt.want)
			}
		})
	}
}

func hueDistanceOf(t *testing.T, a, b RGB) float32 {
	t.Helper()
	return hueDistance(hctHue(a), hctHue(b))
}

func hctHue(rgb RGB) float32 {
	h := hct.SRGBToHCT(float32(rgb.R)/255, float32(rgb.G)/255, float32(rgb.B)/255)
	return h.Hue
}
