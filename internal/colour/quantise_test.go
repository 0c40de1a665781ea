package colour

import (
	"image"
	"image/color"
	"testing"
)

// solidImage returns a w by h image filled with the given colour.
func solidImage(rgb RGB, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})
		}
	}
	return img
}

// stripeImage returns an image with vertical stripes cycling through
// the given colours.
func stripeImage(colours []RGB, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := colours[x%len(colours)]
			img.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

func TestQuantiseValidation(t *testing.T) {
	q := NewQuantiser()

	if _, err := q.Quantise(nil, 8); err == nil {
		t.Error("expected error for nil image")
	}
	img := solidImage(RGB{10, 20, 30}, 4, 4)
	if _, err := q.Quantise(img, 0); err == nil {
		t.Error("expected error for count 0")
	}
	if _, err := q.Quantise(img, 300); err == nil {
		t.Error("expected error for count over 256")
	}
	if _, err := q.Quantise(image.NewRGBA(image.Rect(0, 0, 0, 0)), 8); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestQuantiseSolidImage(t *testing.T) {
	q := NewQuantiser()
	img := solidImage(RGB{200, 40, 40}, 8, 8)

	got, err := q.Quantise(img, 16)
	if err != nil {
		t.Fatalf("Quantise() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 colour, got %d", len(got))
	}
	if got[0].Colour != (RGB{200, 40, 40}) {
		t.Errorf("colour = %v, want rgb(200, 40, 40)", got[0].Colour)
	}
	if got[0].Population != 64 {
		t.Errorf("population = %d, want 64", got[0].Population)
	}
}

func TestQuantiseFewUniqueColours(t *testing.T) {
	q := NewQuantiser()
	colours := []RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
	img := stripeImage(colours, 9, 3)

	got, err := q.Quantise(img, 8)
	if err != nil {
		t.Fatalf("Quantise() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 colours, got %d", len(got))
	}
	// First-occurrence order is preserved when no clustering is needed.
	for i, want := range colours {
		if got[i].Colour != want {
			t.Errorf("colour %d = %v, want %v", i, got[i].Colour, want)
		}
		if got[i].Population != 9 {
			t.Errorf("population %d = %d, want 9", i, got[i].Population)
		}
	}
}

func TestQuantisePopulationsSumToPixelCount(t *testing.T) {
	q := NewQuantiser()
	// Many distinct colours to force actual clustering.
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: uint8((x + y) * 4), A: 255})
		}
	}

	got, err := q.Quantise(img, 16)
	if err != nil {
		t.Fatalf("Quantise() error: %v", err)
	}
	if len(got) == 0 || len(got) > 16 {
		t.Fatalf("expected between 1 and 16 colours, got %d", len(got))
	}
	sum := 0
	for _, w := range got {
		sum += w.Population
	}
	if sum != 32*32 {
		t.Errorf("population sum = %d, want %d", sum, 32*32)
	}
}

func TestQuantiseDeterministic(t *testing.T) {
	q := NewQuantiser()
	img := image.NewRGBA(image.Rect(0, 0, 24, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 11), G: uint8(y * 7), B: uint8(x*y) % 255, A: 255})
		}
	}

	first, err := q.Quantise(img, 8)
	if err != nil {
		t.Fatalf("Quantise() error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := NewQuantiser().Quantise(img, 8)
		if err != nil {
			t.Fatalf("Quantise() error: %v", err)
		}
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
