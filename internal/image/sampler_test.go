package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDownsampleNeverUpscales(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 10, 8))
	got := Downsample(small, 64)
	if got.Bounds().Dx() != 10 || got.Bounds().Dy() != 8 {
		t.Errorf("small image resized to %v, want 10x8", got.Bounds())
	}
}

func TestDownsamplePreservesAspectRatio(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		maxDim int
		wantW  int
		wantH  int
	}{
		{name: "landscape", w: 200, h: 100, maxDim: 64, wantW: 64, wantH: 32},
		{name: "portrait", w: 100, h: 200, maxDim: 64, wantW: 32, wantH: 64},
		{name: "square", w: 128, h: 128, maxDim: 64, wantW: 64, wantH: 64},
		{name: "extreme ratio clamps to 1", w: 1000, h: 2, maxDim: 64, wantW: 64, wantH: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := Downsample(img, tt.maxDim)
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("resized to %dx%d, want %dx%d",
					got.Bounds().Dx(), got.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDownsampleCompositesOverWhite(t *testing.T) {
	// Fully transparent image becomes white.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	got := Downsample(img, 64)
	r, g, b, _ := got.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("transparent pixel composited to (%d, %d, %d), want white", r>>8, g>>8, b>>8)
	}

	// Half-transparent red lightens towards white.
	img2 := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img2.Set(x, y, color.NRGBA{R: 255, A: 128})
		}
	}
	got2 := Downsample(img2, 64)
	r2, g2, b2, _ := got2.At(0, 0).RGBA()
	if r2>>8 < 250 {
		t.Errorf("red channel = %d, want near 255", r2>>8)
	}
	if g2>>8 < 100 || b2>>8 < 100 {
		t.Errorf("half-transparent red over white gave (%d, %d, %d)", r2>>8, g2>>8, b2>>8)
	}
}

func TestFileLoader(t *testing.T) {
	loader := NewFileLoader()

	if _, err := loader.Load(""); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := loader.Load("/nonexistent/image.png"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := loader.Load(t.TempDir()); err == nil {
		t.Error("expected error for directory path")
	}

	// Not an image.
	bad := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(bad, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Load(bad); err == nil {
		t.Error("expected error for undecodable file")
	}

	// A real PNG round-trips.
	good := filepath.Join(t.TempDir(), "dot.png")
	f, err := os.Create(good)
	if err != nil {
		t.Fatal(err)
	}
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 200, G: 40, B: 40, A: 255})
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := loader.Load(good)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("loaded bounds = %v, want 2x2", img.Bounds())
	}
}
