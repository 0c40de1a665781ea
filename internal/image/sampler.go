package image

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// DefaultMaxDimension is the default bound on the sampled image's
// larger dimension.
const DefaultMaxDimension = 64

// Downsample prepares an image for colour extraction: transparency is
// composited over an opaque white background, then the image is scaled
// down (never up) so neither dimension exceeds maxDim, preserving
// aspect ratio. The result is deterministic for identical input.
func Downsample(img image.Image, maxDim int) *image.RGBA {
	if maxDim < 1 {
		maxDim = DefaultMaxDimension
	}

	flat := compositeOverWhite(img)

	bounds := flat.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return flat
	}

	scale := float64(maxDim) / float64(max(w, h))
	dw := max(1, int(float64(w)*scale))
	dh := max(1, int(float64(h)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), flat, bounds, xdraw.Over, nil)
	return dst
}

// compositeOverWhite flattens any transparency against white.
func compositeOverWhite(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	return dst
}
