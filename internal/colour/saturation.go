package colour

import (
	"image"
)

// saturationSampleTarget caps how many pixels the saturation estimate
// visits on large images.
const saturationSampleTarget = 1000

// MeanSaturation estimates the average HSV saturation of the image,
// returning a value between 0 (greyscale) and 1 (fully saturated).
// Pixels are visited with a stride so that roughly
// [saturationSampleTarget] samples are taken regardless of image size.
func MeanSaturation(img image.Image) float32 {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}

	stride := max(1, total/saturationSampleTarget)

	var sum float64
	var n int
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if i%stride == 0 {
				sum += float64(Saturation(ToRGB(img.At(x, y))))
				n++
			}
			i++
		}
	}
	if n == 0 {
		return 0
	}
	return float32(sum / float64(n))
}

// Saturation returns the HSV saturation of the colour (0-1).
func Saturation(rgb RGB) float32 {
	maxC := max(rgb.R, rgb.G, rgb.B)
	if maxC == 0 {
		return 0
	}
	minC := min(rgb.R, rgb.G, rgb.B)
	return float32(maxC-minC) / float32(maxC)
}
