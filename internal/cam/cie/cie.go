// Package cie implements the CIE standard colour spaces used as the
// interchange layer between sRGB and the CAM16 appearance model:
// gamma-corrected and linear sRGB, XYZ, and L*a*b*.
//
// All values are float32. XYZ coordinates are on a 0-1 scale unless a
// function name says otherwise (the 100-base variants are what CAM16
// consumes).
package cie

import (
	"github.com/chewxy/math32"
)

// WhiteD65 is the D65 standard illuminant white point.
var WhiteD65 = [3]float32{95.047, 100.0, 108.883}

// SRGBToLinearComp converts a gamma-corrected sRGB component (0-1)
// to linear space (0-1).
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear sRGB component (0-1) back to
// gamma-corrected space (0-1).
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= 0.0031308 {
		return lin * 12.92
	}
	return 1.055*math32.Pow(lin, 1.0/2.4) - 0.055
}

// SRGBLinToXYZ converts linear sRGB components (0-1) to XYZ (0-1).
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ (0-1) to linear sRGB components, which may
// fall outside 0-1 for out-of-gamut colours.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2413774792388685*x - 1.5376652402851851*y - 0.49885366846268053*z
	gl = -0.9691452513005321*x + 1.8758853451067872*y + 0.04156585616912061*z
	bl = 0.05562093689691305*x - 0.20395524564742123*y + 1.0571799111220335*z
	return
}

// SRGBToXYZ converts gamma-corrected sRGB (0-1) to XYZ (0-1).
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	return SRGBLinToXYZ(SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b))
}

// SRGBToXYZ100 converts gamma-corrected sRGB (0-1) to 100-base XYZ,
// the scale used by the CAM16 model.
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	x, y, z = SRGBToXYZ(r, g, b)
	x *= 100
	y *= 100
	z *= 100
	return
}

// XYZToSRGB converts XYZ (0-1) to gamma-corrected sRGB, clamped to the
// representable 0-1 gamut.
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	r = clamp01(SRGBFromLinearComp(rl))
	g = clamp01(SRGBFromLinearComp(gl))
	b = clamp01(SRGBFromLinearComp(bl))
	return
}

// XYZ100ToSRGB converts 100-base XYZ to gamma-corrected sRGB (0-1).
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	return XYZToSRGB(x/100, y/100, z/100)
}

// SRGBFloatToUint8 converts sRGB float components (0-1) to
// alpha-premultiplied uint8 values.
func SRGBFloatToUint8(r, g, b, a float32) (ru, gu, bu, au uint8) {
	ru = uint8(clamp01(r)*a*255 + 0.5)
	gu = uint8(clamp01(g)*a*255 + 0.5)
	bu = uint8(clamp01(b)*a*255 + 0.5)
	au = uint8(a*255 + 0.5)
	return
}

// SRGBFloatToUint32 converts sRGB float components (0-1) to
// alpha-premultiplied uint32 values as used by [image/color.Color].
func SRGBFloatToUint32(r, g, b, a float32) (ru, gu, bu, au uint32) {
	ru = uint32(clamp01(r)*a*65535 + 0.5)
	gu = uint32(clamp01(g)*a*65535 + 0.5)
	bu = uint32(clamp01(b)*a*65535 + 0.5)
	au = uint32(a*65535 + 0.5)
	return
}

const (
	// labE is the epsilon of the L*a*b* transfer function, 216/24389.
	labE = 216.0 / 24389.0
	// labKappa is the kappa constant of the L*a*b* transfer function, 24389/27.
	labKappa = 24389.0 / 27.0
)

// LABCompress applies the forward L*a*b* transfer function.
func LABCompress(t float32) float32 {
	if t > labE {
		return math32.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress applies the inverse L*a*b* transfer function.
func LABUncompress(ft float32) float32 {
	ft3 := ft * ft * ft
	if ft3 > labE {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts XYZ (0-1) to L*a*b* under the D65 white point.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(100 * x / WhiteD65[0])
	fy := LABCompress(100 * y / WhiteD65[1])
	fz := LABCompress(100 * z / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* to XYZ (0-1) under the D65 white point.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65[0] / 100
	y = LABUncompress(fy) * WhiteD65[1] / 100
	z = LABUncompress(fz) * WhiteD65[2] / 100
	return
}

// LToY converts an L* lightness value (0-100) to a 100-base XYZ Y value.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a 100-base XYZ Y value to an L* lightness value (0-100).
func YToL(y float32) float32 {
	return 116*LABCompress(y/100) - 16
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
