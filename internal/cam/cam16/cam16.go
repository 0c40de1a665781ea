package cam16

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/jmylchreest/materialise/internal/cam/cie"
)

// CAM represents a point in the CAM16 colour model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness,
// similar to HSL but much more well-calibrated to actual human
// subjective judgments.
type CAM struct {
	// Hue (h) is the spectral identity of the colour (red, green, blue
	// etc) in degrees (0-360).
	Hue float32

	// Chroma (C) is the colorfulness or saturation of the colour.
	// Greyscale colours have no chroma, and fully saturated ones have
	// high chroma.
	Chroma float32

	// Colorfulness (M) is the absolute chromatic intensity.
	Colorfulness float32

	// Saturation (s) is the colorfulness relative to brightness.
	Saturation float32

	// Brightness (Q) is the apparent amount of light from the colour,
	// which is not a simple function of actual light energy emitted.
	Brightness float32

	// Lightness (J) is the brightness relative to a reference white,
	// which varies as a function of chroma and hue.
	Lightness float32
}

// RGBA implements the [color.Color] interface.
func (cam *CAM) RGBA() (r, g, b, a uint32) {
	x, y, z := cam.XYZ()
	rf, gf, bf := cie.XYZ100ToSRGB(x, y, z)
	return cie.SRGBFloatToUint32(rf, gf, bf, 1)
}

// AsRGBA returns the colour as a [color.RGBA].
func (cam *CAM) AsRGBA() color.RGBA {
	x, y, z := cam.XYZ()
	rf, gf, bf := cie.XYZ100ToSRGB(x, y, z)
	r, g, b, a := cie.SRGBFloatToUint8(rf, gf, bf, 1)
	return color.RGBA{r, g, b, a}
}

// FromSRGB returns CAM values from given sRGB colour coordinates,
// under standard viewing conditions. The RGB value range is 0-1,
// and RGB values have gamma correction.
func FromSRGB(r, g, b float32) *CAM {
	return FromXYZ(cie.SRGBToXYZ100(r, g, b))
}

// FromXYZ returns CAM values from a given 100-base XYZ colour
// coordinate, under standard viewing conditions.
func FromXYZ(x, y, z float32) *CAM {
	return FromXYZView(x, y, z, StdView())
}

// FromXYZView returns CAM values from a given 100-base XYZ colour
// coordinate, under the given viewing conditions.
func FromXYZView(x, y, z float32, vw *View) *CAM {
	l, m, s := XYZToLMS(x, y, z)
	redVgreen, yellowVblue, grey, greyNorm := LMSToOps(l, m, s, vw)

	hue := SanitizeDegrees(math32.Atan2(yellowVblue, redVgreen) * 180 / math32.Pi)
	// achromatic response to the colour
	ac := grey * vw.NBB

	// CAM16 lightness and brightness
	J := 100 * math32.Pow(ac/vw.AW, vw.C*vw.Z)
	Q := (4 / vw.C) * math32.Sqrt(J/100) * (vw.AW + 4) * vw.FLRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math32.Cos(huePrime*math32.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13 * eHue * vw.NC * vw.NCB
	t := p1 * math32.Sqrt(redVgreen*redVgreen+yellowVblue*yellowVblue) / (greyNorm + 0.305)
	alpha := math32.Pow(t, 0.9) * math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73)

	// CAM16 chroma, colorfulness, saturation
	C := alpha * math32.Sqrt(J/100)
	M := C * vw.FLRoot
	sat := 50 * math32.Sqrt((alpha*vw.C)/(vw.AW+4))
	return &CAM{Hue: hue, Chroma: C, Colorfulness: M, Saturation: sat, Brightness: Q, Lightness: J}
}

// FromJCH returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under standard viewing conditions.
func FromJCH(j, c, h float32) *CAM {
	return FromJCHView(j, c, h, StdView())
}

// FromJCHView returns CAM values from the given lightness (j), chroma
// (c), and hue (h) values under the given viewing conditions.
func FromJCHView(j, c, h float32, vw *View) *CAM {
	cam := &CAM{Lightness: j, Chroma: c, Hue: h}
	cam.Brightness = (4 / vw.C) * math32.Sqrt(cam.Lightness/100) * (vw.AW + 4) * vw.FLRoot
	cam.Colorfulness = cam.Chroma * vw.FLRoot
	alpha := cam.Chroma / math32.Sqrt(cam.Lightness/100)
	cam.Saturation = 50 * math32.Sqrt((alpha*vw.C)/(vw.AW+4))
	return cam
}

// XYZ returns the CAM colour as 100-base XYZ coordinates under
// standard viewing conditions.
func (cam *CAM) XYZ() (x, y, z float32) {
	return cam.XYZView(StdView())
}

// XYZView returns the CAM colour as 100-base XYZ coordinates under
// the given viewing conditions.
func (cam *CAM) XYZView(vw *View) (x, y, z float32) {
	alpha := float32(0)
	if cam.Chroma != 0 || cam.Lightness != 0 {
		alpha = cam.Chroma / math32.Sqrt(cam.Lightness/100)
	}

	t := math32.Pow(alpha/math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73), 1.0/0.9)

	hRad := cam.Hue * math32.Pi / 180

	eHue := 0.25 * (math32.Cos(hRad+2) + 3.8)
	ac := vw.AW * math32.Pow(cam.Lightness/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000.0 / 13) * vw.NC * vw.NCB
	p2 := ac / vw.NBB

	hSin := math32.Sin(hRad)
	hCos := math32.Cos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rC := sign(rA) * (100 / vw.FL) * math32.Pow(inverseAdaptBase(rA), 1/0.42)
	gC := sign(gA) * (100 / vw.FL) * math32.Pow(inverseAdaptBase(gA), 1/0.42)
	bC := sign(bA) * (100 / vw.FL) * math32.Pow(inverseAdaptBase(bA), 1/0.42)
	rF := rC / vw.RGBD[0]
	gF := gC / vw.RGBD[1]
	bF := bC / vw.RGBD[2]

	return LMSToXYZ(rF, gF, bF)
}

// XYZToLMS converts XYZ coordinates to long/medium/short cone responses
// using the CAM16 transformation matrix.
func XYZToLMS(x, y, z float32) (l, m, s float32) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// LMSToXYZ converts long/medium/short cone responses back to XYZ
// coordinates.
func LMSToXYZ(l, m, s float32) (x, y, z float32) {
	x = 1.86206786*l - 1.01125463*m + 0.14918677*s
	y = 0.38752654*l + 0.62144744*m - 0.00897398*s
	z = -0.01584150*l - 0.03412294*m + 1.04996444*s
	return
}

// LMSToOps converts LMS cone responses to the opponent-process values
// used by CAM16: red-vs-green, yellow-vs-blue, grey (achromatic), and
// the normalising grey.
func LMSToOps(l, m, s float32, vw *View) (redVgreen, yellowVblue, grey, greyNorm float32) {
	rA, gA, bA := LuminanceAdapt(l, m, s, vw)
	redVgreen = (11*rA + -12*gA + bA) / 11
	yellowVblue = (rA + gA - 2*bA) / 9
	grey = (40*rA + 20*gA + bA) / 20
	greyNorm = (20*rA + 20*gA + 21*bA) / 20
	return
}

// LuminanceAdapt performs chromatic adaptation of LMS cone responses
// under the given viewing conditions.
func LuminanceAdapt(l, m, s float32, vw *View) (lA, mA, sA float32) {
	lA = LuminanceAdaptComp(l, vw.RGBD[0], vw.FL)
	mA = LuminanceAdaptComp(m, vw.RGBD[1], vw.FL)
	sA = LuminanceAdaptComp(s, vw.RGBD[2], vw.FL)
	return
}

// LuminanceAdaptComp performs chromatic adaptation of a single cone
// response component, with the given discounting factor and
// luminance-level adaptation factor.
func LuminanceAdaptComp(v, rgbd, fl float32) float32 {
	vd := v * rgbd
	af := math32.Pow(fl*math32.Abs(vd)/100, 0.42)
	return sign(vd) * 400 * af / (af + 27.13)
}

// InverseChromaticAdapt inverts the chromatic adaptation nonlinearity,
// returning the pre-adaptation component magnitude.
func InverseChromaticAdapt(adapted float32) float32 {
	adaptedAbs := math32.Abs(adapted)
	base := math32.Max(0, 27.13*adaptedAbs/(400-adaptedAbs))
	return sign(adapted) * math32.Pow(base, 1.0/0.42)
}

// SanitizeDegrees returns the given angle in degrees wrapped into
// [0, 360).
func SanitizeDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SanitizeRadians returns the given angle in radians wrapped into
// [0, 2π).
func SanitizeRadians(angle float32) float32 {
	return math32.Mod(angle+math32.Pi*8, math32.Pi*2)
}

// InCyclicOrder reports whether b is between a and c when traversing
// the circle from a in the increasing direction. Angles are radians.
func InCyclicOrder(a, b, c float32) bool {
	deltaAB := SanitizeRadians(b - a)
	deltaAC := SanitizeRadians(c - a)
	return deltaAB < deltaAC
}

func inverseAdaptBase(adapted float32) float32 {
	return math32.Max(0, (27.13*math32.Abs(adapted))/(400-math32.Abs(adapted)))
}

func sign(v float32) float32 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
