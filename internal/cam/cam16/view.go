// Package cam16 implements the CAM16 colour appearance model, which
// predicts how colours are actually perceived under given viewing
// conditions. It is the foundation of the HCT colour space.
package cam16

import (
	"github.com/chewxy/math32"

	"github.com/jmylchreest/materialise/internal/cam/cie"
)

// View represents viewing conditions under which a colour is being
// perceived, which greatly affects the subjective perception. Defaults
// represent the standard conditions under which the CAM16 computations
// operate.
type View struct {
	// WhitePoint is the white point illumination, typically [cie.WhiteD65].
	WhitePoint [3]float32

	// Luminance is the ambient light strength in lux. Default 200.
	Luminance float32

	// BgLuminance is the average luminance of 10 degrees around the
	// colour in question. Default 50.
	BgLuminance float32

	// Surround is the brightness of the entire environment, 0-2. Default 2.
	Surround float32

	// Adapted is whether the viewer's eyes have adapted to the lighting.
	Adapted bool

	// AdaptingLuminance is computed from Luminance.
	AdaptingLuminance float32

	// BgYToWhiteY is the ratio of background to white relative luminance.
	BgYToWhiteY float32

	// AW is the achromatic response to the white point.
	AW float32

	// NBB and NCB are luminance level induction factors.
	NBB, NCB float32

	// C is the exponential nonlinearity.
	C float32

	// NC is the chromatic induction factor.
	NC float32

	// FL is the luminance-level adaptation factor.
	FL float32

	// FLRoot is FL to the 1/4 power.
	FLRoot float32

	// Z is the base exponential nonlinearity.
	Z float32

	// RGBD holds the cone responses to the white point, adjusted for
	// discounting.
	RGBD [3]float32
}

// NewView returns a new [View] with all derived factors computed from
// the given major parameters.
func NewView(whitePoint [3]float32, lum, bgLum, surround float32, adapted bool) *View {
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLuminance: bgLum, Surround: surround, Adapted: adapted}
	vw.Update()
	return vw
}

// stdView holds the standard viewing conditions, computed once at
// package initialisation.
var stdView = NewView(cie.WhiteD65, 200, 50, 2, false)

// StdView returns the standard viewing conditions model.
// The returned value must not be modified.
func StdView() *View {
	return stdView
}

// Update recomputes all derived factors from the main parameters.
func (vw *View) Update() {
	vw.AdaptingLuminance = (vw.Luminance / math32.Pi) * (cie.LToY(50) / 100)
	// A background of pure black is non-physical and leads to infinities
	// that represent the idea that any colour viewed in pure black can't
	// be seen.
	vw.BgLuminance = math32.Max(0.1, vw.BgLuminance)

	// Transform test illuminant white in XYZ to cone responses.
	rW, gW, bW := XYZToLMS(vw.WhitePoint[0], vw.WhitePoint[1], vw.WhitePoint[2])

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0).
	vw.Surround = clamp(vw.Surround, 0, 2)
	f := 0.8 + (vw.Surround / 10)
	if f >= 0.9 {
		vw.C = lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = lerp(0.525, 0.59, (f-0.8)*10)
	}

	// Degree of adaptation to the illuminant.
	d := float32(1)
	if !vw.Adapted {
		d = f * (1 - ((1 / 3.6) * math32.Exp((-vw.AdaptingLuminance-42)/92)))
	}
	d = clamp(d, 0, 1)

	vw.NC = f

	// Cone responses to the white point, adjusted for discounting.
	// 100 is used instead of the white point's relative luminance because
	// later parts of the conversion account for appearance scaling
	// relative to the white point.
	vw.RGBD[0] = d*(100/rW) + 1 - d
	vw.RGBD[1] = d*(100/gW) + 1 - d
	vw.RGBD[2] = d*(100/bW) + 1 - d

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4

	// Luminance-level adaptation factor, per the HuntLiLuo03 equations.
	vw.FL = (k4 * vw.AdaptingLuminance) +
		(0.1 * k4F * k4F * math32.Pow(5*vw.AdaptingLuminance, 1.0/3.0))
	vw.FLRoot = math32.Pow(vw.FL, 0.25)

	// Ratio of background relative luminance to white relative luminance.
	n := cie.LToY(vw.BgLuminance) / vw.WhitePoint[1]
	vw.BgYToWhiteY = n

	vw.Z = 1.48 + math32.Sqrt(n)

	vw.NBB = 0.725 / math32.Pow(n, 0.2)
	vw.NCB = vw.NBB

	// Discounted cone responses to the white point, adjusted for
	// post-saturation adaptation perceptual nonlinearities.
	rA, gA, bA := LuminanceAdapt(rW, gW, bW, vw)
	vw.AW = ((40*rA + 20*gA + bA) / 20) * vw.NBB
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

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
