package cam16

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/materialise/internal/cam/cie"
)

func expect(t *testing.T, ref, val float32) {
	t.Helper()
	if math32.Abs(ref-val) > 0.001 {
		t.Errorf("expected value: %g != %g", ref, val)
	}
}

func TestView(t *testing.T) {
	vw := StdView()
	expect(t, 11.725676537, vw.AdaptingLuminance)
	expect(t, 50.000000000, vw.BgLuminance)
	expect(t, 2.000000000, vw.Surround)
	expect(t, 0.184186503, vw.BgYToWhiteY)
	expect(t, 29.981000900, vw.AW)
	expect(t, 1.016919255, vw.NBB)
	expect(t, 1.016919255, vw.NCB)
	expect(t, 0.689999998, vw.C)
	expect(t, 1.000000000, vw.NC)
	expect(t, 0.388481468, vw.FL)
	expect(t, 0.789482653, vw.FLRoot)
	expect(t, 1.909169555, vw.Z)

	expect(t, 1.021177769, vw.RGBD[0])
	expect(t, 0.986307740, vw.RGBD[1])
	expect(t, 0.933960497, vw.RGBD[2])

	nvw := *vw
	nvw.Surround = 0.5
	nvw.Update()
	expect(t, 0.55749995, nvw.C)
}

func TestCAM(t *testing.T) {
	camw := FromSRGB(1, 1, 1)
	expect(t, 209.492, camw.Hue)
	expect(t, 2.869, camw.Chroma)
	expect(t, 100, camw.Lightness)
	expect(t, 2.265, camw.Colorfulness)
	expect(t, 12.068, camw.Saturation)
	expect(t, 155.521, camw.Brightness)

	camr := FromSRGB(1, 0, 0)
	expect(t, 27.408, camr.Hue)
	expect(t, 113.354, camr.Chroma)
	expect(t, 46.445, camr.Lightness)

	camg := FromSRGB(0, 1, 0)
	expect(t, 142.139, camg.Hue)
	expect(t, 108.406, camg.Chroma)
	expect(t, 79.331, camg.Lightness)

	camb := FromSRGB(0, 0, 1)
	expect(t, 282.788, camb.Hue)
	expect(t, 87.227, camb.Chroma)
	expect(t, 25.465, camb.Lightness)

	assert.Equal(t, FromJCHView(60, 50, 40, StdView()), FromJCH(60, 50, 40))
}

func TestXYZRoundTrip(t *testing.T) {
	tests := [][3]float32{{0.5, 0.1, 0.6}, {0.3, 0.5, 0.1}, {0.4, 0.2, 0.8}, {0.777, 0.424, 0.521}}
	for _, tt := range tests {
		x, y, z := cie.SRGBToXYZ100(tt[0], tt[1], tt[2])
		cam := FromXYZ(x, y, z)
		xc, yc, zc := cam.XYZ()
		// 100-base coordinates, so allow proportionally more slack
		// than the 0-1 scale tests.
		if math32.Abs(x-xc) > 0.05 || math32.Abs(y-yc) > 0.05 || math32.Abs(z-zc) > 0.05 {
			t.Errorf("round trip (%g, %g, %g) != (%g, %g, %g)", x, y, z, xc, yc, zc)
		}
	}
}

func TestLMS(t *testing.T) {
	x, y, z := LMSToXYZ(0.25, 0.68, 0.47)
	expect(t, -0.15201962, x)
	expect(t, 0.5152482, y)
	expect(t, 0.4663193, z)

	expect(t, 28.158047, InverseChromaticAdapt(52.1))
}

func TestSanitize(t *testing.T) {
	expect(t, 80, SanitizeDegrees(800))
	expect(t, 280, SanitizeDegrees(-80))
	expect(t, math32.Pi, SanitizeRadians(5*math32.Pi))
}

func TestInCyclicOrder(t *testing.T) {
	assert.True(t, InCyclicOrder(0, 1, 2))
	assert.False(t, InCyclicOrder(0, 2, 1))
}
