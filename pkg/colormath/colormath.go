// Package colormath implements device-independent color conversion and the
// CIEDE2000 perceptual color-difference formula.
//
// Distances are interpreted on the usual scale: <=1 imperceptible, <=3
// perceptible on close inspection, <=10 perceptible at a glance, >10
// dissimilar colors. Nothing in this package enforces those thresholds;
// callers decide what "the same color" means for their workflow.
package colormath

import "math"

// RGB is an 8-bit sRGB color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// LAB is a CIELAB color derived from sRGB under the D65 illuminant.
// Used as the intermediate space for perceptual distance.
type LAB struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// D65 reference white.
const (
	refX = 95.047
	refY = 100.0
	refZ = 108.883
)

// RGBToLab converts an sRGB color to CIELAB: gamma linearization with the
// standard 0.04045 breakpoint, the D65 sRGB->XYZ matrix, then XYZ->LAB with
// the 0.008856 cube-root breakpoint.
func RGBToLab(c RGB) LAB {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)

	x := (r*0.4124 + g*0.3576 + b*0.1805) * 100
	y := (r*0.2126 + g*0.7152 + b*0.0722) * 100
	z := (r*0.0193 + g*0.1192 + b*0.9505) * 100

	fx := labForward(x / refX)
	fy := labForward(y / refY)
	fz := labForward(z / refZ)

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToRGB is the inverse of RGBToLab. Out-of-gamut LAB values are clamped
// to [0,255] per channel rather than rejected.
func LabToRGB(c LAB) RGB {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	x := labInverse(fx) * refX
	y := labInverse(fy) * refY
	z := labInverse(fz) * refZ

	x /= 100
	y /= 100
	z /= 100

	r := x*3.2406 + y*-1.5372 + z*-0.4986
	g := x*-0.9689 + y*1.8758 + z*0.0415
	b := x*0.0557 + y*-0.2040 + z*1.0570

	return RGB{
		R: clampChannel(linearToSRGB(r) * 255),
		G: clampChannel(linearToSRGB(g) * 255),
		B: clampChannel(linearToSRGB(b) * 255),
	}
}

func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func linearToSRGB(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return v * 12.92
}

func labForward(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116
}

func labInverse(t float64) float64 {
	if cube := t * t * t; cube > 0.008856 {
		return cube
	}
	return (t - 16.0/116) / 7.787
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
