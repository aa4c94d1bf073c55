package colormath

import "math"

// DeltaE2000 computes the CIEDE2000 color difference between two LAB colors.
// The formula includes the G-factor chroma weighting, the piecewise hue
// difference (wraparound and zero-chroma cases), the T weighting function,
// the SL/SC/SH scale factors, and the RT rotation term that couples chroma
// and hue differences in the blue region around 275 degrees.
//
// Identical colors produce exactly 0; the result is never negative and the
// function is symmetric in its arguments.
func DeltaE2000(lab1, lab2 LAB) float64 {
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(pow7(cBar)/(pow7(cBar)+pow7(25))))

	a1p := lab1.A * (1 + g)
	a2p := lab2.A * (1 + g)

	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)

	h1p := hueAngle(lab1.B, a1p)
	h2p := hueAngle(lab2.B, a2p)

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	// Hue difference is undefined when either chroma is zero.
	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2)

	lBarP := (lab1.L + lab2.L) / 2
	cBarP := (c1p + c2p) / 2

	var hBarP float64
	switch {
	case c1p*c2p == 0:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2
	default:
		hBarP = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hBarP-30)) +
		0.24*math.Cos(radians(2*hBarP)) +
		0.32*math.Cos(radians(3*hBarP+6)) -
		0.20*math.Cos(radians(4*hBarP-63))

	dTheta := 30 * math.Exp(-math.Pow((hBarP-275)/25, 2))
	rc := 2 * math.Sqrt(pow7(cBarP)/(pow7(cBarP)+pow7(25)))
	rt := -math.Sin(radians(2*dTheta)) * rc

	lDev := lBarP - 50
	sl := 1 + 0.015*lDev*lDev/math.Sqrt(20+lDev*lDev)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	lTerm := dLp / sl
	cTerm := dCp / sc
	hTerm := dHp / sh

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

// DeltaE2000Hex is DeltaE2000 over two hex color strings. Malformed input
// parses as black, so callers needing validation must pre-validate.
func DeltaE2000Hex(hex1, hex2 string) float64 {
	return DeltaE2000(RGBToLab(ParseHex(hex1)), RGBToLab(ParseHex(hex2)))
}

// hueAngle returns atan2(b, a) in degrees normalized to [0,360).
func hueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func pow7(v float64) float64 {
	p := v * v * v
	return p * p * v
}
