package colormath

import "fmt"

// ParseHex parses a hex color string. Both 3- and 6-digit forms are accepted,
// with or without a leading '#'. Malformed input returns black rather than an
// error; extraction favors degradation over failure.
func ParseHex(s string) RGB {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	switch len(s) {
	case 3:
		r, okR := hexNibble(s[0])
		g, okG := hexNibble(s[1])
		b, okB := hexNibble(s[2])
		if !okR || !okG || !okB {
			return RGB{}
		}
		return RGB{R: r*16 + r, G: g*16 + g, B: b*16 + b}
	case 6:
		r, okR := hexByte(s[0], s[1])
		g, okG := hexByte(s[2], s[3])
		b, okB := hexByte(s[4], s[5])
		if !okR || !okG || !okB {
			return RGB{}
		}
		return RGB{R: r, G: g, B: b}
	}
	return RGB{}
}

// HexString formats a color as a lowercase "#rrggbb" string.
func HexString(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, okH := hexNibble(hi)
	l, okL := hexNibble(lo)
	return h*16 + l, okH && okL
}
