// Package css parses the CSS-valued style strings that capture payloads
// carry: computed colors and typography. It is a value parser only; selector
// matching and cascade resolution happen in the capture layer before styles
// reach this engine.
package css

import (
	"strconv"
	"strings"

	"designlens/pkg/colormath"
)

// Color is a parsed CSS color. A is 0..1; rgb() values parse with A=1.
type Color struct {
	R, G, B uint8
	A       float64
}

// RGB drops the alpha component.
func (c Color) RGB() colormath.RGB {
	return colormath.RGB{R: c.R, G: c.G, B: c.B}
}

// Hex formats the color as lowercase "#rrggbb". Alpha is not represented.
func (c Color) Hex() string {
	return colormath.HexString(c.RGB())
}

// Transparent reports whether the color is fully transparent.
func (c Color) Transparent() bool {
	return c.A == 0
}

var namedColors = map[string]Color{
	"red":         {255, 0, 0, 1},
	"green":       {0, 128, 0, 1},
	"blue":        {0, 0, 255, 1},
	"yellow":      {255, 255, 0, 1},
	"cyan":        {0, 255, 255, 1},
	"magenta":     {255, 0, 255, 1},
	"white":       {255, 255, 255, 1},
	"black":       {0, 0, 0, 1},
	"gray":        {128, 128, 128, 1},
	"orange":      {255, 165, 0, 1},
	"purple":      {128, 0, 128, 1},
	"pink":        {255, 192, 203, 1},
	"brown":       {165, 42, 42, 1},
	"lime":        {0, 255, 0, 1},
	"navy":        {0, 0, 128, 1},
	"teal":        {0, 128, 128, 1},
	"silver":      {192, 192, 192, 1},
	"transparent": {0, 0, 0, 0},
}

// ParseColor parses a CSS color value: rgb()/rgba() functional notation,
// 3- or 6-digit hex, or a named color. Returns ok=false for anything it
// cannot parse; callers decide the fallback (this engine defaults to black
// for text and skips unparseable backgrounds).
func ParseColor(value string) (Color, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return Color{}, false
	}

	if c, ok := namedColors[value]; ok {
		return c, true
	}

	if strings.HasPrefix(value, "#") {
		if len(value) != 4 && len(value) != 7 {
			return Color{}, false
		}
		rgb := colormath.ParseHex(value)
		if rgb == (colormath.RGB{}) && value != "#000" && value != "#000000" {
			return Color{}, false
		}
		return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: 1}, true
	}

	if strings.HasPrefix(value, "rgb(") || strings.HasPrefix(value, "rgba(") {
		return parseRGBFunction(value)
	}

	return Color{}, false
}

// parseRGBFunction parses "rgb(r, g, b)" and "rgba(r, g, b, a)". Component
// counts outside 3 or 4 fail; out-of-range channels clamp like browsers do.
func parseRGBFunction(value string) (Color, bool) {
	open := strings.Index(value, "(")
	close := strings.LastIndex(value, ")")
	if open < 0 || close < open {
		return Color{}, false
	}

	parts := strings.Split(value[open+1:close], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return Color{}, false
		}
		channels[i] = clampChannel(n)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return Color{}, false
		}
		alpha = clamp01(a)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, true
}

func clampChannel(n float64) uint8 {
	if n <= 0 {
		return 0
	}
	if n >= 255 {
		return 255
	}
	return uint8(n + 0.5)
}

func clamp01(n float64) float64 {
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
