package extract

import (
	"designlens/pkg/capture"
	"designlens/pkg/css"
	"designlens/pkg/geom"
)

// ExtractStructuralColors reads background colors straight from captured
// element styles with exact bounds. Fully transparent and unparseable
// backgrounds are skipped. When several elements share a hex, the one with
// the largest area wins: section and container backgrounds matter more than
// small decorative accents repeating the same color.
func ExtractStructuralColors(elements []capture.Element) []LocatedColor {
	docArea := documentArea(elements)

	type entry struct {
		color   LocatedColor
		area    float64
		ordinal int
	}
	byHex := make(map[string]*entry)
	order := make([]string, 0, len(elements))

	for _, el := range elements {
		parsed, ok := css.ParseColor(el.Styles.BackgroundColor)
		if !ok || parsed.Transparent() {
			continue
		}

		hex := parsed.Hex()
		area := el.Bounds.Area()

		existing, seen := byHex[hex]
		if seen {
			if area <= existing.area {
				continue
			}
		} else {
			order = append(order, hex)
		}

		percentage := 0.0
		if docArea > 0 {
			percentage = area / docArea * 100
		}
		byHex[hex] = &entry{
			color: LocatedColor{
				Hex:        hex,
				RGB:        parsed.RGB(),
				Percentage: percentage,
				Bounds:     el.Bounds,
				Centroid:   el.Bounds.Center(),
			},
			area: area,
		}
	}

	colors := make([]LocatedColor, 0, len(order))
	for _, hex := range order {
		colors = append(colors, byHex[hex].color)
	}
	return colors
}

// documentArea is the area of the bounding box covering every captured
// element, used as the coverage denominator for structural extractions
// (pixel data may be absent, so image dimensions are not available).
func documentArea(elements []capture.Element) float64 {
	var maxX, maxY float64
	for _, el := range elements {
		if right := el.Bounds.X + el.Bounds.Width; right > maxX {
			maxX = right
		}
		if bottom := el.Bounds.Y + el.Bounds.Height; bottom > maxY {
			maxY = bottom
		}
	}
	return geom.Bounds{Width: maxX, Height: maxY}.Area()
}
