package extract

import (
	"strings"

	"designlens/pkg/capture"
	"designlens/pkg/css"
)

// textPreviewLimit caps how much element text a Located Font carries.
const textPreviewLimit = 50

// ExtractFonts emits one Located Font per element with non-empty trimmed
// text content, with no deduplication across elements. Missing style fields
// take the documented defaults; an unparseable text color falls back to
// black rather than dropping the entry.
func ExtractFonts(elements []capture.Element) []LocatedFont {
	fonts := make([]LocatedFont, 0, len(elements))
	for _, el := range elements {
		text := strings.TrimSpace(el.TextContent)
		if text == "" {
			continue
		}

		colorHex := css.DefaultColorHex
		if parsed, ok := css.ParseColor(el.Styles.Color); ok {
			colorHex = parsed.Hex()
		}

		fonts = append(fonts, LocatedFont{
			FontFamily:  css.PrimaryFontFamily(el.Styles.FontFamily),
			FontSize:    css.NormalizeFontSize(el.Styles.FontSize),
			FontWeight:  css.NormalizeFontWeight(el.Styles.FontWeight),
			Color:       colorHex,
			Selector:    el.Selector,
			TextPreview: truncateText(text, textPreviewLimit),
			Bounds:      el.Bounds,
			Centroid:    el.Bounds.Center(),
		})
	}
	return fonts
}

func truncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
