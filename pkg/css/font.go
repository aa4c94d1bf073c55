package css

import "strings"

// Documented defaults for partially populated capture styles.
const (
	DefaultFontFamily = "sans-serif"
	DefaultFontSize   = "16px"
	DefaultFontWeight = "400"
	DefaultColorHex   = "#000000"
)

// PrimaryFontFamily cleans a font-family value down to the first family
// name: quotes stripped, fallback families after the first comma dropped.
// An empty value yields the sans-serif default.
func PrimaryFontFamily(value string) string {
	value = strings.TrimSpace(value)
	if comma := strings.Index(value, ","); comma >= 0 {
		value = value[:comma]
	}
	value = strings.Trim(value, `"'`)
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultFontFamily
	}
	return value
}

// NormalizeFontWeight maps keyword weights onto their numeric values and
// defaults a missing weight to "400".
func NormalizeFontWeight(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "":
		return DefaultFontWeight
	case "normal":
		return "400"
	case "bold":
		return "700"
	}
	return value
}

// NormalizeFontSize defaults a missing size to "16px".
func NormalizeFontSize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultFontSize
	}
	return value
}
