// Package extract turns a captured asset into located colors and fonts,
// choosing the extraction strategy by asset provenance.
package extract

import (
	"designlens/pkg/colormath"
	"designlens/pkg/geom"
)

// LocatedColor is a color sample augmented with the position of its largest
// matching region (or exact element bounds for structural captures).
type LocatedColor struct {
	Hex        string        `json:"hex"`
	RGB        colormath.RGB `json:"rgb"`
	Percentage float64       `json:"percentage"`
	Bounds     geom.Bounds   `json:"bounds"`
	Centroid   geom.Point    `json:"centroid"`
}

// LocatedFont is the text styling of one captured element. Entries are not
// merged across elements; every text-bearing element reports its own.
type LocatedFont struct {
	FontFamily  string      `json:"fontFamily"`
	FontSize    string      `json:"fontSize"`
	FontWeight  string      `json:"fontWeight"`
	Color       string      `json:"color"`
	Selector    string      `json:"selector"`
	TextPreview string      `json:"textPreview"`
	Bounds      geom.Bounds `json:"bounds"`
	Centroid    geom.Point  `json:"centroid"`
}

// Result is the unified extraction output for one asset.
type Result struct {
	Colors []LocatedColor `json:"colors"`
	Fonts  []LocatedFont  `json:"fonts"`
}
