// Package capture models the asset handed to the extraction engine by the
// capture layer: raw image bytes, a list of inspected elements with computed
// styles, or both, tagged with how the asset was obtained.
package capture

import "designlens/pkg/geom"

// Provenance says how an asset was captured and therefore which extraction
// strategy applies.
type Provenance string

const (
	// ProvenanceStructural marks assets captured from a live, inspectable
	// structure. Colors and fonts come straight from element metadata.
	ProvenanceStructural Provenance = "structural"

	// ProvenanceImage marks flattened captures (screenshots, design-file
	// exports). Colors must be recovered from pixels.
	ProvenanceImage Provenance = "image"
)

// Styles is the subset of computed style the engine reads. Fields may be
// empty on partially populated captures; defaults are documented in pkg/css
// (weight "400", size "16px", color black, family sans-serif).
type Styles struct {
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	FontWeight      string `json:"fontWeight,omitempty"`
}

// Element is one captured node with its on-asset geometry.
type Element struct {
	Selector    string      `json:"selector"`
	Bounds      geom.Bounds `json:"bounds"`
	Styles      Styles      `json:"styles"`
	TextContent string      `json:"textContent,omitempty"`
}

// Asset is a captured visual artifact. ImageData and Elements are both
// optional; an asset carrying neither degrades to an empty extraction.
type Asset struct {
	Provenance Provenance `json:"provenance"`
	ImageData  []byte     `json:"imageData,omitempty"`
	Elements   []Element  `json:"elements,omitempty"`
}

// Structural reports whether the asset supports metadata-based color
// extraction: structural provenance with at least one captured element.
func (a Asset) Structural() bool {
	return a.Provenance == ProvenanceStructural && len(a.Elements) > 0
}
