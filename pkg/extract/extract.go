package extract

import (
	"designlens/pkg/capture"
	"designlens/pkg/colormath"
	"designlens/pkg/histogram"
	"designlens/pkg/images"
	"designlens/pkg/regions"
)

// DefaultMergeThreshold is the CIEDE2000 distance below which two histogram
// colors count as perceptual duplicates (the "imperceptible" band).
const DefaultMergeThreshold = 1.0

// Extractor runs the full extraction pipeline for one asset. Each call
// allocates its own buffers, so a single Extractor is safe to share across
// goroutines as long as its fields are not mutated concurrently.
type Extractor struct {
	Histogram histogram.Options
	Regions   regions.Options

	// MaxDimension bounds the flood-fill working size; see
	// regions.LocateColorsOptimized.
	MaxDimension int

	// MergeThreshold is the CIEDE2000 distance below which histogram colors
	// are merged into the more dominant one. Zero selects the default.
	MergeThreshold float64
}

// NewExtractor returns an Extractor with the documented defaults.
func NewExtractor() *Extractor {
	return &Extractor{
		Histogram:      histogram.DefaultOptions(),
		Regions:        regions.DefaultOptions(),
		MaxDimension:   regions.DefaultMaxDimension,
		MergeThreshold: DefaultMergeThreshold,
	}
}

// Extract chooses the strategy by provenance and merges the outcome into a
// unified result. Structural assets skip pixel work entirely. Image assets
// run histogram extraction and region location; if element metadata happens
// to be present anyway, fonts still come from it, since metadata fonts are
// exact and cheap regardless of the color path. An asset with no usable
// pixel data and no elements degrades to empty slices, not an error. The
// only propagated failure is a buffer that cannot be decoded at all
// (errors.Is(err, images.ErrDecode)).
func (e *Extractor) Extract(asset capture.Asset) (Result, error) {
	result := Result{
		Colors: []LocatedColor{},
		Fonts:  []LocatedFont{},
	}

	if asset.Structural() {
		result.Colors = ExtractStructuralColors(asset.Elements)
		result.Fonts = ExtractFonts(asset.Elements)
		return result, nil
	}

	if len(asset.Elements) > 0 {
		result.Fonts = ExtractFonts(asset.Elements)
	}

	if len(asset.ImageData) == 0 {
		return result, nil
	}

	img, err := images.Decode(asset.ImageData)
	if err != nil {
		return Result{}, err
	}

	samples := histogram.ExtractUniqueColors(img, e.Histogram)
	samples = e.mergePerceptualDuplicates(samples)

	targets := make([]colormath.RGB, len(samples))
	for i, s := range samples {
		targets[i] = s.RGB
	}
	located := regions.LocateColorsOptimized(img, targets, e.Regions, e.MaxDimension)

	result.Colors = make([]LocatedColor, len(samples))
	for i, s := range samples {
		result.Colors[i] = LocatedColor{
			Hex:        s.Hex,
			RGB:        s.RGB,
			Percentage: s.Percentage,
			Bounds:     located[i].Bounds,
			Centroid:   located[i].Centroid,
		}
	}
	return result, nil
}

// mergePerceptualDuplicates folds colors within MergeThreshold of an
// already-kept color into it. JPEG artifacts and antialiasing fringes
// produce many exact-hex variants of what a human reads as one color; the
// dominant variant absorbs their coverage.
func (e *Extractor) mergePerceptualDuplicates(samples []histogram.ColorSample) []histogram.ColorSample {
	threshold := e.MergeThreshold
	if threshold <= 0 {
		threshold = DefaultMergeThreshold
	}
	if len(samples) <= 1 {
		return samples
	}

	kept := make([]histogram.ColorSample, 0, len(samples))
	labs := make([]colormath.LAB, 0, len(samples))

	for _, candidate := range samples {
		lab := colormath.RGBToLab(candidate.RGB)

		merged := false
		for i := range kept {
			if colormath.DeltaE2000(labs[i], lab) < threshold {
				kept[i].Count += candidate.Count
				kept[i].Percentage += candidate.Percentage
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, candidate)
			labs = append(labs, lab)
		}
	}
	return kept
}
