// Package histogram extracts the unique colors of a raster asset ranked by
// how much of the sampled area they cover.
package histogram

import (
	"image"
	"sort"

	"designlens/pkg/colormath"
)

// AlphaThreshold is the minimum alpha for a pixel to count as content.
// Anything below is treated as transparent background noise.
const AlphaThreshold = 128

// Options controls sampling density and output size.
type Options struct {
	// SampleRate visits every Nth pixel on both axes. A sparse grid trades a
	// little accuracy for a large speed win on big captures. Default 4.
	SampleRate int

	// MaxColors truncates the ranked output. Default 64.
	MaxColors int
}

// DefaultOptions returns the extraction defaults.
func DefaultOptions() Options {
	return Options{SampleRate: 4, MaxColors: 64}
}

func (o Options) normalized() Options {
	if o.SampleRate <= 0 {
		o.SampleRate = 4
	}
	if o.MaxColors <= 0 {
		o.MaxColors = 64
	}
	return o
}

// ColorSample is one exact quantized color and its share of the sampled
// pixels. Percentages across one extraction run need not sum to 100: the
// denominator excludes alpha-transparent pixels and the list is truncated
// to MaxColors.
type ColorSample struct {
	Hex        string        `json:"hex"`
	RGB        colormath.RGB `json:"rgb"`
	Percentage float64       `json:"percentage"`
	Count      int           `json:"count"`
}

// ExtractUniqueColors samples img on a SampleRate grid, skips transparent
// pixels, and returns the distinct colors sorted descending by coverage.
// A fully transparent image yields an empty list.
func ExtractUniqueColors(img *image.NRGBA, opts Options) []ColorSample {
	opts = opts.normalized()

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	counts := make(map[uint32]int)
	sampled := 0

	for y := 0; y < height; y += opts.SampleRate {
		row := y * img.Stride
		for x := 0; x < width; x += opts.SampleRate {
			offset := row + x*4
			a := img.Pix[offset+3]
			if a < AlphaThreshold {
				continue
			}
			sampled++

			key := uint32(img.Pix[offset])<<16 |
				uint32(img.Pix[offset+1])<<8 |
				uint32(img.Pix[offset+2])
			counts[key]++
		}
	}

	if sampled == 0 {
		return []ColorSample{}
	}

	samples := make([]ColorSample, 0, len(counts))
	for key, count := range counts {
		rgb := colormath.RGB{
			R: uint8(key >> 16),
			G: uint8(key >> 8),
			B: uint8(key),
		}
		samples = append(samples, ColorSample{
			Hex:        colormath.HexString(rgb),
			RGB:        rgb,
			Percentage: float64(count) / float64(sampled) * 100,
			Count:      count,
		})
	}

	// Hex tie-break keeps the ranking deterministic across map iteration.
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Count != samples[j].Count {
			return samples[i].Count > samples[j].Count
		}
		return samples[i].Hex < samples[j].Hex
	})

	if len(samples) > opts.MaxColors {
		samples = samples[:opts.MaxColors]
	}
	return samples
}
