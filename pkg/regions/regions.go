// Package regions locates where a given color appears on a raster asset
// using connected-component labeling over a color-tolerance mask.
package regions

import (
	"image"
	"math"
	"sort"

	"designlens/pkg/colormath"
	"designlens/pkg/geom"
	"designlens/pkg/images"
)

// DefaultMaxDimension bounds flood-fill cost for LocateColorsOptimized.
const DefaultMaxDimension = 500

// Options controls mask tolerance and the minimum reportable region size.
type Options struct {
	// Tolerance is the maximum Euclidean RGB distance for a pixel to match
	// the target color. This is deliberately not perceptual distance: the
	// mask is built per-pixel and CIEDE2000 is far too expensive there.
	// Default 10.
	Tolerance float64

	// MinRegionPercent discards components covering less than this share of
	// the image, in percent. Default 0.1.
	MinRegionPercent float64
}

// DefaultOptions returns the detection defaults.
func DefaultOptions() Options {
	return Options{Tolerance: 10, MinRegionPercent: 0.1}
}

func (o Options) normalized() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = 10
	}
	if o.MinRegionPercent <= 0 {
		o.MinRegionPercent = 0.1
	}
	return o
}

// Region is one 4-connected component of pixels matching a target color.
// Bounds is the component's axis-aligned bounding box; Centroid is the mean
// position of its member pixels, which need not be the bounds center.
type Region struct {
	Bounds     geom.Bounds `json:"bounds"`
	Centroid   geom.Point  `json:"centroid"`
	PixelCount int         `json:"pixelCount"`
	Percentage float64     `json:"percentage"`
}

// DetectColorRegions finds every 4-connected region of img whose pixels are
// within opts.Tolerance of target, sorted descending by pixel count. Regions
// smaller than opts.MinRegionPercent of the image are dropped.
func DetectColorRegions(img *image.NRGBA, target colormath.RGB, opts Options) []Region {
	opts = opts.normalized()

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	total := width * height
	if total == 0 {
		return nil
	}

	mask := buildMask(img, target, opts.Tolerance)

	visited := make([]bool, total)
	// Explicit stack instead of recursion: a full-bleed background color is
	// one component spanning hundreds of thousands of pixels, far past any
	// safe call-stack depth.
	stack := make([]int, 0, 1024)

	var found []Region
	for start := 0; start < total; start++ {
		if !mask[start] || visited[start] {
			continue
		}

		minX, minY := width, height
		maxX, maxY := 0, 0
		sumX, sumY := 0, 0
		count := 0

		visited[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			x := idx % width
			y := idx / width
			count++
			sumX += x
			sumY += y
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}

			// Up/down/left/right only; diagonal neighbors are separate
			// components.
			if x > 0 {
				push(&stack, mask, visited, idx-1)
			}
			if x < width-1 {
				push(&stack, mask, visited, idx+1)
			}
			if y > 0 {
				push(&stack, mask, visited, idx-width)
			}
			if y < height-1 {
				push(&stack, mask, visited, idx+width)
			}
		}

		percentage := float64(count) / float64(total) * 100
		if percentage < opts.MinRegionPercent {
			continue
		}

		found = append(found, Region{
			Bounds: geom.Bounds{
				X:      float64(minX),
				Y:      float64(minY),
				Width:  float64(maxX - minX + 1),
				Height: float64(maxY - minY + 1),
			},
			Centroid: geom.Point{
				X: float64(sumX) / float64(count),
				Y: float64(sumY) / float64(count),
			},
			PixelCount: count,
			Percentage: percentage,
		})
	}

	// Stable so that equal-sized regions keep scan order (top-to-bottom,
	// left-to-right).
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].PixelCount > found[j].PixelCount
	})
	return found
}

func push(stack *[]int, mask, visited []bool, idx int) {
	if mask[idx] && !visited[idx] {
		visited[idx] = true
		*stack = append(*stack, idx)
	}
}

func buildMask(img *image.NRGBA, target colormath.RGB, tolerance float64) []bool {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	mask := make([]bool, width*height)

	limit := tolerance * tolerance
	tr := int(target.R)
	tg := int(target.G)
	tb := int(target.B)

	for y := 0; y < height; y++ {
		row := y * img.Stride
		out := y * width
		for x := 0; x < width; x++ {
			offset := row + x*4
			dr := int(img.Pix[offset]) - tr
			dg := int(img.Pix[offset+1]) - tg
			db := int(img.Pix[offset+2]) - tb
			mask[out+x] = float64(dr*dr+dg*dg+db*db) <= limit
		}
	}
	return mask
}

// LocateColors returns the largest surviving region for each target color.
// A color with no region past the size filter falls back to full-image
// bounds with a centered centroid, so every color always gets a location.
func LocateColors(img *image.NRGBA, targets []colormath.RGB, opts Options) []Region {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	located := make([]Region, 0, len(targets))
	for _, target := range targets {
		detected := DetectColorRegions(img, target, opts)
		if len(detected) > 0 {
			located = append(located, detected[0])
			continue
		}
		located = append(located, Region{
			Bounds: geom.Bounds{
				Width:  float64(width),
				Height: float64(height),
			},
			Centroid: geom.Point{
				X: float64(width) / 2,
				Y: float64(height) / 2,
			},
		})
	}
	return located
}

// LocateColorsOptimized downscales img so its longer dimension is at most
// maxDimension before detection, then scales the resulting geometry back to
// original-image space. This bounds flood-fill cost on arbitrarily large
// captures while keeping reported coordinates in the caller's frame.
// maxDimension <= 0 selects DefaultMaxDimension.
func LocateColorsOptimized(img *image.NRGBA, targets []colormath.RGB, opts Options, maxDimension int) []Region {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}

	scaled, scale := images.Downscale(img, maxDimension)
	located := LocateColors(scaled, targets, opts)
	if scale == 1 {
		return located
	}

	inverse := 1 / scale
	for i := range located {
		located[i].Bounds = roundBounds(located[i].Bounds.Scale(inverse))
		located[i].Centroid = located[i].Centroid.Scale(inverse)
	}
	return located
}

func roundBounds(b geom.Bounds) geom.Bounds {
	return geom.Bounds{
		X:      math.Round(b.X),
		Y:      math.Round(b.Y),
		Width:  math.Round(b.Width),
		Height: math.Round(b.Height),
	}
}
