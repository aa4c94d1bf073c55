// Package compare judges whether two renders of the same design are
// perceptually equivalent. Pixels are compared in LAB space with the
// CIEDE2000 metric, so anti-aliasing and codec noise below the visible
// threshold do not fail a comparison the way raw channel math would.
package compare

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/fogleman/gg"

	"designlens/pkg/colormath"
	"designlens/pkg/images"
)

// Options configures an image comparison.
type Options struct {
	// MaxDeltaE is the largest per-pixel CIEDE2000 distance still counted
	// as a match. 1.0 is the imperceptible band.
	MaxDeltaE float64

	// FuzzyRadius, when positive, lets a pixel match any pixel of the other
	// image within this radius. Absorbs 1-2px positional shifts in text.
	FuzzyRadius int

	// MaxDifferentPercent, when positive, passes the comparison as long as
	// the share of differing pixels stays at or below this percentage.
	MaxDifferentPercent float64

	// DiffPath, when set, writes a diff image on mismatch. Matching pixels
	// render in grayscale, differing pixels in red.
	DiffPath string
}

// DefaultOptions returns the comparison defaults.
func DefaultOptions() Options {
	return Options{MaxDeltaE: 1.0}
}

func (o Options) normalized() Options {
	if o.MaxDeltaE <= 0 {
		o.MaxDeltaE = 1.0
	}
	return o
}

// Result reports the outcome of a comparison.
type Result struct {
	Match           bool    `json:"match"`
	DifferentPixels int     `json:"differentPixels"`
	TotalPixels     int     `json:"totalPixels"`
	MaxDeltaE       float64 `json:"maxDeltaE"`
}

// Images compares two images pixel by pixel. Dimension mismatch is an
// error, not a soft failure, because the caller almost certainly captured
// the wrong viewport.
func Images(actual, expected image.Image, opts Options) (*Result, error) {
	opts = opts.normalized()

	a := images.ToNRGBA(actual)
	e := images.ToNRGBA(expected)
	if a.Bounds().Dx() != e.Bounds().Dx() || a.Bounds().Dy() != e.Bounds().Dy() {
		return nil, fmt.Errorf("image dimensions differ: actual=%dx%d, expected=%dx%d",
			a.Bounds().Dx(), a.Bounds().Dy(), e.Bounds().Dx(), e.Bounds().Dy())
	}

	w, h := a.Bounds().Dx(), a.Bounds().Dy()
	result := &Result{Match: true, TotalPixels: w * h}

	var diff *image.NRGBA
	if opts.DiffPath != "" {
		diff = image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := pixelDeltaE(a, e, x, y)
			if d > result.MaxDeltaE {
				result.MaxDeltaE = d
			}

			matched := d <= opts.MaxDeltaE
			if !matched && opts.FuzzyRadius > 0 {
				matched = fuzzyMatch(a, e, x, y, opts.FuzzyRadius, opts.MaxDeltaE)
			}

			if !matched {
				result.Match = false
				result.DifferentPixels++
				if diff != nil {
					diff.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
				}
			} else if diff != nil {
				gray := grayOf(a, x, y)
				diff.SetNRGBA(x, y, color.NRGBA{gray, gray, gray, 255})
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	if diff != nil && !result.Match {
		if err := gg.SavePNG(opts.DiffPath, diff); err != nil {
			return result, fmt.Errorf("save diff image: %w", err)
		}
	}
	return result, nil
}

// Files compares two image files on disk.
func Files(actualPath, expectedPath string, opts Options) (*Result, error) {
	actual, err := loadFile(actualPath)
	if err != nil {
		return nil, err
	}
	expected, err := loadFile(expectedPath)
	if err != nil {
		return nil, err
	}
	return Images(actual, expected, opts)
}

func loadFile(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, err := images.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// pixelDeltaE measures the perceptual distance between the pixels at
// (x, y). A fully transparent pixel only matches another fully transparent
// pixel; alpha is otherwise ignored because captures are opaque.
func pixelDeltaE(a, e *image.NRGBA, x, y int) float64 {
	ai := a.PixOffset(x, y)
	ei := e.PixOffset(x, y)

	aTransparent := a.Pix[ai+3] == 0
	eTransparent := e.Pix[ei+3] == 0
	if aTransparent || eTransparent {
		if aTransparent == eTransparent {
			return 0
		}
		return 100
	}

	la := colormath.RGBToLab(colormath.RGB{R: a.Pix[ai], G: a.Pix[ai+1], B: a.Pix[ai+2]})
	le := colormath.RGBToLab(colormath.RGB{R: e.Pix[ei], G: e.Pix[ei+1], B: e.Pix[ei+2]})
	return colormath.DeltaE2000(la, le)
}

// fuzzyMatch reports whether the actual pixel at (x, y) perceptually
// matches any expected pixel within radius.
func fuzzyMatch(a, e *image.NRGBA, x, y, radius int, maxDeltaE float64) bool {
	w, h := a.Bounds().Dx(), a.Bounds().Dy()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			ai := a.PixOffset(x, y)
			ei := e.PixOffset(nx, ny)
			la := colormath.RGBToLab(colormath.RGB{R: a.Pix[ai], G: a.Pix[ai+1], B: a.Pix[ai+2]})
			le := colormath.RGBToLab(colormath.RGB{R: e.Pix[ei], G: e.Pix[ei+1], B: e.Pix[ei+2]})
			if colormath.DeltaE2000(la, le) <= maxDeltaE {
				return true
			}
		}
	}
	return false
}

func grayOf(img *image.NRGBA, x, y int) uint8 {
	i := img.PixOffset(x, y)
	// Rec. 601 luma, good enough for a diff backdrop.
	return uint8((299*int(img.Pix[i]) + 587*int(img.Pix[i+1]) + 114*int(img.Pix[i+2])) / 1000)
}
