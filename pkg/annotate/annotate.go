// Package annotate renders extraction results onto a copy of the source
// image so humans can see where each color and font was found. The
// extraction engine itself never draws; this is a reporting aid for the
// issue-log and review workflow.
package annotate

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"designlens/pkg/extract"
	"designlens/pkg/geom"
)

// Mark is one labeled region to draw.
type Mark struct {
	Label    string
	Bounds   geom.Bounds
	Centroid geom.Point
}

// MarksFromResult flattens an extraction result into drawable marks. Colors
// are labeled with their hex value, fonts with family and size.
func MarksFromResult(result extract.Result) []Mark {
	marks := make([]Mark, 0, len(result.Colors)+len(result.Fonts))
	for _, c := range result.Colors {
		marks = append(marks, Mark{
			Label:    c.Hex,
			Bounds:   c.Bounds,
			Centroid: c.Centroid,
		})
	}
	for _, f := range result.Fonts {
		marks = append(marks, Mark{
			Label:    fmt.Sprintf("%s %s", f.FontFamily, f.FontSize),
			Bounds:   f.Bounds,
			Centroid: f.Centroid,
		})
	}
	return marks
}

// Render draws the marks over src and returns the annotated image. The
// source image is not modified.
func Render(src image.Image, marks []Mark) image.Image {
	bounds := src.Bounds()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.DrawImage(src, -bounds.Min.X, -bounds.Min.Y)

	for i, mark := range marks {
		r, g, b := markColor(i)

		// Box outline.
		dc.SetRGBA(r, g, b, 0.9)
		dc.SetLineWidth(2)
		dc.DrawRectangle(mark.Bounds.X, mark.Bounds.Y, mark.Bounds.Width, mark.Bounds.Height)
		dc.Stroke()

		// Centroid crosshair.
		const arm = 4
		dc.DrawLine(mark.Centroid.X-arm, mark.Centroid.Y, mark.Centroid.X+arm, mark.Centroid.Y)
		dc.DrawLine(mark.Centroid.X, mark.Centroid.Y-arm, mark.Centroid.X, mark.Centroid.Y+arm)
		dc.Stroke()

		if mark.Label != "" {
			labelX := mark.Bounds.X + 3
			labelY := mark.Bounds.Y + 12
			dc.SetRGBA(0, 0, 0, 0.7)
			w, h := dc.MeasureString(mark.Label)
			dc.DrawRectangle(labelX-2, labelY-h, w+4, h+4)
			dc.Fill()
			dc.SetRGB(1, 1, 1)
			dc.DrawString(mark.Label, labelX, labelY)
		}
	}

	return dc.Image()
}

// Save renders the marks over src and writes the result as a PNG.
func Save(path string, src image.Image, marks []Mark) error {
	if err := gg.SavePNG(path, Render(src, marks)); err != nil {
		return fmt.Errorf("save annotated image: %w", err)
	}
	return nil
}

// markColor cycles through a small palette of saturated outline colors
// chosen to stay visible over most screenshots.
func markColor(i int) (r, g, b float64) {
	palette := [][3]float64{
		{1, 0, 0.4},
		{0, 0.8, 1},
		{1, 0.7, 0},
		{0.4, 1, 0},
		{0.8, 0.3, 1},
	}
	c := palette[i%len(palette)]
	return c[0], c[1], c[2]
}
