package geom

// Bounds is an axis-aligned rectangle. Float64 so the same type serves
// pixel-grid regions and CSS element geometry from capture payloads.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a position on an asset, usually a centroid.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Area returns the rectangle area. Degenerate rectangles have area 0.
func (b Bounds) Area() float64 {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// Center returns the geometric center of the rectangle.
func (b Bounds) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Scale returns the bounds multiplied by factor on both axes.
func (b Bounds) Scale(factor float64) Bounds {
	return Bounds{
		X:      b.X * factor,
		Y:      b.Y * factor,
		Width:  b.Width * factor,
		Height: b.Height * factor,
	}
}

// Scale returns the point multiplied by factor on both axes.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}
