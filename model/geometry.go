package model

// Point represents a 2D point on a page.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle identified by its edges. Coordinates
// follow the document convention used by the upstream text provider: the
// origin is the top-left corner of the page and Y grows downward, so
// Y0 <= Y1 and X0 <= X1 for a well-formed rectangle.
//
// A drawn line segment is also represented as a Rect: a horizontal rule is
// wider than tall, a vertical rule is taller than wide.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from its edges.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point {
	return Point{X: r.X1, Y: r.Y1}
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// IsHorizontal reports whether the rectangle represents a horizontal rule,
// i.e. it is wider than it is tall.
func (r Rect) IsHorizontal() bool {
	return r.Width() > r.Height()
}

// IsVertical reports whether the rectangle represents a vertical rule.
func (r Rect) IsVertical() bool {
	return r.Width() < r.Height()
}

// ContainsPoint checks whether a point lies inside the rectangle
// (boundaries included).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 &&
		p.Y >= r.Y0 && p.Y <= r.Y1
}

// Contains checks whether another rectangle lies fully inside this one.
func (r Rect) Contains(other Rect) bool {
	return other.X0 >= r.X0 && other.X1 <= r.X1 &&
		other.Y0 >= r.Y0 && other.Y1 <= r.Y1
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(other Rect) Rect {
	out := r
	if other.X0 < out.X0 {
		out.X0 = other.X0
	}
	if other.Y0 < out.Y0 {
		out.Y0 = other.Y0
	}
	if other.X1 > out.X1 {
		out.X1 = other.X1
	}
	if other.Y1 > out.Y1 {
		out.Y1 = other.Y1
	}
	return out
}

// IsEmpty returns true if the rectangle has zero or negative extent.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}
