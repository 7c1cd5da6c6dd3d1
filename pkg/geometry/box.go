package geometry

import "math"

// Box represents an axis-aligned bounding box.
// A box constructed by NewBox is normalized: Min is the bottom-left
// corner and Max the top-right corner regardless of argument order.
type Box struct {
	Min Point
	Max Point
}

// NewBox creates a normalized box spanning two corner points
func NewBox(p1, p2 Point) Box {
	return Box{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// NewBoxAt creates a zero-area box at a single point
func NewBoxAt(p Point) Box {
	return Box{Min: p, Max: p}
}

// EmptyBox returns the identity element for Union
func EmptyBox() Box {
	return Box{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// IsEmpty reports whether the box contains no points
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width returns the horizontal extent of the box
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// BottomLeft returns the bottom-left corner
func (b Box) BottomLeft() Point {
	return b.Min
}

// Center returns the center point of the box
func (b Box) Center() Point {
	return Point{X: (b.Min.X + b.Max.X) / 2.0, Y: (b.Min.Y + b.Max.Y) / 2.0}
}

// Union returns the smallest box enclosing both boxes
func (b Box) Union(other Box) Box {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return Box{
		Min: Point{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y)},
	}
}

// Inside reports whether b lies fully inside other (boundary contact counts)
func (b Box) Inside(other Box) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.Min.X >= other.Min.X && b.Max.X <= other.Max.X &&
		b.Min.Y >= other.Min.Y && b.Max.Y <= other.Max.Y
}

// Touches reports whether the boxes share at least one point.
// Unlike an overlap test this includes pure edge or corner contact,
// which is what makes zero-area search boxes usable for point hits.
func (b Box) Touches(other Box) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y
}

// Contains reports whether the point lies inside or on the boundary
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Moved returns the box translated by a vector
func (b Box) Moved(v Vector) Box {
	if b.IsEmpty() {
		return b
	}
	return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}
