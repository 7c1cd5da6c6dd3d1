package geometry

import "math"

// Point represents a 2D point in layout coordinates (microns)
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by a vector
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the vector from other to p
func (p Point) Sub(other Point) Vector {
	return Vector{DX: p.X - other.X, DY: p.Y - other.Y}
}

// Vector represents a 2D displacement
type Vector struct {
	DX, DY float64
}

// NewVector creates a new 2D vector
func NewVector(dx, dy float64) Vector {
	return Vector{DX: dx, DY: dy}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{DX: v.DX + other.DX, DY: v.DY + other.DY}
}

// Sub returns the difference between two vectors
func (v Vector) Sub(other Vector) Vector {
	return Vector{DX: v.DX - other.DX, DY: v.DY - other.DY}
}

// Mul multiplies the vector by a scalar
func (v Vector) Mul(scalar float64) Vector {
	return Vector{DX: v.DX * scalar, DY: v.DY * scalar}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.DX*other.DX + v.DY*other.DY
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Angle returns the angle of the vector in radians, in (-pi, pi]
func (v Vector) Angle() float64 {
	return math.Atan2(v.DY, v.DX)
}

// IsZero reports whether both components are exactly zero
func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}
