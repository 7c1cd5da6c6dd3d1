package tool

import "github.com/quicklayout/movequickly/pkg/geometry"

// MoveOperation produces the effective displacement of an in-progress
// move. EffectiveDelta is pure and idempotent; operations are built
// fresh per pointer drag or typed edit and discarded on commit or
// cancel.
type MoveOperation interface {
	EffectiveDelta() geometry.Vector
}

// PointerMove is a move driven by live pointer tracking. The selection
// anchor itself may be off-grid, so the effective delta carries a
// correction term moving the anchor onto the grid in addition to the
// snapped cursor displacement.
type PointerMove struct {
	OriginalPosition geometry.Point
	SnappedPosition  geometry.Point
	FromCursor       geometry.Point
	ToCursor         geometry.Point
	// SnappedCursorDelta is the cursor displacement after grid
	// snapping and angle constraining.
	SnappedCursorDelta geometry.Vector
}

// EffectiveDelta returns (snapped anchor - original anchor) + snapped
// cursor delta
func (m PointerMove) EffectiveDelta() geometry.Vector {
	return m.SnappedPosition.Sub(m.OriginalPosition).Add(m.SnappedCursorDelta)
}

// TypedMove is a move entered through the numeric panel fields. Typed
// input is exact: neither grid snapping nor angle constraints apply.
type TypedMove struct {
	OriginalPosition geometry.Point

	X  float64
	Y  float64
	DX float64
	DY float64
}

// EffectiveDelta returns (target - original anchor) + (dx, dy)
func (m TypedMove) EffectiveDelta() geometry.Vector {
	target := geometry.NewPoint(m.X, m.Y)
	return target.Sub(m.OriginalPosition).Add(geometry.NewVector(m.DX, m.DY))
}
