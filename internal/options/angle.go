package options

import (
	"fmt"
	"math"

	"github.com/quicklayout/movequickly/pkg/geometry"
)

// AngleMode describes how pointer movement is constrained during a move.
// The string values match the host's editor configuration values.
type AngleMode string

const (
	// AngleModeAny allows movement in any direction
	AngleModeAny AngleMode = "any"
	// AngleModeDiagonal constrains movement to multiples of 45 degrees
	AngleModeDiagonal AngleMode = "diagonal"
	// AngleModeManhattan constrains movement to horizontal or vertical
	AngleModeManhattan AngleMode = "ortho"
)

// ParseAngleMode converts a configuration value into an AngleMode
func ParseAngleMode(value string) (AngleMode, error) {
	switch AngleMode(value) {
	case AngleModeAny, AngleModeDiagonal, AngleModeManhattan:
		return AngleMode(value), nil
	}
	return "", fmt.Errorf("unknown angle mode %q", value)
}

// diagonalAngles are the eight canonical directions for diagonal mode
var diagonalAngles = []float64{
	0,
	math.Pi / 4,
	math.Pi / 2,
	3 * math.Pi / 4,
	math.Pi,
	-math.Pi / 4,
	-math.Pi / 2,
	-3 * math.Pi / 4,
}

// ConstrainAngle maps a free cursor destination to a constrained one.
// It is pure: no state is read besides the arguments.
func ConstrainAngle(origin, destination geometry.Point, mode AngleMode) geometry.Point {
	delta := destination.Sub(origin)
	if delta.IsZero() {
		return origin
	}

	switch mode {
	case AngleModeAny:
		return destination

	case AngleModeManhattan:
		// Ties pick horizontal.
		if math.Abs(delta.DX) >= math.Abs(delta.DY) {
			return geometry.NewPoint(destination.X, origin.Y)
		}
		return geometry.NewPoint(origin.X, destination.Y)

	case AngleModeDiagonal:
		angle := delta.Angle()
		best := diagonalAngles[0]
		bestDist := math.Inf(1)
		for _, candidate := range diagonalAngles {
			dist := math.Abs(angularDistance(angle, candidate))
			if dist < bestDist {
				bestDist = dist
				best = candidate
			}
		}
		// Project the displacement onto the chosen direction, dropping
		// the perpendicular component.
		dir := geometry.NewVector(math.Cos(best), math.Sin(best))
		return origin.Add(dir.Mul(delta.Dot(dir)))
	}

	panic(fmt.Sprintf("options: unknown angle mode %q", mode))
}

// angularDistance returns the signed circular distance between two
// angles, in (-pi, pi]
func angularDistance(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
