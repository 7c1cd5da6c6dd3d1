package options

import (
	"math"
	"strconv"

	"github.com/quicklayout/movequickly/pkg/geometry"
)

// Host configuration keys understood by the tool.
const (
	ConfigMoveAngleMode    = "edit-move-angle-mode"
	ConfigConnectAngleMode = "edit-connect-angle-mode"
	ConfigSnapToGrid       = "edit-snap-to-grid"
	ConfigGridMicron       = "edit-grid-micron"
)

// Options reflects the host's live editor settings. Configuration is
// pushed via Configure and takes effect immediately; nothing is cached
// beyond the fields themselves.
type Options struct {
	moveAngleMode    AngleMode
	connectAngleMode AngleMode
	snapToGrid       bool
	gridMicron       float64
}

// New returns options with the host defaults: free movement, snapping
// to a 0.01 micron grid.
func New() *Options {
	return &Options{
		moveAngleMode:    AngleModeAny,
		connectAngleMode: AngleModeAny,
		snapToGrid:       true,
		gridMicron:       0.01,
	}
}

// MoveAngleMode returns the angle mode applied while moving
func (o *Options) MoveAngleMode() AngleMode {
	return o.moveAngleMode
}

// ConnectAngleMode returns the angle mode applied while drawing
// connections. The move tool does not use it, but it is part of the
// same host configuration group and other plugins route through here.
func (o *Options) ConnectAngleMode() AngleMode {
	return o.connectAngleMode
}

// SnapToGrid reports whether grid snapping is enabled
func (o *Options) SnapToGrid() bool {
	return o.snapToGrid
}

// GridMicron returns the grid spacing in microns
func (o *Options) GridMicron() float64 {
	return o.gridMicron
}

// Configure applies a pushed (name, value) configuration pair. It
// returns false for names it does not recognize or values it cannot
// parse, so the host can route them to other collaborators.
func (o *Options) Configure(name, value string) bool {
	switch name {
	case ConfigMoveAngleMode:
		mode, err := ParseAngleMode(value)
		if err != nil {
			return false
		}
		o.moveAngleMode = mode
		return true
	case ConfigConnectAngleMode:
		mode, err := ParseAngleMode(value)
		if err != nil {
			return false
		}
		o.connectAngleMode = mode
		return true
	case ConfigSnapToGrid:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		o.snapToGrid = enabled
		return true
	case ConfigGridMicron:
		grid, err := strconv.ParseFloat(value, 64)
		if err != nil || grid <= 0 {
			return false
		}
		o.gridMicron = grid
		return true
	}
	return false
}

// SnapPoint rounds a point to the nearest grid intersection. With
// snapping disabled the point is returned unchanged.
func (o *Options) SnapPoint(p geometry.Point) geometry.Point {
	if !o.snapToGrid {
		return p
	}
	return geometry.NewPoint(o.snap(p.X), o.snap(p.Y))
}

// ConstrainMoveAngle applies the active move angle mode between two
// cursor positions
func (o *Options) ConstrainMoveAngle(origin, destination geometry.Point) geometry.Point {
	return ConstrainAngle(origin, destination, o.moveAngleMode)
}

func (o *Options) snap(v float64) float64 {
	return math.Round(v/o.gridMicron) * o.gridMicron
}
