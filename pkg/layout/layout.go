// Package layout provides a minimal hierarchical layout database: cells
// holding shapes and placed sub-cell instances, plus a View with layer
// and cell visibility, object selection and undoable transactions. It
// plays the role of the host platform for the move tool; the tool core
// only consumes it through its interfaces.
package layout

import (
	"github.com/quicklayout/movequickly/pkg/geometry"
)

// LayerID identifies a drawing layer
type LayerID int

// LayerInfo describes a layer of the layout
type LayerInfo struct {
	ID      LayerID
	Name    string
	Visible bool
}

// Shape is a primitive geometric object owned by a cell. Coordinates
// are in the owning cell's local frame.
type Shape struct {
	Layer LayerID
	box   geometry.Box
}

// NewShape creates a shape on a layer with the given local bounding box
func NewShape(layer LayerID, box geometry.Box) *Shape {
	return &Shape{Layer: layer, box: box}
}

// Box returns the shape's bounding box in local coordinates
func (s *Shape) Box() geometry.Box {
	return s.box
}

func (s *Shape) translate(v geometry.Vector) {
	s.box = s.box.Moved(v)
}

// Instance is a placement of a cell inside another cell. Placements are
// translation-only.
type Instance struct {
	Target *Cell
	Offset geometry.Vector
}

// NewInstance places target at the given offset
func NewInstance(target *Cell, offset geometry.Vector) *Instance {
	return &Instance{Target: target, Offset: offset}
}

// BBox returns the placed bounding box in the parent cell's frame
func (i *Instance) BBox() geometry.Box {
	return i.Target.BBox().Moved(i.Offset)
}

func (i *Instance) translate(v geometry.Vector) {
	i.Offset = i.Offset.Add(v)
}

// Cell is a named collection of shapes and sub-cell instances
type Cell struct {
	Name      string
	Shapes    []*Shape
	Instances []*Instance
}

// NewCell creates an empty cell
func NewCell(name string) *Cell {
	return &Cell{Name: name}
}

// AddShape adds a shape on a layer and returns it
func (c *Cell) AddShape(layer LayerID, box geometry.Box) *Shape {
	s := NewShape(layer, box)
	c.Shapes = append(c.Shapes, s)
	return s
}

// AddInstance places a sub-cell and returns the instance
func (c *Cell) AddInstance(target *Cell, offset geometry.Vector) *Instance {
	i := NewInstance(target, offset)
	c.Instances = append(c.Instances, i)
	return i
}

// BBox returns the union of all shape and instance boxes, recursively
func (c *Cell) BBox() geometry.Box {
	box := geometry.EmptyBox()
	for _, s := range c.Shapes {
		box = box.Union(s.box)
	}
	for _, i := range c.Instances {
		box = box.Union(i.BBox())
	}
	return box
}

// InstanceHit is one result of a hierarchical instance search. Path is
// the instantiation chain from the searched cell down to the instance's
// parent; an empty path means the instance is a direct child. Trans is
// the accumulated placement offset of Path.
type InstanceHit struct {
	Path     []*Instance
	Instance *Instance
	Trans    geometry.Vector
}

// ShapeHit is one result of a hierarchical shape search, with the same
// path conventions as InstanceHit.
type ShapeHit struct {
	Path  []*Instance
	Shape *Shape
	Trans geometry.Vector
}

// OverlappingInstances walks the hierarchy below the cell and returns
// every instance whose placed bounding box touches the search box and
// whose path length is within [minDepth, maxDepth].
func (c *Cell) OverlappingInstances(search geometry.Box, minDepth, maxDepth int) []InstanceHit {
	var hits []InstanceHit
	c.collectInstances(search, nil, geometry.Vector{}, minDepth, maxDepth, &hits)
	return hits
}

func (c *Cell) collectInstances(search geometry.Box, path []*Instance, trans geometry.Vector, minDepth, maxDepth int, hits *[]InstanceHit) {
	depth := len(path)
	if depth > maxDepth {
		return
	}
	for _, inst := range c.Instances {
		placed := inst.BBox().Moved(trans)
		if !placed.Touches(search) {
			continue
		}
		if depth >= minDepth {
			*hits = append(*hits, InstanceHit{
				Path:     append([]*Instance(nil), path...),
				Instance: inst,
				Trans:    trans,
			})
		}
		inst.Target.collectInstances(search, append(path, inst), trans.Add(inst.Offset), minDepth, maxDepth, hits)
	}
}

// OverlappingShapes walks the hierarchy below the cell and returns
// every shape on the layer whose placed bounding box touches the search
// box and whose path length is within [minDepth, maxDepth].
func (c *Cell) OverlappingShapes(layer LayerID, search geometry.Box, minDepth, maxDepth int) []ShapeHit {
	var hits []ShapeHit
	c.collectShapes(layer, search, nil, geometry.Vector{}, minDepth, maxDepth, &hits)
	return hits
}

func (c *Cell) collectShapes(layer LayerID, search geometry.Box, path []*Instance, trans geometry.Vector, minDepth, maxDepth int, hits *[]ShapeHit) {
	depth := len(path)
	if depth > maxDepth {
		return
	}
	if depth >= minDepth {
		for _, s := range c.Shapes {
			if s.Layer != layer {
				continue
			}
			if s.box.Moved(trans).Touches(search) {
				*hits = append(*hits, ShapeHit{
					Path:  append([]*Instance(nil), path...),
					Shape: s,
					Trans: trans,
				})
			}
		}
	}
	for _, inst := range c.Instances {
		if !inst.BBox().Moved(trans).Touches(search) {
			continue
		}
		inst.Target.collectShapes(layer, search, append(path, inst), trans.Add(inst.Offset), minDepth, maxDepth, hits)
	}
}

// Layout is the database root: layers and top-level cells. Coordinates
// are stored in microns; Unit is the length-unit scale factor exposed
// to clients.
type Layout struct {
	Unit     float64
	Layers   []LayerInfo
	TopCells []*Cell
}

// NewLayout creates an empty layout with a 1 micron unit scale
func NewLayout() *Layout {
	return &Layout{Unit: 1.0}
}

// AddLayer registers a new visible layer and returns its ID
func (l *Layout) AddLayer(name string) LayerID {
	id := LayerID(len(l.Layers))
	l.Layers = append(l.Layers, LayerInfo{ID: id, Name: name, Visible: true})
	return id
}

// AddTopCell registers a cell as a top-level cell
func (l *Layout) AddTopCell(name string) *Cell {
	c := NewCell(name)
	l.TopCells = append(l.TopCells, c)
	return c
}

// Layer returns the layer info for an ID, or nil if it does not exist
func (l *Layout) Layer(id LayerID) *LayerInfo {
	if int(id) < 0 || int(id) >= len(l.Layers) {
		return nil
	}
	return &l.Layers[id]
}
