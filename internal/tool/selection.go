package tool

import (
	"github.com/quicklayout/movequickly/pkg/geometry"
	"github.com/quicklayout/movequickly/pkg/layout"
)

// SelectableObject is one selected object: a placed sub-cell instance
// or a primitive shape. It is a closed variant type; the only
// implementations are InstanceSelection and ShapeSelection.
type SelectableObject interface {
	// ObjectPath identifies the object's location in the hierarchy
	ObjectPath() layout.ObjectPath
	// BBox returns the bounding box in the top cell's frame
	BBox() geometry.Box

	isSelectable()
}

// InstanceSelection is a selected sub-cell placement. Moving it moves
// the whole placement.
type InstanceSelection struct {
	Path     layout.ObjectPath
	Box      geometry.Box
	Instance *layout.Instance
}

func (s *InstanceSelection) ObjectPath() layout.ObjectPath { return s.Path }
func (s *InstanceSelection) BBox() geometry.Box            { return s.Box }
func (s *InstanceSelection) isSelectable()                 {}

// ShapeSelection is a selected primitive shape. A shape embedded in a
// sub-cell is never moved alone, so shape selections with a non-empty
// path resolve to their top-level instance for movement.
type ShapeSelection struct {
	Path  layout.ObjectPath
	Box   geometry.Box
	Shape *layout.Shape
	Layer layout.LayerID
}

func (s *ShapeSelection) ObjectPath() layout.ObjectPath { return s.Path }
func (s *ShapeSelection) BBox() geometry.Box            { return s.Box }
func (s *ShapeSelection) isSelectable()                 {}

// Selection is the ordered set of currently selected objects. The
// bounding box and anchor position are computed eagerly at
// construction; a Selection is rebuilt wholesale whenever the host
// selection changes, never patched in place.
type Selection struct {
	Objects []SelectableObject

	bbox     geometry.Box
	position geometry.Point
}

// NewSelection builds a selection from objects in discovery order
func NewSelection(objects []SelectableObject) *Selection {
	bbox := geometry.EmptyBox()
	for _, o := range objects {
		bbox = bbox.Union(o.BBox())
	}
	return &Selection{
		Objects:  objects,
		bbox:     bbox,
		position: bbox.BottomLeft(),
	}
}

// BBox returns the union of all member bounding boxes
func (s *Selection) BBox() geometry.Box {
	return s.bbox
}

// Position returns the selection anchor: the bounding box's bottom-left
// corner
func (s *Selection) Position() geometry.Point {
	return s.position
}

// IsSingle reports whether exactly one object is selected
func (s *Selection) IsSingle() bool {
	return len(s.Objects) == 1
}

// IsMulti reports whether two or more objects are selected
func (s *Selection) IsMulti() bool {
	return len(s.Objects) >= 2
}

// Instances returns the instance members in order
func (s *Selection) Instances() []*InstanceSelection {
	var out []*InstanceSelection
	for _, o := range s.Objects {
		if inst, ok := o.(*InstanceSelection); ok {
			out = append(out, inst)
		}
	}
	return out
}

// Shapes returns the shape members in order
func (s *Selection) Shapes() []*ShapeSelection {
	var out []*ShapeSelection
	for _, o := range s.Objects {
		if sh, ok := o.(*ShapeSelection); ok {
			out = append(out, sh)
		}
	}
	return out
}

// Transformees returns the concrete movable entities behind the
// selection: instances as themselves, direct shapes as themselves, and
// shapes inside sub-cells as their top-level instance. Elements are
// *layout.Instance or *layout.Shape pointers; identity comparisons on
// them drive selection deduplication.
func (s *Selection) Transformees() []any {
	var out []any
	for _, o := range s.Objects {
		switch obj := o.(type) {
		case *InstanceSelection:
			out = append(out, obj.Instance)
		case *ShapeSelection:
			if inst := obj.Path.TopInstance(); inst != nil {
				out = append(out, inst)
			} else {
				out = append(out, obj.Shape)
			}
		}
	}
	return out
}

// Mover applies translations to layout objects. It is the mutation
// slice of the host view contract.
type Mover interface {
	TranslateInstance(*layout.Instance, geometry.Vector)
	TranslateShape(*layout.Shape, geometry.Vector)
}

// Transform translates every transformee by delta. Instances move as
// whole placements; shapes move directly only when they live in the
// viewed cell itself.
func (s *Selection) Transform(m Mover, delta geometry.Vector) {
	for _, o := range s.Objects {
		switch obj := o.(type) {
		case *InstanceSelection:
			m.TranslateInstance(obj.Instance, delta)
		case *ShapeSelection:
			if inst := obj.Path.TopInstance(); inst != nil {
				m.TranslateInstance(inst, delta)
			} else {
				m.TranslateShape(obj.Shape, delta)
			}
		}
	}
}
