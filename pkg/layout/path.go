package layout

import "github.com/quicklayout/movequickly/pkg/geometry"

// ObjectPath identifies a selected object by its location in the
// hierarchy: the top cell, the chain of instantiation steps descending
// from it, and for shape selections the shape itself. An empty Path
// with a non-nil Shape addresses a shape owned directly by the top
// cell.
type ObjectPath struct {
	Top   *Cell
	Path  []*Instance
	Shape *Shape
	Layer LayerID
}

// InstancePath builds a path addressing an instance through a chain of
// instantiation steps
func InstancePath(top *Cell, chain ...*Instance) ObjectPath {
	return ObjectPath{Top: top, Path: chain}
}

// ShapePath builds a path addressing a shape owned directly by the top
// cell
func ShapePath(top *Cell, shape *Shape) ObjectPath {
	return ObjectPath{Top: top, Shape: shape, Layer: shape.Layer}
}

// IsShape reports whether the path addresses a shape
func (p ObjectPath) IsShape() bool {
	return p.Shape != nil
}

// TopInstance returns the first instantiation step, or nil for a direct
// shape
func (p ObjectPath) TopInstance() *Instance {
	if len(p.Path) == 0 {
		return nil
	}
	return p.Path[0]
}

// SourceTrans returns the accumulated placement offset of the chain,
// i.e. the transform from the addressed object's frame into the top
// cell's frame. For shapes the chain excludes the shape itself; for
// instance paths it excludes the final instance's own offset.
func (p ObjectPath) SourceTrans() geometry.Vector {
	var trans geometry.Vector
	n := len(p.Path)
	if !p.IsShape() && n > 0 {
		n--
	}
	for _, inst := range p.Path[:n] {
		trans = trans.Add(inst.Offset)
	}
	return trans
}

// BBox returns the addressed object's bounding box in the top cell's
// frame
func (p ObjectPath) BBox() geometry.Box {
	if p.IsShape() {
		return p.Shape.Box().Moved(p.SourceTrans())
	}
	if inst := p.TopInstance(); inst != nil {
		// Movement always targets the whole top-level placement, so
		// its box is the relevant one even for deeper paths.
		return inst.BBox()
	}
	return geometry.EmptyBox()
}
