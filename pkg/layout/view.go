package layout

import (
	"fmt"

	"github.com/quicklayout/movequickly/pkg/geometry"
)

// View presents a layout for editing: visibility of layers and cells,
// the current object selection, preview markers, and undoable
// transactions. It corresponds to the host application's layout view.
type View struct {
	Layout *Layout

	// maxHierLevels limits how deep selection searches descend; the
	// move tool only ever uses the first level.
	maxHierLevels int

	hiddenCells map[*Cell]bool
	selection   []ObjectPath
	markers     []*Marker

	txn  *transaction
	undo []*transaction
}

// NewView creates a view of the layout with all cells visible
func NewView(l *Layout) *View {
	return &View{
		Layout:        l,
		maxHierLevels: 1,
		hiddenCells:   make(map[*Cell]bool),
	}
}

// Unit returns the current length-unit scale factor
func (v *View) Unit() float64 {
	return v.Layout.Unit
}

// MaxHierLevels returns the hierarchy depth limit for selections
func (v *View) MaxHierLevels() int {
	return v.maxHierLevels
}

// TopCells returns the layout's top-level cells
func (v *View) TopCells() []*Cell {
	return v.Layout.TopCells
}

// HideCell excludes a cell from display and selection
func (v *View) HideCell(c *Cell) {
	v.hiddenCells[c] = true
}

// ShowCell makes a hidden cell visible again
func (v *View) ShowCell(c *Cell) {
	delete(v.hiddenCells, c)
}

// IsCellHidden reports whether the user has hidden a cell
func (v *View) IsCellHidden(c *Cell) bool {
	return v.hiddenCells[c]
}

// VisibleLayers returns the IDs of all currently visible layers
func (v *View) VisibleLayers() []LayerID {
	var ids []LayerID
	for _, l := range v.Layout.Layers {
		if l.Visible {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// LayerName returns a human-readable name for a layer
func (v *View) LayerName(id LayerID) string {
	if l := v.Layout.Layer(id); l != nil {
		return l.Name
	}
	return fmt.Sprintf("layer %d", id)
}

// SetLayerVisible toggles a layer's visibility
func (v *View) SetLayerVisible(id LayerID, visible bool) {
	if l := v.Layout.Layer(id); l != nil {
		l.Visible = visible
	}
}

// SelectedObjects returns the current object selection
func (v *View) SelectedObjects() []ObjectPath {
	return v.selection
}

// SetObjectSelection replaces the current object selection
func (v *View) SetObjectSelection(paths []ObjectPath) {
	v.selection = paths
}

// ClearSelection empties the object selection
func (v *View) ClearSelection() {
	v.selection = nil
}

// OverlappingInstances searches below a top cell with depth bounds
func (v *View) OverlappingInstances(top *Cell, search geometry.Box, minDepth, maxDepth int) []InstanceHit {
	return top.OverlappingInstances(search, minDepth, maxDepth)
}

// OverlappingShapes searches below a top cell with depth bounds
func (v *View) OverlappingShapes(top *Cell, layer LayerID, search geometry.Box, minDepth, maxDepth int) []ShapeHit {
	return top.OverlappingShapes(layer, search, minDepth, maxDepth)
}

// TranslateInstance moves a placed instance by a vector. Inside a
// transaction the move is recorded for undo.
func (v *View) TranslateInstance(inst *Instance, delta geometry.Vector) {
	inst.translate(delta)
	v.record(func() { inst.translate(delta.Mul(-1)) })
}

// TranslateShape moves a shape by a vector. Inside a transaction the
// move is recorded for undo.
func (v *View) TranslateShape(s *Shape, delta geometry.Vector) {
	s.translate(delta)
	v.record(func() { s.translate(delta.Mul(-1)) })
}

func (v *View) record(undo func()) {
	if v.txn != nil {
		v.txn.undoOps = append(v.txn.undoOps, undo)
	}
}

// transaction is one named, undoable unit of geometry mutation
type transaction struct {
	name    string
	undoOps []func()
}

// BeginTransaction opens a named transaction. Opening a second
// transaction while one is pending is a programming error.
func (v *View) BeginTransaction(name string) {
	if v.txn != nil {
		panic("layout: transaction already open")
	}
	v.txn = &transaction{name: name}
}

// CommitTransaction closes the open transaction and pushes it onto the
// undo stack
func (v *View) CommitTransaction() {
	if v.txn == nil {
		panic("layout: no open transaction")
	}
	v.undo = append(v.undo, v.txn)
	v.txn = nil
}

// HasOpenTransaction reports whether a transaction is pending
func (v *View) HasOpenTransaction() bool {
	return v.txn != nil
}

// UndoCount returns the number of committed transactions
func (v *View) UndoCount() int {
	return len(v.undo)
}

// Undo reverses the most recently committed transaction and returns its
// name. The second result is false if there is nothing to undo.
func (v *View) Undo() (string, bool) {
	if len(v.undo) == 0 {
		return "", false
	}
	txn := v.undo[len(v.undo)-1]
	v.undo = v.undo[:len(v.undo)-1]
	for i := len(txn.undoOps) - 1; i >= 0; i-- {
		txn.undoOps[i]()
	}
	return txn.name, true
}

// Marker is a transient highlight rectangle shown on top of the layout
type Marker struct {
	view *View
	box  geometry.Box
	set  bool
}

// NewMarker creates a marker attached to this view
func (v *View) NewMarker() *Marker {
	m := &Marker{view: v}
	v.markers = append(v.markers, m)
	return m
}

// Markers returns the currently live markers
func (v *View) Markers() []*Marker {
	return v.markers
}

// Set assigns the rectangle the marker highlights
func (m *Marker) Set(box geometry.Box) {
	m.box = box
	m.set = true
}

// Box returns the marker's rectangle
func (m *Marker) Box() geometry.Box {
	return m.box
}

// Destroy removes the marker from its view
func (m *Marker) Destroy() {
	markers := m.view.markers
	for i, other := range markers {
		if other == m {
			m.view.markers = append(markers[:i], markers[i+1:]...)
			return
		}
	}
}
