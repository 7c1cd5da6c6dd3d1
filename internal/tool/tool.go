// Package tool implements the Move Quickly editing tool: an interactive
// state machine that selects instances and shapes in a hierarchical
// layout by click or drag rectangle and repositions them by pointer
// drag or typed offsets, with grid snapping and angle constraints,
// committed as a single undoable host transaction.
package tool

import (
	"github.com/quicklayout/movequickly/internal/options"
	"github.com/quicklayout/movequickly/pkg/geometry"
	"github.com/quicklayout/movequickly/pkg/layout"
)

// transactionName labels the undoable unit created per committed move
const transactionName = "move quickly"

// Marker is a transient host-rendered highlight rectangle
type Marker interface {
	Set(geometry.Box)
	Destroy()
}

// View is the slice of the host platform the tool consumes. It is
// satisfied by LayoutHost; the tool never reaches past it.
type View interface {
	Mover

	Unit() float64
	MaxHierLevels() int

	TopCells() []*layout.Cell
	IsCellHidden(*layout.Cell) bool
	VisibleLayers() []layout.LayerID
	LayerName(layout.LayerID) string

	SelectedObjects() []layout.ObjectPath
	SetObjectSelection([]layout.ObjectPath)
	ClearSelection()

	OverlappingInstances(top *layout.Cell, search geometry.Box, minDepth, maxDepth int) []layout.InstanceHit
	OverlappingShapes(top *layout.Cell, layer layout.LayerID, search geometry.Box, minDepth, maxDepth int) []layout.ShapeHit

	BeginTransaction(name string)
	CommitTransaction()

	NewMarker() Marker
}

// LayoutHost adapts a layout view to the View contract
type LayoutHost struct {
	*layout.View
}

// NewMarker narrows the concrete marker to the tool's interface
func (h LayoutHost) NewMarker() Marker {
	return h.View.NewMarker()
}

// Deferrer posts an action to run after the current event finishes, on
// the same event loop. It exists to dodge host re-entrancy during
// activation, not for concurrency.
type Deferrer func(func())

// Config carries the collaborators injected into a Tool
type Config struct {
	View    View
	Options *options.Options
	// Panel may be nil; the tool then runs headless.
	Panel SetupPanel
	// Chooser resolves ambiguous point hits. A nil chooser cancels
	// every ambiguous hit.
	Chooser Chooser
	// Defer may be nil; deferred actions then run immediately.
	Defer Deferrer
}

// Tool is the Move Quickly controller. All fields are owned by the
// tool and mutated only from its event handlers on the UI thread.
type Tool struct {
	view    View
	options *options.Options
	panel   SetupPanel
	chooser Chooser
	deferFn Deferrer

	state     State
	selection *Selection

	movePreviewMarkers   []Marker
	dragSelectionMarkers []Marker

	dragSelectionFrom *geometry.Point
	dragSelectionTo   *geometry.Point
	moveFrom          *geometry.Point
	moveOperation     MoveOperation
}

// New creates a tool bound to its host collaborators
func New(cfg Config) *Tool {
	if cfg.View == nil {
		panic("tool: nil view")
	}
	if cfg.Options == nil {
		panic("tool: nil options")
	}
	return &Tool{
		view:    cfg.View,
		options: cfg.Options,
		panel:   cfg.Panel,
		chooser: cfg.Chooser,
		deferFn: cfg.Defer,
		state:   StateInactive,
	}
}

// State returns the current tool state
func (t *Tool) State() State {
	return t.state
}

// Selection returns the current selection, nil when empty
func (t *Tool) Selection() *Selection {
	return t.selection
}

// MoveOperation returns the in-progress move, nil outside a move
func (t *Tool) MoveOperation() MoveOperation {
	return t.moveOperation
}

func (t *Tool) setState(state State) {
	t.state = state
	if t.panel != nil {
		t.panel.UpdateState(state)
	}
}

func (t *Tool) setSelection(selection *Selection) {
	t.selection = selection
	if t.panel != nil {
		t.panel.UpdateSelection(selection)
	}
}

// selectedObjects rebuilds the tool selection from the host's object
// selection. A shape reached through an instance chain resolves to the
// chain's top-level instance; only shapes owned by the viewed cell stay
// shape selections.
func (t *Tool) selectedObjects() *Selection {
	var objects []SelectableObject
	for _, p := range t.view.SelectedObjects() {
		if len(p.Path) == 0 {
			if p.Shape == nil {
				continue
			}
			objects = append(objects, &ShapeSelection{
				Path:  p,
				Box:   p.Shape.Box().Moved(p.SourceTrans()),
				Shape: p.Shape,
				Layer: p.Layer,
			})
		} else {
			inst := p.Path[0]
			objects = append(objects, &InstanceSelection{
				Path:     p,
				Box:      inst.BBox(),
				Instance: inst,
			})
		}
	}
	if len(objects) == 0 {
		return nil
	}
	return NewSelection(objects)
}

// Activated switches the tool on: the panel is shown and the selection
// is initialized from whatever the host already has selected. Showing
// the panel is deferred past the current event because the host
// re-enters its own event handling while docking widgets.
func (t *Tool) Activated() {
	if t.panel != nil {
		t.deferred(t.panel.Show)
	}
	t.state = StateSelecting
	t.setSelection(t.selectedObjects())
}

// Deactivated switches the tool off and releases everything transient
func (t *Tool) Deactivated() {
	t.clearAllMarkers()
	t.setSelection(nil)
	t.dragSelectionFrom = nil
	t.dragSelectionTo = nil
	t.moveFrom = nil
	t.moveOperation = nil
	t.state = StateInactive
	if t.panel != nil {
		t.panel.Hide()
	}
}

// Configure applies a pushed host configuration pair. Unknown names
// report false so other plugins can process them.
func (t *Tool) Configure(name, value string) bool {
	return t.options.Configure(name, value)
}

// MouseMoved handles pointer motion. With the left button held it
// drives drag selection; in the moving state it recomputes the pointer
// move and its preview.
func (t *Tool) MouseMoved(p geometry.Point, buttons Buttons, prio bool) bool {
	if !prio {
		return false
	}

	if buttons.Has(ButtonLeft) {
		// Dragging changes the selection rectangle. The origin was
		// recorded on button press because motion events can be
		// skipped.
		if t.state != StateDragSelecting {
			t.setState(StateDragSelecting)
		}
		t.dragSelectionTo = &p

		if t.dragSelectionFrom == nil {
			return false
		}

		t.clearMovePreviewMarkers()
		search := geometry.NewBox(*t.dragSelectionFrom, *t.dragSelectionTo)
		t.selectEnclosed(search, buttons.Has(ModShift))
		t.updateDragSelectionMarkers()
		return true
	}

	if buttons.Has(ModShift) {
		// Shift without a button cancels an in-progress move.
		if t.state == StateMoving {
			t.moveOperation = nil
			t.setState(StateSelecting)
		}
		t.clearMovePreviewMarkers()
		return true
	}

	if t.state == StateMoving && t.selection != nil && t.moveFrom != nil {
		t.moveOperation = t.buildPointerMove(p)
		if t.panel != nil {
			op := t.moveOperation.(PointerMove)
			t.panel.UpdatePositionValues(
				op.SnappedPosition.X+op.SnappedCursorDelta.DX,
				op.SnappedPosition.Y+op.SnappedCursorDelta.DY,
				op.SnappedCursorDelta.DX,
				op.SnappedCursorDelta.DY)
		}
		t.updateMovePreviewMarkers()
		return true
	}

	return false
}

// buildPointerMove snaps both drag endpoints to the grid, applies the
// angle constraint between them, and pairs the resulting cursor delta
// with the separately snapped selection anchor. Snapping the anchor
// independently keeps the preview from jittering when the anchor lies
// off-grid.
func (t *Tool) buildPointerMove(to geometry.Point) PointerMove {
	snappedFrom := t.options.SnapPoint(*t.moveFrom)
	snappedTo := t.options.SnapPoint(to)
	constrainedTo := t.options.ConstrainMoveAngle(snappedFrom, snappedTo)
	cursorDelta := constrainedTo.Sub(snappedFrom)

	originalPos := t.selection.Position()
	snappedPos := t.options.SnapPoint(originalPos)

	return PointerMove{
		OriginalPosition:   originalPos,
		SnappedPosition:    snappedPos,
		FromCursor:         *t.moveFrom,
		ToCursor:           to,
		SnappedCursorDelta: cursorDelta,
	}
}

// MouseButtonPressed records the potential drag-selection origin.
// Later motion events may be skipped by the host, so the origin cannot
// be taken from the first motion event.
func (t *Tool) MouseButtonPressed(p geometry.Point, buttons Buttons, prio bool) bool {
	t.dragSelectionFrom = &p
	return false
}

// MouseButtonReleased finalizes drag selection, or arms a move when a
// selection exists
func (t *Tool) MouseButtonReleased(p geometry.Point, buttons Buttons, prio bool) bool {
	switch t.state {
	case StateInactive, StateMoving:
	case StateSelecting:
		if t.selection != nil && !buttons.Has(ModShift) {
			t.setState(StateMoving)
			t.moveFrom = &p
			return true
		}
	case StateDragSelecting:
		t.clearDragSelectionMarkers()
		t.dragSelectionFrom = nil
		t.dragSelectionTo = nil
		t.setState(StateSelecting)
		return true
	}
	return false
}

// MouseClicked dispatches clicks: selection, move start, commit, or on
// right-click a full reset
func (t *Tool) MouseClicked(p geometry.Point, buttons Buttons, prio bool) bool {
	if !prio {
		return false
	}

	if buttons.Has(ButtonLeft) {
		switch t.state {
		case StateInactive, StateDragSelecting:
		case StateSelecting:
			if t.selection == nil || buttons.Has(ModShift) {
				t.clearAllMarkers()
				t.selectAt(p, buttons.Has(ModShift))
			}
			if t.selection != nil && !buttons.Has(ModShift) {
				t.setState(StateMoving)
				t.moveFrom = &p
			}
			return true
		case StateMoving:
			if buttons.Has(ModShift) {
				t.selectAt(p, true)
				t.clearAllMarkers()
				t.moveOperation = nil
				t.setState(StateSelecting)
			} else if t.selection != nil {
				t.CommitMove(t.moveOperation)
			}
			return true
		}
		return false
	}

	if buttons.Has(ButtonRight) {
		t.clearAllMarkers()
		t.view.ClearSelection()
		t.setSelection(nil)
		t.moveOperation = nil
		t.setState(StateSelecting)
		return true
	}

	return false
}

// KeyPressed handles Shift and Escape (cancel move), Tab (panel field
// navigation) and Enter (commit)
func (t *Tool) KeyPressed(key Key, buttons Buttons) bool {
	if buttons.Has(ModShift) && t.state == StateMoving {
		t.moveOperation = nil
		t.setState(StateSelecting)
		t.clearMovePreviewMarkers()
		return true
	}

	switch key {
	case KeyEscape:
		if t.state == StateMoving {
			t.moveOperation = nil
			t.setState(StateSelecting)
			t.clearMovePreviewMarkers()
			return true
		}
	case KeyTab:
		if t.selection != nil && t.panel != nil {
			pos := t.selection.Position()
			t.panel.UpdatePositionValues(pos.X, pos.Y, 0, 0)
			t.clearMovePreviewMarkers()
			if buttons.Has(ModShift) {
				t.panel.FocusPreviousField()
			} else {
				t.panel.FocusNextField()
			}
			return true
		}
	case KeyEnter, KeyReturn:
		if t.selection != nil {
			t.CommitMove(t.moveOperation)
			return true
		}
	}
	return false
}

// CommitTypedMove commits a freshly built typed move from the panel's
// numeric fields. It applies in any state as long as a selection
// exists.
func (t *Tool) CommitTypedMove(x, y, dx, dy float64) {
	if t.selection == nil {
		return
	}
	t.CommitMove(TypedMove{
		OriginalPosition: t.selection.Position(),
		X:                x,
		Y:                y,
		DX:               dx,
		DY:               dy,
	})
}

// CommitMove applies the operation's effective delta to every
// transformee inside a named host transaction. The transaction is
// closed in a deferred block so it never stays open, even if transform
// application panics; afterwards the host selection is restored (host
// mutation may deselect moved objects) and the tool selection is
// re-derived from the host.
func (t *Tool) CommitMove(operation MoveOperation) {
	t.clearAllMarkers()

	if t.selection == nil || operation == nil {
		t.setState(StateSelecting)
		return
	}

	delta := operation.EffectiveDelta()

	t.view.BeginTransaction(transactionName)
	func() {
		defer func() {
			t.view.CommitTransaction()
			t.setState(StateSelecting)

			paths := make([]layout.ObjectPath, 0, len(t.selection.Objects))
			for _, o := range t.selection.Objects {
				paths = append(paths, o.ObjectPath())
			}
			t.view.SetObjectSelection(paths)
			t.setSelection(t.selectedObjects())
		}()
		t.selection.Transform(t.view, delta)
	}()

	t.moveOperation = nil
	t.moveFrom = nil
}

func (t *Tool) deferred(action func()) {
	if t.deferFn != nil {
		t.deferFn(action)
		return
	}
	action()
}
