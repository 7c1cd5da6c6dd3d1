package tool

import (
	"testing"

	"github.com/quicklayout/movequickly/pkg/geometry"
	"github.com/quicklayout/movequickly/pkg/layout"
)

func TestActivateInitializesFromHost(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	sh := top.AddShape(layer, box(0, 0, 2, 2))
	f.view.SetObjectSelection([]layout.ObjectPath{layout.ShapePath(top, sh)})

	f.tool.Activated()

	if f.tool.State() != StateSelecting {
		t.Errorf("expected selecting, got %s", f.tool.State())
	}
	if f.tool.Selection() == nil || len(f.tool.Selection().Objects) != 1 {
		t.Error("selection not initialized from host")
	}
	if !f.panel.shown {
		t.Error("panel not shown on activation")
	}
}

func TestDeactivateResetsEverything(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	top.AddShape(layer, box(0, 0, 2, 2))

	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(1, 1), false)
	f.tool.Deactivated()

	if f.tool.State() != StateInactive {
		t.Errorf("expected inactive, got %s", f.tool.State())
	}
	if f.tool.Selection() != nil {
		t.Error("selection not cleared on deactivation")
	}
	if !f.panel.hidden {
		t.Error("panel not hidden on deactivation")
	}
	if len(f.view.Markers()) != 0 {
		t.Error("markers survived deactivation")
	}
}

func TestDeferredPanelShow(t *testing.T) {
	var queue []func()
	l := layout.NewLayout()
	v := layout.NewView(l)
	panel := &fakePanel{}
	tl := New(Config{
		View:    LayoutHost{View: v},
		Options: newFixture(t).opts,
		Panel:   panel,
		Defer:   func(fn func()) { queue = append(queue, fn) },
	})

	tl.Activated()

	if panel.shown {
		t.Fatal("panel shown during the activation event itself")
	}
	for _, fn := range queue {
		fn()
	}
	if !panel.shown {
		t.Error("deferred panel show never ran")
	}
}

func TestClickThenMoveThenCommit(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	sh := top.AddShape(layer, box(0, 0, 2, 2))

	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(1, 1), false)

	// Click with no modifier and an existing selection starts a move.
	if !f.tool.MouseClicked(geometry.NewPoint(1, 1), ButtonLeft, true) {
		t.Fatal("click not handled")
	}
	if f.tool.State() != StateMoving {
		t.Fatalf("expected moving, got %s", f.tool.State())
	}

	// Dragging builds the pointer move and shows one preview marker.
	if !f.tool.MouseMoved(geometry.NewPoint(4, 3), 0, true) {
		t.Fatal("motion not handled")
	}
	if f.tool.MoveOperation() == nil {
		t.Fatal("no move operation built")
	}
	if len(f.view.Markers()) != 1 {
		t.Fatalf("expected 1 preview marker, got %d", len(f.view.Markers()))
	}
	preview := f.view.Markers()[0].Box()
	if preview != box(3, 2, 5, 4) {
		t.Errorf("preview box wrong: %v", preview)
	}

	// Enter commits exactly one transaction and applies the delta once.
	if !f.tool.KeyPressed(KeyEnter, 0) {
		t.Fatal("enter not handled")
	}
	if f.view.UndoCount() != 1 {
		t.Errorf("expected 1 committed transaction, got %d", f.view.UndoCount())
	}
	if f.view.HasOpenTransaction() {
		t.Error("transaction left open")
	}
	if sh.Box() != box(3, 2, 5, 4) {
		t.Errorf("shape not moved: %v", sh.Box())
	}
	if f.tool.State() != StateSelecting {
		t.Errorf("expected selecting after commit, got %s", f.tool.State())
	}
	if f.tool.Selection() == nil {
		t.Error("selection not re-derived after commit")
	}
	if f.tool.Selection().Position() != geometry.NewPoint(3, 2) {
		t.Errorf("re-derived anchor wrong: %v", f.tool.Selection().Position())
	}
	if len(f.view.Markers()) != 0 {
		t.Error("markers survived commit")
	}
}

func TestShiftCancelsMove(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	sh := top.AddShape(layer, box(0, 0, 2, 2))

	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(1, 1), false)
	f.tool.MouseClicked(geometry.NewPoint(1, 1), ButtonLeft, true)
	f.tool.MouseMoved(geometry.NewPoint(4, 3), 0, true)

	if !f.tool.KeyPressed(KeyNone, ModShift) {
		t.Fatal("shift not handled")
	}
	if f.tool.State() != StateSelecting {
		t.Errorf("expected selecting, got %s", f.tool.State())
	}
	if f.view.UndoCount() != 0 {
		t.Error("cancel must not open a transaction")
	}
	if sh.Box() != box(0, 0, 2, 2) {
		t.Error("cancel must not mutate geometry")
	}
}

func TestEscapeCancelsMove(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	sh := top.AddShape(layer, box(0, 0, 2, 2))

	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(1, 1), false)
	f.tool.MouseClicked(geometry.NewPoint(1, 1), ButtonLeft, true)
	f.tool.MouseMoved(geometry.NewPoint(4, 3), 0, true)

	if !f.tool.KeyPressed(KeyEscape, 0) {
		t.Fatal("escape not handled")
	}
	if f.tool.State() != StateSelecting {
		t.Errorf("expected selecting, got %s", f.tool.State())
	}
	if f.tool.Selection() == nil {
		t.Error("cancel must keep the selection")
	}
	if f.view.UndoCount() != 0 {
		t.Error("cancel must not open a transaction")
	}
	if sh.Box() != box(0, 0, 2, 2) {
		t.Error("cancel must not mutate geometry")
	}
}

func TestEscapeOutsideMoveIsNoop(t *testing.T) {
	f := newFixture(t)
	f.tool.Activated()

	if f.tool.KeyPressed(KeyEscape, 0) {
		t.Error("escape without a pending move must not be handled")
	}
}

func TestRightClickClearsSelection(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	top.AddShape(layer, box(0, 0, 2, 2))

	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(1, 1), false)
	f.tool.MouseClicked(geometry.NewPoint(1, 1), ButtonLeft, true) // start moving

	if !f.tool.MouseClicked(geometry.NewPoint(5, 5), ButtonRight, true) {
		t.Fatal("right click not handled")
	}
	if f.tool.Selection() != nil {
		t.Error("selection not cleared")
	}
	if len(f.view.SelectedObjects()) != 0 {
		t.Error("host selection not cleared")
	}
	if f.tool.State() != StateSelecting {
		t.Errorf("expected selecting, got %s", f.tool.State())
	}
}

func TestDragSelectionFlow(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	a := top.AddShape(layer, box(1, 1, 2, 2))
	b := top.AddShape(layer, box(4, 4, 5, 5))
	top.AddShape(layer, box(40, 40, 45, 45))

	f.tool.Activated()
	f.tool.MouseButtonPressed(geometry.NewPoint(0, 0), ButtonLeft, true)
	f.tool.MouseMoved(geometry.NewPoint(6, 6), ButtonLeft, true)

	if f.tool.State() != StateDragSelecting {
		t.Fatalf("expected drag_selecting, got %s", f.tool.State())
	}
	s := f.tool.Selection()
	if s == nil || len(s.Objects) != 2 {
		t.Fatalf("expected 2 enclosed shapes, got %v", s)
	}
	if s.Objects[0].(*ShapeSelection).Shape != a || s.Objects[1].(*ShapeSelection).Shape != b {
		t.Error("wrong shapes selected")
	}
	if len(f.view.Markers()) != 1 {
		t.Errorf("expected 1 drag marker, got %d", len(f.view.Markers()))
	}
	if f.view.Markers()[0].Box() != box(0, 0, 6, 6) {
		t.Errorf("drag marker box wrong: %v", f.view.Markers()[0].Box())
	}

	if !f.tool.MouseButtonReleased(geometry.NewPoint(6, 6), 0, true) {
		t.Fatal("release not handled")
	}
	if f.tool.State() != StateSelecting {
		t.Errorf("expected selecting after release, got %s", f.tool.State())
	}
	if len(f.view.Markers()) != 0 {
		t.Error("drag markers survived release")
	}
	// The selection itself survives the release.
	if f.tool.Selection() == nil || len(f.tool.Selection().Objects) != 2 {
		t.Error("selection lost on release")
	}
}

func TestCommitTypedMove(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	sh := top.AddShape(layer, box(0, 0, 2, 2))

	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(1, 1), false)

	// Move the anchor to (10, 20) plus an extra (1, -1).
	f.tool.CommitTypedMove(10, 20, 1, -1)

	if sh.Box() != box(11, 19, 13, 21) {
		t.Errorf("typed move wrong: %v", sh.Box())
	}
	if f.view.UndoCount() != 1 {
		t.Errorf("expected 1 transaction, got %d", f.view.UndoCount())
	}
	if f.tool.State() != StateSelecting {
		t.Errorf("expected selecting, got %s", f.tool.State())
	}
}

func TestCommitWithoutSelectionIsNoop(t *testing.T) {
	f := newFixture(t)
	f.tool.Activated()

	f.tool.CommitMove(TypedMove{X: 5, Y: 5})

	if f.view.UndoCount() != 0 {
		t.Error("commit without selection opened a transaction")
	}
	if f.tool.State() != StateSelecting {
		t.Errorf("expected selecting, got %s", f.tool.State())
	}
}

func TestCommitWithoutOperationIsNoop(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	top.AddShape(layer, box(0, 0, 2, 2))

	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(1, 1), false)
	f.tool.CommitMove(nil)

	if f.view.UndoCount() != 0 {
		t.Error("commit without operation opened a transaction")
	}
}

// panickyMover fails the first translation to prove the transaction is
// still closed.
type panickyMover struct {
	View
}

func (p panickyMover) TranslateShape(s *layout.Shape, v geometry.Vector) {
	panic("translate failed")
}

func TestCommitClosesTransactionOnPanic(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	top.AddShape(layer, box(0, 0, 2, 2))

	tl := New(Config{
		View:    panickyMover{View: LayoutHost{View: f.view}},
		Options: f.opts,
	})
	tl.Activated()
	tl.selectAt(geometry.NewPoint(1, 1), false)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the failure to propagate")
			}
		}()
		tl.CommitMove(TypedMove{OriginalPosition: tl.Selection().Position(), X: 5, Y: 5})
	}()

	if f.view.HasOpenTransaction() {
		t.Error("transaction left open after failed transform")
	}
}

func TestPointerMoveUpdatesPanelValues(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	top.AddShape(layer, box(0, 0, 2, 2))

	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(1, 1), false)
	f.tool.MouseClicked(geometry.NewPoint(1, 1), ButtonLeft, true)
	f.panel.values = nil
	f.tool.MouseMoved(geometry.NewPoint(4, 3), 0, true)

	if len(f.panel.values) != 1 {
		t.Fatalf("expected 1 panel value push, got %d", len(f.panel.values))
	}
	got := f.panel.values[0]
	expected := [4]float64{3, 2, 3, 2} // anchor (0,0) + delta (3,2)
	if got != expected {
		t.Errorf("panel values wrong: got %v, expected %v", got, expected)
	}
}

func TestTabNavigatesPanelFields(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	top.AddShape(layer, box(1, 2, 3, 4))

	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(2, 3), false)
	f.panel.values = nil

	if !f.tool.KeyPressed(KeyTab, 0) {
		t.Fatal("tab not handled")
	}
	if f.panel.focusCalls != 1 {
		t.Error("focus not advanced")
	}
	if len(f.panel.values) != 1 || f.panel.values[0] != [4]float64{1, 2, 0, 0} {
		t.Errorf("tab must reset fields to the anchor, got %v", f.panel.values)
	}

	if !f.tool.KeyPressed(KeyTab, ModShift) {
		t.Fatal("shift-tab not handled")
	}
	if f.panel.backFocusCalls != 1 {
		t.Error("focus not moved backwards")
	}
}

func TestTabWithoutSelectionIsNoop(t *testing.T) {
	f := newFixture(t)
	f.tool.Activated()

	if f.tool.KeyPressed(KeyTab, 0) {
		t.Error("tab without selection must not be handled")
	}
}

func TestConfigureRouting(t *testing.T) {
	f := newFixture(t)

	if f.tool.Configure("unrelated-option", "42") {
		t.Error("unknown option must be reported unhandled")
	}
	if !f.tool.Configure("edit-move-angle-mode", "ortho") {
		t.Error("known option not handled")
	}
}

func TestOrthoConstraintDuringMove(t *testing.T) {
	f := newFixture(t)
	layer := f.layout.AddLayer("metal1")
	top := f.layout.AddTopCell("chip")
	sh := top.AddShape(layer, box(0, 0, 2, 2))

	f.tool.Configure("edit-move-angle-mode", "ortho")
	f.tool.Activated()
	f.tool.selectAt(geometry.NewPoint(1, 1), false)
	f.tool.MouseClicked(geometry.NewPoint(1, 1), ButtonLeft, true)
	f.tool.MouseMoved(geometry.NewPoint(6, 3), 0, true)
	f.tool.KeyPressed(KeyEnter, 0)

	// |dx| wins, so the vertical component is discarded.
	if sh.Box() != box(5, 0, 7, 2) {
		t.Errorf("ortho move wrong: %v", sh.Box())
	}
}
