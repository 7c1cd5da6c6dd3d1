package tool

import "github.com/quicklayout/movequickly/pkg/geometry"

// Preview markers are destroyed and recreated on every update so they
// can never accumulate across events.

func (t *Tool) clearMovePreviewMarkers() {
	for _, m := range t.movePreviewMarkers {
		m.Destroy()
	}
	t.movePreviewMarkers = nil
}

func (t *Tool) clearDragSelectionMarkers() {
	for _, m := range t.dragSelectionMarkers {
		m.Destroy()
	}
	t.dragSelectionMarkers = nil
}

func (t *Tool) clearAllMarkers() {
	t.clearMovePreviewMarkers()
	t.clearDragSelectionMarkers()
}

// updateMovePreviewMarkers shows the selection bbox translated by the
// in-progress delta, only while moving
func (t *Tool) updateMovePreviewMarkers() {
	t.clearMovePreviewMarkers()

	if t.selection == nil {
		return
	}

	switch t.state {
	case StateInactive, StateSelecting, StateDragSelecting:
		return
	case StateMoving:
		if t.moveOperation == nil {
			return
		}
		preview := t.selection.BBox().Moved(t.moveOperation.EffectiveDelta())
		marker := t.view.NewMarker()
		marker.Set(preview)
		t.movePreviewMarkers = append(t.movePreviewMarkers, marker)
	}
}

// updateDragSelectionMarkers shows the rectangle spanned by the two
// recorded drag points, only while drag-selecting
func (t *Tool) updateDragSelectionMarkers() {
	t.clearDragSelectionMarkers()

	switch t.state {
	case StateInactive, StateSelecting, StateMoving:
		return
	case StateDragSelecting:
		if t.dragSelectionFrom == nil || t.dragSelectionTo == nil {
			return
		}
		marker := t.view.NewMarker()
		marker.Set(geometry.NewBox(*t.dragSelectionFrom, *t.dragSelectionTo))
		t.dragSelectionMarkers = append(t.dragSelectionMarkers, marker)
	}
}
