package tool

import (
	"fmt"

	"github.com/quicklayout/movequickly/pkg/geometry"
	"github.com/quicklayout/movequickly/pkg/layout"
)

// containment selects the geometric test a candidate must pass against
// the search box
type containment int

const (
	// searchBoxEnclosesObject: the candidate must lie fully inside the
	// search box (rectangle selection)
	searchBoxEnclosesObject containment = iota
	// searchBoxOverlapsObject: touching the search box is enough
	// (point selection with a zero-area box)
	searchBoxOverlapsObject
)

func (c containment) matches(search, candidate geometry.Box) bool {
	switch c {
	case searchBoxEnclosesObject:
		return candidate.Inside(search)
	case searchBoxOverlapsObject:
		return candidate.Touches(search)
	}
	panic(fmt.Sprintf("tool: unknown containment constraint %d", int(c)))
}

// Chooser resolves an ambiguous point hit: the user picks one entry
// from an ordered list of object descriptions, or cancels. A cancel
// empties the selection.
type Chooser interface {
	ChooseObject(descriptions []string) (int, bool)
}

// selectAt selects the object under a point, treated as a zero-area
// search box with an overlap test. More than one candidate triggers
// disambiguation.
func (t *Tool) selectAt(p geometry.Point, additive bool) {
	t.selectObjects(geometry.NewBoxAt(p), additive, searchBoxOverlapsObject, false)
}

// selectEnclosed selects every object fully enclosed by the search box
func (t *Tool) selectEnclosed(search geometry.Box, additive bool) {
	t.selectObjects(search, additive, searchBoxEnclosesObject, true)
}

// selectObjects scans the visible top cells one hierarchy level deep
// and replaces (or, additive, extends) the host object selection with
// the matching candidates. Shapes owned by the viewed cell become shape
// selections; anything reached through an instance collapses to that
// top-level instance. Objects already selected are seeded into the
// dedup set so repeated additive picks never duplicate.
func (t *Tool) selectObjects(search geometry.Box, additive bool, constraint containment, allowMultiple bool) {
	var prior []layout.ObjectPath
	already := make(map[any]bool)
	if additive {
		prior = t.view.SelectedObjects()
		if t.selection != nil {
			for _, transformee := range t.selection.Transformees() {
				already[transformee] = true
			}
		}
	}

	var found []layout.ObjectPath
	if t.view.MaxHierLevels() >= 1 {
		visibleLayers := t.view.VisibleLayers()
		for _, top := range t.view.TopCells() {
			if t.view.IsCellHidden(top) {
				continue
			}

			for _, hit := range t.view.OverlappingInstances(top, search, 0, 1) {
				if len(hit.Path) != 0 {
					continue
				}
				inst := hit.Instance
				if already[inst] {
					continue
				}
				if !constraint.matches(search, inst.BBox().Moved(hit.Trans)) {
					continue
				}
				if t.view.IsCellHidden(inst.Target) {
					continue
				}
				found = append(found, layout.InstancePath(top, inst))
				already[inst] = true
			}

			for _, layer := range visibleLayers {
				for _, hit := range t.view.OverlappingShapes(top, layer, search, 0, 1) {
					if len(hit.Path) != 0 {
						continue
					}
					sh := hit.Shape
					if already[sh] {
						continue
					}
					if !constraint.matches(search, sh.Box()) {
						continue
					}
					found = append(found, layout.ShapePath(top, sh))
					already[sh] = true
				}
			}
		}
	}

	if len(found) >= 2 && !allowMultiple {
		descriptions := make([]string, len(found))
		for i, p := range found {
			descriptions[i] = t.describeObject(p)
		}
		found = t.disambiguate(found, descriptions)
	}

	selected := append(append([]layout.ObjectPath(nil), prior...), found...)
	t.view.SetObjectSelection(selected)
	t.setSelection(t.selectedObjects())
}

// disambiguate narrows an ambiguous candidate list to the user's
// choice, or to nothing on cancel
func (t *Tool) disambiguate(found []layout.ObjectPath, descriptions []string) []layout.ObjectPath {
	if t.chooser == nil {
		return nil
	}
	idx, ok := t.chooser.ChooseObject(descriptions)
	if !ok || idx < 0 || idx >= len(found) {
		return nil
	}
	return found[idx : idx+1]
}

// describeObject renders a candidate for the disambiguation list
func (t *Tool) describeObject(p layout.ObjectPath) string {
	if p.IsShape() {
		b := p.BBox()
		return fmt.Sprintf("shape on %s (%.3f,%.3f;%.3f,%.3f)",
			t.view.LayerName(p.Layer), b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	}
	inst := p.TopInstance()
	return fmt.Sprintf("instance %s at (%.3f,%.3f)",
		inst.Target.Name, inst.Offset.DX, inst.Offset.DY)
}
