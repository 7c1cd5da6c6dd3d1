package tool

import (
	"testing"

	"github.com/quicklayout/movequickly/pkg/geometry"
	"github.com/quicklayout/movequickly/pkg/layout"
)

func TestDescribeSelection(t *testing.T) {
	top := layout.NewCell("top")
	inst1 := top.AddInstance(layout.NewCell("a"), geometry.NewVector(0, 0))
	inst2 := top.AddInstance(layout.NewCell("b"), geometry.NewVector(5, 5))
	sh := top.AddShape(0, box(0, 0, 1, 1))

	instSel := func(i *layout.Instance) SelectableObject {
		return &InstanceSelection{Path: layout.InstancePath(top, i), Box: i.BBox(), Instance: i}
	}
	shapeSel := &ShapeSelection{Path: layout.ShapePath(top, sh), Box: sh.Box(), Shape: sh}

	tests := []struct {
		name     string
		sel      *Selection
		expected string
	}{
		{"nil", nil, "None"},
		{"empty", NewSelection(nil), "None"},
		{"one instance", NewSelection([]SelectableObject{instSel(inst1)}), "1 instance"},
		{"one shape", NewSelection([]SelectableObject{shapeSel}), "1 shape"},
		{
			"two instances",
			NewSelection([]SelectableObject{instSel(inst1), instSel(inst2)}),
			"2 instances",
		},
		{
			"mixed",
			NewSelection([]SelectableObject{instSel(inst1), instSel(inst2), shapeSel}),
			"2 instances, 1 shape",
		},
	}

	for _, tt := range tests {
		if got := DescribeSelection(tt.sel); got != tt.expected {
			t.Errorf("%s: got %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateInactive:      "inactive",
		StateSelecting:     "selecting",
		StateDragSelecting: "drag_selecting",
		StateMoving:        "moving",
	}
	for state, expected := range tests {
		if state.String() != expected {
			t.Errorf("State(%d).String() = %q, expected %q", int(state), state.String(), expected)
		}
	}
}
