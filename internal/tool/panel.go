package tool

import "fmt"

// SetupPanel is the tool's side panel: a selection summary plus numeric
// X/Y/dX/dY fields. The tool drives it through this contract; the
// widget implementation lives outside the core.
type SetupPanel interface {
	// UpdateState informs the panel of a state transition
	UpdateState(State)
	// UpdateSelection refreshes the summary and field enablement; a nil
	// selection disables the fields
	UpdateSelection(*Selection)
	// UpdatePositionValues pushes live values into the numeric fields
	UpdatePositionValues(x, y, dx, dy float64)
	// FocusNextField advances keyboard focus to the next numeric field
	FocusNextField()
	// FocusPreviousField moves keyboard focus to the previous field
	FocusPreviousField()
	Show()
	Hide()
}

// DescribeSelection renders a selection summary such as
// "2 instances, 1 shape". A nil or empty selection reads "None".
func DescribeSelection(s *Selection) string {
	if s == nil || len(s.Objects) == 0 {
		return "None"
	}

	instances := pluralize(len(s.Instances()), "instance")
	shapes := pluralize(len(s.Shapes()), "shape")
	switch {
	case instances == "":
		return shapes
	case shapes == "":
		return instances
	}
	return instances + ", " + shapes
}

func pluralize(n int, singular string) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "1 " + singular
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
