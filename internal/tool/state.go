package tool

import "fmt"

// State is the tool's current mode. Exactly one state is active at a
// time and it is owned exclusively by the Tool.
type State int

const (
	// StateInactive: the tool is not the active editor tool
	StateInactive State = iota
	// StateSelecting: waiting for a click to select or start moving
	StateSelecting
	// StateDragSelecting: the user draws a selection rectangle
	StateDragSelecting
	// StateMoving: a move is in progress, previewed under the cursor
	StateMoving
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateSelecting:
		return "selecting"
	case StateDragSelecting:
		return "drag_selecting"
	case StateMoving:
		return "moving"
	}
	panic(fmt.Sprintf("tool: unknown state %d", int(s)))
}
