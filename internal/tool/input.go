package tool

// Buttons is the button and modifier mask delivered with mouse and key
// events
type Buttons uint32

const (
	// ButtonLeft is the primary mouse button
	ButtonLeft Buttons = 1 << iota
	// ButtonMiddle is the middle mouse button
	ButtonMiddle
	// ButtonRight is the secondary mouse button
	ButtonRight
	// ModShift is the Shift modifier key
	ModShift
	// ModCtrl is the Control modifier key
	ModCtrl
	// ModAlt is the Alt modifier key
	ModAlt
)

// Has reports whether all bits of mask are set
func (b Buttons) Has(mask Buttons) bool {
	return b&mask == mask
}

// Key identifies a keyboard key delivered to the tool
type Key int

const (
	// KeyNone is the zero key value
	KeyNone Key = iota
	// KeyEnter is the main Enter key
	KeyEnter
	// KeyReturn is the keypad Return key
	KeyReturn
	// KeyTab is the Tab key
	KeyTab
	// KeyEscape is the Escape key
	KeyEscape
)
