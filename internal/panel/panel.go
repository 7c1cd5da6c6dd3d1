// Package panel provides the fyne implementation of the move tool's
// setup panel: a selection summary plus numeric X/Y/dX/dY entry fields
// committing a typed move on Enter.
package panel

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/quicklayout/movequickly/internal/tool"
)

// Committer receives the typed move when the user submits the fields
type Committer interface {
	CommitTypedMove(x, y, dx, dy float64)
}

// SetupPanel implements tool.SetupPanel with fyne widgets
type SetupPanel struct {
	host   Committer
	window fyne.Window

	selectionValue *widget.Label
	xEntry         *widget.Entry
	yEntry         *widget.Entry
	dxEntry        *widget.Entry
	dyEntry        *widget.Entry
	entries        []*widget.Entry

	content fyne.CanvasObject
}

// New builds the panel widgets. The window is used for keyboard focus
// handling and may be nil in headless setups.
func New(host Committer, window fyne.Window) *SetupPanel {
	p := &SetupPanel{
		host:           host,
		window:         window,
		selectionValue: widget.NewLabel("None"),
	}

	newField := func() *widget.Entry {
		e := widget.NewEntry()
		e.SetText("0.000")
		e.OnSubmitted = func(string) { p.submit() }
		e.Disable()
		return e
	}
	p.xEntry = newField()
	p.yEntry = newField()
	p.dxEntry = newField()
	p.dyEntry = newField()
	p.entries = []*widget.Entry{p.xEntry, p.yEntry, p.dxEntry, p.dyEntry}

	row := func(e *widget.Entry) fyne.CanvasObject {
		return container.NewBorder(nil, nil, nil, widget.NewLabel("µm"), e)
	}

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Selection:"), p.selectionValue,
		widget.NewLabel("X:"), row(p.xEntry),
		widget.NewLabel("Y:"), row(p.yEntry),
		widget.NewLabel("dX:"), row(p.dxEntry),
		widget.NewLabel("dY:"), row(p.dyEntry),
	)

	hint := widget.NewLabel("Hint: press Esc to cancel a pending move")
	p.content = container.NewVBox(form, hint)
	p.content.Hide()
	return p
}

// Content returns the panel's root widget for docking into a window
func (p *SetupPanel) Content() fyne.CanvasObject {
	return p.content
}

// SetHost attaches the typed-move receiver. The panel and the tool
// reference each other, so the host is wired after both exist.
func (p *SetupPanel) SetHost(host Committer) {
	p.host = host
}

// UpdateState is part of tool.SetupPanel. The panel renders the same
// in every state.
func (p *SetupPanel) UpdateState(state tool.State) {}

// UpdateSelection refreshes the summary label and field enablement. A
// nil selection disables the fields and resets them.
func (p *SetupPanel) UpdateSelection(selection *tool.Selection) {
	p.selectionValue.SetText(tool.DescribeSelection(selection))

	if selection == nil {
		for _, e := range p.entries {
			e.Disable()
		}
		p.setValue(p.xEntry, 0)
		p.setValue(p.yEntry, 0)
	} else {
		for _, e := range p.entries {
			e.Enable()
		}
		pos := selection.Position()
		p.setValue(p.xEntry, pos.X)
		p.setValue(p.yEntry, pos.Y)
	}
	p.setValue(p.dxEntry, 0)
	p.setValue(p.dyEntry, 0)
}

// UpdatePositionValues pushes live values into the numeric fields
func (p *SetupPanel) UpdatePositionValues(x, y, dx, dy float64) {
	p.setValue(p.xEntry, x)
	p.setValue(p.yEntry, y)
	p.setValue(p.dxEntry, dx)
	p.setValue(p.dyEntry, dy)
}

// FocusNextField moves keyboard focus to the field after the currently
// focused one, wrapping to X
func (p *SetupPanel) FocusNextField() {
	p.focusField(1)
}

// FocusPreviousField moves keyboard focus to the preceding field
func (p *SetupPanel) FocusPreviousField() {
	p.focusField(-1)
}

func (p *SetupPanel) focusField(step int) {
	if p.window == nil {
		return
	}
	canvas := p.window.Canvas()
	index := -1
	for i, e := range p.entries {
		if canvas.Focused() == e {
			index = i
			break
		}
	}
	n := len(p.entries)
	canvas.Focus(p.entries[((index+step)%n+n)%n])
}

// Show makes the panel visible
func (p *SetupPanel) Show() {
	p.content.Show()
}

// Hide conceals the panel
func (p *SetupPanel) Hide() {
	p.content.Hide()
}

func (p *SetupPanel) submit() {
	if p.host == nil {
		return
	}
	p.host.CommitTypedMove(
		p.value(p.xEntry),
		p.value(p.yEntry),
		p.value(p.dxEntry),
		p.value(p.dyEntry))
}

func (p *SetupPanel) setValue(e *widget.Entry, v float64) {
	e.SetText(fmt.Sprintf("%.3f", v))
}

func (p *SetupPanel) value(e *widget.Entry) float64 {
	v, err := strconv.ParseFloat(e.Text, 64)
	if err != nil {
		return 0
	}
	return v
}
