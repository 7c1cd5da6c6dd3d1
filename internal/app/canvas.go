package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/quicklayout/movequickly/internal/tool"
	"github.com/quicklayout/movequickly/pkg/geometry"
	"github.com/quicklayout/movequickly/pkg/layout"
)

// pixelsPerMicron is the fixed zoom of the demo viewport
const pixelsPerMicron = 16

var (
	backgroundColor = color.NRGBA{R: 18, G: 18, B: 24, A: 255}
	instanceColor   = color.NRGBA{R: 120, G: 120, B: 140, A: 255}
	selectionColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	markerColor     = color.NRGBA{R: 255, G: 200, B: 0, A: 255}

	layerColors = []color.Color{
		color.NRGBA{R: 64, G: 160, B: 255, A: 200},
		color.NRGBA{R: 255, G: 120, B: 80, A: 200},
		color.NRGBA{R: 100, G: 220, B: 120, A: 200},
	}
)

// layoutCanvas renders the layout cells, shapes and markers and
// forwards pointer events to the move tool. The viewport uses layout
// coordinates with the Y axis pointing up.
type layoutCanvas struct {
	widget.BaseWidget

	view *layout.View
	tool *tool.Tool
	held tool.Buttons
}

func newLayoutCanvas(view *layout.View, t *tool.Tool) *layoutCanvas {
	c := &layoutCanvas{view: view, tool: t}
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer is part of fyne.Widget
func (c *layoutCanvas) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(backgroundColor)
	return &layoutRenderer{
		canvas:     c,
		background: background,
		objects:    []fyne.CanvasObject{background},
	}
}

// toLayout converts a widget position to layout coordinates
func (c *layoutCanvas) toLayout(pos fyne.Position) geometry.Point {
	return geometry.Point{
		X: float64(pos.X) / pixelsPerMicron,
		Y: float64(c.Size().Height-pos.Y) / pixelsPerMicron,
	}
}

func buttonMask(b desktop.MouseButton) tool.Buttons {
	switch b {
	case desktop.MouseButtonPrimary:
		return tool.ButtonLeft
	case desktop.MouseButtonSecondary:
		return tool.ButtonRight
	case desktop.MouseButtonTertiary:
		return tool.ButtonMiddle
	}
	return 0
}

func modifierMask(m fyne.KeyModifier) tool.Buttons {
	var buttons tool.Buttons
	if m&fyne.KeyModifierShift != 0 {
		buttons |= tool.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		buttons |= tool.ModCtrl
	}
	if m&fyne.KeyModifierAlt != 0 {
		buttons |= tool.ModAlt
	}
	return buttons
}

// MouseDown is part of desktop.Mouseable. The canvas is the only event
// consumer, so every event is delivered as the priority pass.
func (c *layoutCanvas) MouseDown(ev *desktop.MouseEvent) {
	c.held |= buttonMask(ev.Button)
	c.tool.MouseButtonPressed(c.toLayout(ev.Position), c.held|modifierMask(ev.Modifier), true)
	c.Refresh()
}

// MouseUp is part of desktop.Mouseable. A release is forwarded as a
// release followed by a click; a release that consumed the event does
// not produce a click.
func (c *layoutCanvas) MouseUp(ev *desktop.MouseEvent) {
	p := c.toLayout(ev.Position)
	buttons := buttonMask(ev.Button) | modifierMask(ev.Modifier)
	c.held &^= buttonMask(ev.Button)
	if !c.tool.MouseButtonReleased(p, buttons, true) {
		c.tool.MouseClicked(p, buttons, true)
	}
	c.Refresh()
}

// MouseIn is part of desktop.Hoverable
func (c *layoutCanvas) MouseIn(ev *desktop.MouseEvent) {}

// MouseMoved is part of desktop.Hoverable
func (c *layoutCanvas) MouseMoved(ev *desktop.MouseEvent) {
	c.tool.MouseMoved(c.toLayout(ev.Position), c.held|modifierMask(ev.Modifier), true)
	c.Refresh()
}

// MouseOut is part of desktop.Hoverable
func (c *layoutCanvas) MouseOut() {}

type layoutRenderer struct {
	canvas     *layoutCanvas
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *layoutRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.rebuild()
}

func (r *layoutRenderer) MinSize() fyne.Size {
	return fyne.NewSize(640, 480)
}

func (r *layoutRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.canvas)
}

func (r *layoutRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *layoutRenderer) Destroy() {}

// rebuild regenerates the scene: shapes per visible layer, instance
// outlines, the selection outline and the tool's markers
func (r *layoutRenderer) rebuild() {
	view := r.canvas.view
	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.background)

	visible := make(map[layout.LayerID]bool)
	for _, id := range view.VisibleLayers() {
		visible[id] = true
	}

	for _, top := range view.TopCells() {
		if view.IsCellHidden(top) {
			continue
		}
		r.drawCell(top, geometry.Vector{}, 0, visible)
	}

	for _, path := range view.SelectedObjects() {
		r.objects = append(r.objects, r.outlineRect(path.BBox(), selectionColor, 2))
	}

	for _, m := range view.Markers() {
		r.objects = append(r.objects, r.outlineRect(m.Box(), markerColor, 1))
	}
}

func (r *layoutRenderer) drawCell(c *layout.Cell, trans geometry.Vector, depth int, visible map[layout.LayerID]bool) {
	view := r.canvas.view

	for _, s := range c.Shapes {
		if !visible[s.Layer] {
			continue
		}
		r.objects = append(r.objects, r.fillRect(s.Box().Moved(trans), layerColor(s.Layer)))
	}

	for _, inst := range c.Instances {
		if view.IsCellHidden(inst.Target) {
			continue
		}
		r.objects = append(r.objects, r.outlineRect(inst.BBox().Moved(trans), instanceColor, 1))
		if depth < view.MaxHierLevels() {
			r.drawCell(inst.Target, trans.Add(inst.Offset), depth+1, visible)
		}
	}
}

func (r *layoutRenderer) fillRect(box geometry.Box, c color.Color) fyne.CanvasObject {
	rect := canvas.NewRectangle(c)
	r.place(rect, box)
	return rect
}

func (r *layoutRenderer) outlineRect(box geometry.Box, c color.Color, strokeWidth float32) fyne.CanvasObject {
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = c
	rect.StrokeWidth = strokeWidth
	r.place(rect, box)
	return rect
}

// place positions a rectangle in screen space, flipping the Y axis
func (r *layoutRenderer) place(rect *canvas.Rectangle, box geometry.Box) {
	height := r.canvas.Size().Height
	rect.Move(fyne.NewPos(
		float32(box.Min.X)*pixelsPerMicron,
		height-float32(box.Max.Y)*pixelsPerMicron))
	rect.Resize(fyne.NewSize(
		float32(box.Width())*pixelsPerMicron,
		float32(box.Height())*pixelsPerMicron))
}

func layerColor(id layout.LayerID) color.Color {
	return layerColors[int(id)%len(layerColors)]
}
