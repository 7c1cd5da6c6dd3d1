// Package app wires the move tool, the setup panel and the demo layout
// viewport into a fyne application.
package app

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/quicklayout/movequickly/internal/options"
	"github.com/quicklayout/movequickly/internal/panel"
	"github.com/quicklayout/movequickly/internal/tool"
	"github.com/quicklayout/movequickly/pkg/layout"
	"github.com/quicklayout/movequickly/pkg/watcher"
)

const optionsReloadDebounce = 200 * time.Millisecond

// App owns the window and the tool stack for one editing session
type App struct {
	window  fyne.Window
	view    *layout.View
	tool    *tool.Tool
	panel   *panel.SetupPanel
	options *options.Options
	canvas  *layoutCanvas
}

// firstChooser resolves ambiguous picks by taking the closest
// candidate, which is the first one reported by the hit test.
type firstChooser struct{}

func (firstChooser) ChooseObject(descriptions []string) (int, bool) {
	if len(descriptions) == 0 {
		return 0, false
	}
	return 0, true
}

// Run opens the demo layout in a window with the move tool active.
// If optionsPath is non-empty the editor options are loaded from that
// file and reloaded whenever it changes.
func Run(optionsPath string) error {
	fa := fyneapp.New()
	window := fa.NewWindow("Move Quickly")

	opts := options.New()
	if optionsPath != "" {
		if err := opts.ApplyFile(optionsPath); err != nil {
			return fmt.Errorf("failed to load options: %w", err)
		}
	}

	view := layout.NewView(SampleLayout())
	setupPanel := panel.New(nil, window)

	moveTool := tool.New(tool.Config{
		View:    tool.LayoutHost{View: view},
		Options: opts,
		Panel:   setupPanel,
		Chooser: firstChooser{},
		Defer:   func(f func()) { go fyne.Do(f) },
	})
	setupPanel.SetHost(moveTool)

	a := &App{
		window:  window,
		view:    view,
		tool:    moveTool,
		options: opts,
		panel:   setupPanel,
	}
	a.canvas = newLayoutCanvas(view, moveTool)

	window.SetContent(container.NewBorder(nil, nil, nil, setupPanel.Content(), a.canvas))
	window.Canvas().SetOnTypedKey(a.typedKey)
	if deskCanvas, ok := window.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(a.keyDown)
	}

	if optionsPath != "" {
		optionsWatcher, err := watcher.New(optionsPath, optionsReloadDebounce, func(path string) {
			fyne.Do(func() { a.reloadOptions(path) })
		})
		if err != nil {
			return fmt.Errorf("failed to watch options: %w", err)
		}
		optionsWatcher.OnError(func(err error) {
			fmt.Fprintf(os.Stderr, "options watcher: %v\n", err)
		})
		optionsWatcher.Start()
		defer optionsWatcher.Close()
	}

	moveTool.Activated()
	window.Resize(fyne.NewSize(1100, 700))
	window.ShowAndRun()
	return nil
}

// typedKey forwards keyboard input to the tool
func (a *App) typedKey(ev *fyne.KeyEvent) {
	var key tool.Key
	switch ev.Name {
	case fyne.KeyReturn:
		key = tool.KeyReturn
	case fyne.KeyEnter:
		key = tool.KeyEnter
	case fyne.KeyTab:
		key = tool.KeyTab
	case fyne.KeyEscape:
		key = tool.KeyEscape
	default:
		return
	}
	if a.tool.KeyPressed(key, 0) {
		a.canvas.Refresh()
	}
}

// keyDown catches the Shift press, which cancels a pending move
func (a *App) keyDown(ev *fyne.KeyEvent) {
	if ev.Name != desktop.KeyShiftLeft && ev.Name != desktop.KeyShiftRight {
		return
	}
	if a.tool.KeyPressed(tool.KeyNone, tool.ModShift) {
		a.canvas.Refresh()
	}
}

// reloadOptions re-reads the options file after a change on disk
func (a *App) reloadOptions(path string) {
	if err := a.options.ApplyFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "options reload: %v\n", err)
	}
}
