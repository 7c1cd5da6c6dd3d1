// Package watcher reloads the editor options file when it changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// OptionsWatcher watches a single options file and triggers a reload
// callback when it is written or replaced. Events are debounced so a
// burst of writes from an editor save produces one reload.
type OptionsWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(string)
	onError  func(error)
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for the given options file. The parent
// directory is watched rather than the file itself, so editors that
// save via rename-and-replace still trigger the callback.
func New(path string, debounce time.Duration, onChange func(string)) (*OptionsWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	return &OptionsWatcher{
		watcher:  fsWatcher,
		path:     absPath,
		onChange: onChange,
		debounce: debounce,
	}, nil
}

// OnError sets an optional handler for watcher errors
func (w *OptionsWatcher) OnError(handler func(error)) {
	w.onError = handler
}

// Start begins watching for changes to the options file
func (w *OptionsWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					w.scheduleReload()
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				if w.onError != nil {
					w.onError(err)
				}
			}
		}
	}()
}

// scheduleReload debounces the change callback
func (w *OptionsWatcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.onChange(w.path)
	})
}

// Close stops the watcher
func (w *OptionsWatcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	return w.watcher.Close()
}
