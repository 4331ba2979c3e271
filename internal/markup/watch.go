package markup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/uihelper/internal/logger"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	"github.com/alexisbeaulieu97/uihelper/pkg/diff"
)

// settle coalesces the burst of events a single save produces.
const settle = 100 * time.Millisecond

// Watch rebuilds the document at path after every change and hands the
// result to onChange until ctx ends. The directory is watched so editors
// that replace the file are followed. onChange runs on the watcher
// goroutine.
func Watch(ctx context.Context, path string, opts Options, onChange func(*widget.Window, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	diag := opts.Diagnostics
	if diag == nil {
		diag = logger.Nop()
	}
	diag = diag.Component("markup").WithFields(map[string]any{"path": abs})
	diag.Debug("watching markup")
	previous, _ := os.ReadFile(abs)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			current, err := os.ReadFile(abs)
			if err != nil {
				diag.Error(err, "markup read failed")
				onChange(nil, err)
				continue
			}
			if string(current) == string(previous) {
				continue
			}
			added, removed := diff.Stat(previous, current)
			diag.WithFields(map[string]any{"added": added, "removed": removed}).Info("markup changed")
			diag.Debug(diff.Unified(previous, current, "previous", "current"))
			previous = current
			w, err := loadBytes(current, abs, opts)
			if err != nil {
				diag.Error(err, "markup reload failed")
			}
			onChange(w, err)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			diag.Warn(fmt.Sprintf("watcher error: %v", err))
		}
	}
}
