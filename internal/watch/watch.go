// Package watch reruns generation when project metadata changes.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"sourcegen/internal/errors"
	"sourcegen/internal/logger"
)

// DefaultDebounce coalesces bursts of file events, e.g. a source retrieve.
const DefaultDebounce = 500 * time.Millisecond

// Callback is run after a debounced batch of relevant changes.
type Callback func(ctx context.Context) error

// Watcher watches directory trees for metadata changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	callback Callback
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
	fire  chan struct{}
}

// New watches every directory under roots. fsnotify is not recursive, so
// subdirectories are added one by one, and new ones as they appear.
func New(roots []string, callback Callback) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		watcher:  fsw,
		callback: callback,
		debounce: DefaultDebounce,
		fire:     make(chan struct{}, 1),
	}

	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			fsw.Close()

			return nil, err
		}
	}

	return w, nil
}

// SetDebounce changes the debounce period. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run processes events until ctx is done. Callback errors are logged and do
// not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()

			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warnw("Watcher error", "error", err)

		case <-w.fire:
			if err := w.callback(ctx); err != nil {
				logger.Errorw("Regeneration failed", "error", err)
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				logger.Warnw("Failed to watch new directory", "dir", event.Name, "error", err)
			}

			return
		}
	}

	if !Relevant(event.Name) {
		return
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	logger.Debugw("Watcher detected change", "file", event.Name, "op", event.Op.String())
	w.schedule()
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) addTree(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}

		return w.watcher.Add(path)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to watch %s", root)
	}

	return nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

// Relevant reports whether a change to path can affect generated output.
// Generated class stamps are ignored so a run does not retrigger itself.
func Relevant(path string) bool {
	base := filepath.Base(path)

	switch {
	case base == "sfdx-project.json":
		return true
	case strings.HasSuffix(base, ".cls-meta.xml"):
		return false
	default:
		return strings.HasSuffix(base, ".field-meta.xml") ||
			strings.HasSuffix(base, ".standardValueSet-meta.xml") ||
			strings.HasSuffix(base, ".globalValueSet-meta.xml") ||
			strings.HasSuffix(base, ".recordType-meta.xml")
	}
}
