// Package watch reloads the catalog when the data file or the details
// documents change on disk
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadFunc is called once per burst of changes
type ReloadFunc func(ctx context.Context) error

// Watcher watches files and directories and calls a ReloadFunc, debounced
type Watcher struct {
	fs     *fsnotify.Watcher
	files   map[string]struct{}
	dirs    map[string]struct{}
	pending map[string]struct{} // dirs that do not exist yet
	delay  time.Duration
	reload ReloadFunc
	logger *zap.Logger
}

// New creates a Watcher. Nothing is watched until AddFile/AddDir
func New(delay time.Duration, reload ReloadFunc, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		fs:     fsw,
		files:   make(map[string]struct{}),
		dirs:    make(map[string]struct{}),
		pending: make(map[string]struct{}),
		delay:  delay,
		reload: reload,
		logger: logger,
	}, nil
}

// AddFile watches a single file. Its parent directory is watched so
// editors that save by rename are still seen
func (w *Watcher) AddFile(path string) error {
	path = filepath.Clean(path)
	if err := w.fs.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	w.files[path] = struct{}{}
	return nil
}

// AddDir watches every file directly inside dir. A dir that does not exist
// yet is picked up when it is created, provided its parent exists
func (w *Watcher) AddDir(dir string) error {
	dir = filepath.Clean(dir)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := w.fs.Add(filepath.Dir(dir)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.pending[dir] = struct{}{}
		return nil
	}
	if err := w.fs.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dirs[dir] = struct{}{}
	return nil
}

// Pending reports whether dir is waiting to be created
func (w *Watcher) Pending(dir string) bool {
	_, ok := w.pending[filepath.Clean(dir)]
	return ok
}

// adopt starts watching a pending dir that was just created
func (w *Watcher) adopt(event fsnotify.Event) bool {
	name := filepath.Clean(event.Name)
	if _, ok := w.pending[name]; !ok || !event.Has(fsnotify.Create) {
		return false
	}
	if err := w.fs.Add(name); err != nil {
		w.logger.Error("failed to watch created directory", zap.String("dir", name), zap.Error(err))
		return false
	}
	delete(w.pending, name)
	w.dirs[name] = struct{}{}
	w.logger.Info("watching created directory", zap.String("dir", name))
	return true
}

// Close releases the watcher without running it
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(event.Name)
	if _, ok := w.files[name]; ok {
		return true
	}
	_, ok := w.dirs[filepath.Dir(name)]
	return ok
}

// Run blocks until ctx is done, reloading after each burst of changes.
// A failed reload is logged and the loop carries on
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	debounce := NewDebouncer(w.delay)
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if w.adopt(event) || w.relevant(event) {
				w.logger.Debug("change detected",
					zap.String("path", event.Name),
					zap.Stringer("op", event.Op),
				)
				debounce.Trigger()
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", zap.Error(err))

		case <-debounce.C():
			debounce.Done()
			if err := w.reload(ctx); err != nil {
				w.logger.Error("reload failed, keeping previous catalog", zap.Error(err))
			}
		}
	}
}
