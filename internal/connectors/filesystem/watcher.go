package filesystem

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driving"
	"github.com/custodia-labs/droppath/internal/logger"
)

// ErrWatcherClosed is returned by Run after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// Watcher removes targets whose path disappears from the filesystem.
type Watcher struct {
	targets driving.TargetService
	fsw     *fsnotify.Watcher

	mu      sync.Mutex
	dirs    map[string]struct{}
	tracked map[string]string // cleaned path -> stored target path

	onRemove func(path string)
	errLog   rate.Sometimes
}

// NewWatcher creates a watcher for the targets held by targets.
// Call Sync before Run to start watching.
func NewWatcher(targets driving.TargetService) (*Watcher, error) {
	if targets == nil {
		return nil, fmt.Errorf("%w: target service required", domain.ErrInvalidInput)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{
		targets: targets,
		fsw:     fsw,
		dirs:    make(map[string]struct{}),
		tracked: make(map[string]string),
		errLog:  rate.Sometimes{First: 3, Interval: 10 * time.Second},
	}, nil
}

// OnRemove registers fn to be called after a target is removed.
func (w *Watcher) OnRemove(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onRemove = fn
}

// Sync re-reads the target list and updates the set of watched directories.
func (w *Watcher) Sync(ctx context.Context) error {
	targets, err := w.targets.List(ctx)
	if err != nil {
		return fmt.Errorf("listing targets: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	tracked := make(map[string]string, len(targets))
	wanted := make(map[string]struct{})
	for _, target := range targets {
		clean := filepath.Clean(filepath.FromSlash(target.Path))
		tracked[clean] = target.Path
		wanted[filepath.Dir(clean)] = struct{}{}
	}

	for dir := range w.dirs {
		if _, ok := wanted[dir]; ok {
			continue
		}
		if err := w.fsw.Remove(dir); err != nil {
			logger.Debug("unwatching %s: %v", dir, err)
		}
		delete(w.dirs, dir)
	}
	for dir := range wanted {
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			logger.Warn("cannot watch %s: %v", dir, err)
			continue
		}
		w.dirs[dir] = struct{}{}
	}
	w.tracked = tracked

	logger.Debug("watching %d directories for %d targets", len(w.dirs), len(tracked))
	return nil
}

// Watched returns the directories currently being watched.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	dirs := make([]string, 0, len(w.dirs))
	for dir := range w.dirs {
		dirs = append(dirs, dir)
	}
	return dirs
}

// Run processes filesystem events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return ErrWatcherClosed
			}
			path, matched := w.handleFsEvent(event)
			if !matched {
				continue
			}
			w.remove(ctx, path)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			w.errLog.Do(func() {
				logger.Warn("watch error: %v", err)
			})
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// handleFsEvent returns the stored target path an event removes, if any.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	path, ok := w.tracked[filepath.Clean(event.Name)]
	return path, ok
}

func (w *Watcher) remove(ctx context.Context, path string) {
	err := w.targets.Remove(ctx, path)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("removing target %s: %v", path, err)
		return
	}
	logger.Info("target %s vanished, removed", path)

	if err := w.Sync(ctx); err != nil {
		logger.Warn("resyncing watcher: %v", err)
	}

	w.mu.Lock()
	fn := w.onRemove
	w.mu.Unlock()
	if fn != nil {
		fn(path)
	}
}
