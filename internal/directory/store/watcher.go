package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a Holder when its file changes on disk. It watches the
// containing directory so editor rename-over saves and ConfigMap symlink
// swaps are seen too.
type Watcher struct {
	holder   *Holder
	debounce time.Duration
	logger   *slog.Logger
}

type WatcherOption func(*Watcher)

func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

func NewWatcher(holder *Holder, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		holder:   holder,
		debounce: defaultDebounce,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is cancelled. Bursts of events inside the debounce
// window collapse into a single reload.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("directory watcher: create: %w", err)
	}
	defer fsw.Close()

	target := filepath.Clean(w.holder.Path())
	dir := filepath.Dir(target)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("directory watcher: watch %s: %w", dir, err)
	}
	w.logger.InfoContext(ctx, "watching directory file", "path", target)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event, target) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorContext(ctx, "directory watcher error", "error", err)

		case <-timer.C:
			// Reload logs its own outcome; a bad edit keeps the old snapshot.
			_, _ = w.holder.Reload(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event, target string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	// Kubernetes ConfigMaps swap a "..data" symlink rather than the file.
	return name == target || filepath.Base(name) == "..data"
}
