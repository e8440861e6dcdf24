// Package watch re-runs a comparison when its input files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/samediff/internal/logger"
)

// RunFunc is invoked once per coalesced batch of file changes.
type RunFunc func(ctx context.Context) error

// Watcher observes a fixed set of files.
//
// Parent directories are watched rather than the files themselves so that
// editors which save by renaming a temp file over the original are still seen.
// Events arriving while a run is throttled are coalesced into a single run.
type Watcher struct {
	files   map[string]struct{}
	dirs    []string
	limiter *rate.Limiter
}

// New creates a watcher for paths that runs at most once per interval.
func New(paths []string, interval time.Duration) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no files to watch")
	}
	if interval <= 0 {
		interval = time.Millisecond
	}

	w := &Watcher{
		files:   make(map[string]struct{}, len(paths)),
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
	seenDirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		w.files[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if _, ok := seenDirs[dir]; !ok {
			seenDirs[dir] = struct{}{}
			w.dirs = append(w.dirs, dir)
		}
	}
	return w, nil
}

// Run blocks until ctx is cancelled, calling fn after each batch of changes.
// Errors from fn are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context, fn RunFunc) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	logger.Debug("watching %d file(s) in %d dir(s)", len(w.files), len(w.dirs))

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("change detected: %s", event)

			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			drain(fw.Events)

			if err := fn(ctx); err != nil {
				logger.Warn("re-run failed: %v", err)
			}
		}
	}
}

// relevant reports whether an event touches a watched file's content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

// drain discards events already queued.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
