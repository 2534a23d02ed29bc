package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/swatch/internal/prefs"
	"github.com/five82/swatch/internal/state"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

var errDirGone = errors.New("watched directory removed")

// calculateBackoff returns base doubled once per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for range failures {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

// StartWatcher launches a background goroutine that reloads the preferences
// file into the store whenever it changes on disk. It returns immediately.
//
// The parent directory is watched rather than the file so that editors which
// replace the file atomically are still seen. When the watch cannot be
// established, or fails later, it is re-added with exponential backoff.
func StartWatcher(ctx context.Context, store *state.Store, path string) {
	go watchLoop(ctx, store, path, defaultRetryInterval)
}

func watchLoop(ctx context.Context, store *state.Store, path string, base time.Duration) {
	failures := 0
	for {
		established, err := watchOnce(ctx, store, path)
		if ctx.Err() != nil {
			return
		}
		if established {
			failures = 0
		}
		delay := calculateBackoff(failures, base)
		failures++
		slog.Warn("prefs watcher stopped, retrying", "path", path, "error", err, "retry_in", delay)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// watchOnce runs one watch session. It reports whether the watch was
// established before it ended.
func watchOnce(ctx context.Context, store *state.Store, path string) (bool, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return false, fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return false, fmt.Errorf("watch %s: %w", dir, err)
	}
	slog.Debug("watching prefs", "path", path)

	// pick up anything written while the watch was down
	reload(store, path)

	for {
		select {
		case <-ctx.Done():
			return true, nil
		case event, ok := <-w.Events:
			if !ok {
				return true, errors.New("watcher closed")
			}
			name := filepath.Clean(event.Name)
			if name == dir && event.Has(fsnotify.Remove|fsnotify.Rename) {
				return true, errDirGone
			}
			if name != path || event.Op == fsnotify.Chmod {
				continue
			}
			reload(store, path)
		case err, ok := <-w.Errors:
			if !ok {
				return true, errors.New("watcher closed")
			}
			return true, fmt.Errorf("watcher error: %w", err)
		}
	}
}

// reload reads path into the store. A zero-length file is taken to be
// mid-write by another program and skipped; the next write event reloads it.
func reload(store *state.Store, path string) {
	if info, err := os.Stat(path); err == nil && info.Size() == 0 {
		slog.Debug("skipping empty prefs file", "path", path)
		return
	}
	p, err := prefs.Read(path)
	if err != nil {
		slog.Warn("reload prefs failed", "path", path, "error", err)
		store.Update(prefs.Prefs{}, err)
		return
	}
	store.Update(p, nil)
}
