package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/vidkit/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       Handler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	interval      time.Duration
	extensions    []string
	maxConcurrent int
	limiter       jobLimiter
	seen          *WatchSet
	wg            sync.WaitGroup

	// settle is how long a file must keep the same size and modification
	// time before it is dispatched. pending is only touched by scan.
	settle  time.Duration
	pending map[string]observation
}

type observation struct {
	size    int64
	modTime time.Time
	since   time.Time
}

// Start scans the input directory every interval and whenever fsnotify
// reports a new entry. New video files are dispatched without waiting for
// earlier jobs. When ctx is done Start waits for running jobs and returns
// ctx.Err().
func (w *implWatcher) Start(ctx context.Context) error {
	if w.maxConcurrent > 0 {
		w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	} else {
		w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.inputDir)
	}
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(w.extensions, ", "))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	events := w.watcher.Events
	errs := w.watcher.Errors

	w.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case <-ticker.C:
			w.scan(ctx)

		case event, ok := <-events:
			if !ok {
				// Notifications are gone; polling continues.
				events = nil
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename) != 0 && w.isVideoFile(event.Name) {
				w.logger.Debug(ctx, "Change detected: %s", event.Name)
				w.scan(ctx)
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// scan dispatches every settled video in the input directory that is not
// yet in the watch set. A file still being copied in changes size or
// modification time between scans and is left for a later one.
func (w *implWatcher) scan(ctx context.Context) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		w.logger.Error(ctx, "Failed to list %s: %v", w.inputDir, err)
		return
	}

	now := time.Now()
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() || !w.isVideoFile(e.Name()) {
			continue
		}
		path := filepath.Join(w.inputDir, e.Name())
		present[path] = true

		info, err := e.Info()
		if err != nil {
			continue
		}
		if !w.settled(path, info, now) || !w.seen.Add(path) {
			continue
		}
		w.logger.Info(ctx, "New video detected: %s", path)
		w.dispatch(ctx, path)
	}

	for path := range w.pending {
		if !present[path] {
			delete(w.pending, path)
		}
	}
}

// settled records the current size and modification time of path and
// reports whether they have been unchanged for at least w.settle.
func (w *implWatcher) settled(path string, info os.FileInfo, now time.Time) bool {
	prev, ok := w.pending[path]
	if !ok || prev.size != info.Size() || !prev.modTime.Equal(info.ModTime()) {
		w.pending[path] = observation{size: info.Size(), modTime: info.ModTime(), since: now}
		return false
	}
	return now.Sub(prev.since) >= w.settle
}

func (w *implWatcher) dispatch(ctx context.Context, path string) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		if err := w.limiter.enter(ctx); err != nil {
			w.seen.Remove(path)
			return
		}
		defer w.limiter.leave()

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
			w.seen.Remove(path)
		}
	}()
}

// isVideoFile checks if the file has a supported video extension
func (w *implWatcher) isVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range w.extensions {
		if ext == format {
			return true
		}
	}
	return false
}
