package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/vidkit/internal/logger"
)

const (
	// PollInterval is the time between directory scans.
	PollInterval = 2 * time.Second
	// SettleTime is how long a video must stay unchanged before it is
	// processed.
	SettleTime = time.Second
)

// New creates a Watcher for inputDir. maxConcurrent caps running handlers;
// zero leaves them unbounded.
func New(inputDir string, handler Handler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	w := &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		interval:      PollInterval,
		extensions:    []string{".mp4"},
		maxConcurrent: maxConcurrent,
		limiter:       newJobLimiter(maxConcurrent),
		seen:          NewWatchSet(),
		settle:        SettleTime,
		pending:       make(map[string]observation),
	}
	return w, nil
}
