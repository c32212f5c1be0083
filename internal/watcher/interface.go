package watcher

import "context"

// Watcher turns a directory into a work queue.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one discovered file. A returned error makes the file
// eligible for dispatch again on a later scan.
type Handler func(ctx context.Context, filePath string) error
