package watcher

import "sync"

// WatchSet holds the paths dispatched during a watch session. Paths leave the
// set only when their job fails.
type WatchSet struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

func NewWatchSet() *WatchSet {
	return &WatchSet{paths: make(map[string]struct{})}
}

// Add inserts path and reports whether it was absent.
func (s *WatchSet) Add(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.paths[path]; ok {
		return false
	}
	s.paths[path] = struct{}{}
	return true
}

func (s *WatchSet) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.paths, path)
}

func (s *WatchSet) Has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.paths[path]
	return ok
}

func (s *WatchSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}
