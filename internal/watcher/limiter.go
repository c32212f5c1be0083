package watcher

import "context"

// jobLimiter caps the number of handlers running at once. A nil limiter
// admits every job.
type jobLimiter chan struct{}

func newJobLimiter(max int) jobLimiter {
	if max <= 0 {
		return nil
	}
	return make(jobLimiter, max)
}

// enter blocks until a slot is free or ctx is done.
func (l jobLimiter) enter(ctx context.Context) error {
	if l == nil {
		return nil
	}
	select {
	case l <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l jobLimiter) leave() {
	if l != nil {
		<-l
	}
}
