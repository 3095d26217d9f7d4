package loop

import (
	"context"
	"sync"
	"time"
)

// ManualScheduler queues frames until the caller pumps them. It is used by
// headless runs and tests.
type ManualScheduler struct {
	queue []func()
}

// RequestFrame queues fn.
func (s *ManualScheduler) RequestFrame(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending returns the number of queued frames.
func (s *ManualScheduler) Pending() int {
	return len(s.queue)
}

// Step runs the oldest queued frame. It returns false if nothing was queued.
func (s *ManualScheduler) Step() bool {
	if len(s.queue) == 0 {
		return false
	}
	fn := s.queue[0]
	s.queue = s.queue[1:]
	fn()
	return true
}

// Run pumps frames until the queue drains or limit frames have run.
// A limit of zero or less means no limit. It returns the frames run.
func (s *ManualScheduler) Run(limit int) int {
	n := 0
	for limit <= 0 || n < limit {
		if !s.Step() {
			break
		}
		n++
	}
	return n
}

// TickerScheduler runs frames on a wall-clock ticker at a fixed rate.
// There is no delta-time compensation; a slow frame just delays the next one.
type TickerScheduler struct {
	interval time.Duration

	mu   sync.Mutex
	next func()
}

// NewTickerScheduler creates a scheduler running fps frames per second.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{interval: time.Second / time.Duration(fps)}
}

// Interval returns the time between frames.
func (s *TickerScheduler) Interval() time.Duration {
	return s.interval
}

// RequestFrame sets fn as the frame to run on the next tick.
func (s *TickerScheduler) RequestFrame(fn func()) {
	s.mu.Lock()
	s.next = fn
	s.mu.Unlock()
}

// Run executes requested frames on the calling goroutine until no frame is
// pending at a tick or ctx is done.
func (s *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		s.mu.Lock()
		fn := s.next
		s.next = nil
		s.mu.Unlock()

		if fn == nil {
			return nil
		}
		fn()
	}
}
