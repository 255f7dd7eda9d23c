package geocoding

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Limiter spaces outbound dispatches at least one interval apart,
// globally across all callers. Each Wait reserves the next available
// slot under the mutex, then sleeps outside it, so N concurrent
// callers dispatch interval-spaced rather than racing to sleep zero.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	clock    clockwork.Clock
}

// NewLimiter creates a limiter allowing one dispatch per interval.
func NewLimiter(interval time.Duration, clock clockwork.Clock) *Limiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Limiter{interval: interval, clock: clock}
}

// Wait blocks the caller until its reserved dispatch slot arrives.
func (l *Limiter) Wait() {
	l.mu.Lock()
	now := l.clock.Now()
	var wait time.Duration
	if l.last.IsZero() || !now.Before(l.last.Add(l.interval)) {
		l.last = now
	} else {
		slot := l.last.Add(l.interval)
		wait = slot.Sub(now)
		l.last = slot
	}
	l.mu.Unlock()

	if wait > 0 {
		l.clock.Sleep(wait)
	}
}

// Reset clears the last-dispatch timestamp. Intended for tests.
func (l *Limiter) Reset() {
	l.mu.Lock()
	l.last = time.Time{}
	l.mu.Unlock()
}
