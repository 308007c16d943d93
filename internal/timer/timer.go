// Package timer implements an elapsed-time counter with pause and
// resume, used to time cardio sessions.
package timer

import (
	"sync"
	"time"
)

// Timer accumulates elapsed wall-clock time. The zero value is not
// usable; construct with New. All methods are safe for concurrent use.
type Timer struct {
	mu          sync.Mutex
	now         func() time.Time
	startedAt   time.Time
	accumulated time.Duration
	running     bool
}

// New returns a stopped timer at zero.
func New() *Timer {
	return &Timer{now: time.Now}
}

// NewWithClock returns a timer that reads time from the given clock.
// Used in tests to avoid sleeping.
func NewWithClock(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// Start begins or resumes counting. Starting a running timer is a no-op.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.startedAt = t.now()
	t.running = true
}

// Pause stops counting while keeping the accumulated time. Pausing a
// stopped timer is a no-op.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.accumulated += t.now().Sub(t.startedAt)
	t.running = false
}

// Reset stops the timer and clears the accumulated time.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.accumulated = 0
	t.running = false
}

// Elapsed returns the total time counted so far.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	elapsed := t.accumulated
	if t.running {
		elapsed += t.now().Sub(t.startedAt)
	}
	return elapsed
}

// Seconds returns the elapsed time in whole seconds.
func (t *Timer) Seconds() int {
	return int(t.Elapsed() / time.Second)
}

// Running reports whether the timer is currently counting.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
