package timer_test

import (
	"sync"
	"testing"
	"time"

	"github.com/mkettu/fitweek/internal/timer"
)

// fakeClock is a manually advanced clock for timer tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestTimerCountsWhileRunning(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	tm := timer.NewWithClock(clock.Now)

	if tm.Seconds() != 0 {
		t.Fatalf("new timer should read 0, got %d", tm.Seconds())
	}

	tm.Start()
	clock.Advance(90 * time.Second)
	if got := tm.Seconds(); got != 90 {
		t.Errorf("after 90s running: want 90, got %d", got)
	}
}

func TestTimerPauseFreezesElapsed(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	tm := timer.NewWithClock(clock.Now)

	tm.Start()
	clock.Advance(30 * time.Second)
	tm.Pause()
	clock.Advance(5 * time.Minute)
	if got := tm.Seconds(); got != 30 {
		t.Errorf("paused timer should hold at 30, got %d", got)
	}

	tm.Start()
	clock.Advance(15 * time.Second)
	if got := tm.Seconds(); got != 45 {
		t.Errorf("resumed timer should read 45, got %d", got)
	}
}

func TestTimerReset(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	tm := timer.NewWithClock(clock.Now)

	tm.Start()
	clock.Advance(time.Minute)
	tm.Reset()
	if tm.Running() {
		t.Error("reset timer should not be running")
	}
	if got := tm.Seconds(); got != 0 {
		t.Errorf("reset timer should read 0, got %d", got)
	}
}

func TestTimerStartWhileRunningIsNoop(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	tm := timer.NewWithClock(clock.Now)

	tm.Start()
	clock.Advance(10 * time.Second)
	tm.Start()
	clock.Advance(10 * time.Second)
	if got := tm.Seconds(); got != 20 {
		t.Errorf("want 20, got %d", got)
	}
}

func TestTimerConcurrentAccess(t *testing.T) {
	tm := timer.New()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Start()
			tm.Seconds()
			tm.Pause()
		}()
	}
	wg.Wait()
}
