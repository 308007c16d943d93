package fitness

import (
	"sync"
	"testing"
	"time"
)

func TestPendingDeleteCommitsAfterWindow(t *testing.T) {
	var (
		mu        sync.Mutex
		committed []string
		done      = make(chan struct{})
	)
	pending := newPendingDeletes(10*time.Millisecond, func(path string) {
		mu.Lock()
		committed = append(committed, path)
		mu.Unlock()
		close(done)
	})

	pending.stage("users/u/history/a")
	if !pending.isStaged("users/u/history/a") {
		t.Fatal("entry should be staged")
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("delete was never committed")
	}
	mu.Lock()
	defer mu.Unlock()
	if len(committed) != 1 || committed[0] != "users/u/history/a" {
		t.Fatalf("unexpected commits: %v", committed)
	}
	if pending.isStaged("users/u/history/a") {
		t.Error("committed entry should no longer be staged")
	}
}

func TestPendingDeleteCancelPreventsCommit(t *testing.T) {
	var (
		mu        sync.Mutex
		committed int
	)
	pending := newPendingDeletes(10*time.Millisecond, func(string) {
		mu.Lock()
		committed++
		mu.Unlock()
	})

	pending.stage("users/u/history/a")
	if !pending.cancel("users/u/history/a") {
		t.Fatal("cancel should succeed while staged")
	}
	if pending.cancel("users/u/history/a") {
		t.Error("second cancel should report nothing staged")
	}

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if committed != 0 {
		t.Errorf("cancelled delete was committed %d times", committed)
	}
}

func TestPendingDeleteRestageRestartsWindow(t *testing.T) {
	pending := newPendingDeletes(time.Hour, func(string) {
		t.Error("commit must not fire during this test")
	})

	pending.stage("users/u/history/a")
	pending.stage("users/u/history/a")
	if !pending.cancel("users/u/history/a") {
		t.Fatal("restaged entry should still be cancellable once")
	}
}

func TestPendingDeleteDrop(t *testing.T) {
	pending := newPendingDeletes(time.Hour, func(string) {
		t.Error("commit must not fire for dropped entries")
	})

	pending.stage("users/u/history/a")
	pending.drop("users/u/history/a")
	if pending.isStaged("users/u/history/a") {
		t.Error("dropped entry should not be staged")
	}
	// dropping an unknown path is a no-op
	pending.drop("users/u/history/b")
}
