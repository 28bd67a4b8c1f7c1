package engine

import (
	"sync"
	"testing"
	"time"
)

func TestLoopExecutesInPostOrder(t *testing.T) {
	loop := NewLoop()
	loop.Start()

	var mu sync.Mutex
	var order []int
	done := make(chan struct{})

	for i := 0; i < 100; i++ {
		i := i
		loop.Post(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			if i == 99 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("loop did not drain")
	}
	loop.Stop()

	mu.Lock()
	defer mu.Unlock()
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, posts executed out of order", i, v)
		}
	}
}

func TestLoopPostAfterStop(t *testing.T) {
	loop := NewLoop()
	loop.Start()
	loop.Stop()

	if loop.Post(func() { t.Errorf("closure ran after stop") }) {
		t.Errorf("Post accepted after stop")
	}
	if loop.Running() {
		t.Errorf("loop reports running after stop")
	}
}

func TestLoopStopIdempotent(t *testing.T) {
	loop := NewLoop()
	loop.Start()
	loop.Stop()
	loop.Stop() // must not panic or hang
}

func TestLoopSchedulerPostsExpiry(t *testing.T) {
	loop := NewLoop()
	loop.Start()
	defer loop.Stop()

	sched := NewLoopScheduler(loop)
	fired := make(chan struct{})
	sched.Schedule(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatalf("scheduled callback never ran")
	}
}

func TestLoopSchedulerCancel(t *testing.T) {
	loop := NewLoop()
	loop.Start()
	defer loop.Stop()

	sched := NewLoopScheduler(loop)
	cancel := sched.Schedule(50*time.Millisecond, func() {
		t.Errorf("canceled callback ran")
	})
	cancel()
	time.Sleep(100 * time.Millisecond)
}
