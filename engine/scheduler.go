package engine

import (
	"sort"
	"sync"
	"time"
)

// CancelFunc cancels a scheduled callback. Safe to call after expiry
type CancelFunc func()

// Scheduler schedules single-shot callbacks
// Rescheduling a concern means cancel-then-schedule; the timerSlot wrapper
// enforces at most one live timer per concern
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// timerSlot owns the single pending timer of one decay concern
// (combo timeout, pitch reset). Not safe for concurrent use: all calls
// happen on the engine loop goroutine
type timerSlot struct {
	sched  Scheduler
	cancel CancelFunc
	gen    uint64
}

func newTimerSlot(sched Scheduler) *timerSlot {
	return &timerSlot{sched: sched}
}

// Rearm cancels any pending timer and schedules fn after d
// A fire that was already in flight when Rearm ran is discarded by the
// generation check, so the most recent event always wins
func (s *timerSlot) Rearm(d time.Duration, fn func()) {
	s.gen++
	gen := s.gen
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = s.sched.Schedule(d, func() {
		if s.gen != gen {
			return // stale fire, slot was rearmed or cleared
		}
		s.cancel = nil
		fn()
	})
}

// Clear cancels the pending timer, if any
func (s *timerSlot) Clear() {
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Pending reports whether a timer is armed
func (s *timerSlot) Pending() bool {
	return s.cancel != nil
}

// LoopScheduler schedules callbacks on the runtime timer facility and
// funnels expiries through the engine loop, so they never run concurrently
// with event handlers
type LoopScheduler struct {
	loop *Loop
}

// NewLoopScheduler creates a scheduler posting into the given loop
func NewLoopScheduler(loop *Loop) *LoopScheduler {
	return &LoopScheduler{loop: loop}
}

// Schedule implements Scheduler
func (ls *LoopScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, func() {
		ls.loop.Post(fn)
	})
	return func() { t.Stop() }
}

// ManualScheduler is a deterministic scheduler for tests: nothing fires
// until the test advances it
type ManualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	remaining time.Duration
	fn        func()
	stopped   bool
}

// NewManualScheduler creates an empty manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements Scheduler
func (m *ManualScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{remaining: d, fn: fn}
	m.timers = append(m.timers, t)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		t.stopped = true
	}
}

// Advance moves scheduler time forward by d, firing due timers in
// expiry order. Callbacks run synchronously on the caller's goroutine
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	var due []*manualTimer
	var rest []*manualTimer
	for _, t := range m.timers {
		if t.stopped {
			continue
		}
		t.remaining -= d
		if t.remaining <= 0 {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	m.timers = rest
	sort.SliceStable(due, func(i, j int) bool { return due[i].remaining < due[j].remaining })
	m.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

// PendingCount returns the number of armed timers
func (m *ManualScheduler) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
