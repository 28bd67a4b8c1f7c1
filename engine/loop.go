package engine

import (
	"sync"
	"sync/atomic"
)

const loopBufferSize = 512

// Loop serializes all engine mutation onto one goroutine
//
// Host bridges push closures from their own goroutines; timer expiries are
// posted by LoopScheduler. Closures execute strictly in post order, one at a
// time, which is the only concurrency guarantee the engines rely on
type Loop struct {
	calls    chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewLoop creates a stopped loop
func NewLoop() *Loop {
	return &Loop{
		calls:    make(chan func(), loopBufferSize),
		stopChan: make(chan struct{}),
	}
}

// Start launches the dispatch goroutine. Idempotent
func (l *Loop) Start() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		for {
			select {
			case <-l.stopChan:
				// Drain what is already queued, then exit
				for {
					select {
					case fn := <-l.calls:
						fn()
					default:
						return
					}
				}
			case fn := <-l.calls:
				fn()
			}
		}
	}()
}

// Stop halts dispatch after draining queued closures. Idempotent
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	l.wg.Wait()
	l.running.Store(false)
}

// Post queues fn for serialized execution
// Returns false if the loop is stopped or the queue is full; the closure is
// dropped in that case (effects are best-effort, never blocking)
func (l *Loop) Post(fn func()) bool {
	if !l.running.Load() {
		return false
	}
	select {
	case l.calls <- fn:
		return true
	default:
		return false
	}
}

// Running reports whether the dispatch goroutine is live
func (l *Loop) Running() bool {
	return l.running.Load()
}
