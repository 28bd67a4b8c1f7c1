package storage

import (
	"log"
	"sync"
)

const asyncQueueSize = 64

type asyncWrite struct {
	key   string
	value int
}

// AsyncStore wraps a Store with a fire-and-forget write path
//
// PutInt never blocks the caller: writes queue to a background goroutine,
// failures are logged and dropped (the next successful write carries the
// latest value forward). Reads hit the wrapped store directly and are only
// expected at construction time, before any write is in flight
type AsyncStore struct {
	inner  Store
	writes chan asyncWrite

	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewAsync wraps inner and starts the write goroutine
func NewAsync(inner Store) *AsyncStore {
	a := &AsyncStore{
		inner:  inner,
		writes: make(chan asyncWrite, asyncQueueSize),
	}
	a.wg.Add(1)
	go a.run()
	return a
}

func (a *AsyncStore) run() {
	defer a.wg.Done()
	for w := range a.writes {
		if err := a.inner.PutInt(w.key, w.value); err != nil {
			log.Printf("storage: dropped write %s=%d: %v", w.key, w.value, err)
		}
	}
}

// GetInt implements Store
func (a *AsyncStore) GetInt(key string) (int, bool, error) {
	return a.inner.GetInt(key)
}

// PutInt implements Store. Never blocks; on queue overflow the write is
// dropped and logged
func (a *AsyncStore) PutInt(key string, value int) error {
	select {
	case a.writes <- asyncWrite{key: key, value: value}:
	default:
		log.Printf("storage: write queue full, dropped %s=%d", key, value)
	}
	return nil
}

// Close flushes queued writes and closes the wrapped store
func (a *AsyncStore) Close() error {
	a.stopOnce.Do(func() {
		close(a.writes)
	})
	a.wg.Wait()
	return a.inner.Close()
}
