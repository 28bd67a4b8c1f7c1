package events

import (
	"sync"
	"testing"
	"time"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	q.Push(Event{Type: EventDocChange, Payload: "a", Timestamp: time.Now()})
	q.Push(Event{Type: EventSelectionChange, Payload: "b", Timestamp: time.Now()})
	q.Push(Event{Type: EventCommand, Payload: "c", Timestamp: time.Now()})

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("consumed %d events, want 3", len(got))
	}
	if got[0].Payload != "a" || got[1].Payload != "b" || got[2].Payload != "c" {
		t.Errorf("events out of order: %v %v %v", got[0].Payload, got[1].Payload, got[2].Payload)
	}

	if rest := q.Consume(); len(rest) != 0 {
		t.Errorf("second consume returned %d events, want 0", len(rest))
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 8
	const perProducer = 16

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push(Event{Type: EventDocChange, Payload: id*1000 + j})
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if len(batch) == 0 {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("consumed %d events, want %d", total, producers*perProducer)
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(Event{Type: EventDocChange, Payload: i})
	}

	got := q.Consume()
	if len(got) == 0 || len(got) > QueueSize {
		t.Fatalf("consumed %d events, want at most %d", len(got), QueueSize)
	}
	if got[len(got)-1].Payload != QueueSize+9 {
		t.Errorf("newest event lost: last payload = %v", got[len(got)-1].Payload)
	}
}
