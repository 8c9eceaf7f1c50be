package services

import (
	"sync"
	"time"
)

// ViewStore is the slice of the repository the view counter needs.
type ViewStore interface {
	AddViews(questionID string, delta int)
}

// ViewCounter batches view-count bumps off the read path. Detail reads call
// Bump and return immediately; a background worker flushes the accumulated
// deltas to the store on an interval, so a burst of reads on one question
// costs one store write per flush instead of one per read.
type ViewCounter struct {
	store    ViewStore
	interval time.Duration

	mu      sync.Mutex
	pending map[string]int

	done chan struct{}
	wg   sync.WaitGroup
}

// NewViewCounter starts the flush worker. Callers own the returned counter
// and must Close it on shutdown.
func NewViewCounter(store ViewStore, interval time.Duration) *ViewCounter {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	vc := &ViewCounter{
		store:    store,
		interval: interval,
		pending:  make(map[string]int),
		done:     make(chan struct{}),
	}
	vc.wg.Add(1)
	go vc.worker()
	return vc
}

// Bump records one view for a question. Never blocks.
func (vc *ViewCounter) Bump(questionID string) {
	vc.mu.Lock()
	vc.pending[questionID]++
	vc.mu.Unlock()
}

// Close stops the worker after flushing whatever is still pending.
func (vc *ViewCounter) Close() {
	close(vc.done)
	vc.wg.Wait()
}

func (vc *ViewCounter) worker() {
	defer vc.wg.Done()

	ticker := time.NewTicker(vc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			vc.flush()
		case <-vc.done:
			vc.flush()
			return
		}
	}
}

func (vc *ViewCounter) flush() {
	vc.mu.Lock()
	batch := vc.pending
	vc.pending = make(map[string]int)
	vc.mu.Unlock()

	for id, n := range batch {
		vc.store.AddViews(id, n)
	}
}
