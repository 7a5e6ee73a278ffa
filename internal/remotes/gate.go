package remotes

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Gate serializes operations sharing a key. Operations queued under the
// same key run one at a time in arrival order; different keys do not
// contend. A queued operation always runs to completion: the gate imposes
// no timeout and does not act on caller cancellation while waiting.
type Gate struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

// NewGate creates an empty Gate.
func NewGate() *Gate {
	return &Gate{
		sems: make(map[string]*semaphore.Weighted),
	}
}

// Do runs fn under the key's semaphore, waiting its turn in FIFO order.
func (g *Gate) Do(key string, fn func() error) error {
	sem := g.sem(key)

	// Background context: once queued, the operation is never abandoned.
	if err := sem.Acquire(context.Background(), 1); err != nil {
		return err
	}
	defer sem.Release(1)

	return fn()
}

func (g *Gate) sem(key string) *semaphore.Weighted {
	g.mu.Lock()
	defer g.mu.Unlock()

	sem, ok := g.sems[key]
	if !ok {
		sem = semaphore.NewWeighted(1)
		g.sems[key] = sem
	}

	return sem
}
