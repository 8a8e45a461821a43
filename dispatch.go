package a11ykit

import (
	"context"
	"sync"
)

// workQueue holds work submitted from any goroutine until the owning
// goroutine drains it.
type workQueue struct {
	mu      sync.Mutex
	pending []func()
	running []func()
}

func (q *workQueue) push(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// take swaps out the pending work. Work submitted while the returned batch
// runs lands in the next batch.
func (q *workQueue) take() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	batch := q.pending
	q.pending = q.running[:0]
	q.running = batch
	return batch
}

// OptimizeAsync submits OptimizeAll(root, opts) to the engine's queue and
// returns a channel that is closed once it has run. It is safe to call from
// any goroutine. The work runs on the next call to Update, in submission
// order, and is never interrupted once started.
func (e *Engine) OptimizeAsync(root *Node, opts Options) <-chan struct{} {
	done := make(chan struct{})
	e.queue.push(func() {
		defer close(done)
		e.OptimizeAll(root, opts)
	})
	return done
}

// Update runs all work submitted since the previous call and returns the
// number of units run. Call it from the goroutine that owns the UI tree,
// for example from an Ebitengine game's Update.
func (e *Engine) Update() int {
	batch := e.queue.take()
	for i, fn := range batch {
		fn()
		batch[i] = nil
	}
	return len(batch)
}

// Wait blocks until done is closed or ctx ends.
func Wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
