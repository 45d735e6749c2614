package scraper

import (
	"context"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

// WorkerPool fans tasks out to a fixed set of goroutines with an optional
// shared pacing ticker, so every site adapter throttles the same way.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	pace    <-chan time.Time
	ticker  *time.Ticker
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// SetRequestInterval spaces task starts at least d apart across all workers.
// A non-positive interval removes the throttle.
func (p *WorkerPool) SetRequestInterval(d time.Duration) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.pace = nil
	}
	if d <= 0 {
		return
	}
	t := time.NewTicker(d)
	p.ticker = t
	p.pace = t.C
}

// Submit queues one task. It blocks while the queue is full and unblocks
// when the context ends, so a stalled consumer cannot wedge the producer.
func (p *WorkerPool) Submit(ctx context.Context, t Task) error {
	if p == nil || t == nil {
		return nil
	}
	select {
	case p.tasks <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks. Workers drain what was already submitted,
// still at the configured pace.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers and reports one error slot per completed task.
// The channel closes after Close once the queue is drained; callers must
// consume it concurrently with Submit or the workers stall on a full buffer.
func (p *WorkerPool) Run(ctx context.Context) <-chan error {
	out := make(chan error, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					p.mu.RLock()
					pace := p.pace
					p.mu.RUnlock()
					if pace != nil {
						select {
						case <-ctx.Done():
							return
						case <-pace:
						}
					}
					select {
					case <-ctx.Done():
						return
					case out <- t(ctx):
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		p.mu.Lock()
		if p.ticker != nil {
			p.ticker.Stop()
			p.ticker = nil
			p.pace = nil
		}
		p.mu.Unlock()
		close(out)
	}()

	return out
}
