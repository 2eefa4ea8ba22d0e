package api

import (
	"context"
	"sync/atomic"
	"time"
)

// lane is a counting semaphore with request accounting.
type lane struct {
	sem    chan struct{}
	queued int64
	active int64
	total  int64
}

func newLane(size int) *lane {
	return &lane{sem: make(chan struct{}, size)}
}

func (l *lane) acquire(ctx context.Context) error {
	atomic.AddInt64(&l.queued, 1)
	defer atomic.AddInt64(&l.queued, -1)

	select {
	case l.sem <- struct{}{}:
		atomic.AddInt64(&l.active, 1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *lane) tryAcquire() bool {
	select {
	case l.sem <- struct{}{}:
		atomic.AddInt64(&l.active, 1)
		return true
	default:
		return false
	}
}

func (l *lane) release() {
	atomic.AddInt64(&l.active, -1)
	atomic.AddInt64(&l.total, 1)
	<-l.sem
}

// WorkerPool bounds concurrent request processing. Cheap operations (replay,
// board parsing, level lookups) run in the fast lane; solves, whose cost is
// bounded only by their budget, run in the slow lane so a burst of hard
// puzzles cannot starve everything else.
type WorkerPool struct {
	fast *lane
	slow *lane
}

// PoolConfig configures the worker pool.
type PoolConfig struct {
	FastWorkers int // Max concurrent fast operations (default 16)
	SlowWorkers int // Max concurrent solves (default 4)
}

// NewWorkerPool creates a worker pool.
func NewWorkerPool(config PoolConfig) *WorkerPool {
	if config.FastWorkers <= 0 {
		config.FastWorkers = 16
	}
	if config.SlowWorkers <= 0 {
		config.SlowWorkers = 4
	}
	return &WorkerPool{
		fast: newLane(config.FastWorkers),
		slow: newLane(config.SlowWorkers),
	}
}

// AcquireFast blocks until a fast slot is free or the context is done.
func (p *WorkerPool) AcquireFast(ctx context.Context) error { return p.fast.acquire(ctx) }

// ReleaseFast releases a fast slot.
func (p *WorkerPool) ReleaseFast() { p.fast.release() }

// AcquireSlow blocks until a solve slot is free or the context is done.
func (p *WorkerPool) AcquireSlow(ctx context.Context) error { return p.slow.acquire(ctx) }

// ReleaseSlow releases a solve slot.
func (p *WorkerPool) ReleaseSlow() { p.slow.release() }

// TryAcquireSlow grabs a solve slot without blocking.
func (p *WorkerPool) TryAcquireSlow() bool { return p.slow.tryAcquire() }

// AcquireSlowWithTimeout waits up to timeout for a solve slot.
func (p *WorkerPool) AcquireSlowWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return p.AcquireSlow(ctx)
}

// PoolStats is a snapshot of pool occupancy.
type PoolStats struct {
	ActiveFast int64 `json:"active_fast"`
	ActiveSlow int64 `json:"active_slow"`
	QueuedFast int64 `json:"queued_fast"`
	QueuedSlow int64 `json:"queued_slow"`
	TotalFast  int64 `json:"total_fast"`
	TotalSlow  int64 `json:"total_slow"`
	MaxFast    int   `json:"max_fast"`
	MaxSlow    int   `json:"max_slow"`
}

// Stats returns the current pool statistics.
func (p *WorkerPool) Stats() PoolStats {
	return PoolStats{
		ActiveFast: atomic.LoadInt64(&p.fast.active),
		ActiveSlow: atomic.LoadInt64(&p.slow.active),
		QueuedFast: atomic.LoadInt64(&p.fast.queued),
		QueuedSlow: atomic.LoadInt64(&p.slow.queued),
		TotalFast:  atomic.LoadInt64(&p.fast.total),
		TotalSlow:  atomic.LoadInt64(&p.slow.total),
		MaxFast:    cap(p.fast.sem),
		MaxSlow:    cap(p.slow.sem),
	}
}
