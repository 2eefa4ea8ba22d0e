package api

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestWorkerPoolBasic(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{
		FastWorkers: 2,
		SlowWorkers: 1,
	})

	ctx := context.Background()
	if err := pool.AcquireFast(ctx); err != nil {
		t.Fatalf("Failed to acquire fast worker: %v", err)
	}

	stats := pool.Stats()
	if stats.ActiveFast != 1 {
		t.Errorf("Expected 1 active fast worker, got %d", stats.ActiveFast)
	}

	pool.ReleaseFast()
	stats = pool.Stats()
	if stats.ActiveFast != 0 {
		t.Errorf("Expected 0 active fast workers after release, got %d", stats.ActiveFast)
	}
	if stats.TotalFast != 1 {
		t.Errorf("Expected 1 total fast request, got %d", stats.TotalFast)
	}
}

func TestWorkerPoolSlowLaneCapacity(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{
		FastWorkers: 10,
		SlowWorkers: 2,
	})

	ctx := context.Background()
	if err := pool.AcquireSlow(ctx); err != nil {
		t.Fatalf("Failed to acquire slow worker 1: %v", err)
	}
	if err := pool.AcquireSlow(ctx); err != nil {
		t.Fatalf("Failed to acquire slow worker 2: %v", err)
	}

	stats := pool.Stats()
	if stats.ActiveSlow != 2 {
		t.Errorf("Expected 2 active slow workers, got %d", stats.ActiveSlow)
	}

	if pool.TryAcquireSlow() {
		t.Error("Should not be able to acquire third slow worker")
	}

	pool.ReleaseSlow()
	pool.ReleaseSlow()

	stats = pool.Stats()
	if stats.TotalSlow != 2 {
		t.Errorf("Expected 2 total slow requests, got %d", stats.TotalSlow)
	}
}

func TestWorkerPoolContextCancellation(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{
		FastWorkers: 1,
		SlowWorkers: 1,
	})

	ctx := context.Background()
	if err := pool.AcquireSlow(ctx); err != nil {
		t.Fatalf("Failed to fill slow lane: %v", err)
	}

	cancelCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := pool.AcquireSlow(cancelCtx); err == nil {
		t.Error("Expected context deadline error on a full lane")
	}

	pool.ReleaseSlow()
}

func TestWorkerPoolAcquireSlowWithTimeout(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{SlowWorkers: 1})

	if err := pool.AcquireSlowWithTimeout(time.Second); err != nil {
		t.Fatalf("Failed to acquire free slot: %v", err)
	}
	if err := pool.AcquireSlowWithTimeout(50 * time.Millisecond); err == nil {
		t.Error("Expected timeout on a full lane")
	}
	pool.ReleaseSlow()
}

func TestWorkerPoolConcurrentUse(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{
		FastWorkers: 4,
		SlowWorkers: 2,
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := pool.AcquireFast(context.Background()); err != nil {
				t.Errorf("acquire failed: %v", err)
				return
			}
			time.Sleep(time.Millisecond)
			pool.ReleaseFast()
		}()
	}
	wg.Wait()

	stats := pool.Stats()
	if stats.ActiveFast != 0 || stats.QueuedFast != 0 {
		t.Errorf("Pool not drained: %+v", stats)
	}
	if stats.TotalFast != 32 {
		t.Errorf("Expected 32 total fast requests, got %d", stats.TotalFast)
	}
}

func TestWorkerPoolDefaults(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{})
	stats := pool.Stats()
	if stats.MaxFast != 16 {
		t.Errorf("Expected default 16 fast workers, got %d", stats.MaxFast)
	}
	if stats.MaxSlow != 4 {
		t.Errorf("Expected default 4 slow workers, got %d", stats.MaxSlow)
	}
}
