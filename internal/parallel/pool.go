package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs batches of independent pixel bands on a fixed set of
// goroutines.
//
// All workers pull from one shared queue. A batch submitted with ExecuteAll
// is finished before ExecuteAll returns, so a caller never observes a
// partially processed image.
//
// Thread safety: WorkerPool is safe for concurrent use. Close waits for
// in-flight batches; batches submitted after Close run on the caller.
type WorkerPool struct {
	workers int
	jobs    chan job

	// mu orders ExecuteAll (read side) against Close (write side) so jobs
	// is never sent on after it is closed.
	mu      sync.RWMutex
	running atomic.Bool
	wg      sync.WaitGroup
}

// job is one band of a batch.
type job struct {
	fn   func()
	done *sync.WaitGroup
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		jobs:    make(chan job, max(workers*4, 8)),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		j.fn()
		j.done.Done()
	}
}

// ExecuteAll runs every function in work and waits for all of them.
// On a closed pool the functions run sequentially on the caller.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(work))
	for _, fn := range work {
		p.jobs <- job{fn: fn, done: &done}
	}
	done.Wait()
}

// Close waits for in-flight batches and stops the workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
