package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs batches of independent tasks across a fixed set of worker
// goroutines. It exists to parallelize the row-band accumulation of a single
// pyramid level: bands within one level are independent, so a batch is
// submitted per level and Run returns once every band is done.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// tasks feeds queued work to the workers. Closed on Close.
	tasks chan func()

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers and starts
// them immediately. If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// worker is the main loop for each worker goroutine. It drains the task
// channel until Close closes it.
func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Run submits a batch of tasks and blocks until every task has completed.
// If the pool is closed, the tasks run directly on the calling goroutine so
// the batch is never silently dropped.
func (p *Pool) Run(tasks []func()) {
	if len(tasks) == 0 {
		return
	}
	if !p.running.Load() {
		for _, task := range tasks {
			task()
		}
		return
	}

	var batch sync.WaitGroup
	batch.Add(len(tasks))
	for _, task := range tasks {
		task := task
		p.tasks <- func() {
			defer batch.Done()
			task()
		}
	}
	batch.Wait()
}

// Close stops the workers after all queued work has finished.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.tasks)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}
