// Package parallel runs independent clipping jobs on a fixed set of
// goroutines.
//
// Clipping one primitive never touches shared state, so a batch is split
// into jobs that each own a disjoint slice of the output. The pool only
// distributes those jobs and waits for them.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MinChunk is the smallest number of items Range hands to one job.
const MinChunk = 64

// WorkerPool is a pool of goroutines for parallel clipping.
//
// Each worker has its own queue and steals from the others when its queue
// is empty, which keeps workers busy when some jobs (midpoint subdivision
// of long segments, large polygons) are slower than others.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing anywhere, block on own queue.
			select {
			case <-p.done:
				p.drainQueue(myQueue)
				return
			case work := <-myQueue:
				work()
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all of it to
// complete. Nil entries are skipped.
//
// If the pool is closed, or closes while work is being queued, the
// remaining items run on the calling goroutine, so every item runs
// exactly once either way.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	var completion sync.WaitGroup
	for i, fn := range work {
		if fn == nil {
			continue
		}
		if !p.running.Load() {
			fn()
			continue
		}

		completion.Add(1)
		wrapped := func() {
			defer completion.Done()
			fn()
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}

	completion.Wait()
}

// Range splits [0, n) into contiguous chunks of at least MinChunk items,
// calls fn(lo, hi) for each chunk on the pool and waits for all of them.
// Chunks never overlap, so fn may write to out[lo:hi] without locking.
func (p *WorkerPool) Range(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	chunk := max((n+p.workers-1)/p.workers, MinChunk)
	if chunk >= n {
		fn(0, n)
		return
	}

	work := make([]func(), 0, (n+chunk-1)/chunk)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		work = append(work, func() { fn(lo, hi) })
	}
	p.ExecuteAll(work)
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times, but must not overlap a running
// ExecuteAll or Range.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
