package wavefront

import (
	"runtime"
	"sync"
)

// Pool runs per-segment work across a fixed set of goroutines. Segments are
// independent, so workers share nothing but the slice they index into.
type Pool struct {
	workers int
}

// NewPool creates a pool with the specified number of workers, defaulting to
// the number of CPUs.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Each invokes fn(i) for every i in [0, n), split into contiguous chunks
// across the pool's workers. fn must only touch state owned by index i.
// Results are independent of the worker count as long as that holds.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := p.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
