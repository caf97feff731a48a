package bsp

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// chunkSize is the number of consecutive vertices a worker claims per grab.
// Chunked claiming keeps the atomic counter off the hot path while still
// letting idle workers steal the remainder of an uneven range.
const chunkSize = 256

// Pool runs per-vertex operators over local ID ranges using a fixed number
// of workers. Operators must only write their own vertex's scalar fields and
// atomic delta fields on neighbour vertices; the pool guarantees that each
// vertex in the range is visited exactly once per run.
type Pool struct {
	workers int
}

// NewPool returns a pool that executes operators on the provided number of
// workers. A non-positive value selects one worker per available CPU.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Pool{workers: workers}
}

// Workers returns the number of workers used for each run.
func (p *Pool) Workers() int { return p.workers }

// ForEach invokes fn for every local vertex ID in [start, end). The call
// returns once all invocations have completed.
func (p *Pool) ForEach(start, end uint32, fn func(local uint32)) {
	if start >= end {
		return
	}

	span := end - start
	workers := p.workers
	if int(span) < workers {
		workers = int(span)
	}

	if workers == 1 {
		for v := start; v < end; v++ {
			fn(v)
		}

		return
	}

	var (
		next uint32
		wg   sync.WaitGroup
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			for {
				// Claim the next chunk of the range.
				from := atomic.AddUint32(&next, chunkSize) - chunkSize
				if from >= span {
					return
				}

				to := from + chunkSize
				if to > span {
					to = span
				}

				for v := start + from; v < start+to; v++ {
					fn(v)
				}
			}
		}()
	}

	wg.Wait()
}
