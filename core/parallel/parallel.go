// Package parallel provides chunked parallel execution helpers used by the
// model layer for per-class work. Callers are responsible for ensuring the
// chunks touch disjoint data; the numerical core mutates buffers in place
// and must never be handed overlapping ranges.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across workers sized to the CPU count and runs
// fn(start, end) on each half-open chunk.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item lands in exactly one chunk.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs sequentially below threshold items, where
// goroutine overhead would dominate, and in parallel above it.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}
	Parallelize(items, fn)
}

// ForEach runs fn(i) for each i in [0, items), in parallel. Used for
// per-class fits where each index owns its own buffers.
func ForEach(items int, fn func(i int)) {
	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}
