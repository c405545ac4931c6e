package waves

import (
	"runtime"
	"sync"
)

// parallelFor executes fn over index chunks of [0, n). Chunks are
// disjoint, so fn may write to per-index output slices without locking.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.NumCPU()
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
