package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// WarmResult is the outcome of refreshing one dataset.
type WarmResult struct {
	Dataset  string
	Records  int
	Err      error
	Duration time.Duration
}

// WarmAll downloads names in parallel and refreshes their cached copies. Results keep the
// order of names.
func WarmAll(ctx context.Context, l *Loader, names []string, concurrency int) []WarmResult {
	if concurrency <= 0 {
		concurrency = len(names)
	}
	p := pool.New().WithMaxGoroutines(max(concurrency, 1))

	results := make([]WarmResult, len(names))
	var mu sync.Mutex

	for idx, name := range names {
		p.Go(func() {
			start := time.Now()
			n, err := l.Warm(ctx, name)
			mu.Lock()
			results[idx] = WarmResult{Dataset: name, Records: n, Err: err, Duration: time.Since(start)}
			mu.Unlock()
		})
	}

	p.Wait()
	return results
}
