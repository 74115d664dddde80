package bench

import (
	"context"
	"sync"
	"time"
)

// ProgressFunc is called as completion crosses each 10% boundary.
type ProgressFunc func(completed, total int, elapsed time.Duration)

// Batcher partitions a scenario's attempts into consecutive batches of the
// concurrency bound and joins on each batch before admitting the next.
//
// All dispatches within a batch run concurrently; the next batch does not
// start until every dispatch in the current one has resolved. This gives a
// stepped concurrency profile, not a sustained worker pool: a single slow
// request delays the start of the following batch.
type Batcher struct {
	total      int
	size       int
	onProgress ProgressFunc
}

// NewBatcher creates a batcher for total attempts in batches of size.
// onProgress may be nil.
func NewBatcher(total, size int, onProgress ProgressFunc) *Batcher {
	return &Batcher{
		total:      total,
		size:       size,
		onProgress: onProgress,
	}
}

// Run issues every attempt, batch by batch. The final batch may be smaller
// than the concurrency bound. Returns the context error if cancelled
// between batches; attempts already issued run to completion.
func (b *Batcher) Run(ctx context.Context, attempt func(ctx context.Context)) error {
	start := time.Now()

	step := b.total / 10
	if step < 1 {
		step = 1
	}
	nextMark := step

	completed := 0
	for completed < b.total {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := b.size
		if remaining := b.total - completed; remaining < n {
			n = remaining
		}

		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() {
				defer wg.Done()
				attempt(ctx)
			}()
		}
		wg.Wait()

		completed += n

		for b.onProgress != nil && nextMark <= completed {
			b.onProgress(nextMark, b.total, time.Since(start))
			nextMark += step
		}
	}

	return nil
}
