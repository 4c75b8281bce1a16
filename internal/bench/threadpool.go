package bench

import (
	"context"
	"fmt"
	"sync"

	"github.com/haskel/parafox/internal/strategy"
)

// threadPoolExecutor fans items out to a fixed pool of worker goroutines.
// Result ordering is irrelevant: only elapsed time is observed.
type threadPoolExecutor struct{}

func (e *threadPoolExecutor) run(ctx context.Context, w Workload, items []float64, cfg strategy.Config) error {
	type job struct {
		index int
		item  float64
	}

	jobs := make(chan job)
	done := make(chan struct{})

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			close(done)
		})
	}

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if _, err := w.Fn(j.item); err != nil {
					fail(fmt.Errorf("item %d: %w", j.index, err))
					return
				}
			}
		}()
	}

feed:
	for i, item := range items {
		select {
		case jobs <- job{index: i, item: item}:
		case <-done:
			break feed
		case <-ctx.Done():
			fail(ctx.Err())
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return firstErr
}
