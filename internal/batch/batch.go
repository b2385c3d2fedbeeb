// Package batch processes independent items in parallel. A failing item never
// stops the others.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Result is the outcome of one item.
type Result struct {
	Item string
	Err  error
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Run calls fn for every item with at most workers calls in flight and
// returns the results in item order. workers <= 0 uses runtime.NumCPU().
// Items that were not started before ctx is done report ctx.Err().
func Run(ctx context.Context, items []string, workers int, fn func(ctx context.Context, item string) error) []Result {
	errs := Each(ctx, len(items), workers, func(ctx context.Context, i int) error {
		return fn(ctx, items[i])
	})

	results := make([]Result, len(items))
	for i, item := range items {
		results[i] = Result{Item: item, Err: errs[i]}
	}

	return results
}

// Each calls fn for the indices 0..n-1 like Run and returns one error per index.
func Each(ctx context.Context, n, workers int, fn func(ctx context.Context, i int) error) []error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sem := semaphore.NewWeighted(int64(workers))
	errs := make([]error, n)
	g := errgroup.Group{}

	for i := 0; i < n; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = err
			continue
		}

		g.Go(func() error {
			defer sem.Release(1)
			errs[i] = call(ctx, i, fn)
			return nil
		})
	}

	g.Wait()

	return errs
}

func call(ctx context.Context, i int, fn func(ctx context.Context, i int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing item %d: %v", i, r)
		}
	}()

	return fn(ctx, i)
}
