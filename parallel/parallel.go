// Package parallel provides the chunked work-scheduling primitives
// used across feedmill: a generic parallel map/for-each over slices of
// items, and a UTF-8/line-boundary-safe splitter for partitioning a
// large text blob into worker-sized chunks.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// inlineThreshold is the item count at or below which work runs on the
// calling goroutine instead of being split across a worker pool — the
// original engine's ParallelExecutor applies the same cutoff, since
// goroutine/channel overhead outweighs the benefit for small slices.
const inlineThreshold = 100

// Options configures the degree of parallelism. The zero value is
// valid and picks sensible defaults.
type Options struct {
	// Workers is the maximum number of goroutines used. 0 means
	// runtime.GOMAXPROCS(0).
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// ForEach calls fn once per item in items. If ctx is canceled or any
// call to fn returns an error, ForEach stops launching new work and
// returns the first error encountered (per errgroup.Group semantics).
// Slices of at most inlineThreshold items run sequentially on the
// calling goroutine without spawning any workers.
func ForEach[T any](ctx context.Context, items []T, opts Options, fn func(context.Context, T) error) error {
	if len(items) == 0 {
		return nil
	}
	if len(items) <= inlineThreshold {
		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, item); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	workers := opts.workers()
	if workers > len(items) {
		workers = len(items)
	}
	sem := make(chan struct{}, workers)

	for _, item := range items {
		item := item
		sem <- struct{}{}
		if gctx.Err() != nil {
			<-sem
			break
		}
		g.Go(func() error {
			defer func() { <-sem }()
			return fn(gctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Map calls fn once per item in items and collects the results in
// input order. Semantics otherwise match ForEach: small slices run
// inline, larger ones are spread across a bounded worker pool, and the
// first error aborts the remaining work.
func Map[T, R any](ctx context.Context, items []T, opts Options, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}

	err := ForEach(ctx, indices(len(items)), opts, func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
