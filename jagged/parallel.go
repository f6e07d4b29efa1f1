// SPDX-License-Identifier: MIT

package jagged

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForEachRowParallel calls fn once for every row on a bounded set of goroutines.
// MAIN DESCRIPTION:
//   - Rows are disjoint buffer ranges, so fn may write to its own row without
//     any locking. Writing to another row from fn is a data race.
//
// Implementation:
//   - Stage 1: resolve limit (<= 0 means GOMAXPROCS).
//   - Stage 2: schedule rows in index order on an errgroup with SetLimit.
//   - Stage 3: stop scheduling on the first error or on ctx cancellation.
//
// Inputs:
//   - ctx: cancels scheduling and is passed (derived) to fn.
//   - limit: maximum number of concurrent fn calls.
//   - fn: receives the row index and the row view.
//
// Returns:
//   - the first error returned by fn, or ctx's error if ctx was cancelled
//     before every row was scheduled; nil otherwise.
//
// Complexity:
//   - Time O(total / limit) plus fn cost, Space O(limit).
func (a *Array[T]) ForEachRowParallel(ctx context.Context, limit int, fn func(ctx context.Context, i int, row []T) error) error {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	n := a.Rows()
	stopped := false
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			stopped = true

			break
		}
		row := a.view(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn(gctx, i, row)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if stopped {
		return ctx.Err()
	}

	return nil
}
