package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Parallel3 runs three upstream calls at once and returns their results or
// the first error. The context given to the calls is cancelled as soon as
// one fails, and no partial results are returned.
func Parallel3[A, B, C any](
	ctx context.Context,
	fa func(context.Context) (A, error),
	fb func(context.Context) (B, error),
	fc func(context.Context) (C, error),
) (A, B, C, error) {
	var (
		a A
		b B
		c C
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(into(gctx, fa, &a))
	g.Go(into(gctx, fb, &b))
	g.Go(into(gctx, fc, &c))

	if err := g.Wait(); err != nil {
		var (
			zeroA A
			zeroB B
			zeroC C
		)

		return zeroA, zeroB, zeroC, err
	}

	return a, b, c, nil
}

// into adapts fn to an errgroup task storing its value in dst on success.
func into[T any](ctx context.Context, fn func(context.Context) (T, error), dst *T) func() error {
	return func() error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}

		*dst = v

		return nil
	}
}

// PartialResult is one call's outcome in a batch where failures are independent.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ParallelPartialLimit runs fns with at most limit in flight. A failure does
// not cancel the rest. Results keep the order of fns.
func ParallelPartialLimit[T any](
	ctx context.Context,
	limit int,
	fns ...func(context.Context) (T, error),
) []PartialResult[T] {
	results := make([]PartialResult[T], len(fns))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))

	for i, fn := range fns {
		g.Go(func() error {
			v, err := fn(ctx)
			results[i] = PartialResult[T]{Value: v, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}
