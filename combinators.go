package cell

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RefOf is a trivial alias for [CreateOf], named after the specification's
// refOf helper.
func RefOf[A any](a A) *Cell[A] {
	return CreateOf(a)
}

// ParallelTraverse forks f(item) for every item in items via [Start], then
// collects every result in input order. If any invocation returns an error,
// ParallelTraverse returns the first such error to occur (in completion
// order, not item order); the other forked computations are not canceled,
// matching the
// specification's stance that only reads, never running computations, are
// cancellable.
func ParallelTraverse[T, R any](ctx context.Context, exec Executor, items []T, f func(context.Context, T) (R, error)) ([]R, error) {
	gets := make([]func(context.Context) (R, error), len(items))
	for i, item := range items {
		item := item
		gets[i] = Start(ctx, exec, func(ctx context.Context) (R, error) { return f(ctx, item) })
	}

	results := make([]R, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, get := range gets {
		i, get := i, get
		g.Go(func() error {
			r, err := get(gctx)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParallelSequence is [ParallelTraverse] with the identity function: it
// forks every action and collects their results in order.
func ParallelSequence[T any](ctx context.Context, exec Executor, actions []func(context.Context) (T, error)) ([]T, error) {
	return ParallelTraverse(ctx, exec, actions, func(ctx context.Context, action func(context.Context) (T, error)) (T, error) {
		return action(ctx)
	})
}

// Join awaits outer, then awaits the read handle it produced. It is a
// trivial composition kept for callers migrating away from nested
// [Start] calls.
//
// Deprecated: compose the two Get calls directly instead of going through
// Join.
func Join[A any](ctx context.Context, outer func(context.Context) (func(context.Context) (A, error), error)) (A, error) {
	inner, err := outer(ctx)
	if err != nil {
		var zero A
		return zero, err
	}
	return inner(ctx)
}
