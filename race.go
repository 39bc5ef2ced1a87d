package cell

import (
	"context"
	"sync/atomic"
)

// Race runs f1 and f2 through the Cell's [Executor] and sets the Cell to
// whichever finishes first. The loser's result is discarded; if the loser
// fails after losing, that failure is silently dropped too, matching the
// specification's error taxonomy (the Cell never synthesizes an error of
// its own, and a losing branch's error is simply not a value anyone
// observes).
//
// Race returns as soon as both computations have been submitted, before
// either has finished or the winning Set has been sent; call [Cell.Get] to
// observe the result.
func (c *Cell[A]) Race(ctx context.Context, f1, f2 func(context.Context) (A, error)) {
	var won atomic.Bool
	actorRef := &atomic.Pointer[Cell[A]]{}
	actorRef.Store(c)

	finish := func(a A, err error) {
		if !won.CompareAndSwap(false, true) {
			return
		}
		// Sever the winner's reference to the Cell so that, once the loser
		// (which still holds its own copy of actorRef through this same
		// closure) finishes and finds actorRef already nil, nothing keeps
		// the Cell reachable through this call besides external readers.
		// See the specification's "cyclic reference in race" design note.
		target := actorRef.Swap(nil)
		if target == nil {
			return
		}
		target.send(setMsg[A]{o: outcome[A]{val: a, err: err}})
	}

	c.exec.Submit(func() {
		a, err := recoverComputation(func() (A, error) { return f1(ctx) })
		finish(a, err)
	})
	c.exec.Submit(func() {
		a, err := recoverComputation(func() (A, error) { return f2(ctx) })
		finish(a, err)
	})
}

// Either holds exactly one of a left A or a right B value, used by the free
// [Race] combinator to report which of its two computations won.
type Either[A, B any] struct {
	isRight bool
	left    A
	right   B
}

// Left wraps a as the left case of an Either.
func Left[A, B any](a A) Either[A, B] {
	return Either[A, B]{left: a}
}

// Right wraps b as the right case of an Either.
func Right[A, B any](b B) Either[A, B] {
	return Either[A, B]{isRight: true, right: b}
}

// Unpack returns (a, b, isRight): exactly one of a, b is meaningful,
// selected by isRight.
func (e Either[A, B]) Unpack() (A, B, bool) {
	return e.left, e.right, e.isRight
}

// Race runs fa and fb concurrently and returns whichever completes first,
// wrapped in [Either]. It allocates a private Cell for the duration of the
// race; see [Cell.Race] for the winner-sets mechanics.
func Race[A, B any](ctx context.Context, fa func(context.Context) (A, error), fb func(context.Context) (B, error)) (Either[A, B], error) {
	c := Create[Either[A, B]]()

	left := func(ctx context.Context) (Either[A, B], error) {
		a, err := fa(ctx)
		return Left[A, B](a), err
	}
	right := func(ctx context.Context) (Either[A, B], error) {
		b, err := fb(ctx)
		return Right[A, B](b), err
	}

	c.Race(ctx, left, right)
	return c.Get(ctx)
}
