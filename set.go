package cell

import "context"

// SetAsync submits fn to the Cell's [Executor] and returns once submission
// has happened, not once fn has run or its result has been set. A panic
// inside fn is recovered and stored as the Cell's failed value instead of
// crashing the goroutine it runs on.
func (c *Cell[A]) SetAsync(ctx context.Context, fn func(context.Context) (A, error)) {
	c.exec.Submit(func() {
		a, err := recoverComputation(func() (A, error) { return fn(ctx) })
		c.send(setMsg[A]{o: outcome[A]{val: a, err: err}})
	})
}

// SetAsyncPure is SetAsync(ctx, fn) for an fn that always returns a with no
// error.
func (c *Cell[A]) SetAsyncPure(a A) {
	c.exec.Submit(func() {
		c.send(setMsg[A]{o: outcome[A]{val: a}})
	})
}

// SetSync runs fn and blocks until the resulting Set has taken effect: any
// [Cell.Get] issued after SetSync returns observes a version at or above
// this set's version. SetSync itself does not surface fn's error to the
// caller — the error, if any, becomes the Cell's stored value, exactly as
// with [Cell.SetAsync].
func (c *Cell[A]) SetSync(ctx context.Context, fn func(context.Context) (A, error)) error {
	a, err := recoverComputation(func() (A, error) { return fn(ctx) })

	ack := make(chan struct{})
	c.send(setMsg[A]{o: outcome[A]{val: a, err: err}, ack: ack})

	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetSyncPure is SetSync(ctx, fn) for an fn that always returns a with no
// error.
func (c *Cell[A]) SetSyncPure(ctx context.Context, a A) error {
	return c.SetSync(ctx, func(context.Context) (A, error) { return a, nil })
}
