package cell

import "context"

// TryModify makes a single compare-and-set attempt: it reads the Cell,
// applies f, and tries to install the result. It returns nil, nil if the
// attempt lost the race (some other Set or TrySet linearized first); it
// does not retry and does not re-read, by design (see [Modify] for the
// retrying version).
//
// If f returns a non-nil error, that error is returned immediately and the
// Cell is left untouched — f's error never reaches the Cell as a stored
// value, unlike an error returned to [Cell.SetAsync].
func TryModify[A any](ctx context.Context, c *Cell[A], f func(A) (A, error)) (*Change[A], error) {
	tok, err := c.Access(ctx)
	if err != nil {
		return nil, err
	}
	if tok.Err != nil {
		return nil, tok.Err
	}

	prev := tok.Value
	now, err := f(prev)
	if err != nil {
		return nil, err
	}

	ok, err := tok.Set(ctx, now, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &Change[A]{Previous: prev, Now: now}, nil
}

// Modify retries [TryModify] until it succeeds. f must be safe to invoke
// more than once, since contention can cause any number of failed attempts
// before one finally wins.
func Modify[A any](ctx context.Context, c *Cell[A], f func(A) (A, error)) (*Change[A], error) {
	for {
		change, err := TryModify(ctx, c, f)
		if err != nil {
			return nil, err
		}
		if change != nil {
			return change, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
}

// TryModify2 is [TryModify] for a function that also returns an auxiliary
// value B alongside the Cell's next value. It exists as a free function,
// rather than a second method on [Cell], because a method on a generic type
// cannot introduce a further type parameter.
func TryModify2[A, B any](ctx context.Context, c *Cell[A], f func(A) (A, B, error)) (*Change[A], B, error) {
	var zero B

	tok, err := c.Access(ctx)
	if err != nil {
		return nil, zero, err
	}
	if tok.Err != nil {
		return nil, zero, tok.Err
	}

	prev := tok.Value
	now, b, err := f(prev)
	if err != nil {
		return nil, zero, err
	}

	ok, err := tok.Set(ctx, now, nil)
	if err != nil {
		return nil, zero, err
	}
	if !ok {
		return nil, zero, nil
	}
	return &Change[A]{Previous: prev, Now: now}, b, nil
}

// Modify2 retries [TryModify2] until it succeeds.
func Modify2[A, B any](ctx context.Context, c *Cell[A], f func(A) (A, B, error)) (*Change[A], B, error) {
	var zero B
	for {
		change, b, err := TryModify2(ctx, c, f)
		if err != nil {
			return nil, zero, err
		}
		if change != nil {
			return change, b, nil
		}
		if ctx.Err() != nil {
			return nil, zero, ctx.Err()
		}
	}
}
