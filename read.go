package cell

import "context"

// Get returns the Cell's value, awaiting the first set if it is still
// empty. If the computation that eventually set the Cell failed, Get
// returns that same error; the Cell is a transport, not a synthesizer of
// its own errors.
func (c *Cell[A]) Get(ctx context.Context) (A, error) {
	get, cancel := c.CancellableGet()
	a, err := get(ctx)
	if ctx.Err() != nil {
		// The context, not the computation, ended the wait: the read is
		// still pending on the Cell and must be torn down explicitly.
		cancel(context.Background())
	}
	return a, err
}

// CancellableGet allocates a waiter eagerly and returns a read handle bound
// to it plus a cancel handle. Calling the read handle behaves like [Get].
// Calling the cancel handle removes the pending read; a cancel issued after
// the read already fired is harmless and reports found=false.
//
// Canceling a read that already fired, or canceling twice, is idempotent:
// only the first Nevermind to reach the Cell can possibly report found=true.
func (c *Cell[A]) CancellableGet() (get func(ctx context.Context) (A, error), cancel func(ctx context.Context) bool) {
	id := newWaiterID()
	replyCh := make(chan readReply[A], 1)

	c.send(readMsg[A]{
		id: id,
		cb: func(o outcome[A], v uint64) { replyCh <- readReply[A]{o, v} },
	})

	get = func(ctx context.Context) (A, error) {
		var zero A
		select {
		case r := <-replyCh:
			return r.o.val, r.o.err
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	cancel = func(ctx context.Context) bool {
		foundCh := make(chan bool, 1)
		c.send(nevermindMsg{id: id, cb: func(found bool) { foundCh <- found }})
		select {
		case found := <-foundCh:
			return found
		case <-ctx.Done():
			return false
		}
	}

	return get, cancel
}

// AccessToken is the read half of a compare-and-set pair returned by
// [Cell.Access]. Set must be called at most once; the specification leaves
// further calls unspecified, and this package reports them via
// [ErrSetterConsumed] rather than silently racing against a stale version.
type AccessToken[A any] struct {
	// Value is the Cell's value at the moment of the read.
	Value A
	// Err is the Cell's stored error, if any, at the moment of the read.
	Err error

	cell     *Cell[A]
	version  uint64
	consumed bool
}

// Set attempts a compare-and-set against the version observed by the
// [Cell.Access] call that produced tok: it succeeds iff no Set or successful
// TrySet has linearized on the Cell since that read.
func (tok *AccessToken[A]) Set(ctx context.Context, val A, err error) (bool, error) {
	if tok.consumed {
		return false, ErrSetterConsumed
	}
	tok.consumed = true

	okCh := make(chan bool, 1)
	tok.cell.send(trySetMsg[A]{
		expected: tok.version,
		o:        outcome[A]{val: val, err: err},
		cb:       func(ok bool) { okCh <- ok },
	})

	select {
	case ok := <-okCh:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Access reads the Cell's current value together with a one-shot
// compare-and-set token, blocking until the first value if the Cell is
// still empty.
func (c *Cell[A]) Access(ctx context.Context) (*AccessToken[A], error) {
	id := newWaiterID()
	replyCh := make(chan readReply[A], 1)

	c.send(readMsg[A]{
		id: id,
		cb: func(o outcome[A], v uint64) { replyCh <- readReply[A]{o, v} },
	})

	select {
	case r := <-replyCh:
		return &AccessToken[A]{Value: r.o.val, Err: r.o.err, cell: c, version: r.v}, nil
	case <-ctx.Done():
		c.send(nevermindMsg{id: id, cb: func(bool) {}})
		return nil, ctx.Err()
	}
}
