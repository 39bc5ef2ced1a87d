package cell

// Executor dispatches callbacks and computations without blocking the
// caller. It is the seam every [Cell] uses both to drain its own mailbox
// and to run the user-supplied computations passed to [Cell.SetAsync],
// [Cell.Race] and [Start].
//
// Submit must not block the caller for any significant time; it schedules f
// to run, it does not run f itself (though an implementation is free to run
// trivial bookkeeping inline before handing off).
type Executor interface {
	Submit(f func())
}

// GoExecutor submits every f on its own goroutine. It is the default
// [Executor] used when none is supplied.
type GoExecutor struct{}

// Submit runs f on a new goroutine.
func (GoExecutor) Submit(f func()) {
	go f()
}

// DefaultExecutor is the [Executor] used by [Create], [CreateOf] and the
// free [Race] combinator. [Start] always takes its Executor from the caller.
var DefaultExecutor Executor = GoExecutor{}

// PoolExecutor bounds the number of goroutines running concurrently to n,
// queuing extra work until a slot frees up. It is built from a buffered
// channel of tokens, the idiomatic Go shape of a semaphore.
type PoolExecutor struct {
	tokens chan struct{}
}

// NewPoolExecutor returns a [PoolExecutor] that runs at most n submitted
// functions concurrently. NewPoolExecutor panics if n is not positive.
func NewPoolExecutor(n int) *PoolExecutor {
	if n <= 0 {
		panic("cell: NewPoolExecutor: n must be positive")
	}
	return &PoolExecutor{tokens: make(chan struct{}, n)}
}

// Submit schedules f to run on a new goroutine once a slot is free. Submit
// itself never blocks; the wait for a free slot happens on the goroutine
// Submit spawns.
func (p *PoolExecutor) Submit(f func()) {
	go func() {
		p.tokens <- struct{}{}
		defer func() { <-p.tokens }()
		f()
	}()
}
