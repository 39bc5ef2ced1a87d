package cell

import "context"

// Start forks fn on exec and returns a read handle that any number of
// callers may await. fn runs exactly once; its result is broadcast to every
// caller of the returned function, including those that call it after fn
// has already finished.
func Start[A any](ctx context.Context, exec Executor, fn func(context.Context) (A, error)) func(ctx context.Context) (A, error) {
	c := CreateWithExecutor[A](exec)

	exec.Submit(func() {
		a, err := recoverComputation(func() (A, error) { return fn(ctx) })
		c.send(setMsg[A]{o: outcome[A]{val: a, err: err}})
	})

	return c.Get
}
