package cell

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// After returns a computation that completes with struct{} once d has
// elapsed on clk, or with ctx's error if ctx is canceled first. It exists so
// that the §5 "Timeouts" pattern in the specification, race(get, after(t)),
// is expressible without this package implementing a timer service of its
// own: After is a thin wrapper over [clock.Clock], not a scheduler.
//
// Tests that need deterministic timing should pass a [clock.NewMock] clock
// and advance it explicitly instead of sleeping.
func After(clk clock.Clock, d time.Duration) func(ctx context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		timer := clk.Timer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			return struct{}{}, nil
		case <-ctx.Done():
			return struct{}{}, ctx.Err()
		}
	}
}
