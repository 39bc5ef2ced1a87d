package cell

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// ErrSetterConsumed is returned by an access setter (see [Cell.Access]) when
// it is invoked a second time. Only the first call is meaningful; reuse is
// unspecified behavior, and this package chooses to report it rather than
// silently racing against a stale version.
var ErrSetterConsumed = fmt.Errorf("cell: access setter already used")

// recoverComputation runs fn and converts a panic into an error carrying a
// stack trace instead of letting it cross the goroutine boundary, the same defensive
// boundary the teacher draws around user-supplied task functions.
func recoverComputation[A any](fn func() (A, error)) (a A, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerrors.Wrap(fmt.Errorf("cell: user computation panicked: %v", r), 1)
		}
	}()
	return fn()
}
