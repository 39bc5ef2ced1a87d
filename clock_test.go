package cell_test

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rnkv/cell"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresOnceClockAdvances(t *testing.T) {
	mock := clock.NewMock()
	after := cell.After(mock, 10*time.Second)

	done := make(chan struct{})
	go func() {
		_, err := after(context.Background())
		require.NoError(t, err)
		close(done)
	}()

	// Give the goroutine a chance to register the timer before advancing.
	time.Sleep(10 * time.Millisecond)
	mock.Add(10 * time.Second)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("After did not fire once the mock clock advanced")
	}
}

func TestAfterCanLoseARaceToTheReadyBranch(t *testing.T) {
	mock := clock.NewMock()
	// The losing branch (a one-hour timer that never fires) must still exit
	// once the race is decided, or its goroutine would leak; canceling ctx
	// once we have our answer unblocks After's ctx.Done() case.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	either, err := cell.Race(ctx,
		func(context.Context) (string, error) { return "ready", nil },
		cell.After(mock, time.Hour),
	)
	require.NoError(t, err)

	left, _, isRight := either.Unpack()
	require.False(t, isRight)
	require.Equal(t, "ready", left)
}
