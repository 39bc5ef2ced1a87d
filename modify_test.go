package cell_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rnkv/cell"
	"github.com/stretchr/testify/require"
)

func TestModifyRetriesUntilSuccess(t *testing.T) {
	ctx := context.Background()
	c := cell.CreateOf(0)

	const n = 1000

	changes := make(chan cell.Change[int], n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			change, err := cell.Modify(ctx, c, func(v int) (int, error) { return v + 1, nil })
			require.NoError(t, err)
			changes <- *change
		}()
	}
	wg.Wait()
	close(changes)

	final, err := c.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, n, final)

	seen := make(map[int]bool, n)
	for change := range changes {
		require.Equal(t, change.Previous+1, change.Now)
		require.False(t, seen[change.Now], "duplicate Change.Now observed: %d", change.Now)
		seen[change.Now] = true
	}
	require.Len(t, seen, n)
}

func TestTryModifySingleAttemptOnFreshCell(t *testing.T) {
	ctx := context.Background()
	c := cell.CreateOf(10)

	change, err := cell.TryModify(ctx, c, func(v int) (int, error) { return v * 2, nil })
	require.NoError(t, err)
	require.NotNil(t, change)
	require.Equal(t, 10, change.Previous)
	require.Equal(t, 20, change.Now)
}

func TestModifySurfacesFunctionErrorWithoutAssigning(t *testing.T) {
	ctx := context.Background()
	c := cell.CreateOf(10)

	boom := context.Canceled
	_, err := cell.Modify(ctx, c, func(v int) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)

	v, err := c.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, v)
}

func TestModify2ReturnsAuxiliaryValue(t *testing.T) {
	ctx := context.Background()
	c := cell.CreateOf(1)

	change, doubled, err := cell.Modify2(ctx, c, func(v int) (int, int, error) {
		return v + 1, v * 2, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, change.Previous)
	require.Equal(t, 2, change.Now)
	require.Equal(t, 2, doubled)
}

func TestChangeModified(t *testing.T) {
	same := cell.Change[int]{Previous: 1, Now: 1}
	diff := cell.Change[int]{Previous: 1, Now: 2}

	eq := func(a, b int) bool { return a == b }
	require.False(t, same.Modified(eq))
	require.True(t, diff.Modified(eq))
}
