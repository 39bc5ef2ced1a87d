package cell_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rnkv/cell"
	"github.com/stretchr/testify/require"
)

func TestPoolExecutorBoundsConcurrency(t *testing.T) {
	const limit = 3
	exec := cell.NewPoolExecutor(limit)

	var running atomic.Int32
	var maxRunning atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		exec.Submit(func() {
			defer wg.Done()
			n := running.Add(1)
			for {
				m := maxRunning.Load()
				if n <= m || maxRunning.CompareAndSwap(m, n) {
					break
				}
			}
			running.Add(-1)
		})
	}
	wg.Wait()

	require.LessOrEqual(t, int(maxRunning.Load()), limit)
}

func TestPoolExecutorPanicsOnNonPositiveN(t *testing.T) {
	require.Panics(t, func() { cell.NewPoolExecutor(0) })
}
