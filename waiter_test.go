package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaiterMapPreservesInsertionOrder(t *testing.T) {
	m := newWaiterMap[int]()

	var fired []int
	ids := make([]WaiterID, 3)
	for i := range ids {
		i := i
		ids[i] = newWaiterID()
		m.insert(ids[i], func(o outcome[int], v uint64) { fired = append(fired, i) })
	}

	for _, cb := range m.drain() {
		cb(outcome[int]{}, 0)
	}

	require.Equal(t, []int{0, 1, 2}, fired)
	require.Equal(t, 0, m.len())
}

func TestWaiterMapRemove(t *testing.T) {
	m := newWaiterMap[int]()

	id1 := newWaiterID()
	id2 := newWaiterID()
	m.insert(id1, func(outcome[int], uint64) {})
	m.insert(id2, func(outcome[int], uint64) {})

	require.True(t, m.remove(id1))
	require.False(t, m.remove(id1))
	require.Equal(t, 1, m.len())

	var fired []WaiterID
	for _, cb := range m.drain() {
		_ = cb
		fired = append(fired, id2)
	}
	require.Equal(t, []WaiterID{id2}, fired)
}

func TestWaiterMapDuplicateInsertReplacesCallbackKeepsOrder(t *testing.T) {
	m := newWaiterMap[int]()

	id := newWaiterID()
	other := newWaiterID()

	m.insert(id, func(outcome[int], uint64) {})
	m.insert(other, func(outcome[int], uint64) {})

	called := false
	m.insert(id, func(outcome[int], uint64) { called = true })

	require.Equal(t, []WaiterID{id, other}, m.order)

	cbs := m.drain()
	cbs[0](outcome[int]{}, 0)
	require.True(t, called)
}
