package cell

import "github.com/google/uuid"

// WaiterID identifies a pending read. Two WaiterIDs are equal iff they were
// produced by the same allocation; callers never construct one directly.
type WaiterID = uuid.UUID

func newWaiterID() WaiterID {
	return uuid.New()
}

// waiterMap is an insertion-ordered WaiterID -> callback mapping, used only
// from inside a Cell's drain loop. It generalizes the teacher's single
// caller-chosen Key() identifier (see Base.SetKey/Key) into a set of
// library-generated ids that must fire in the order they were registered.
type waiterMap[A any] struct {
	order []WaiterID
	cbs   map[WaiterID]func(outcome[A], uint64)
}

func newWaiterMap[A any]() *waiterMap[A] {
	return &waiterMap[A]{cbs: make(map[WaiterID]func(outcome[A], uint64))}
}

// insert appends id -> cb. A duplicate id replaces the previous callback in
// place, without disturbing insertion order (this never happens under
// normal operation since ids are freshly allocated per read).
func (m *waiterMap[A]) insert(id WaiterID, cb func(outcome[A], uint64)) {
	if _, exists := m.cbs[id]; !exists {
		m.order = append(m.order, id)
	}
	m.cbs[id] = cb
}

// remove deletes id, reporting whether it was present.
func (m *waiterMap[A]) remove(id WaiterID) bool {
	if _, ok := m.cbs[id]; !ok {
		return false
	}
	delete(m.cbs, id)
	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// len reports the number of pending waiters.
func (m *waiterMap[A]) len() int {
	return len(m.order)
}

// drain returns every registered callback in insertion order and clears the
// map. It is used exactly once, by the first successful Set/TrySet, per
// invariant I2 (waiters is always empty immediately after value becomes
// non-empty).
func (m *waiterMap[A]) drain() []func(outcome[A], uint64) {
	if len(m.order) == 0 {
		return nil
	}
	cbs := make([]func(outcome[A], uint64), 0, len(m.order))
	for _, id := range m.order {
		cbs = append(cbs, m.cbs[id])
	}
	m.order = nil
	m.cbs = make(map[WaiterID]func(outcome[A], uint64))
	return cbs
}
