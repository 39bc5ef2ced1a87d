package cell

import (
	"sync"
)

// outcome is the "Option<Result<A, Error>>" of the specification's data
// model, minus the Option: a *outcome[A] is nil while a Cell is empty, and
// holds either a value or an error once set.
type outcome[A any] struct {
	val A
	err error
}

// Cell is an asynchronous, single-assignment-with-updates reference cell.
// The zero value is not usable; construct one with [Create] or [CreateOf].
//
// A Cell's private fields below this point are touched only from inside
// drain, which is why they need no lock of their own: the queue mutex and
// the scheduled flag are the only pieces of shared-mutable state, and they
// protect nothing but message ordering.
type Cell[A any] struct {
	exec Executor

	mu        sync.Mutex
	queue     []any
	scheduled bool

	// Actor-private state. Only drain (and the handlers it calls) may touch
	// these fields.
	value   *outcome[A]
	version uint64
	waiters *waiterMap[A]
}

// Create returns a new, empty Cell that dispatches callbacks and
// computations through [DefaultExecutor].
func Create[A any]() *Cell[A] {
	return CreateWithExecutor[A](DefaultExecutor)
}

// CreateWithExecutor returns a new, empty Cell that dispatches callbacks and
// computations through exec.
func CreateWithExecutor[A any](exec Executor) *Cell[A] {
	return &Cell[A]{exec: exec, waiters: newWaiterMap[A]()}
}

// CreateOf returns a new Cell pre-set to a, via an asynchronous set: it
// returns once the set has been submitted, not necessarily once it has
// taken effect (use [Cell.SetSyncPure] plus [Create] if you need the
// stronger guarantee before returning).
func CreateOf[A any](a A) *Cell[A] {
	return CreateOfWithExecutor[A](DefaultExecutor, a)
}

// CreateOfWithExecutor is [CreateOf] with an explicit [Executor].
func CreateOfWithExecutor[A any](exec Executor, a A) *Cell[A] {
	c := CreateWithExecutor[A](exec)
	c.SetAsyncPure(a)
	return c
}

// readMsg asks for the current value, or registers cb to fire once a value
// arrives if the Cell is still empty.
type readMsg[A any] struct {
	id WaiterID
	cb func(outcome[A], uint64)
}

// readReply is the (value, version) pair delivered to a Read callback.
type readReply[A any] struct {
	o outcome[A]
	v uint64
}

// setMsg unconditionally assigns o as the Cell's new value.
type setMsg[A any] struct {
	o   outcome[A]
	ack chan<- struct{}
}

// trySetMsg assigns o only if the Cell's version still equals expected.
type trySetMsg[A any] struct {
	expected uint64
	o        outcome[A]
	cb       func(bool)
}

// nevermindMsg cancels a pending read registered under id.
type nevermindMsg struct {
	id WaiterID
	cb func(found bool)
}

// send enqueues msg and, if no drain is currently scheduled, submits one to
// the Cell's Executor. This is the non-leaking generalization of the
// teacher's Base.queue/Base.loop: a Cell with an empty mailbox owns no
// goroutine at all, instead of blocking one forever on a channel receive.
func (c *Cell[A]) send(msg any) {
	c.mu.Lock()
	c.queue = append(c.queue, msg)
	trigger := !c.scheduled
	if trigger {
		c.scheduled = true
	}
	c.mu.Unlock()

	if trigger {
		c.exec.Submit(c.drain)
	}
}

// drain processes every message currently in the mailbox, one at a time,
// then clears the scheduled flag. Only one drain can be active for a given
// Cell at a time: the scheduled flag guarantees that, giving invariant I4
// (exactly one actor handler mutates Cell state at a time) without any lock
// held across a handler body.
func (c *Cell[A]) drain() {
	for {
		c.mu.Lock()
		if len(c.queue) == 0 {
			c.scheduled = false
			c.mu.Unlock()
			return
		}
		msg := c.queue[0]
		c.queue[0] = nil
		c.queue = c.queue[1:]
		c.mu.Unlock()

		c.handle(msg)
	}
}

func (c *Cell[A]) handle(msg any) {
	switch m := msg.(type) {
	case readMsg[A]:
		logger.Debug("cell: read", "waiter", m.id)
		c.handleRead(m)
	case setMsg[A]:
		logger.Debug("cell: set")
		c.handleSet(m)
	case trySetMsg[A]:
		logger.Debug("cell: try-set", "expected", m.expected)
		c.handleTrySet(m)
	case nevermindMsg:
		logger.Debug("cell: nevermind", "waiter", m.id)
		c.handleNevermind(m)
	default:
		logger.Warn("cell: dropping message of unknown shape")
	}
}

func (c *Cell[A]) handleRead(m readMsg[A]) {
	if c.value == nil {
		c.waiters.insert(m.id, m.cb)
		return
	}
	o, v := *c.value, c.version
	c.exec.Submit(func() { m.cb(o, v) })
}

func (c *Cell[A]) handleSet(m setMsg[A]) {
	c.version++

	if c.value == nil {
		o, v := m.o, c.version
		for _, cb := range c.waiters.drain() {
			cb := cb
			c.exec.Submit(func() { cb(o, v) })
		}
	}

	c.value = &m.o

	if m.ack != nil {
		close(m.ack)
	}
}

func (c *Cell[A]) handleTrySet(m trySetMsg[A]) {
	if m.expected != c.version {
		m.cb(false)
		return
	}

	c.handleSet(setMsg[A]{o: m.o})
	m.cb(true)
}

func (c *Cell[A]) handleNevermind(m nevermindMsg) {
	found := c.waiters.remove(m.id)
	m.cb(found)
}

