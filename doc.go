// Package cell provides an asynchronous, single-assignment-with-updates
// reference cell.
//
// A [Cell] starts out empty. Readers that call [Cell.Get] before the first
// value is set park until that value arrives; once a Cell holds a value, it
// can be reassigned any number of times through [Cell.SetAsync],
// [Cell.SetSync], [TryModify] and [Modify]. The Cell keeps an internal
// version that increases with each reassignment; [Cell.Access] uses it to
// make its compare-and-set fail if another assignment intervened.
//
// # Actor Model
//
// A Cell is an actor: its private state (value, version, waiters) is only
// ever touched by a single goroutine at a time, the one currently draining
// the Cell's mailbox. Callers never see or lock this state directly; they
// send one of four message shapes (read, set, compare-and-set, cancel-read)
// and get a reply back over a channel. Unlike a conventional actor, a Cell
// does not pin a goroutine to itself for its whole lifetime: the drain
// goroutine exists only while the mailbox is non-empty, and is resubmitted
// to the Cell's [Executor] on demand. A Cell that nobody is talking to holds
// no goroutine and can be garbage collected like any other value.
//
// # Race and Start
//
// [Race] runs two computations and returns whichever finishes first,
// severing the loser's reference to the private Cell it races on so the
// Cell can be collected even while the loser keeps running. [Start] forks a
// computation in the background and returns a read handle that any number
// of callers can await; the computation itself runs exactly once and its
// result is broadcast to every reader.
//
// # What This Package Does Not Do
//
// There is no persistence, no multi-process coordination, and no fairness
// guarantee between waiters beyond the order they registered in. Timeouts
// are not a Cell concept; compose [Race] with [After] instead.
package cell
