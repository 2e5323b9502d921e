package reactive

import (
	"sync"
	"sync/atomic"
)

// subIDs is the source of unique subscription identifiers. IDs are
// monotonically increasing and never reused.
var subIDs atomic.Uint64

func nextID() uint64 {
	return subIDs.Add(1)
}

type subscriber struct {
	id uint64
	fn func()
}

// Cell is a reactive value container: a boxed value plus a set of
// no-argument subscriber callbacks invoked on change. A Cell has no
// owner and lives as long as anything references it.
type Cell[T any] struct {
	mu    sync.Mutex
	value T

	// subs is kept in registration order; notification iterates a
	// snapshot of it, so the order is stable across a pass.
	subs []subscriber
}

// NewCell creates a cell holding the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value. No side effects.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores next and notifies subscribers, unless next is identical
// to the current value under same-value identity, in which case
// nothing is stored, nobody is notified, and the previous value is
// returned. On change, Set returns the new value after the
// notification pass completes.
func (c *Cell[T]) Set(next T) T {
	return c.commit(func(T) T { return next })
}

// Update computes the next value from the current one and commits it
// with Set semantics: an updater returning a value identical to the
// current one triggers no notification.
func (c *Cell[T]) Update(fn func(T) T) T {
	return c.commit(fn)
}

func (c *Cell[T]) commit(fn func(T) T) T {
	c.mu.Lock()
	prev := c.value
	c.mu.Unlock()

	// The updater runs outside the lock, so it may read the cell.
	next := fn(prev)

	c.mu.Lock()
	if sameValue(c.value, next) {
		cur := c.value
		c.mu.Unlock()
		return cur
	}
	c.value = next

	// Snapshot before notifying: subscribers added or removed during
	// the pass do not affect it.
	snapshot := make([]subscriber, len(c.subs))
	copy(snapshot, c.subs)
	c.mu.Unlock()

	for _, s := range snapshot {
		notify(s.fn)
	}
	return next
}

// notify invokes one subscriber, discarding a panic so a failing
// subscriber does not prevent the rest of the snapshot from running.
// The cell itself never logs.
func notify(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// Subscribe registers fn for future change notifications and returns
// an idempotent detachment handle: calling it twice, or after the
// subscription was already removed, is a no-op. Each call registers a
// distinct subscription keyed by a process-unique id, so the set never
// holds duplicates of one registration.
func (c *Cell[T]) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		panic("reactive: Subscribe with nil callback")
	}
	id := nextID()

	c.mu.Lock()
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}
