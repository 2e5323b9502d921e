package lifecycle

import (
	"runtime"
	"weak"

	"github.com/frond-ui/frond/pkg/dom"
)

// registry associates nodes with pending cleanup callbacks. The
// association is non-retaining: entries are keyed by weak pointer and
// evicted when the node is garbage collected, so bookkeeping never
// keeps an otherwise unreferenced node alive.
//
// The mutex exists only because GC eviction runs off the UI thread;
// all other access happens on the loop.
type registry struct {
	entries map[weak.Pointer[dom.Node]]*entry
}

type entry struct {
	fns []func()
}

func newRegistry() *registry {
	return &registry{entries: make(map[weak.Pointer[dom.Node]]*entry)}
}

// add associates fn with node. Multiple calls accumulate callbacks; an
// entry is created on first registration and deleted either by
// runAndClear or by GC eviction.
func (lc *Lifecycle) add(node *dom.Node, fn func()) {
	key := weak.Make(node)

	lc.mu.Lock()
	defer lc.mu.Unlock()

	e := lc.reg.entries[key]
	if e == nil {
		e = &entry{}
		lc.reg.entries[key] = e
		// The eviction closure must not reference node, only its key.
		runtime.AddCleanup(node, func(k weak.Pointer[dom.Node]) {
			lc.mu.Lock()
			delete(lc.reg.entries, k)
			lc.mu.Unlock()
		}, key)
	}
	e.fns = append(e.fns, fn)
}

// runAndClear takes a snapshot of node's cleanups, deletes the entry
// first (cleanups that re-register on the same node start a fresh
// entry and are neither lost nor double-run), then invokes each
// callback with panic recovery. Returns how many callbacks ran and how
// many panicked. A node with no entry is a no-op.
func (lc *Lifecycle) runAndClear(node *dom.Node) (ran, recovered int) {
	key := weak.Make(node)

	lc.mu.Lock()
	e := lc.reg.entries[key]
	delete(lc.reg.entries, key)
	lc.mu.Unlock()

	if e == nil {
		return 0, 0
	}
	for _, fn := range e.fns {
		ran++
		if !runCleanup(fn) {
			recovered++
		}
	}
	return ran, recovered
}

// runCleanup reports whether fn completed without panicking. A panic
// is swallowed so one failing cleanup does not block the others; the
// core never logs it.
func runCleanup(fn func()) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	fn()
	return true
}
