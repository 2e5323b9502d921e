package lifecycle

import (
	"fmt"
	"sync"

	"github.com/frond-ui/frond/pkg/dom"
	"github.com/frond-ui/frond/pkg/loop"
)

// Default is the process-wide lifecycle, observing on loop.Default.
// It is created at init and never torn down.
var Default = New(loop.Default)

// Lifecycle bundles the unmount registry, the tree-removal detector,
// and the mounted-root set. One instance owns one mutation observation
// shared by every root mounted through it.
type Lifecycle struct {
	loop *loop.Loop
	obs  *dom.Observer

	mu  sync.Mutex
	reg *registry

	// roots guarantees at most one observation registration per root.
	// It is never cleared; there is no whole-app unmount.
	roots map[*dom.Node]struct{}

	hooks []Hook
}

// New creates an isolated lifecycle delivering cleanup on l.
func New(l *loop.Loop) *Lifecycle {
	lc := &Lifecycle{
		loop:  l,
		reg:   newRegistry(),
		roots: make(map[*dom.Node]struct{}),
	}
	lc.obs = dom.NewObserver(l, lc.processBatch)
	return lc
}

// Loop returns the loop cleanup is delivered on.
func (lc *Lifecycle) Loop() *loop.Loop { return lc.loop }

// OnRemove registers fn to run when node is detected as permanently
// removed from the document. Callbacks accumulate; they are consumed
// exactly once, when the detector confirms the node disconnected.
func (lc *Lifecycle) OnRemove(node *dom.Node, fn func()) {
	if node == nil {
		panic("lifecycle: OnRemove with nil node")
	}
	if fn == nil {
		panic("lifecycle: OnRemove with nil cleanup")
	}
	lc.add(node, fn)
}

// Mount replaces root's children with content and idempotently starts
// observing root for removals. content is either a *dom.Node or a
// func() *dom.Node producer, invoked once.
//
// The replace is destructive: prior content becomes subject to
// removal-driven cleanup once the detector observes the replacement.
// Mounting the same root again never registers a second observation.
func (lc *Lifecycle) Mount(root *dom.Node, content any) {
	if root == nil {
		panic("lifecycle: Mount with nil root")
	}
	var node *dom.Node
	switch v := content.(type) {
	case *dom.Node:
		node = v
	case func() *dom.Node:
		node = v()
	default:
		panic(fmt.Sprintf("lifecycle: Mount content must be *dom.Node or func() *dom.Node, got %T", content))
	}
	if node == nil {
		panic("lifecycle: Mount content produced a nil node")
	}

	for _, h := range lc.hooks {
		if done := h.MountStarted(root); done != nil {
			defer done()
		}
	}

	// Observe before replacing so the replacement itself is the first
	// thing the detector sees for this root.
	if _, ok := lc.roots[root]; !ok {
		lc.obs.Observe(root, dom.ObserveOptions{ChildList: true, Subtree: true})
		lc.roots[root] = struct{}{}
	}
	root.ReplaceChildren(node)
}

// Use installs a hook observing detector and mount activity. The core
// itself stays silent; hooks are how telemetry sees batches.
func (lc *Lifecycle) Use(h Hook) {
	if h != nil {
		lc.hooks = append(lc.hooks, h)
	}
}

// Mount mounts content into root via the Default lifecycle.
func Mount(root *dom.Node, content any) {
	Default.Mount(root, content)
}

// OnRemove registers a cleanup via the Default lifecycle.
func OnRemove(node *dom.Node, fn func()) {
	Default.OnRemove(node, fn)
}
