package dom

import "sync/atomic"

// Event is dispatched against a node and bubbles toward the root.
type Event struct {
	Type   string
	Target *Node
	Data   any

	// node is the node whose listeners are currently being invoked.
	node    *Node
	stopped bool
}

// CurrentTarget returns the node whose listener is being invoked.
func (e *Event) CurrentTarget() *Node { return e.node }

// StopPropagation prevents the event from bubbling past the current
// node. Listeners already snapshotted on the current node still run.
func (e *Event) StopPropagation() { e.stopped = true }

// Handler is an event callback.
type Handler func(*Event)

type listener struct {
	id uint64
	fn Handler
}

var listenerIDs atomic.Uint64

// AddEventListener registers fn for events of the given type and
// returns a removal handle. The handle is idempotent: calling it twice,
// or after the listener was already removed, is a no-op.
func (n *Node) AddEventListener(typ string, fn Handler) (remove func()) {
	if fn == nil {
		panic("dom: AddEventListener with nil handler")
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]*listener)
	}
	l := &listener{id: listenerIDs.Add(1), fn: fn}
	n.listeners[typ] = append(n.listeners[typ], l)

	return func() {
		ls := n.listeners[typ]
		for i, cand := range ls {
			if cand.id == l.id {
				n.listeners[typ] = append(ls[:i], ls[i+1:]...)
				return
			}
		}
	}
}

// DispatchEvent delivers an event of the given type, bubbling from n
// to the root. Listeners on each node are snapshotted before
// invocation, so listeners added or removed during dispatch do not
// affect the current pass.
func (n *Node) DispatchEvent(typ string, data any) {
	evt := &Event{Type: typ, Target: n, Data: data}
	for node := n; node != nil; node = node.parent {
		ls := node.listeners[typ]
		if len(ls) == 0 {
			continue
		}
		snapshot := make([]*listener, len(ls))
		copy(snapshot, ls)
		evt.node = node
		for _, l := range snapshot {
			l.fn(evt)
		}
		if evt.stopped {
			return
		}
	}
}
