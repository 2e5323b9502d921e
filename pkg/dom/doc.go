// Package dom implements the live document tree frond renders into.
//
// Unlike a virtual DOM, nodes here are the real UI state: tree
// mutations (AppendChild, RemoveChild, ReplaceChildren) take effect
// immediately and are observable through MutationObserver, which
// reports child-list changes in asynchronous batches delivered as
// microtasks on a loop.Loop.
//
// The package provides the two platform primitives the lifecycle
// subsystem depends on: a node/element model with event listeners, and
// subtree mutation observation with delivery-time connectivity queries
// (Node.IsConnected). Document nodes additionally carry the loop they
// are bound to and a hash Location the router follows.
package dom
