// Package lifecycle ties reactive subscriptions to the document tree.
//
// UI code that builds nodes and subscribes them to cells registers a
// cleanup (typically the unsubscribe handle) against the node with
// OnRemove. A shared mutation observation watches every mounted root;
// when a batch of child-list changes is delivered, nodes that are no
// longer connected to a document — checked at delivery time, so a node
// moved elsewhere in the tree is left alone — have their cleanups run,
// exactly once, for the node and every descendant.
//
// Cleanup is never synchronous with removal: at least one microtask
// flush must elapse between removing a node and its cleanups running.
//
// A Lifecycle is an explicit state object so tests can build isolated
// instances; the package-level Default instance and the Mount/OnRemove
// package functions cover the common single-UI case. Neither has a
// teardown: they live for the process lifetime.
package lifecycle
