// Package loop provides the single-threaded cooperative scheduler that
// frond UI code runs on.
//
// A Loop owns two queues: a task queue and a microtask queue. Tasks are
// discrete units of work (an event dispatch, a navigation); microtasks
// are deferred callbacks that run after the current task finishes and
// before the next task starts. Mutation-observer deliveries are
// scheduled as microtasks, which is why node cleanup is never
// synchronous with node removal.
//
// All UI code (element construction, event handlers, cell writes) is
// expected to run on the loop's thread. Post is the only method that
// is safe to call from other goroutines.
package loop
