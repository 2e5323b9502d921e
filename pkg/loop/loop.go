package loop

import "context"

// Default is the process-wide loop used when no explicit loop is
// provided. It exists for the common single-UI case; tests construct
// their own instances with New.
var Default = New()

// Loop is a single-threaded cooperative scheduler with browser-style
// task/microtask semantics.
//
// Methods other than Post must be called from the loop's thread: either
// from inside a callback the loop itself invoked, or from the goroutine
// that is driving the loop via Do or Run.
type Loop struct {
	// tasks is the macrotask queue. Buffered so Post never blocks the
	// producing goroutine under normal load.
	tasks chan func()

	// micro is the microtask queue, drained to empty after every task.
	micro []func()
}

// New creates a Loop with an empty task and microtask queue.
func New() *Loop {
	return &Loop{
		tasks: make(chan func(), 256),
	}
}

// Post queues fn as a task. The task runs when the loop next turns
// (via Run), followed by a full microtask drain. Safe to call from any
// goroutine.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.tasks <- fn
}

// Microtask queues fn onto the microtask queue. It runs after the
// current synchronous unit of work, before the next task. Microtasks
// queued while draining run in the same drain, FIFO.
func (l *Loop) Microtask(fn func()) {
	if fn == nil {
		return
	}
	l.micro = append(l.micro, fn)
}

// Flush drains the microtask queue to empty, including microtasks
// queued by microtasks. Code that mutated the tree outside a dispatched
// task calls Flush to let deferred deliveries (and therefore cleanup)
// run.
func (l *Loop) Flush() {
	for len(l.micro) > 0 {
		fn := l.micro[0]
		l.micro = l.micro[0:copy(l.micro, l.micro[1:])]
		fn()
	}
}

// Do runs fn synchronously as one task and then drains microtasks.
// This is how event dispatch and tests enter the loop without a
// running pump.
func (l *Loop) Do(fn func()) {
	fn()
	l.Flush()
}

// Run pumps posted tasks until ctx is done. Each task is followed by a
// microtask drain. Returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			l.Do(fn)
		}
	}
}
