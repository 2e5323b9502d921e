package dom

import "github.com/frond-ui/frond/pkg/loop"

// Record describes one child-list mutation: nodes added to and removed
// from Target's direct child list. Subtree traversal of removed nodes
// is the consumer's job.
type Record struct {
	Target  *Node
	Added   []*Node
	Removed []*Node
}

// ObserveOptions selects what an observation reports. ChildList is the
// only mutation category; Subtree extends it to all descendants of the
// observed target.
type ObserveOptions struct {
	ChildList bool
	Subtree   bool
}

// Observer collects mutation records and delivers them in batches.
//
// Records accumulate as mutations happen; the first record queued after
// an empty queue schedules a delivery microtask on the observer's loop.
// The callback therefore never runs synchronously with the mutation
// that produced a record, and always sees every record produced by the
// current synchronous unit of work in report order.
type Observer struct {
	loop *loop.Loop
	cb   func([]Record)

	queue     []Record
	scheduled bool

	targets map[*Node]ObserveOptions
}

// watch is an observer registration stored on a target node.
type watch struct {
	obs       *Observer
	childList bool
	subtree   bool
}

// NewObserver creates an observer delivering batches via cb on l.
func NewObserver(l *loop.Loop, cb func([]Record)) *Observer {
	if l == nil {
		panic("dom: NewObserver requires a loop")
	}
	if cb == nil {
		panic("dom: NewObserver requires a callback")
	}
	return &Observer{
		loop:    l,
		cb:      cb,
		targets: make(map[*Node]ObserveOptions),
	}
}

// Observe starts reporting mutations under target. Observing a target
// already observed by this observer updates the options in place; it
// never creates a second record stream.
func (o *Observer) Observe(target *Node, opts ObserveOptions) {
	if target == nil {
		panic("dom: Observe called with nil target")
	}
	if _, ok := o.targets[target]; ok {
		o.targets[target] = opts
		for _, w := range target.watchers {
			if w.obs == o {
				w.childList = opts.ChildList
				w.subtree = opts.Subtree
			}
		}
		return
	}
	o.targets[target] = opts
	target.watchers = append(target.watchers, &watch{
		obs:       o,
		childList: opts.ChildList,
		subtree:   opts.Subtree,
	})
}

// Disconnect stops all observations and discards pending records.
func (o *Observer) Disconnect() {
	for target := range o.targets {
		kept := target.watchers[:0]
		for _, w := range target.watchers {
			if w.obs != o {
				kept = append(kept, w)
			}
		}
		target.watchers = kept
	}
	o.targets = make(map[*Node]ObserveOptions)
	o.queue = nil
}

// TakeRecords returns pending records and resets the queue without
// waiting for the delivery microtask.
func (o *Observer) TakeRecords() []Record {
	records := o.queue
	o.queue = nil
	return records
}

// enqueue appends a record and schedules delivery if the queue was
// empty.
func (o *Observer) enqueue(r Record) {
	o.queue = append(o.queue, r)
	if o.scheduled {
		return
	}
	o.scheduled = true
	o.loop.Microtask(o.deliver)
}

// deliver hands the batch to the callback. The queue is reset before
// the callback runs so mutations performed by the callback start a new
// batch.
func (o *Observer) deliver() {
	o.scheduled = false
	records := o.queue
	o.queue = nil
	if len(records) > 0 {
		o.cb(records)
	}
}

// recordChildList reports a child-list mutation at parent to every
// observer watching parent or, with subtree, any of its ancestors.
// An observer watching several covering targets still receives a
// single record per mutation.
func recordChildList(parent *Node, added, removed []*Node) {
	if len(added) == 0 && len(removed) == 0 {
		return
	}
	var seen map[*Observer]struct{}
	for node, first := parent, true; node != nil; node, first = node.parent, false {
		for _, w := range node.watchers {
			if !w.childList {
				continue
			}
			if !first && !w.subtree {
				continue
			}
			if _, dup := seen[w.obs]; dup {
				continue
			}
			if seen == nil {
				seen = make(map[*Observer]struct{}, 1)
			}
			seen[w.obs] = struct{}{}
			w.obs.enqueue(Record{Target: parent, Added: added, Removed: removed})
		}
	}
}
