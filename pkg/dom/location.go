package dom

import "github.com/frond-ui/frond/pkg/loop"

// Location is the hash portion of a document's address. The router
// subscribes to it and drivers (anchor clicks, history integrations)
// set it; changes are committed on the document's loop.
type Location struct {
	loop *loop.Loop
	hash string
	subs []*hashListener
}

type hashListener struct {
	id uint64
	fn func(hash string)
}

func newLocation(l *loop.Loop) *Location {
	return &Location{loop: l}
}

// Hash returns the current hash. A fresh document starts with "".
func (loc *Location) Hash() string { return loc.hash }

// SetHash queues a hash change on the loop. When the queued microtask
// runs, the new value is compared against the hash current at that
// point; if unchanged nothing happens, otherwise the hash is stored
// and every subscriber is notified with the new value.
func (loc *Location) SetHash(hash string) {
	loc.loop.Microtask(func() {
		if hash == loc.hash {
			return
		}
		loc.hash = hash
		snapshot := make([]*hashListener, len(loc.subs))
		copy(snapshot, loc.subs)
		for _, s := range snapshot {
			s.fn(hash)
		}
	})
}

// OnHashChange registers fn for hash changes and returns an
// idempotent removal handle.
func (loc *Location) OnHashChange(fn func(hash string)) (remove func()) {
	if fn == nil {
		panic("dom: OnHashChange with nil handler")
	}
	l := &hashListener{id: listenerIDs.Add(1), fn: fn}
	loc.subs = append(loc.subs, l)

	return func() {
		for i, cand := range loc.subs {
			if cand.id == l.id {
				loc.subs = append(loc.subs[:i], loc.subs[i+1:]...)
				return
			}
		}
	}
}
