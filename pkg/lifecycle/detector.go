package lifecycle

import "github.com/frond-ui/frond/pkg/dom"

// BatchStats summarizes one processed mutation batch.
type BatchStats struct {
	// Records is the number of mutation records in the batch.
	Records int

	// RemovalsSeen counts nodes reported as removed, before the
	// connectivity check.
	RemovalsSeen int

	// MovesSkipped counts removed nodes found connected again at
	// delivery time, whose subtrees were left alone.
	MovesSkipped int

	// NodesCleaned counts nodes that had at least one cleanup run.
	NodesCleaned int

	// CleanupsRun is the total number of cleanup callbacks invoked.
	CleanupsRun int

	// Recovered counts cleanup callbacks that panicked.
	Recovered int
}

// Hook observes lifecycle activity. Implementations must not assume
// any particular goroutine beyond the lifecycle's loop.
type Hook interface {
	// MountStarted is called when a mount begins; the returned
	// function, if non-nil, is called when the mount completes.
	MountStarted(root *dom.Node) func()

	// BatchStarted is called before a mutation batch is processed; the
	// returned function, if non-nil, receives the final stats.
	BatchStarted(records int) func(BatchStats)
}

// processBatch is the tree-removal detector: the observer's delivery
// callback. For every removed node, in record order, it checks
// connectivity at delivery time — a node connected again was moved,
// not destroyed, and is skipped with its whole subtree. A confirmed
// disconnected node is walked pre-order, left to right, iteratively,
// running registered cleanups on every node in the subtree.
//
// A node appearing in several removal records within one batch is
// cleaned once: the registry's clear-on-run behavior makes later
// visits no-ops.
func (lc *Lifecycle) processBatch(records []dom.Record) {
	stats := BatchStats{Records: len(records)}

	var finish []func(BatchStats)
	for _, h := range lc.hooks {
		if done := h.BatchStarted(len(records)); done != nil {
			finish = append(finish, done)
		}
	}

	for _, rec := range records {
		for _, removed := range rec.Removed {
			stats.RemovalsSeen++
			if removed.IsConnected() {
				stats.MovesSkipped++
				continue
			}
			removed.Walk(func(n *dom.Node) bool {
				ran, recovered := lc.runAndClear(n)
				if ran > 0 {
					stats.NodesCleaned++
				}
				stats.CleanupsRun += ran
				stats.Recovered += recovered
				return true
			})
		}
	}

	for _, done := range finish {
		done(stats)
	}
}
