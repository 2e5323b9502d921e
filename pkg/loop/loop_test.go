package loop

import (
	"context"
	"testing"
	"time"
)

func TestMicrotaskOrder(t *testing.T) {
	l := New()
	var got []int

	l.Microtask(func() { got = append(got, 1) })
	l.Microtask(func() { got = append(got, 2) })
	l.Microtask(func() { got = append(got, 3) })

	if len(got) != 0 {
		t.Fatalf("microtasks ran before Flush: %v", got)
	}

	l.Flush()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected FIFO order [1 2 3], got %v", got)
	}
}

func TestMicrotaskQueuedDuringDrain(t *testing.T) {
	l := New()
	var got []string

	l.Microtask(func() {
		got = append(got, "outer")
		l.Microtask(func() { got = append(got, "inner") })
	})

	l.Flush()
	if len(got) != 2 || got[0] != "outer" || got[1] != "inner" {
		t.Errorf("nested microtask should run in the same drain, got %v", got)
	}
}

func TestDoFlushesMicrotasks(t *testing.T) {
	l := New()
	ran := false

	l.Do(func() {
		l.Microtask(func() { ran = true })
		if ran {
			t.Error("microtask ran synchronously inside the task")
		}
	})

	if !ran {
		t.Error("Do did not drain microtasks after the task")
	}
}

func TestRunPumpsPostedTasks(t *testing.T) {
	l := New()
	done := make(chan struct{})

	l.Post(func() {
		l.Microtask(func() { close(done) })
	})

	ctx, cancel := context.WithCancel(context.Background())
	go l.Run(ctx)
	defer cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("posted task (and its microtask) never ran")
	}
}

func TestPostNilIgnored(t *testing.T) {
	l := New()
	l.Post(nil)
	l.Microtask(nil)
	l.Flush()
}
