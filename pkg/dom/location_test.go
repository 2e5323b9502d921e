package dom

import (
	"testing"

	"github.com/frond-ui/frond/pkg/loop"
)

func TestLocationStartsEmpty(t *testing.T) {
	doc := NewDocument(loop.New())
	if got := doc.Location().Hash(); got != "" {
		t.Errorf("fresh document hash = %q, want empty", got)
	}
}

func TestSetHashDeliversOnFlush(t *testing.T) {
	l := loop.New()
	doc := NewDocument(l)
	loc := doc.Location()

	var seen []string
	loc.OnHashChange(func(h string) { seen = append(seen, h) })

	loc.SetHash("#/a")
	if len(seen) != 0 {
		t.Fatal("hash change should not be delivered synchronously")
	}
	if loc.Hash() != "" {
		t.Fatal("hash should not be committed before the loop runs")
	}

	l.Flush()
	if loc.Hash() != "#/a" {
		t.Errorf("hash = %q, want %q", loc.Hash(), "#/a")
	}
	if len(seen) != 1 || seen[0] != "#/a" {
		t.Errorf("subscriber saw %v", seen)
	}
}

func TestSetHashSameValueNoNotify(t *testing.T) {
	l := loop.New()
	loc := NewDocument(l).Location()

	notified := 0
	loc.OnHashChange(func(string) { notified++ })

	loc.SetHash("#/a")
	l.Flush()
	loc.SetHash("#/a")
	l.Flush()

	if notified != 1 {
		t.Errorf("setting the current hash should not notify, got %d", notified)
	}
}

func TestOnHashChangeRemoveIdempotent(t *testing.T) {
	l := loop.New()
	loc := NewDocument(l).Location()

	kept := 0
	loc.OnHashChange(func(string) { kept++ })
	removed := 0
	stop := loc.OnHashChange(func(string) { removed++ })
	stop()
	stop()

	loc.SetHash("#/x")
	l.Flush()

	if removed != 0 {
		t.Error("removed subscriber should not be notified")
	}
	if kept != 1 {
		t.Errorf("remaining subscriber should be notified once, got %d", kept)
	}
}

func TestLocationOnNonDocumentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for Location on an element")
		}
	}()
	NewElement("div").Location()
}
