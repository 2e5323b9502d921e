package el

import (
	"testing"

	"github.com/frond-ui/frond/pkg/dom"
	"github.com/frond-ui/frond/pkg/lifecycle"
	"github.com/frond-ui/frond/pkg/loop"
	"github.com/frond-ui/frond/pkg/reactive"
)

func TestElMixedArguments(t *testing.T) {
	clicked := false
	node := Div(
		Class("card", "wide"),
		ID("main"),
		nil,
		Hole,
		"hello",
		Span("world"),
		OnClick(func(e *dom.Event) { clicked = true }),
	)

	if v, _ := node.Attr("class"); v != "card wide" {
		t.Errorf("unexpected class %q", v)
	}
	if v, _ := node.Attr("id"); v != "main" {
		t.Errorf("unexpected id %q", v)
	}
	kids := node.Children()
	if len(kids) != 2 {
		t.Fatalf("nil and Hole must render nothing, got %d children", len(kids))
	}
	if kids[0].Text() != "hello" || kids[1].Tag() != "span" {
		t.Errorf("unexpected children: %v", kids)
	}

	node.DispatchEvent("click", nil)
	if !clicked {
		t.Error("click handler not invoked")
	}
}

func TestAttrValueShapes(t *testing.T) {
	node := Input(
		Attr{Key: "tabindex", Value: 3},
		Disabled(true),
		Checked(false),
	)
	if v, _ := node.Attr("tabindex"); v != "3" {
		t.Errorf("int attribute not converted, got %q", v)
	}
	if _, ok := node.Attr("disabled"); !ok {
		t.Error("true boolean attribute should be present")
	}
	if _, ok := node.Attr("checked"); ok {
		t.Error("false boolean attribute should be omitted")
	}
}

func TestStyleSerialization(t *testing.T) {
	node := Div(Style{"color": "red", "background": "blue"})
	if v, _ := node.Attr("style"); v != "background: blue; color: red" {
		t.Errorf("unexpected style %q", v)
	}
}

func TestUnsupportedArgumentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported argument shape")
		}
	}()
	Div(42)
}

func TestUnsupportedAttrValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported attribute value shape")
		}
	}()
	Div(Attr{Key: "x", Value: []string{"bad"}})
}

func newTestMount() (*lifecycle.Lifecycle, *loop.Loop, *dom.Node) {
	l := loop.New()
	lc := lifecycle.New(l)
	doc := dom.NewDocument(l)
	root := dom.NewElement("div")
	doc.AppendChild(root)
	return lc, l, root
}

func TestBindTextLiveAndTornDown(t *testing.T) {
	lc, l, root := newTestMount()

	count := reactive.NewCell(0)
	text := BindText(lc, count)
	container := Div(text)
	lc.Mount(root, container)

	count.Set(1)
	if text.Text() != "1" {
		t.Fatalf("bound text should update synchronously, got %q", text.Text())
	}

	root.RemoveChild(container)
	l.Flush()

	count.Set(2)
	if text.Text() != "1" {
		t.Errorf("binding should be torn down after removal, got %q", text.Text())
	}
}

func TestBindAttr(t *testing.T) {
	lc, l, root := newTestMount()

	width := reactive.NewCell(10)
	node := Div()
	BindAttr(lc, node, "data-width", width)
	lc.Mount(root, node)

	width.Set(20)
	if v, _ := node.Attr("data-width"); v != "20" {
		t.Errorf("attribute not synced, got %q", v)
	}

	root.RemoveChild(node)
	l.Flush()
	width.Set(30)
	if v, _ := node.Attr("data-width"); v != "20" {
		t.Errorf("attribute binding should be torn down, got %q", v)
	}
}

func TestForEachRebuildsChildren(t *testing.T) {
	lc, _, root := newTestMount()

	items := reactive.NewCell([]string{"a", "b"})
	list := ForEach(lc, items, func(i int, s string) *dom.Node {
		return Li(s)
	})
	lc.Mount(root, list)

	if len(list.Children()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Children()))
	}

	items.Set([]string{"a", "b", "c"})
	kids := list.Children()
	if len(kids) != 3 || kids[2].FirstChild().Text() != "c" {
		t.Errorf("list not rebuilt, got %d children", len(kids))
	}
}

func TestForEachCleansRemovedItemBindings(t *testing.T) {
	lc, l, root := newTestMount()

	label := reactive.NewCell("x")
	items := reactive.NewCell([]int{1, 2})

	var texts []*dom.Node
	list := ForEach(lc, items, func(i int, n int) *dom.Node {
		text := BindText(lc, label)
		texts = append(texts, text)
		return Li(text)
	})
	lc.Mount(root, list)
	l.Flush()

	// Shrink the list. The rebuild renders a fresh node for the kept
	// item and drops both originals; their bindings must die once the
	// rebuild batch is processed.
	items.Set([]int{1})
	l.Flush()

	if len(texts) != 3 {
		t.Fatalf("expected 3 rendered texts (2 initial + 1 rebuild), got %d", len(texts))
	}
	label.Set("y")
	if texts[2].Text() != "y" {
		t.Error("current item's binding should still fire")
	}
	if texts[0].Text() != "x" || texts[1].Text() != "x" {
		t.Errorf("replaced items' bindings should be torn down, got %q %q", texts[0].Text(), texts[1].Text())
	}
}

func TestForEachUnsubscribesWithContainer(t *testing.T) {
	lc, l, root := newTestMount()

	items := reactive.NewCell([]int{1})
	renders := 0
	list := ForEach(lc, items, func(i int, n int) *dom.Node {
		renders++
		return Li()
	})
	lc.Mount(root, list)

	root.RemoveChild(list)
	l.Flush()

	items.Set([]int{1, 2})
	if renders != 1 {
		t.Errorf("removed list should not re-render, render count %d", renders)
	}
}
