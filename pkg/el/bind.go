package el

import (
	"fmt"

	"github.com/frond-ui/frond/pkg/dom"
	"github.com/frond-ui/frond/pkg/lifecycle"
	"github.com/frond-ui/frond/pkg/reactive"
)

// BindText returns a text node whose content tracks the cell,
// formatted with fmt.Sprint. The subscription's detachment handle is
// registered with lc against the text node, so removal of the node
// from the document unsubscribes it automatically.
func BindText[T any](lc *lifecycle.Lifecycle, cell *reactive.Cell[T]) *dom.Node {
	text := dom.NewText(fmt.Sprint(cell.Get()))
	unsub := cell.Subscribe(func() {
		text.SetText(fmt.Sprint(cell.Get()))
	})
	lc.OnRemove(text, unsub)
	return text
}

// BindTextf is BindText with a format string applied to the value.
func BindTextf[T any](lc *lifecycle.Lifecycle, format string, cell *reactive.Cell[T]) *dom.Node {
	text := dom.NewText(fmt.Sprintf(format, cell.Get()))
	unsub := cell.Subscribe(func() {
		text.SetText(fmt.Sprintf(format, cell.Get()))
	})
	lc.OnRemove(text, unsub)
	return text
}

// BindAttr keeps an attribute on node in sync with the cell. The
// subscription is torn down when node leaves the document.
func BindAttr[T any](lc *lifecycle.Lifecycle, node *dom.Node, key string, cell *reactive.Cell[T]) {
	node.SetAttribute(key, fmt.Sprint(cell.Get()))
	unsub := cell.Subscribe(func() {
		node.SetAttribute(key, fmt.Sprint(cell.Get()))
	})
	lc.OnRemove(node, unsub)
}

// ForEach returns a container element whose children are rendered from
// the cell's slice, one node per item, rebuilt on every change. The
// rebuild is a destructive replace, so bindings inside removed
// children are cleaned up by the detector once the replacement batch
// is processed. Extra args configure the container itself.
func ForEach[T any](lc *lifecycle.Lifecycle, items *reactive.Cell[[]T], render func(int, T) *dom.Node, args ...any) *dom.Node {
	container := El("div", args...)

	rebuild := func() {
		list := items.Get()
		children := make([]*dom.Node, 0, len(list))
		for i, item := range list {
			if n := render(i, item); n != nil {
				children = append(children, n)
			}
		}
		container.ReplaceChildren(children...)
	}
	rebuild()

	unsub := items.Subscribe(rebuild)
	lc.OnRemove(container, unsub)
	return container
}
