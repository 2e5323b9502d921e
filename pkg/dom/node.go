package dom

import (
	"fmt"

	"github.com/frond-ui/frond/pkg/loop"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindDocument             // Tree root; a node is connected iff its root is a document
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindDocument:
		return "Document"
	default:
		return "Unknown"
	}
}

// Node is a live tree node. The zero value is not usable; construct
// nodes with NewElement, NewText, or NewDocument.
type Node struct {
	kind Kind
	tag  string
	text string

	attrs    map[string]string
	parent   *Node
	children []*Node

	// listeners maps event type to registered handlers.
	listeners map[string][]*listener

	// watchers are observer registrations targeting this node.
	watchers []*watch

	// loop and location are set on document nodes only.
	loop     *loop.Loop
	location *Location
}

// NewElement creates a detached element node.
func NewElement(tag string) *Node {
	if tag == "" {
		panic("dom: NewElement called with empty tag")
	}
	return &Node{kind: KindElement, tag: tag}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{kind: KindText, text: text}
}

// NewDocument creates a document node bound to a loop. Nodes are
// connected when their root is a document. The document carries a
// Location the router reads and subscribes to.
func NewDocument(l *loop.Loop) *Node {
	if l == nil {
		panic("dom: NewDocument requires a loop")
	}
	return &Node{
		kind:     KindDocument,
		tag:      "#document",
		loop:     l,
		location: newLocation(l),
	}
}

// Loop returns the loop a document node is bound to. Panics on other
// node kinds.
func (n *Node) Loop() *loop.Loop {
	if n.kind != KindDocument {
		panic(fmt.Sprintf("dom: Loop on %s node", n.kind))
	}
	return n.loop
}

// Location returns the document's hash location. Panics on other node
// kinds.
func (n *Node) Location() *Location {
	if n.kind != KindDocument {
		panic(fmt.Sprintf("dom: Location on %s node", n.kind))
	}
	return n.location
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element tag name, or "#text" / "#document" for
// non-element nodes.
func (n *Node) Tag() string {
	if n.kind == KindText {
		return "#text"
	}
	return n.tag
}

// Text returns the content of a text node, or "" for other kinds.
func (n *Node) Text() string { return n.text }

// SetText replaces the content of a text node. Character data changes
// are not reported to observers; only child-list changes are.
func (n *Node) SetText(text string) {
	if n.kind != KindText {
		panic(fmt.Sprintf("dom: SetText on %s node", n.kind))
	}
	n.text = text
}

// Parent returns the parent node, or nil for a detached root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Root returns the topmost ancestor (the node itself if detached).
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// IsConnected reports whether the node's root is a document. The
// tree-removal detector queries this at batch-delivery time to
// distinguish a destroyed node from a moved one.
func (n *Node) IsConnected() bool {
	return n.Root().kind == KindDocument
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute on an element node.
func (n *Node) SetAttribute(key, value string) {
	if n.kind != KindElement {
		panic(fmt.Sprintf("dom: SetAttribute on %s node", n.kind))
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attr returns the attribute value and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// RemoveAttribute deletes an attribute if present.
func (n *Node) RemoveAttribute(key string) {
	delete(n.attrs, key)
}

// AppendChild appends child to n's child list. A child that currently
// has a parent is detached first, so a single AppendChild expresses a
// move; observers of the old and new parent each receive a record.
func (n *Node) AppendChild(child *Node) {
	n.checkInsertable(child)
	detachForMove(child)
	child.parent = n
	n.children = append(n.children, child)
	recordChildList(n, []*Node{child}, nil)
}

// InsertBefore inserts child before ref. A nil ref appends. Inserting
// a node before itself leaves the tree unchanged and reports nothing.
// Panics if ref is not a child of n.
func (n *Node) InsertBefore(child, ref *Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	idx := n.indexOf(ref)
	if idx < 0 {
		panic("dom: InsertBefore reference is not a child of this node")
	}
	if child == ref {
		return
	}
	n.checkInsertable(child)
	if child.parent != nil {
		detachForMove(child)
		// Detaching may have shifted the reference position.
		idx = n.indexOf(ref)
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
	recordChildList(n, []*Node{child}, nil)
}

// RemoveChild detaches child from n. Panics if child is not a child
// of n. Cleanup registered on the removed subtree runs later, when the
// detector processes the resulting mutation batch.
func (n *Node) RemoveChild(child *Node) {
	if n.indexOf(child) < 0 {
		panic("dom: RemoveChild called with a node that is not a child")
	}
	n.detach(child)
	recordChildList(n, nil, []*Node{child})
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// ReplaceChildren removes every existing child and appends the given
// nodes, reporting a single record carrying both lists. This is the
// destructive replace mount is built on.
func (n *Node) ReplaceChildren(nodes ...*Node) {
	for _, c := range nodes {
		n.checkInsertable(c)
	}
	removed := n.children
	for _, c := range removed {
		c.parent = nil
	}
	n.children = nil
	added := make([]*Node, 0, len(nodes))
	for _, c := range nodes {
		detachForMove(c)
		c.parent = n
		n.children = append(n.children, c)
		added = append(added, c)
	}
	recordChildList(n, added, removed)
}

// detachForMove removes child from its current parent, if any,
// reporting the removal there. Insertions use it so a move produces a
// removal record at the old parent and an addition record at the new
// one, like any other removal; the detector's delivery-time
// connectivity check is what keeps moves from being torn down.
func detachForMove(child *Node) {
	if child.parent == nil {
		return
	}
	old := child.parent
	old.detach(child)
	recordChildList(old, nil, []*Node{child})
}

// detach unlinks child without reporting; callers report.
func (n *Node) detach(child *Node) {
	idx := n.indexOf(child)
	if idx < 0 {
		return
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) checkInsertable(child *Node) {
	if child == nil {
		panic("dom: cannot insert nil node")
	}
	if child.kind == KindDocument {
		panic("dom: cannot insert a document node")
	}
	if n.kind == KindText {
		panic("dom: text nodes cannot have children")
	}
	if child.Contains(n) {
		panic("dom: insertion would create a cycle")
	}
}

// Walk visits n and every descendant in pre-order, left to right,
// iteratively. Visiting order is deterministic; fn returning false
// skips the current node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(node) {
			continue
		}
		// Push children right-to-left so the leftmost is visited first.
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
}
