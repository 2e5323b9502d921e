package el

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/frond-ui/frond/pkg/dom"
)

// Attr is a single attribute. Supported value shapes are string, bool
// (true sets an empty attribute, false omits it), and the integer and
// float kinds; anything else is a configuration error and panics at
// construction time.
type Attr struct {
	Key   string
	Value any
}

// Style is a style attribute expressed as property→value pairs,
// serialized in sorted order.
type Style map[string]string

// On attaches an event handler to the element under construction.
type On struct {
	Event   string
	Handler dom.Handler
}

// Hole renders as nothing: an explicit absence marker usable anywhere
// a child is expected, distinct from empty text.
var Hole = hole{}

type hole struct{}

// El creates an element with the given tag, applying the arguments in
// order. Arguments can be: nil, Hole, Attr, []Attr, Style, *dom.Node,
// []*dom.Node, string, or On. Any other argument type is a
// configuration error and panics.
func El(tag string, args ...any) *dom.Node {
	node := dom.NewElement(tag)
	for _, arg := range args {
		apply(node, arg)
	}
	return node
}

func apply(node *dom.Node, arg any) {
	switch v := arg.(type) {
	case nil:
		// Allows conditional attributes and children.
	case hole:
		// Renders nothing.
	case Attr:
		applyAttr(node, v)
	case []Attr:
		for _, a := range v {
			applyAttr(node, a)
		}
	case Style:
		node.SetAttribute("style", v.String())
	case *dom.Node:
		if v != nil {
			node.AppendChild(v)
		}
	case []*dom.Node:
		for _, c := range v {
			if c != nil {
				node.AppendChild(c)
			}
		}
	case string:
		node.AppendChild(dom.NewText(v))
	case On:
		if v.Handler == nil {
			panic(fmt.Sprintf("el: %s handler is nil", v.Event))
		}
		node.AddEventListener(v.Event, v.Handler)
	default:
		panic(fmt.Sprintf("el: unsupported argument %T for <%s>", arg, node.Tag()))
	}
}

func applyAttr(node *dom.Node, a Attr) {
	if a.Key == "" {
		return
	}
	s, ok := attrString(a.Value)
	if !ok {
		// false booleans omit the attribute entirely.
		return
	}
	node.SetAttribute(a.Key, s)
}

// attrString converts an attribute value to its string form. The
// second result is false when the attribute should be omitted.
func attrString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		if !val {
			return "", false
		}
		return "", true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), true
	default:
		panic(fmt.Sprintf("el: unsupported attribute value %T", v))
	}
}

// String serializes the style map in sorted property order.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
	}
	return b.String()
}

// Text creates a text node.
func Text(content string) *dom.Node {
	return dom.NewText(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *dom.Node {
	return Text(fmt.Sprintf(format, args...))
}

// If returns the node if condition is true, Hole otherwise.
func If(condition bool, node *dom.Node) any {
	if condition {
		return node
	}
	return Hole
}

// When is like If but with lazy construction: fn runs only when the
// condition is true.
func When(condition bool, fn func() *dom.Node) any {
	if condition {
		return fn()
	}
	return Hole
}
