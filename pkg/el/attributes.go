package el

import (
	"strings"

	"github.com/frond-ui/frond/pkg/dom"
)

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(v string) Attr { return attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Attr { return attr("placeholder", p) }

// Title sets the title attribute.
func Title(t string) Attr { return attr("title", t) }

// Disabled sets the disabled attribute when true.
func Disabled(d bool) Attr { return attr("disabled", d) }

// Checked sets the checked attribute when true.
func Checked(c bool) Attr { return attr("checked", c) }

// Data creates a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// Event helpers

// OnClick attaches a click handler.
func OnClick(fn dom.Handler) On { return On{Event: "click", Handler: fn} }

// OnInput attaches an input handler.
func OnInput(fn dom.Handler) On { return On{Event: "input", Handler: fn} }

// OnChange attaches a change handler.
func OnChange(fn dom.Handler) On { return On{Event: "change", Handler: fn} }

// OnSubmit attaches a submit handler.
func OnSubmit(fn dom.Handler) On { return On{Event: "submit", Handler: fn} }

// OnKeydown attaches a keydown handler.
func OnKeydown(fn dom.Handler) On { return On{Event: "keydown", Handler: fn} }
