// Package el is the element-construction DSL for frond.
//
// Constructors take a variadic argument list mixing attributes, child
// nodes, strings (text shorthand), event handlers, and Hole (renders
// nothing):
//
//	el.Div(el.Class("card"),
//	    el.H1("Title"),
//	    el.Button(el.OnClick(func(*dom.Event) { count.Update(inc) }),
//	        el.BindText(lc, count),
//	    ),
//	)
//
// BindText and ForEach create live bindings: they subscribe to a cell
// and register the unsubscribe handle with the lifecycle, so removing
// the produced node from the document tears the subscription down
// automatically.
package el
