// Package frond assembles the pieces of a frond application: a
// cooperative loop, a document, a lifecycle, and optionally a router,
// wired together so most programs never touch the packages directly.
//
//	app := frond.New()
//	count := reactive.NewCell(0)
//	app.Mount(el.Div(
//	    el.Button(el.OnClick(func(*dom.Event) { count.Update(inc) }),
//	        "increment"),
//	    el.BindText(app.Lifecycle(), count),
//	))
//	app.Run(ctx)
package frond

import (
	"context"

	"github.com/frond-ui/frond/pkg/dom"
	"github.com/frond-ui/frond/pkg/lifecycle"
	"github.com/frond-ui/frond/pkg/loop"
	"github.com/frond-ui/frond/pkg/router"
)

// App bundles one UI: its loop, document, mount root, lifecycle, and
// router.
type App struct {
	loop *loop.Loop
	doc  *dom.Node
	body *dom.Node
	lc   *lifecycle.Lifecycle
	rt   *router.Router

	hooks []lifecycle.Hook
}

// Option configures an App.
type Option func(*App)

// WithLoop runs the app on an existing loop instead of a fresh one.
func WithLoop(l *loop.Loop) Option {
	return func(a *App) {
		a.loop = l
	}
}

// WithHook installs a lifecycle hook (metrics, tracing) at
// construction time.
func WithHook(h lifecycle.Hook) Option {
	return func(a *App) {
		a.hooks = append(a.hooks, h)
	}
}

// New creates an app with a document containing a single "body"
// element as the mount root.
func New(opts ...Option) *App {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}
	if a.loop == nil {
		a.loop = loop.New()
	}
	a.lc = lifecycle.New(a.loop)
	for _, h := range a.hooks {
		a.lc.Use(h)
	}

	a.doc = dom.NewDocument(a.loop)
	a.body = dom.NewElement("body")
	a.doc.AppendChild(a.body)
	return a
}

// Loop returns the app's loop.
func (a *App) Loop() *loop.Loop { return a.loop }

// Document returns the document node.
func (a *App) Document() *dom.Node { return a.doc }

// Body returns the mount root.
func (a *App) Body() *dom.Node { return a.body }

// Lifecycle returns the app's lifecycle, for bindings and manual
// cleanup registration.
func (a *App) Lifecycle() *lifecycle.Lifecycle { return a.lc }

// Mount renders content into the app body. content is a *dom.Node or
// a func() *dom.Node producer.
func (a *App) Mount(content any) {
	a.lc.Mount(a.body, content)
}

// Router returns the app's router, creating it on first use, bound to
// the app body. Register routes and call Start before navigating.
func (a *App) Router() *router.Router {
	if a.rt == nil {
		a.rt = router.New(a.lc, a.doc, a.body)
	}
	return a.rt
}

// Dispatch runs fn on the loop as one task followed by a microtask
// drain, the way an event handler would run. Safe to call from any
// goroutine while Run is pumping.
func (a *App) Dispatch(fn func()) {
	a.loop.Post(fn)
}

// Flush drains pending microtasks; test helpers and synchronous
// drivers use it to let deferred cleanup run.
func (a *App) Flush() {
	a.loop.Flush()
}

// HTML serializes the current document.
func (a *App) HTML() string {
	return a.doc.HTML()
}

// Run pumps the loop until ctx is done.
func (a *App) Run(ctx context.Context) error {
	return a.loop.Run(ctx)
}
