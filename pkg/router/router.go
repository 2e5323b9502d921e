package router

import (
	"strings"

	"github.com/frond-ui/frond/pkg/dom"
	"github.com/frond-ui/frond/pkg/el"
	"github.com/frond-ui/frond/pkg/lifecycle"
)

// Params holds captured path parameters.
type Params map[string]string

// Producer builds the node for a matched route.
type Producer func(Params) *dom.Node

type route struct {
	segments []string
	producer Producer
}

// Router renders route producers into a fixed root, following the
// document's hash location.
type Router struct {
	lc   *lifecycle.Lifecycle
	doc  *dom.Node
	root *dom.Node

	routes   []route
	notFound Producer

	current  string
	started  bool
	stopHash func()

	// onNavigate, when set, wraps each navigation; used by telemetry.
	onNavigate func(path string) func()
}

// New creates a router rendering into root via lc, driven by doc's
// Location. Register routes, then call Start.
func New(lc *lifecycle.Lifecycle, doc, root *dom.Node) *Router {
	if lc == nil {
		panic("router: New requires a lifecycle")
	}
	if doc == nil || doc.Kind() != dom.KindDocument {
		panic("router: New requires a document node")
	}
	if root == nil {
		panic("router: New requires a root node")
	}
	return &Router{lc: lc, doc: doc, root: root}
}

// Route registers a producer for a path pattern. Later registrations
// of the same pattern win; matching tries routes in registration
// order.
func (r *Router) Route(pattern string, p Producer) *Router {
	if p == nil {
		panic("router: Route with nil producer")
	}
	r.routes = append(r.routes, route{segments: splitPath(pattern), producer: p})
	return r
}

// NotFound sets the producer used when no route matches.
func (r *Router) NotFound(p Producer) *Router {
	r.notFound = p
	return r
}

// OnNavigate installs a hook wrapping each navigation. The returned
// function, if non-nil, runs after the render completes.
func (r *Router) OnNavigate(fn func(path string) func()) {
	r.onNavigate = fn
}

// Start renders the route for the current hash, subscribes to hash
// changes, and enables Navigate. Calling Start twice re-renders the
// current route without a second subscription; it never registers a
// second observation either (mount is idempotent per root).
func (r *Router) Start() {
	if !r.started {
		r.started = true
		r.current = normalizePath(r.doc.Location().Hash())
		r.stopHash = r.doc.Location().OnHashChange(r.hashChanged)
	}
	r.render(r.current)
}

// Stop detaches the router from the location. Rendered content stays
// in place.
func (r *Router) Stop() {
	if r.stopHash != nil {
		r.stopHash()
		r.stopHash = nil
	}
}

// Navigate sets the document hash. The change is queued on the loop;
// when it is delivered the router re-renders the mapped producer into
// the root through hashChanged, and the replaced content becomes
// subject to detector cleanup. Panics if the router has not been
// started.
func (r *Router) Navigate(path string) {
	if !r.started {
		panic("router: Navigate called before Start")
	}
	r.doc.Location().SetHash(normalizePath(path))
}

// hashChanged re-renders for a new hash. A hash that normalizes to
// the active path is ignored.
func (r *Router) hashChanged(hash string) {
	path := normalizePath(hash)
	if path == r.current {
		return
	}
	r.current = path

	var done func()
	if r.onNavigate != nil {
		done = r.onNavigate(path)
	}
	r.render(path)
	if done != nil {
		done()
	}
}

// Current returns the active path. Panics if the router has not been
// started.
func (r *Router) Current() string {
	if !r.started {
		panic("router: Current called before Start")
	}
	return r.current
}

func (r *Router) render(path string) {
	producer, params := r.match(path)
	r.lc.Mount(r.root, func() *dom.Node {
		return producer(params)
	})
}

func (r *Router) match(path string) (Producer, Params) {
	segments := splitPath(path)
	for _, rt := range r.routes {
		if params, ok := matchSegments(rt.segments, segments); ok {
			return rt.producer, params
		}
	}
	if r.notFound != nil {
		return r.notFound, Params{}
	}
	return defaultNotFound, Params{}
}

func defaultNotFound(Params) *dom.Node {
	return el.Div(el.Class("not-found"), "not found")
}

func matchSegments(pattern, path []string) (Params, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	params := Params{}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			params[seg[1:]] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}

// normalizePath renders a path or raw hash in canonical form:
// "#/users/7/" and "/users/7" both become "/users/7", and "", "#" and
// "/" all become "/".
func normalizePath(path string) string {
	return "/" + strings.Join(splitPath(path), "/")
}

// splitPath splits a path into segments, ignoring empty ones, so
// "/", "" and "//" all normalize the same way. A leading "#" is
// stripped, letting callers pass raw location hashes.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "#")
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
