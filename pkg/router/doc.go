// Package router provides frond's hash-based router.
//
// Routes map path patterns to node producers. The router follows the
// document's Location: Navigate sets the hash, and every hash change
// re-renders the matched producer into a fixed root through the same
// mount-style destructive replace the rest of the library uses, so
// the previous page's bindings are cleaned up by the tree-removal
// detector like any other removed content.
//
// Patterns are matched segment by segment; a segment starting with ':'
// captures the corresponding path segment into Params.
package router
