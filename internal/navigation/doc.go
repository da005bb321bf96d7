// Package navigation models the declarative sidebar tree of a docs site and
// resolves it against the content store. Resolution is a pure single-pass
// transformation: it either yields a render-ready tree or the complete list
// of broken links, never just the first problem found.
package navigation
