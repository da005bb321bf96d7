// Package content builds the read-only store of documents a docs site is
// assembled from. The store maps unique site-relative paths to documents and
// enforces the corpus invariants (unique paths, required frontmatter fields)
// before navigation resolution runs.
package content
