package navigation

import (
	"sort"

	"github.com/goliatone/go-docsite/internal/content"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// ResolvedEntry mirrors Entry with each link carrying a direct reference to
// its document.
type ResolvedEntry struct {
	Kind     Kind
	Label    string
	Path     string
	Document *interfaces.Document
	Children []ResolvedEntry
}

// ResolvedTree is the render-ready navigation structure handed to the site
// assembler. It is isomorphic to the input tree.
type ResolvedTree struct {
	Entries []ResolvedEntry
}

// Links returns every resolved link in authored (depth-first) order.
func (t ResolvedTree) Links() []ResolvedEntry {
	var links []ResolvedEntry
	var walk func(entries []ResolvedEntry)
	walk = func(entries []ResolvedEntry) {
		for _, entry := range entries {
			if entry.Kind == KindLink {
				links = append(links, entry)
				continue
			}
			walk(entry.Children)
		}
	}
	walk(t.Entries)
	return links
}

// Report carries every finding from a resolution pass. Broken links are
// fatal; orphan warnings never block a build.
type Report struct {
	Broken  []BrokenLinkError
	Orphans []OrphanedDocumentWarning
}

// Fatal reports whether the findings prevent the site from being published.
func (r *Report) Fatal() bool {
	return r != nil && len(r.Broken) > 0
}

// Err converts the report into a batch error, or nil when nothing is fatal.
func (r *Report) Err() error {
	if !r.Fatal() {
		return nil
	}
	return &ResolveError{Broken: append([]BrokenLinkError(nil), r.Broken...)}
}

// ResolveOptions tunes resolution behaviour.
type ResolveOptions struct {
	// IncludeUnlisted also reports documents that opted out via frontmatter
	// as orphans. By default they are considered intentionally unlinked.
	IncludeUnlisted bool
}

// Resolve validates the tree against the store and links every entry to its
// document. It is pure and deterministic: the same (tree, store) pair always
// yields the same resolved tree and report, independent of traversal order.
// Broken links are collected across the whole tree before the pass fails, so
// a single run surfaces every problem at once.
func Resolve(tree Tree, store *content.Store, opts ResolveOptions) (*ResolvedTree, *Report, error) {
	if err := tree.Validate(); err != nil {
		return nil, nil, err
	}

	report := &Report{}
	referenced := make(map[string]struct{})

	var resolveEntries func(entries []Entry) []ResolvedEntry
	resolveEntries = func(entries []Entry) []ResolvedEntry {
		if len(entries) == 0 {
			return nil
		}
		resolved := make([]ResolvedEntry, 0, len(entries))
		for _, entry := range entries {
			node := ResolvedEntry{
				Kind:  entry.Kind,
				Label: entry.Label,
				Path:  entry.Path,
			}
			switch entry.Kind {
			case KindLink:
				path := content.NormalizePath(entry.Path)
				node.Path = path
				referenced[path] = struct{}{}
				if doc, ok := store.Get(path); ok {
					node.Document = doc
				} else {
					report.Broken = append(report.Broken, BrokenLinkError{
						Label: entry.Label,
						Path:  path,
					})
				}
			case KindGroup:
				node.Children = resolveEntries(entry.Children)
			}
			resolved = append(resolved, node)
		}
		return resolved
	}

	entries := resolveEntries(tree.Entries)

	for _, path := range store.Paths() {
		if _, ok := referenced[path]; ok {
			continue
		}
		if doc, _ := store.Get(path); doc.Unlisted() && !opts.IncludeUnlisted {
			continue
		}
		report.Orphans = append(report.Orphans, OrphanedDocumentWarning{Path: path})
	}
	// Store paths are already sorted; keep the sort anyway so the warning
	// order never depends on store internals.
	sort.Slice(report.Orphans, func(i, j int) bool {
		return report.Orphans[i].Path < report.Orphans[j].Path
	})

	if err := report.Err(); err != nil {
		return nil, report, err
	}

	return &ResolvedTree{Entries: entries}, report, nil
}
