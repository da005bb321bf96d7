package navigation

import (
	"fmt"
	"strings"
)

// Kind discriminates the navigation entry variants.
type Kind string

const (
	// KindLink is a leaf entry pointing at a document path.
	KindLink Kind = "link"
	// KindGroup is a labeled container of ordered child entries.
	KindGroup Kind = "group"
)

// Entry is a single node in the sidebar tree. A link carries a document path;
// a group carries ordered children. Child order is authored order and is
// preserved exactly through resolution.
type Entry struct {
	Kind     Kind
	Label    string
	Path     string
	Children []Entry
}

// Link constructs a leaf entry pointing at the document registered under path.
func Link(label, path string) Entry {
	return Entry{Kind: KindLink, Label: label, Path: path}
}

// Group constructs a labeled container preserving the authored child order.
func Group(label string, children ...Entry) Entry {
	return Entry{Kind: KindGroup, Label: label, Children: children}
}

// Validate checks the structural invariants of the entry and its subtree.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Label) == "" {
		return fmt.Errorf("%w: %s entry", ErrEntryLabelRequired, e.Kind)
	}
	switch e.Kind {
	case KindLink:
		if strings.TrimSpace(e.Path) == "" {
			return fmt.Errorf("%w: link %q", ErrLinkPathRequired, e.Label)
		}
		if len(e.Children) > 0 {
			return fmt.Errorf("%w: link %q", ErrLinkChildrenForbidden, e.Label)
		}
	case KindGroup:
		if e.Path != "" {
			return fmt.Errorf("%w: group %q", ErrGroupPathForbidden, e.Label)
		}
		for _, child := range e.Children {
			if err := child.Validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrEntryKindUnknown, e.Kind)
	}
	return nil
}

// Tree is the full sidebar definition: an ordered sequence of top-level
// entries, constructed once per build and immutable thereafter.
type Tree struct {
	Entries []Entry
}

// NewTree assembles a tree from the provided top-level entries.
func NewTree(entries ...Entry) Tree {
	return Tree{Entries: entries}
}

// Validate checks structural invariants across every entry.
func (t Tree) Validate() error {
	for _, entry := range t.Entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Links returns every link entry in authored (depth-first) order.
func (t Tree) Links() []Entry {
	var links []Entry
	var walk func(entries []Entry)
	walk = func(entries []Entry) {
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

// Len returns the total number of entries in the tree, groups included.
func (t Tree) Len() int {
	count := 0
	var walk func(entries []Entry)
	walk = func(entries []Entry) {
		for _, entry := range entries {
			count++
			walk(entry.Children)
		}
	}
	walk(t.Entries)
	return count
}
