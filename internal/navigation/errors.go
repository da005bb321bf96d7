package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNavigationInvalid is the sentinel unwrapped by every fatal resolution failure.
var ErrNavigationInvalid = errors.New("navigation invalid")

var (
	ErrEntryLabelRequired    = errors.New("navigation: entry label is required")
	ErrEntryKindUnknown      = errors.New("navigation: entry kind is unknown")
	ErrLinkPathRequired      = errors.New("navigation: link path is required")
	ErrLinkChildrenForbidden = errors.New("navigation: link entries cannot have children")
	ErrGroupPathForbidden    = errors.New("navigation: group entries cannot carry a path")
)

// BrokenLinkError reports a link whose path has no document in the store.
// Broken links are fatal: the site cannot be published with dead navigation.
type BrokenLinkError struct {
	Label string
	Path  string
}

func (e BrokenLinkError) Error() string {
	return fmt.Sprintf("broken link %q: no document at %s", e.Label, e.Path)
}

// OrphanedDocumentWarning reports a document unreachable from any link.
// Orphans are informational; templates and drafts may be unlinked on purpose.
type OrphanedDocumentWarning struct {
	Path string
}

func (w OrphanedDocumentWarning) String() string {
	return fmt.Sprintf("orphaned document: %s is not linked from navigation", w.Path)
}

// ResolveError aggregates every broken link found during a single resolution
// pass so one run surfaces the complete fix list.
type ResolveError struct {
	Broken []BrokenLinkError
}

func (e *ResolveError) Error() string {
	if len(e.Broken) == 0 {
		return ErrNavigationInvalid.Error()
	}
	parts := make([]string, 0, len(e.Broken))
	for _, broken := range e.Broken {
		parts = append(parts, broken.Error())
	}
	return strings.Join(parts, "; ")
}

func (e *ResolveError) Unwrap() error {
	return ErrNavigationInvalid
}
