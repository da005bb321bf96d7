package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStoreInvalid is the sentinel unwrapped by every fatal store construction failure.
var ErrStoreInvalid = errors.New("content store invalid")

// DuplicatePathError reports two documents claiming the same store path.
// The unique-path invariant is load-bearing for navigation resolution, so
// duplicates are always fatal.
type DuplicatePathError struct {
	Path         string
	FilePath     string
	ExistingFile string
}

func (e DuplicatePathError) Error() string {
	return fmt.Sprintf("duplicate path %s: %s conflicts with %s", e.Path, e.FilePath, e.ExistingFile)
}

// InvalidDocumentError reports a document that failed the frontmatter quality
// checks (missing title or description).
type InvalidDocumentError struct {
	FilePath string
	Cause    error
}

func (e InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document %s: %v", e.FilePath, e.Cause)
}

func (e InvalidDocumentError) Unwrap() error {
	return e.Cause
}

// StoreError aggregates every construction failure discovered in one pass so
// authors can fix the whole corpus in a single round-trip.
type StoreError struct {
	Duplicates []DuplicatePathError
	Invalid    []InvalidDocumentError
}

func (e *StoreError) Error() string {
	parts := make([]string, 0, len(e.Duplicates)+len(e.Invalid))
	for _, dup := range e.Duplicates {
		parts = append(parts, dup.Error())
	}
	for _, inv := range e.Invalid {
		parts = append(parts, inv.Error())
	}
	if len(parts) == 0 {
		return ErrStoreInvalid.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *StoreError) Unwrap() error {
	return ErrStoreInvalid
}

// Len returns the total number of findings carried by the error.
func (e *StoreError) Len() int {
	if e == nil {
		return 0
	}
	return len(e.Duplicates) + len(e.Invalid)
}
