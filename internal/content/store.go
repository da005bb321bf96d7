package content

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// Options configures store construction.
type Options struct {
	// IndexBasenames lists file stems that collapse into their directory path.
	IndexBasenames []string
	// SkipDrafts drops documents marked draft instead of indexing them.
	SkipDrafts bool
}

// Store is the immutable mapping from unique site-relative path to document.
// It is built once per run and never mutated afterwards, so reads need no
// synchronization.
type Store struct {
	docs  map[string]*interfaces.Document
	paths []string
}

// NewStore derives a path for every document, enforces the unique-path and
// required-frontmatter invariants, and returns the assembled store. All
// violations found during the pass are reported together in a *StoreError.
func NewStore(docs []*interfaces.Document, opts Options) (*Store, error) {
	store := &Store{
		docs: make(map[string]*interfaces.Document, len(docs)),
	}
	storeErr := &StoreError{}

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if opts.SkipDrafts && doc.FrontMatter.Draft {
			continue
		}

		if err := validateFrontMatter(doc.FrontMatter); err != nil {
			storeErr.Invalid = append(storeErr.Invalid, InvalidDocumentError{
				FilePath: doc.FilePath,
				Cause:    err,
			})
			continue
		}

		path := doc.Path
		if path == "" {
			derived, err := PathForDocument(doc.FilePath, doc.FrontMatter.Slug, opts.IndexBasenames)
			if err != nil {
				storeErr.Invalid = append(storeErr.Invalid, InvalidDocumentError{
					FilePath: doc.FilePath,
					Cause:    err,
				})
				continue
			}
			path = derived
		}

		if existing, ok := store.docs[path]; ok {
			storeErr.Duplicates = append(storeErr.Duplicates, DuplicatePathError{
				Path:         path,
				FilePath:     doc.FilePath,
				ExistingFile: existing.FilePath,
			})
			continue
		}

		doc.Path = path
		store.docs[path] = doc
		store.paths = append(store.paths, path)
	}

	sort.Strings(store.paths)

	if storeErr.Len() > 0 {
		return nil, storeErr
	}
	return store, nil
}

// Get returns the document registered at path.
func (s *Store) Get(path string) (*interfaces.Document, bool) {
	if s == nil {
		return nil, false
	}
	doc, ok := s.docs[path]
	return doc, ok
}

// Has reports whether a document is registered at path.
func (s *Store) Has(path string) bool {
	_, ok := s.Get(path)
	return ok
}

// Paths returns every registered path in sorted order.
func (s *Store) Paths() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.paths...)
}

// Len returns the number of documents in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.docs)
}

// Documents returns the stored documents in path order.
func (s *Store) Documents() []*interfaces.Document {
	if s == nil {
		return nil
	}
	out := make([]*interfaces.Document, 0, len(s.paths))
	for _, path := range s.paths {
		out = append(out, s.docs[path])
	}
	return out
}

func validateFrontMatter(fm interfaces.FrontMatter) error {
	return validation.ValidateStruct(&fm,
		validation.Field(&fm.Title, validation.Required.Error("title is required")),
		validation.Field(&fm.Description, validation.Required.Error("description is required")),
	)
}
