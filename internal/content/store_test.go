package content

import (
	"errors"
	"testing"

	"github.com/goliatone/go-docsite/pkg/interfaces"
)

func testDoc(filePath, title, description string) *interfaces.Document {
	return &interfaces.Document{
		FilePath: filePath,
		FrontMatter: interfaces.FrontMatter{
			Title:       title,
			Description: description,
		},
	}
}

func TestNewStore(t *testing.T) {
	store, err := NewStore([]*interfaces.Document{
		testDoc("index.md", "Home", "Front page"),
		testDoc("commands/loops.md", "Loops", "Iteration constructs"),
		testDoc("guides/index.md", "Guides", "Guide section"),
	}, Options{IndexBasenames: []string{"index"}})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if store.Len() != 3 {
		t.Fatalf("expected 3 documents, got %d", store.Len())
	}

	wantPaths := []string{"/", "/commands/loops/", "/guides/"}
	gotPaths := store.Paths()
	if len(gotPaths) != len(wantPaths) {
		t.Fatalf("expected %d paths, got %d", len(wantPaths), len(gotPaths))
	}
	for i, want := range wantPaths {
		if gotPaths[i] != want {
			t.Fatalf("paths[%d] = %q, want %q", i, gotPaths[i], want)
		}
	}

	doc, ok := store.Get("/commands/loops/")
	if !ok {
		t.Fatalf("expected document at /commands/loops/")
	}
	if doc.Path != "/commands/loops/" {
		t.Fatalf("expected derived path on document, got %q", doc.Path)
	}
	if doc.Title() != "Loops" {
		t.Fatalf("unexpected title %q", doc.Title())
	}
}

func TestNewStoreDuplicatePaths(t *testing.T) {
	_, err := NewStore([]*interfaces.Document{
		testDoc("guides/index.md", "Guides", "Section index"),
		testDoc("guides.md", "Guides Again", "Claims the same slug"),
		testDoc("about.md", "About", "Fine"),
	}, Options{IndexBasenames: []string{"index"}})
	if err == nil {
		t.Fatalf("expected duplicate path error")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *StoreError, got %T", err)
	}
	if !errors.Is(err, ErrStoreInvalid) {
		t.Fatalf("expected error to unwrap to ErrStoreInvalid")
	}
	if len(storeErr.Duplicates) != 1 {
		t.Fatalf("expected 1 duplicate, got %d", len(storeErr.Duplicates))
	}
	if storeErr.Duplicates[0].Path != "/guides/" {
		t.Fatalf("unexpected duplicate path %q", storeErr.Duplicates[0].Path)
	}
}

func TestNewStoreCollectsAllFindings(t *testing.T) {
	_, err := NewStore([]*interfaces.Document{
		testDoc("a.md", "A", "ok"),
		testDoc("dir/a.md", "", "missing title"),
		testDoc("b.md", "B", ""),
		testDoc("a/index.md", "A dup", "collides with a.md"),
	}, Options{IndexBasenames: []string{"index"}})
	if err == nil {
		t.Fatalf("expected batch error")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *StoreError, got %T", err)
	}
	if len(storeErr.Invalid) != 2 {
		t.Fatalf("expected 2 invalid documents, got %d: %v", len(storeErr.Invalid), err)
	}
	if len(storeErr.Duplicates) != 1 {
		t.Fatalf("expected 1 duplicate, got %d: %v", len(storeErr.Duplicates), err)
	}
	if storeErr.Len() != 3 {
		t.Fatalf("expected 3 findings, got %d", storeErr.Len())
	}
}

func TestNewStoreSkipDrafts(t *testing.T) {
	draft := testDoc("drafts/wip.md", "WIP", "not ready")
	draft.FrontMatter.Draft = true

	store, err := NewStore([]*interfaces.Document{
		testDoc("index.md", "Home", "Front page"),
		draft,
	}, Options{IndexBasenames: []string{"index"}, SkipDrafts: true})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected drafts to be skipped, got %d documents", store.Len())
	}
	if store.Has("/drafts/wip/") {
		t.Fatalf("draft should not be indexed")
	}
}

func TestNewStoreSlugOverride(t *testing.T) {
	doc := testDoc("commands/loops.md", "Loops", "Iteration")
	doc.FrontMatter.Slug = "iteration"

	store, err := NewStore([]*interfaces.Document{doc}, Options{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if !store.Has("/commands/iteration/") {
		t.Fatalf("expected slug override path, have %v", store.Paths())
	}
}

func TestStoreDocumentsOrdered(t *testing.T) {
	store, err := NewStore([]*interfaces.Document{
		testDoc("z.md", "Z", "last"),
		testDoc("a.md", "A", "first"),
	}, Options{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	docs := store.Documents()
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Path != "/a/" || docs[1].Path != "/z/" {
		t.Fatalf("documents not in path order: %q, %q", docs[0].Path, docs[1].Path)
	}
}
