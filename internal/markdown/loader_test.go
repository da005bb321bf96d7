package markdown

import (
	"context"
	"testing"
	"testing/fstest"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"index.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Home\ndescription: Front page\n---\n# Home\n"),
		},
		"commands/loops.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Loops\ndescription: Iteration\n---\n# Loops\n"),
		},
		"commands/conditionals.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Conditionals\ndescription: Branching\n---\n# If\n"),
		},
		"assets/styles.css": &fstest.MapFile{
			Data: []byte("body {}\n"),
		},
	}
}

func TestLoadDirectory(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{Recursive: true})

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(results))
	}

	// Results come back sorted by file path.
	want := []string{"commands/conditionals.md", "commands/loops.md", "index.md"}
	for i, result := range results {
		if result.Document.FilePath != want[i] {
			t.Fatalf("results[%d] = %q, want %q", i, result.Document.FilePath, want[i])
		}
		if len(result.Document.Checksum) == 0 {
			t.Fatalf("expected checksum for %s", result.Document.FilePath)
		}
		if len(result.Source) == 0 {
			t.Fatalf("expected raw source for %s", result.Document.FilePath)
		}
	}
}

func TestLoadDirectoryNonRecursive(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{Recursive: false})

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected only the root document, got %d", len(results))
	}
	if results[0].Document.FilePath != "index.md" {
		t.Fatalf("unexpected document %q", results[0].Document.FilePath)
	}
}

func TestLoadDirectoryPatternOverride(t *testing.T) {
	fsys := fixtureFS()
	fsys["syntax/quoting.mdx"] = &fstest.MapFile{
		Data: []byte("---\ntitle: Quoting\ndescription: Quote rules\n---\n# Quoting\n"),
	}

	loader := NewLoader(fsys, LoaderConfig{Recursive: true})
	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{Pattern: "*.mdx"})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 mdx document, got %d", len(results))
	}
	if results[0].Document.FilePath != "syntax/quoting.mdx" {
		t.Fatalf("unexpected document %q", results[0].Document.FilePath)
	}
}

func TestLoadFile(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{Recursive: true})

	result, err := loader.LoadFile(context.Background(), "commands/loops.md", LoadParams{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if result.Document.FrontMatter.Title != "Loops" {
		t.Fatalf("unexpected title %q", result.Document.FrontMatter.Title)
	}
}

func TestLoadFileMissing(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{Recursive: true})

	if _, err := loader.LoadFile(context.Background(), "missing.md", LoadParams{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadDirectoryCancelledContext(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{Recursive: true})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadDirectory(ctx, ".", LoadParams{}); err == nil {
		t.Fatalf("expected context cancellation error")
	}
}
