package content

import "testing"

func TestPathForDocument(t *testing.T) {
	indexNames := []string{"index", "readme"}

	cases := []struct {
		name     string
		filePath string
		slug     string
		want     string
	}{
		{name: "root index", filePath: "index.md", want: "/"},
		{name: "root readme", filePath: "README.md", want: "/"},
		{name: "top level page", filePath: "getting-started.md", want: "/getting-started/"},
		{name: "nested page", filePath: "commands/loops.md", want: "/commands/loops/"},
		{name: "section index", filePath: "guides/index.md", want: "/guides/"},
		{name: "deep nesting", filePath: "a/b/c.md", want: "/a/b/c/"},
		{name: "slug override", filePath: "commands/loops.md", slug: "iteration", want: "/commands/iteration/"},
		{name: "mdx extension", filePath: "syntax/quoting.mdx", want: "/syntax/quoting/"},
		{name: "mixed case stem", filePath: "guides/Shell-Expansion.md", want: "/guides/shell-expansion/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PathForDocument(tc.filePath, tc.slug, indexNames)
			if err != nil {
				t.Fatalf("PathForDocument(%q): %v", tc.filePath, err)
			}
			if got != tc.want {
				t.Fatalf("PathForDocument(%q) = %q, want %q", tc.filePath, got, tc.want)
			}
		})
	}
}

func TestPathForDocumentEmptyPath(t *testing.T) {
	if _, err := PathForDocument("", "", nil); err == nil {
		t.Fatalf("expected error for empty file path")
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"/":                 "/",
		"/commands/loops/":  "/commands/loops/",
		"commands/loops":    "/commands/loops/",
		"/commands/loops":   "/commands/loops/",
		"  /guides/  ":      "/guides/",
		"guides/expansion/": "/guides/expansion/",
	}

	for input, want := range cases {
		if got := NormalizePath(input); got != want {
			t.Fatalf("NormalizePath(%q) = %q, want %q", input, got, want)
		}
	}
}
