package markdown

import (
	"testing"
	"time"
)

const sampleSource = `---
title: Loops
description: Iteration constructs in the shell
slug: iteration
tags:
  - control-flow
  - syntax
unlisted: true
category: commands
---

# Loops

Body content here.
`

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte(sampleSource))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta.Title != "Loops" {
		t.Fatalf("expected title Loops, got %q", meta.Title)
	}
	if meta.Description != "Iteration constructs in the shell" {
		t.Fatalf("unexpected description %q", meta.Description)
	}
	if meta.Slug != "iteration" {
		t.Fatalf("unexpected slug %q", meta.Slug)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "control-flow" {
		t.Fatalf("unexpected tags %v", meta.Tags)
	}
	if !meta.Unlisted {
		t.Fatalf("expected unlisted to be true")
	}
	if meta.Draft {
		t.Fatalf("draft should default to false")
	}
	if meta.Custom["category"] != "commands" {
		t.Fatalf("expected custom field category, got %v", meta.Custom)
	}
	if meta.Raw["title"] != "Loops" {
		t.Fatalf("expected raw map to carry title")
	}
	if len(body) == 0 {
		t.Fatalf("expected non-empty body")
	}
}

func TestParseFrontMatterWithoutDelimiters(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte("# Just a heading\n\nNo frontmatter at all.\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Title != "" || meta.Description != "" {
		t.Fatalf("expected empty metadata, got %+v", meta)
	}
	if len(body) == 0 {
		t.Fatalf("expected body passthrough")
	}
}

func TestBuildDocument(t *testing.T) {
	modified := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc, err := BuildDocument("commands/loops.md", []byte(sampleSource), modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.FilePath != "commands/loops.md" {
		t.Fatalf("unexpected file path %q", doc.FilePath)
	}
	if doc.Path != "" {
		t.Fatalf("path should be left empty for the store to derive, got %q", doc.Path)
	}
	if !doc.LastModified.Equal(modified) {
		t.Fatalf("unexpected modification time %v", doc.LastModified)
	}
	if !doc.Unlisted() {
		t.Fatalf("expected unlisted document")
	}
}
