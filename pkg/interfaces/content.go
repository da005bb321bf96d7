package interfaces

import "time"

// FrontMatter captures the structured metadata parsed from a Markdown
// document header. Title and Description are the quality-gated fields;
// everything else is carried through for host applications.
type FrontMatter struct {
	Title       string
	Description string
	Slug        string
	Tags        []string
	Date        time.Time
	Draft       bool
	Unlisted    bool
	Custom      map[string]any
	Raw         map[string]any
}

// Document represents a single content page discovered in the content
// directory. Path is the unique site-relative slug derived from the file
// location (e.g. "/commands/loops/"). Body is opaque Markdown source; the
// docsite module never renders it.
type Document struct {
	Path         string
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	Checksum     []byte
	LastModified time.Time
}

// Title returns the display title from frontmatter.
func (d *Document) Title() string {
	if d == nil {
		return ""
	}
	return d.FrontMatter.Title
}

// Unlisted reports whether the document opted out of navigation (templates,
// drafts kept out of the sidebar on purpose).
func (d *Document) Unlisted() bool {
	if d == nil {
		return false
	}
	return d.FrontMatter.Unlisted
}
