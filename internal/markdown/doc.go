// Package markdown discovers Markdown documents on a filesystem and parses
// their frontmatter into structured metadata. Document bodies are treated as
// opaque source; rendering belongs to the host site framework.
package markdown
