package content

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"
)

// PathForDocument derives the canonical site-relative path for a document
// from its file location. Every directory segment and the file stem are
// normalized with go-slug; a non-empty frontmatter slug overrides the stem.
// Stems listed in indexBasenames collapse into the parent directory, so
// "guides/index.md" resolves to "/guides/" and a top-level "index.md" to "/".
// Returned paths always carry leading and trailing slashes.
func PathForDocument(filePath, slugOverride string, indexBasenames []string) (string, error) {
	clean := filepath.ToSlash(filepath.Clean(strings.TrimSpace(filePath)))
	if clean == "" || clean == "." {
		return "", fmt.Errorf("content path: empty file path")
	}

	dir, file := filepath.Split(clean)
	stem := strings.TrimSuffix(file, filepath.Ext(file))

	segments := []string{}
	for _, part := range strings.Split(strings.Trim(dir, "/"), "/") {
		if part == "" || part == "." {
			continue
		}
		normalized, err := slug.Normalize(part)
		if err != nil {
			return "", fmt.Errorf("content path: segment %q in %s: %w", part, filePath, err)
		}
		segments = append(segments, normalized)
	}

	last := strings.TrimSpace(slugOverride)
	if last == "" {
		last = stem
	}

	if !isIndexStem(last, indexBasenames) {
		normalized, err := slug.Normalize(last)
		if err != nil {
			return "", fmt.Errorf("content path: stem %q in %s: %w", last, filePath, err)
		}
		segments = append(segments, normalized)
	}

	if len(segments) == 0 {
		return "/", nil
	}
	return "/" + strings.Join(segments, "/") + "/", nil
}

// NormalizePath brings an externally supplied path (navigation config input)
// into the canonical leading/trailing slash form used as store keys.
func NormalizePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	trimmed = strings.Trim(trimmed, "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed + "/"
}

// IsValidPathSegment reports whether a single path segment already satisfies
// the slug rules applied during derivation.
func IsValidPathSegment(segment string) bool {
	return slug.IsValid(segment)
}

func isIndexStem(stem string, indexBasenames []string) bool {
	for _, name := range indexBasenames {
		if strings.EqualFold(stem, name) {
			return true
		}
	}
	return false
}
