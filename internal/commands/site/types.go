package sitecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-docsite/internal/navigation"
)

const (
	validateSiteMessageType = "docsite.site.validate"
	listOrphansMessageType  = "docsite.site.list_orphans"
)

// ResultCallback receives the findings produced by a validation run. The
// callback is optional and invoked synchronously from the handler.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a site command execution.
type ResultEnvelope struct {
	Report   *navigation.Report
	Metadata map[string]any
}

// ValidateSiteCommand runs the full content/navigation validation pass.
type ValidateSiteCommand struct {
	StrictOrphans   bool           `json:"strict_orphans,omitempty"`
	IncludeUnlisted bool           `json:"include_unlisted,omitempty"`
	ResultCallback  ResultCallback `json:"-"`
}

// Type implements command.Message.
func (ValidateSiteCommand) Type() string { return validateSiteMessageType }

// Validate implements command.Message. The message carries only booleans, so
// there is nothing to reject; the method exists to satisfy the contract.
func (m ValidateSiteCommand) Validate() error { return nil }

// ListOrphansCommand reports documents unreachable from navigation without
// failing the build, optionally filtered to a path prefix.
type ListOrphansCommand struct {
	PathPrefix     string         `json:"path_prefix,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (ListOrphansCommand) Type() string { return listOrphansMessageType }

// Validate ensures the optional path prefix is well-formed.
func (m ListOrphansCommand) Validate() error {
	errs := validation.Errors{}
	if prefix := strings.TrimSpace(m.PathPrefix); prefix != "" && !strings.HasPrefix(prefix, "/") {
		errs["path_prefix"] = validation.NewError(
			"docsite.site.list_orphans.path_prefix_invalid",
			"path_prefix must start with /",
		)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
