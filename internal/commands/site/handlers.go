package sitecmd

import (
	"context"
	"strings"

	"github.com/goliatone/go-docsite/internal/commands"
	"github.com/goliatone/go-docsite/internal/logging"
	"github.com/goliatone/go-docsite/internal/navigation"
	"github.com/goliatone/go-docsite/internal/site"
	"github.com/goliatone/go-docsite/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	validateOperation = "site.validate"
	orphansOperation  = "site.list_orphans"
)

var (
	_ command.Commander[ValidateSiteCommand] = (*ValidateSiteHandler)(nil)
	_ command.Commander[ListOrphansCommand]  = (*ListOrphansHandler)(nil)
)

// ValidateSiteHandler orchestrates the validation pass via the shared command
// handler foundation.
type ValidateSiteHandler struct {
	inner *commands.Handler[ValidateSiteCommand]
}

// NewValidateSiteHandler creates a handler bound to the supplied site service.
func NewValidateSiteHandler(service site.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateSiteCommand]) *ValidateSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ValidateSiteCommand) error {
		result, err := service.Validate(ctx, site.ValidateOptions{
			StrictOrphans:   msg.StrictOrphans,
			IncludeUnlisted: msg.IncludeUnlisted,
		})
		if result != nil && msg.ResultCallback != nil {
			msg.ResultCallback(ResultEnvelope{
				Report: result.Report,
				Metadata: map[string]any{
					"strict_orphans": msg.StrictOrphans,
				},
			})
		}
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"link_count":   len(result.Tree.Links()),
			"orphan_count": len(result.Report.Orphans),
			"documents":    result.Store.Len(),
		}).Info("site.command.validate.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateSiteCommand]{
		commands.WithLogger[ValidateSiteCommand](baseLogger),
		commands.WithOperation[ValidateSiteCommand](validateOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *ValidateSiteHandler) Execute(ctx context.Context, msg ValidateSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ListOrphansHandler reports unlinked documents without failing the run.
type ListOrphansHandler struct {
	inner *commands.Handler[ListOrphansCommand]
}

// NewListOrphansHandler creates a handler bound to the supplied site service.
func NewListOrphansHandler(service site.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ListOrphansCommand]) *ListOrphansHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ListOrphansCommand) error {
		result, err := service.Validate(ctx, site.ValidateOptions{})
		if err != nil {
			return err
		}

		orphans := result.Report.Orphans
		if prefix := strings.TrimSpace(msg.PathPrefix); prefix != "" {
			filtered := make([]navigation.OrphanedDocumentWarning, 0, len(orphans))
			for _, orphan := range orphans {
				if strings.HasPrefix(orphan.Path, prefix) {
					filtered = append(filtered, orphan)
				}
			}
			orphans = filtered
		}

		if msg.ResultCallback != nil {
			msg.ResultCallback(ResultEnvelope{
				Report: &navigation.Report{Orphans: orphans},
				Metadata: map[string]any{
					"path_prefix": msg.PathPrefix,
				},
			})
		}

		logging.WithFields(baseLogger, map[string]any{
			"orphan_count": len(orphans),
		}).Info("site.command.list_orphans.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ListOrphansCommand]{
		commands.WithLogger[ListOrphansCommand](baseLogger),
		commands.WithOperation[ListOrphansCommand](orphansOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ListOrphansHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *ListOrphansHandler) Execute(ctx context.Context, msg ListOrphansCommand) error {
	return h.inner.Execute(ctx, msg)
}
