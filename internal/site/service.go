// Package site orchestrates the build-time validation pass: it loads the
// content store and the sidebar definition, resolves one against the other,
// and reports every finding in a single run.
package site

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-docsite/internal/content"
	"github.com/goliatone/go-docsite/internal/logging"
	"github.com/goliatone/go-docsite/internal/markdown"
	"github.com/goliatone/go-docsite/internal/navigation"
	"github.com/goliatone/go-docsite/internal/runtimeconfig"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// ErrOrphansNotAllowed is returned when strict mode promotes orphaned
// documents to fatal findings.
var ErrOrphansNotAllowed = errors.New("site: orphaned documents are not allowed in strict mode")

// Service describes the site validation capabilities.
type Service interface {
	LoadStore(ctx context.Context) (*content.Store, error)
	LoadTree(ctx context.Context) (navigation.Tree, error)
	Validate(ctx context.Context, opts ValidateOptions) (*Result, error)
}

// ValidateOptions tunes a validation run.
type ValidateOptions struct {
	// StrictOrphans turns orphan warnings into a fatal finding.
	StrictOrphans bool
	// IncludeUnlisted reports documents that opted out via frontmatter too.
	IncludeUnlisted bool
}

// Result carries the outcome of a successful (or warning-only) validation run.
type Result struct {
	Tree   *navigation.ResolvedTree
	Report *navigation.Report
	Store  *content.Store
}

// Option customises service construction.
type Option func(*service)

// WithContentFS overrides the filesystem the content directory is read from.
// Defaults to the OS filesystem rooted at the configured content dir.
func WithContentFS(fsys fs.FS) Option {
	return func(s *service) {
		if fsys != nil {
			s.contentFS = fsys
		}
	}
}

// WithNavigationFS overrides the filesystem the sidebar config is read from.
func WithNavigationFS(fsys fs.FS) Option {
	return func(s *service) {
		if fsys != nil {
			s.navFS = fsys
		}
	}
}

// WithLoggerProvider wires module loggers for the validation pass.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *service) {
		s.provider = provider
	}
}

type service struct {
	cfg       runtimeconfig.Config
	contentFS fs.FS
	navFS     fs.FS
	provider  interfaces.LoggerProvider
	logger    interfaces.Logger
}

// NewService constructs a validation service from the runtime configuration.
func NewService(cfg runtimeconfig.Config, opts ...Option) Service {
	s := &service{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.contentFS == nil {
		s.contentFS = os.DirFS(cfg.Content.Dir)
	}
	if s.navFS == nil {
		s.navFS = os.DirFS(".")
	}
	s.logger = logging.NavigationLogger(s.provider)
	return s
}

// LoadStore scans the content directory and assembles the document store.
// Construction failures (duplicates, missing frontmatter) come back as a
// single batch error.
func (s *service) LoadStore(ctx context.Context) (*content.Store, error) {
	loader := markdown.NewLoader(s.contentFS, markdown.LoaderConfig{
		Pattern:   s.cfg.Content.Pattern,
		Recursive: s.cfg.Content.Recursive,
	})

	results, err := loader.LoadDirectory(ctx, ".", markdown.LoadParams{})
	if err != nil {
		return nil, err
	}

	docs := make([]*interfaces.Document, 0, len(results))
	for _, result := range results {
		docs = append(docs, result.Document)
	}

	store, err := content.NewStore(docs, content.Options{
		IndexBasenames: s.cfg.Content.IndexBasenames,
	})
	if err != nil {
		return nil, err
	}

	logging.ContentLogger(s.provider).Debug("content.store.loaded", "documents", store.Len())
	return store, nil
}

// LoadTree reads the sidebar definition named in the configuration. The
// configured file is the single system of record for a build.
func (s *service) LoadTree(ctx context.Context) (navigation.Tree, error) {
	if err := ctx.Err(); err != nil {
		return navigation.Tree{}, err
	}
	return navigation.LoadFile(s.navFS, s.cfg.Navigation.ConfigPath)
}

// Validate runs the full pass: load, resolve, report. Broken links (and
// orphans in strict mode) fail the run with the complete finding list.
func (s *service) Validate(ctx context.Context, opts ValidateOptions) (*Result, error) {
	store, err := s.LoadStore(ctx)
	if err != nil {
		return nil, err
	}

	tree, err := s.LoadTree(ctx)
	if err != nil {
		return nil, err
	}

	resolved, report, err := navigation.Resolve(tree, store, navigation.ResolveOptions{
		IncludeUnlisted: opts.IncludeUnlisted,
	})
	if err != nil {
		return &Result{Report: report, Store: store}, err
	}

	for _, orphan := range report.Orphans {
		s.logger.Warn("navigation.document.orphaned", "path", orphan.Path)
	}

	strict := opts.StrictOrphans || s.cfg.Navigation.StrictOrphans
	if strict && len(report.Orphans) > 0 {
		paths := make([]string, 0, len(report.Orphans))
		for _, orphan := range report.Orphans {
			paths = append(paths, orphan.Path)
		}
		return &Result{Report: report, Store: store},
			&strictOrphanError{detail: strings.Join(paths, ", ")}
	}

	s.logger.Info("navigation.resolve.success",
		"links", len(resolved.Links()),
		"documents", store.Len(),
		"orphans", len(report.Orphans),
	)

	return &Result{Tree: resolved, Report: report, Store: store}, nil
}

type strictOrphanError struct {
	detail string
}

func (e *strictOrphanError) Error() string {
	return ErrOrphansNotAllowed.Error() + ": " + e.detail
}

func (e *strictOrphanError) Unwrap() error {
	return ErrOrphansNotAllowed
}
