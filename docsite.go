// Package docsite validates the navigation structure of a Markdown
// documentation site: it loads a content directory into an immutable store,
// reads the declarative sidebar tree, and resolves one against the other,
// reporting every broken link and orphaned document in a single pass.
package docsite

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-docsite/internal/content"
	"github.com/goliatone/go-docsite/internal/logging"
	"github.com/goliatone/go-docsite/internal/logging/console"
	"github.com/goliatone/go-docsite/internal/logging/gologger"
	"github.com/goliatone/go-docsite/internal/navigation"
	"github.com/goliatone/go-docsite/internal/site"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// SiteService exports the validation service contract for consumers of the
// docsite package.
type SiteService = site.Service

// ValidateOptions exports the validation run options.
type ValidateOptions = site.ValidateOptions

// Result exports the validation outcome.
type Result = site.Result

// ContentStore exports the immutable path-to-document mapping.
type ContentStore = content.Store

// Document exports the content page model.
type Document = interfaces.Document

// FrontMatter exports the parsed document metadata.
type FrontMatter = interfaces.FrontMatter

// NavigationTree exports the declarative sidebar model.
type NavigationTree = navigation.Tree

// NavigationEntry exports a single sidebar node.
type NavigationEntry = navigation.Entry

// ResolvedTree exports the render-ready navigation structure.
type ResolvedTree = navigation.ResolvedTree

// Report exports the per-run finding list.
type Report = navigation.Report

// BrokenLinkError exports the fatal dead-navigation finding.
type BrokenLinkError = navigation.BrokenLinkError

// OrphanedDocumentWarning exports the informational unlinked-document finding.
type OrphanedDocumentWarning = navigation.OrphanedDocumentWarning

// Link constructs a sidebar leaf pointing at a document path.
func Link(label, path string) NavigationEntry {
	return navigation.Link(label, path)
}

// Group constructs a labeled sidebar container preserving child order.
func Group(label string, children ...NavigationEntry) NavigationEntry {
	return navigation.Group(label, children...)
}

// Resolve runs the pure resolution pass over an already-constructed tree and
// store. Hosts that manage their own loading can call this directly.
func Resolve(tree NavigationTree, store *ContentStore) (*ResolvedTree, *Report, error) {
	return navigation.Resolve(tree, store, navigation.ResolveOptions{})
}

// Option customises module construction.
type Option func(*Module)

// WithContentFS overrides the filesystem the content directory is read from.
func WithContentFS(fsys fs.FS) Option {
	return func(m *Module) { m.contentFS = fsys }
}

// WithNavigationFS overrides the filesystem the sidebar config is read from.
func WithNavigationFS(fsys fs.FS) Option {
	return func(m *Module) { m.navFS = fsys }
}

// WithLoggerProvider overrides the logger provider derived from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) { m.provider = provider }
}

// Module is the top level docsite runtime façade.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	contentFS fs.FS
	navFS     fs.FS
	service   site.Service
}

// New constructs a docsite module using the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil && cfg.Features.Logger {
		provider, err := newLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	serviceOpts := []site.Option{
		site.WithLoggerProvider(m.provider),
	}
	if m.contentFS != nil {
		serviceOpts = append(serviceOpts, site.WithContentFS(m.contentFS))
	}
	if m.navFS != nil {
		serviceOpts = append(serviceOpts, site.WithNavigationFS(m.navFS))
	}
	m.service = site.NewService(cfg, serviceOpts...)

	return m, nil
}

// Site returns the configured validation service.
func (m *Module) Site() SiteService {
	return m.service
}

// LoggerProvider exposes the provider so hosts can scope additional loggers.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

// Validate runs the full load-and-resolve pass with the module configuration.
func (m *Module) Validate(ctx context.Context, opts ValidateOptions) (*Result, error) {
	return m.service.Validate(ctx, opts)
}

func newLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch cfg.Provider {
	case "", "console":
		return console.NewProvider(console.Options{}), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}

// NoOpLogger returns a logger that drops every entry, for hosts that want to
// silence a single collaborator without disabling logging globally.
func NoOpLogger() interfaces.Logger {
	return logging.NoOp()
}
