package sitecmd

import (
	"errors"

	"github.com/goliatone/go-docsite/internal/commands"
	"github.com/goliatone/go-docsite/internal/site"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers into a go-command dispatcher.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the site command handlers produced by RegisterSiteCommands.
type HandlerSet struct {
	Validate *ValidateSiteHandler
	Orphans  *ListOrphansHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	validateHandlerOpts []commands.HandlerOption[ValidateSiteCommand]
	orphansHandlerOpts  []commands.HandlerOption[ListOrphansCommand]
}

// WithValidateHandlerOptions forwards options to the ValidateSiteHandler constructor.
func WithValidateHandlerOptions(opts ...commands.HandlerOption[ValidateSiteCommand]) Option {
	return func(cfg *options) {
		cfg.validateHandlerOpts = append(cfg.validateHandlerOpts, opts...)
	}
}

// WithOrphansHandlerOptions forwards options to the ListOrphansHandler constructor.
func WithOrphansHandlerOptions(opts ...commands.HandlerOption[ListOrphansCommand]) Option {
	return func(cfg *options) {
		cfg.orphansHandlerOpts = append(cfg.orphansHandlerOpts, opts...)
	}
}

// RegisterSiteCommands builds the site command handlers and registers them
// with the provided registry. The constructed HandlerSet is returned so
// callers can wire additional integrations as needed.
func RegisterSiteCommands(reg CommandRegistry, service site.Service, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("site command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "site")

	validateHandler := NewValidateSiteHandler(service, logger, cfg.validateHandlerOpts...)
	orphansHandler := NewListOrphansHandler(service, logger, cfg.orphansHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(validateHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(orphansHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Validate: validateHandler,
		Orphans:  orphansHandler,
	}, nil
}
