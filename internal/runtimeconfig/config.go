package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrContentDirRequired indicates the content directory is missing from the configuration.
var ErrContentDirRequired = errors.New("docsite config: content directory is required")

// ErrNavigationSourceRequired indicates that neither a navigation config file nor an inline tree was supplied.
var ErrNavigationSourceRequired = errors.New("docsite config: navigation config path or inline tree is required")

var ErrContentPatternInvalid = errors.New("docsite config: content pattern is invalid")
var ErrLoggingProviderRequired = errors.New("docsite config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("docsite config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("docsite config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("docsite config: logging format is invalid")
var ErrCommandTimeoutInvalid = errors.New("docsite config: command timeout must be zero or positive")

// Config aggregates feature flags and adapter bindings for the docsite module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled    bool
	Content    ContentConfig
	Navigation NavigationConfig
	Features   Features
	Commands   CommandsConfig
	Logging    LoggingConfig
}

// ContentConfig captures filesystem discovery behaviour for Markdown documents.
type ContentConfig struct {
	Dir       string
	Pattern   string
	Recursive bool
	// IndexBasenames lists file stems that collapse into their directory path
	// ("index" makes content/guide/index.md resolve to /guide/).
	IndexBasenames []string
}

// NavigationConfig captures where the sidebar tree is read from. Exactly one
// navigation source is the system of record per build.
type NavigationConfig struct {
	// ConfigPath points at the YAML sidebar definition.
	ConfigPath string
	// StrictOrphans promotes orphaned-document warnings to fatal findings.
	StrictOrphans bool
}

// Features toggles module functionality.
type Features struct {
	Logger bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a conventional docs layout.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Content: ContentConfig{
			Dir:            "content",
			Pattern:        "*.md",
			Recursive:      true,
			IndexBasenames: []string{"index", "readme"},
		},
		Navigation: NavigationConfig{
			ConfigPath: "navigation.yaml",
		},
		Features: Features{},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if pattern := strings.TrimSpace(cfg.Content.Pattern); pattern != "" && strings.ContainsAny(pattern, "\x00") {
		return fmt.Errorf("%w: %s", ErrContentPatternInvalid, pattern)
	}
	if strings.TrimSpace(cfg.Navigation.ConfigPath) == "" {
		return ErrNavigationSourceRequired
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
