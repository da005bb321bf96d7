// Command docsite validates a Markdown documentation site: it scans the
// content directory, loads the sidebar definition, and reports every broken
// navigation link and orphaned document. The process exits non-zero when the
// site cannot be published as configured.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	docsite "github.com/goliatone/go-docsite"
	sitecmd "github.com/goliatone/go-docsite/internal/commands/site"
)

func main() {
	if err := runValidate(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "docsite: %v\n", err)
		os.Exit(1)
	}
}

func runValidate(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("docsite", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	navConfig := fs.String("nav-config", "navigation.yaml", "Path to the sidebar definition")
	strict := fs.Bool("strict", false, "Treat orphaned documents as fatal findings")
	includeUnlisted := fs.Bool("include-unlisted", false, "Report documents marked unlisted as orphans too")
	logLevel := fs.String("log-level", "info", "Minimum log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "console", "Log output format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := docsite.DefaultConfig()
	cfg.Content.Dir = *contentDir
	cfg.Content.Pattern = *pattern
	cfg.Navigation.ConfigPath = *navConfig
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := docsite.New(cfg)
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}

	var report *docsite.Report
	handlers, err := sitecmd.RegisterSiteCommands(nil, module.Site(), module.LoggerProvider())
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}

	execErr := handlers.Validate.Execute(context.Background(), sitecmd.ValidateSiteCommand{
		StrictOrphans:   *strict,
		IncludeUnlisted: *includeUnlisted,
		ResultCallback: func(envelope sitecmd.ResultEnvelope) {
			report = envelope.Report
		},
	})

	if report != nil {
		for _, broken := range report.Broken {
			fmt.Fprintf(stderr, "error: %s\n", broken.Error())
		}
		for _, orphan := range report.Orphans {
			fmt.Fprintf(stdout, "warning: %s\n", orphan.String())
		}
	}

	if execErr != nil {
		return execErr
	}

	fmt.Fprintln(stdout, "navigation ok")
	return nil
}
