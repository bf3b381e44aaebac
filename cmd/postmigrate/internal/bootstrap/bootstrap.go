// Package bootstrap wires CLI flags into a configured postmigrate module.
package bootstrap

import (
	"fmt"
	"io"
	"strings"

	postmigrate "github.com/goliatone/go-postmigrate"
	"github.com/goliatone/go-postmigrate/internal/logging"
	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

// Options captures configuration for the migration CLI bootstraps.
type Options struct {
	SourceDir      string
	TargetDir      string
	LogProvider    string
	LogLevel       string
	LogFormat      string
	Console        io.Writer
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the postmigrate module and the logger handed to command
// handlers.
type Module struct {
	Module *postmigrate.Module
	Logger interfaces.Logger
}

// BuildModule constructs a postmigrate module from CLI options.
func BuildModule(opts Options) (*Module, error) {
	cfg := postmigrate.DefaultConfig()
	if trimmed := strings.TrimSpace(opts.SourceDir); trimmed != "" {
		cfg.SourceDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.TargetDir); trimmed != "" {
		cfg.TargetDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogProvider); trimmed != "" {
		cfg.Logging.Provider = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}

	moduleOpts := []postmigrate.Option{}
	if opts.Console != nil {
		moduleOpts = append(moduleOpts, postmigrate.WithConsole(opts.Console))
	}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, postmigrate.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := postmigrate.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise postmigrate module: %w", err)
	}

	return &Module{
		Module: module,
		Logger: logging.MigrateLogger(module.LoggerProvider()),
	}, nil
}
