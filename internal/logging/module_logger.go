package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

const (
	rootModule     = "postmigrate"
	migrateModule  = "postmigrate.migrate"
	verifyModule   = "postmigrate.verify"
	renderModule   = "postmigrate.render"
	commandsModule = "postmigrate.commands"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as structured context so downstream entries can be filtered
// predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// MigrateLogger returns the logger namespace reserved for the migration
// pipeline.
func MigrateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, migrateModule)
}

// VerifyLogger returns the logger namespace reserved for output verification.
func VerifyLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, verifyModule)
}

// RenderLogger returns the logger namespace reserved for preview rendering.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// WithMigrationContext enriches the provided logger with common migration
// fields. Empty values are ignored.
func WithMigrationContext(logger interfaces.Logger, source, slug string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		fields["source"] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields["slug"] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
