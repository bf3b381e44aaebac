package postmigrate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSourceDirRequired      = errors.New("postmigrate: source directory is required")
	ErrTargetDirRequired      = errors.New("postmigrate: target directory is required")
	ErrLoggingProviderUnknown = errors.New("postmigrate: unknown logging provider")
	ErrLoggingLevelInvalid    = errors.New("postmigrate: invalid logging level")
	ErrLoggingFormatInvalid   = errors.New("postmigrate: invalid logging format")
)

// Config captures the runtime settings for a migration module.
type Config struct {
	// SourceDir is the root holding the legacy flat post files.
	SourceDir string
	// TargetDir is the root receiving the per-post directories.
	TargetDir string
	Logging   LoggingConfig
	Render    RenderConfig
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// RenderConfig mirrors interfaces.RenderOptions for runtime configuration of
// the preview renderer.
type RenderConfig struct {
	Extensions []string
	HardWraps  bool
	Sanitize   bool
}

// DefaultConfig returns the historic tool defaults: posts live under
// content/posts and migrate into src/content/blog.
func DefaultConfig() Config {
	return Config{
		SourceDir: "content/posts",
		TargetDir: "src/content/blog",
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Render: RenderConfig{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.SourceDir) == "" {
		return ErrSourceDirRequired
	}
	if strings.TrimSpace(cfg.TargetDir) == "" {
		return ErrTargetDirRequired
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider != "" && !isSupportedProvider(provider) {
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
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "noop", "console", "gologger":
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
