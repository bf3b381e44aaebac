// Package postmigrate migrates legacy flat markdown blog posts into the
// per-post directory layout used by the new site: each source file becomes
// <slug>/index.md with its frontmatter rewritten to the new schema.
package postmigrate

import (
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-postmigrate/internal/logging"
	"github.com/goliatone/go-postmigrate/internal/logging/console"
	"github.com/goliatone/go-postmigrate/internal/logging/gologger"
	"github.com/goliatone/go-postmigrate/internal/migrate"
	"github.com/goliatone/go-postmigrate/internal/render"
	"github.com/goliatone/go-postmigrate/internal/verify"
	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

// Module wires the migration, verification, and preview services behind a
// single entry point.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	console  io.Writer

	migrator interfaces.MigrationService
	verifier interfaces.OutputVerifier
	renderer interfaces.BodyRenderer
}

// Option customises module construction.
type Option func(*Module)

// WithConsole overrides the writer receiving the human-readable migration
// report. Defaults to stdout.
func WithConsole(w io.Writer) Option {
	return func(m *Module) {
		m.console = w
	}
}

// WithLoggerProvider injects a logger provider, bypassing the one described
// by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// New validates cfg and constructs the module services. The source root is
// checked at run time, not here, so a module can be built for verification
// only.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{
		cfg:     cfg,
		console: os.Stdout,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	m.migrator = migrate.NewService(migrate.Config{
		SourceDir: cfg.SourceDir,
		TargetDir: cfg.TargetDir,
	}, logging.MigrateLogger(m.provider), m.console)

	verifier, err := verify.NewVerifier(verify.Config{
		TargetDir: cfg.TargetDir,
	}, logging.VerifyLogger(m.provider))
	if err != nil {
		return nil, fmt.Errorf("postmigrate: build verifier: %w", err)
	}
	m.verifier = verifier

	m.renderer = render.NewRenderer(interfaces.RenderOptions{
		Extensions: cfg.Render.Extensions,
		HardWraps:  cfg.Render.HardWraps,
		Sanitize:   cfg.Render.Sanitize,
	}, logging.RenderLogger(m.provider))

	return m, nil
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch normalizeProvider(cfg.Provider) {
	case "", "noop":
		return nil, nil
	case "console":
		level := console.ParseLevel(cfg.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Migrator returns the migration service.
func (m *Module) Migrator() interfaces.MigrationService {
	return m.migrator
}

// Verifier returns the output verifier.
func (m *Module) Verifier() interfaces.OutputVerifier {
	return m.verifier
}

// Renderer returns the preview body renderer.
func (m *Module) Renderer() interfaces.BodyRenderer {
	return m.renderer
}

// LoggerProvider returns the provider used to build module loggers; nil when
// logging is disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}
