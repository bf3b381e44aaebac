package migrate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-postmigrate/internal/logging"
	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

// Config controls where the service reads legacy posts from and writes the
// migrated tree to.
type Config struct {
	SourceDir string
	TargetDir string
}

// Service implements interfaces.MigrationService over the local filesystem.
// Per-file console reporting is written to the configured console writer;
// structured events go to the logger.
type Service struct {
	cfg      Config
	console  io.Writer
	logger   interfaces.Logger
	migrator *Migrator
}

var _ interfaces.MigrationService = (*Service)(nil)

// NewService constructs a migration service. A nil console discards the
// per-file report lines; a nil logger drops structured events.
func NewService(cfg Config, logger interfaces.Logger, console io.Writer) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	if console == nil {
		console = io.Discard
	}
	return &Service{
		cfg:      cfg,
		console:  console,
		logger:   logger,
		migrator: NewMigrator(cfg.TargetDir, logger),
	}
}

// MigrateFile migrates a single post identified by its path relative to the
// source root.
func (s *Service) MigrateFile(ctx context.Context, path string, opts interfaces.MigrateOptions) (*interfaces.FileOutcome, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	filesystem, err := s.sourceFS()
	if err != nil {
		return nil, err
	}

	outcome := s.migrateOne(filesystem, path, opts)
	return &outcome, outcome.Err
}

// MigrateDirectory migrates every post under dir, relative to the source
// root. A missing source root aborts before any file is touched; every other
// failure is contained to its file and the run continues.
func (s *Service) MigrateDirectory(ctx context.Context, dir string, opts interfaces.MigrateOptions) (*interfaces.Report, error) {
	filesystem, err := s.sourceFS()
	if err != nil {
		return nil, err
	}

	paths, err := NewLoader(filesystem).Discover(ctx, dir)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(s.console, "Found %d markdown files to migrate.\n\n", len(paths))

	report := &interfaces.Report{RunID: uuid.New()}
	logger := logging.WithFields(s.logger, map[string]any{
		"run_id":  report.RunID,
		"dry_run": opts.DryRun,
	})
	logger.Info("migrate.run.start", "directory", dir, "files", len(paths))

	for _, path := range paths {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}

		outcome := s.migrateOne(filesystem, path, opts)
		switch {
		case outcome.Err == nil:
			report.Migrated = append(report.Migrated, outcome)
		case errors.Is(outcome.Err, ErrNoFrontmatter):
			report.Skipped = append(report.Skipped, outcome)
			logger.Warn("migrate.file.skipped", "source", path, "reason", "no frontmatter")
		default:
			report.Failed = append(report.Failed, outcome)
			logger.Error("migrate.file.failed", "source", path, "error", outcome.Err)
		}
	}

	s.printSummary(report)
	logger.Info("migrate.run.complete",
		"migrated", report.SuccessCount(),
		"skipped", report.SkippedCount(),
		"failed", report.FailureCount(),
	)
	return report, nil
}

func (s *Service) migrateOne(filesystem fs.FS, path string, opts interfaces.MigrateOptions) interfaces.FileOutcome {
	outcome := interfaces.FileOutcome{Source: path}

	data, err := fs.ReadFile(filesystem, path)
	if err != nil {
		outcome.Err = fmt.Errorf("migrate: read %s: %w", path, err)
		fmt.Fprintf(s.console, "  ✗ Error migrating %s: %v\n", path, outcome.Err)
		return outcome
	}

	slug, target, err := s.migrator.MigrateDocument(path, string(data), opts)
	if err != nil {
		outcome.Err = err
		if errors.Is(err, ErrNoFrontmatter) {
			fmt.Fprintf(s.console, "  Warning: No frontmatter found in %s\n", path)
		} else {
			fmt.Fprintf(s.console, "  ✗ Error migrating %s: %v\n", path, err)
		}
		return outcome
	}

	outcome.Slug = slug
	outcome.Target = target
	fmt.Fprintf(s.console, "  ✓ %s -> %s\n", path, target)
	return outcome
}

func (s *Service) printSummary(report *interfaces.Report) {
	fmt.Fprintf(s.console, "\nMigration complete!\n")
	fmt.Fprintf(s.console, "  Success: %d\n", report.SuccessCount())
	fmt.Fprintf(s.console, "  Skipped: %d\n", report.SkippedCount())
	fmt.Fprintf(s.console, "  Failed:  %d\n", report.FailureCount())
}

func (s *Service) sourceFS() (fs.FS, error) {
	root := strings.TrimSpace(s.cfg.SourceDir)
	if root == "" {
		root = "."
	}
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceRootMissing, root, err)
	}
	return os.DirFS(root), nil
}
