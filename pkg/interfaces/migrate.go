package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// MigrationService exposes the post migration workflows: converting a single
// markdown file or a whole directory tree from the legacy frontmatter schema
// into the new per-post directory layout.
type MigrationService interface {
	// MigrateFile migrates one markdown file, identified by its path relative
	// to the configured source root.
	MigrateFile(ctx context.Context, path string, opts MigrateOptions) (*FileOutcome, error)
	// MigrateDirectory migrates every markdown post under dir (relative to
	// the configured source root; "." migrates the whole tree).
	MigrateDirectory(ctx context.Context, dir string, opts MigrateOptions) (*Report, error)
}

// MigrateOptions tunes a migration run.
type MigrateOptions struct {
	// DryRun executes the full parse/transform/serialize pipeline without
	// creating directories or writing any output file.
	DryRun bool
}

// FileOutcome records what happened to a single source file.
type FileOutcome struct {
	// Source is the path of the input file relative to the source root.
	Source string
	// Slug is the derived output directory name. Empty when migration failed
	// before a slug could be derived.
	Slug string
	// Target is the written output path relative to the target root.
	Target string
	// Err carries the per-file failure, nil for migrated files.
	Err error
}

// Report summarises a directory migration run. Outcomes are bucketed the way
// the console summary reports them: migrated, skipped (missing frontmatter),
// and failed (everything else).
type Report struct {
	RunID    uuid.UUID
	Migrated []FileOutcome
	Skipped  []FileOutcome
	Failed   []FileOutcome
}

// SuccessCount returns the number of files migrated successfully.
func (r *Report) SuccessCount() int { return len(r.Migrated) }

// SkippedCount returns the number of files skipped for missing frontmatter.
func (r *Report) SkippedCount() int { return len(r.Skipped) }

// FailureCount returns the number of files that failed to migrate.
func (r *Report) FailureCount() int { return len(r.Failed) }

// OutputVerifier re-parses migrated posts and validates them against the new
// post schema.
type OutputVerifier interface {
	// VerifyDirectory checks every <slug>/index.md under dir, relative to
	// the configured target root.
	VerifyDirectory(ctx context.Context, dir string) (*VerifyReport, error)
}

// VerifyProblem identifies one migrated file that failed verification.
type VerifyProblem struct {
	// Path is the offending file relative to the target root.
	Path string
	// Err describes why the file failed verification.
	Err error
}

// VerifyReport summarises an output verification run.
type VerifyReport struct {
	RunID    uuid.UUID
	Checked  int
	Problems []VerifyProblem
}

// OK reports whether every checked file passed verification.
func (r *VerifyReport) OK() bool { return len(r.Problems) == 0 }

// RenderOptions customises markdown body rendering for previews.
type RenderOptions struct {
	Extensions []string
	HardWraps  bool
	Sanitize   bool
}

// BodyRenderer converts a markdown post body into HTML.
type BodyRenderer interface {
	Render(ctx context.Context, markdown []byte, opts RenderOptions) ([]byte, error)
}
