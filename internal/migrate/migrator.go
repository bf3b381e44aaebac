package migrate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/goliatone/go-postmigrate/internal/frontmatter"
	"github.com/goliatone/go-postmigrate/internal/logging"
	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

// Migrator converts one legacy post into its normalized output layout.
type Migrator struct {
	targetRoot string
	logger     interfaces.Logger
}

// NewMigrator builds a Migrator writing under targetRoot.
func NewMigrator(targetRoot string, logger interfaces.Logger) *Migrator {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Migrator{
		targetRoot: targetRoot,
		logger:     logger,
	}
}

// MigrateDocument runs the parse/transform/serialize pipeline over the raw
// document text and writes <targetRoot>/<slug>/index.md. It returns the
// derived slug and the output path relative to the target root.
//
// A document whose frontmatter block is absent or parses to zero fields is
// reported as ErrNoFrontmatter so callers can skip it with a warning. Slug
// collisions between distinct source files silently overwrite earlier
// output; the legacy tree is known not to collide and the migration runs
// once.
func (m *Migrator) MigrateDocument(source, text string, opts interfaces.MigrateOptions) (slug, target string, err error) {
	fm, body := frontmatter.Parse(text)
	if fm.Len() == 0 {
		return "", "", ErrNoFrontmatter
	}

	next := frontmatter.Transform(fm)

	slug = SlugFromFilename(path.Base(source))
	if slug == "" {
		if title, ok := next.Get(frontmatter.FieldTitle); ok && title.Kind() == frontmatter.KindText {
			slug = SlugFromTitle(title.Text())
		}
	}
	if slug == "" {
		return "", "", fmt.Errorf("%w for %s", ErrEmptySlug, source)
	}

	target = path.Join(slug, "index.md")
	if opts.DryRun {
		m.logger.Debug("migrate.document.dry_run", "source", source, "target", target)
		return slug, target, nil
	}

	postDir := filepath.Join(m.targetRoot, filepath.FromSlash(slug))
	if err := os.MkdirAll(postDir, 0o755); err != nil {
		return "", "", fmt.Errorf("migrate: create post dir %s: %w", postDir, err)
	}

	content := frontmatter.Serialize(next) + "\n\n" + body
	outPath := filepath.Join(postDir, "index.md")
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return "", "", fmt.Errorf("migrate: write %s: %w", outPath, err)
	}

	m.logger.Debug("migrate.document.written", "source", source, "target", target)
	return slug, target, nil
}
