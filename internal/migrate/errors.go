package migrate

import "errors"

var (
	// ErrSourceRootMissing aborts a run before any file is processed.
	ErrSourceRootMissing = errors.New("migrate: source root not found")
	// ErrNoFrontmatter marks a file without a usable frontmatter block; the
	// file is skipped with a warning rather than failed.
	ErrNoFrontmatter = errors.New("migrate: no frontmatter found")
	// ErrEmptySlug is returned when neither the filename nor the transformed
	// title yields a usable output directory name.
	ErrEmptySlug = errors.New("migrate: could not derive slug")
)
