package migrate

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Loader discovers legacy markdown posts within a source filesystem.
type Loader struct {
	fs fs.FS
}

// NewLoader constructs a Loader over the provided filesystem, typically an
// os.DirFS rooted at the source directory.
func NewLoader(filesystem fs.FS) *Loader {
	return &Loader{fs: filesystem}
}

// Discover walks dir recursively and returns the slash-separated paths of
// every .md file, sorted for deterministic processing. Files named readme.md
// (any case) are not posts and are excluded.
func (l *Loader) Discover(ctx context.Context, dir string) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	root := path.Clean(strings.TrimSpace(dir))
	if root == "" {
		root = "."
	}

	var paths []string
	err := fs.WalkDir(l.fs, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		name := path.Base(p)
		if !strings.EqualFold(path.Ext(name), ".md") {
			return nil
		}
		if strings.EqualFold(name, "readme.md") {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("migrate loader walk %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}
