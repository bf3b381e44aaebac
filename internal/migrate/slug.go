package migrate

import (
	"path/filepath"
	"regexp"
	"strings"

	slug "github.com/goliatone/go-slug"
)

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)

// SlugFromFilename derives the output directory name from a source filename,
// dropping the extension and any leading YYYY-MM-DD- date prefix before
// normalizing. Returns the empty string when nothing usable remains; callers
// fall back to SlugFromTitle.
func SlugFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = datePrefix.ReplaceAllString(base, "")
	return normalizeSlug(base)
}

// SlugFromTitle derives the output directory name from the transformed post
// title.
func SlugFromTitle(title string) string {
	return normalizeSlug(title)
}

func normalizeSlug(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	normalized, err := slug.Normalize(value)
	if err != nil {
		return ""
	}
	return normalized
}
