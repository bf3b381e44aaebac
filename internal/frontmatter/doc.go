// Package frontmatter implements the restricted frontmatter grammar used by
// the legacy blog posts: a flat mapping of string keys to scalar strings,
// booleans, and flat string lists. It deliberately does not attempt full YAML
// compliance; multi-line scalars, nested mappings, numeric typing, and
// comments are out of scope for the migration input.
package frontmatter
