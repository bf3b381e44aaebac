// Package migrate orchestrates the post migration pipeline: discovering
// legacy markdown posts, running them through the frontmatter
// parse/transform/serialize stages, and writing the normalized per-post
// directory layout. Files are processed sequentially and failures are
// contained at file granularity.
package migrate
