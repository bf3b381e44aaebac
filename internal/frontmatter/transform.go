package frontmatter

// Schema field names recognised by the transformer. Everything else in the
// legacy frontmatter (categories, excerpt, arbitrary custom fields) is
// dropped unconditionally.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldTags        = "tags"
	FieldDraft       = "draft"
)

// Fallbacks applied when the legacy frontmatter lacks a required field. The
// description placeholder is always emitted so editors can fill it in later.
const (
	DefaultTitle       = "Untitled"
	DefaultDescription = "."
	DefaultDate        = "2021-01-01"
)

// Transform maps a legacy-schema mapping onto the new post schema. Output key
// order is fixed: title, description, date, tags (when present and
// non-empty), draft. Transform is a pure function; the input mapping is never
// mutated.
func Transform(old *Mapping) *Mapping {
	next := NewMapping()

	if title, ok := old.Get(FieldTitle); ok {
		next.Set(FieldTitle, title)
	} else {
		next.Set(FieldTitle, Text(DefaultTitle))
	}

	// The legacy description, if any, is intentionally discarded.
	next.Set(FieldDescription, Text(DefaultDescription))

	if date, ok := old.Get(FieldDate); ok {
		next.Set(FieldDate, date)
	} else {
		next.Set(FieldDate, Text(DefaultDate))
	}

	if tags, ok := old.Get(FieldTags); ok && !tags.IsEmpty() {
		next.Set(FieldTags, tags)
	}

	next.Set(FieldDraft, Flag(false))

	return next
}
