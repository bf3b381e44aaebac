package frontmatter

import "strings"

// marker delimits the frontmatter block at the top of a post.
const marker = "---"

// parseState tracks which of the two line-machine states the parser is in:
// scanning for top-level keys, or accumulating items into an open block list.
type parseState uint8

const (
	scanKeys parseState = iota
	fillList
)

// Parse splits raw document text into a frontmatter mapping and the trimmed
// markdown body.
//
// When the text does not start with the opening marker, or no closing marker
// follows it, the document is treated as having no frontmatter: an empty
// mapping is returned together with the original text untouched.
func Parse(text string) (*Mapping, string) {
	if !strings.HasPrefix(text, marker) {
		return NewMapping(), text
	}

	end := strings.Index(text[len(marker):], marker)
	if end < 0 {
		return NewMapping(), text
	}
	end += len(marker)

	block := strings.TrimSpace(text[len(marker):end])
	body := strings.TrimSpace(text[end+len(marker):])

	return parseBlock(block), body
}

// parseBlock runs the two-state line machine over the frontmatter source.
func parseBlock(block string) *Mapping {
	m := NewMapping()
	state := scanKeys
	openKey := ""

	for _, raw := range strings.Split(block, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "  - ") || strings.HasPrefix(line, "    - ") {
			if state == fillList {
				item := strings.TrimLeft(strings.TrimSpace(line), "- ")
				m.appendItem(openKey, strings.Trim(item, `"'`))
			}
			// Orphan list items are silently dropped.
			continue
		}

		if !strings.HasPrefix(line, " ") && strings.Contains(line, ":") {
			state = scanKeys
			openKey = ""

			key, value, _ := strings.Cut(line, ":")
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)

			switch {
			case strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]"):
				m.Set(key, List(parseInlineList(value)...))
			case len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`):
				m.Set(key, Text(value[1:len(value)-1]))
			case len(value) >= 2 && strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'"):
				m.Set(key, Text(value[1:len(value)-1]))
			case value == "":
				// A bare key opens a block list; indented items follow.
				m.Set(key, List())
				state = fillList
				openKey = key
			default:
				m.Set(key, Text(value))
			}
			continue
		}

		// Any other line shape is ignored.
	}

	return m
}

// parseInlineList splits a bracketed value like ["a", "b"] into items. Items
// blank after whitespace trimming are dropped before quotes are stripped, so
// an explicitly quoted empty string survives.
func parseInlineList(value string) []string {
	inner := value[1 : len(value)-1]
	parts := strings.Split(inner, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, strings.Trim(part, `"'`))
	}
	return items
}
