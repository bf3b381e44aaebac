package frontmatter

import (
	"strconv"
	"strings"
)

// Serialize renders a mapping back into the fenced text block. One line per
// present key, in mapping order, between marker lines. No trailing newline is
// appended; the caller decides how the block joins the body.
func Serialize(m *Mapping) string {
	lines := make([]string, 0, m.Len()+2)
	lines = append(lines, marker)
	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		if line, ok := renderField(key, value); ok {
			lines = append(lines, line)
		}
	}
	lines = append(lines, marker)
	return strings.Join(lines, "\n")
}

func renderField(key string, value Value) (string, bool) {
	switch value.Kind() {
	case KindList:
		items := value.Items()
		if len(items) == 0 {
			// Empty sequences never make it past the transformer, but the
			// serializer re-checks so the omission rule holds on its own.
			return "", false
		}
		quoted := make([]string, len(items))
		for i, item := range items {
			quoted[i] = `"` + item + `"`
		}
		return key + ": [" + strings.Join(quoted, ", ") + "]", true
	case KindFlag:
		return key + ": " + strconv.FormatBool(value.Flag()), true
	case KindText:
		text := value.Text()
		if strings.ContainsAny(text, ":\"'\n") {
			text = strings.ReplaceAll(text, `"`, `\"`)
		}
		return key + `: "` + text + `"`, true
	default:
		return key + ": " + value.String(), true
	}
}
