package frontmatter

import (
	"strconv"
	"strings"
)

// Kind discriminates the variants a frontmatter value can take.
type Kind uint8

const (
	// KindText is a scalar string value.
	KindText Kind = iota
	// KindFlag is a boolean value.
	KindFlag
	// KindList is an ordered sequence of strings.
	KindList
)

// Value is a tagged variant holding exactly one of the three shapes the
// restricted grammar admits. The serializer switches exhaustively on Kind so
// new variants cannot be rendered by accident.
type Value struct {
	kind  Kind
	text  string
	flag  bool
	items []string
}

// Text builds a scalar string value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Flag builds a boolean value.
func Flag(b bool) Value {
	return Value{kind: KindFlag, flag: b}
}

// List builds a sequence value from the supplied items.
func List(items ...string) Value {
	return Value{kind: KindList, items: items}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Text returns the scalar payload. Zero value for non-text variants.
func (v Value) Text() string { return v.text }

// Flag returns the boolean payload. Zero value for non-flag variants.
func (v Value) Flag() bool { return v.flag }

// Items returns the sequence payload. Nil for non-list variants.
func (v Value) Items() []string { return v.items }

// IsEmpty reports whether the value is falsy: an empty string, a false flag,
// or a zero-length list.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindText:
		return v.text == ""
	case KindFlag:
		return !v.flag
	case KindList:
		return len(v.items) == 0
	default:
		return true
	}
}

// Equal reports deep equality across variants.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindFlag:
		return v.flag == other.flag
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if v.items[i] != other.items[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a debug representation. The serializer owns the canonical
// output format; this is only for logs and test failures.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindFlag:
		return strconv.FormatBool(v.flag)
	case KindList:
		return "[" + strings.Join(v.items, ", ") + "]"
	default:
		return ""
	}
}
