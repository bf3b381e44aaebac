package frontmatter

import "testing"

func TestParse_NoOpeningMarker(t *testing.T) {
	input := "# Just a heading\n\nSome text.\n"

	m, body := Parse(input)

	if m.Len() != 0 {
		t.Fatalf("expected empty mapping, got %d keys", m.Len())
	}
	if body != input {
		t.Fatalf("expected body to be the original text, got %q", body)
	}
}

func TestParse_MissingClosingMarker(t *testing.T) {
	input := "---\ntitle: Broken\nNo closing fence here."

	m, body := Parse(input)

	if m.Len() != 0 {
		t.Fatalf("expected empty mapping, got %d keys", m.Len())
	}
	if body != input {
		t.Fatalf("expected body to be the original text, got %q", body)
	}
}

func TestParse_BasicBlock(t *testing.T) {
	input := "---\ntitle: Hello World\ndate: 2021-05-01\ntags: [\"a\",\"b\"]\ncategories: [\"x\"]\n---\nBody text."

	m, body := Parse(input)

	if body != "Body text." {
		t.Fatalf("body mismatch, got %q", body)
	}
	assertText(t, m, "title", "Hello World")
	assertText(t, m, "date", "2021-05-01")
	assertList(t, m, "tags", "a", "b")
	assertList(t, m, "categories", "x")
}

func TestParse_QuotedScalars(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		want  string
	}{
		{"double quoted", `title: "Quoted: with colon"`, "Quoted: with colon"},
		{"single quoted", `title: 'Single quoted'`, "Single quoted"},
		{"unquoted kept verbatim", `title: "half quoted`, `"half quoted`},
		{"plain", `title: Plain value`, "Plain value"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := Parse("---\n" + tc.line + "\n---\nbody")
			assertText(t, m, "title", tc.want)
		})
	}
}

func TestParse_BlockList(t *testing.T) {
	input := "---\ntags:\n  - go\n  - \"quoted\"\n    - 'deep'\ntitle: After\n---\nbody"

	m, _ := Parse(input)

	assertList(t, m, "tags", "go", "quoted", "deep")
	assertText(t, m, "title", "After")
}

func TestParse_OrphanListItemsDropped(t *testing.T) {
	input := "---\n  - stray\ntitle: Ok\n  - also stray\n---\nbody"

	m, _ := Parse(input)

	if m.Len() != 1 {
		t.Fatalf("expected a single key, got %v", m.Keys())
	}
	assertText(t, m, "title", "Ok")
}

func TestParse_InlineListEdgeCases(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"empty brackets", "tags: []", []string{}},
		{"blank items dropped", `tags: [ , "a", , b ]`, []string{"a", "b"}},
		{"mixed quoting", `tags: ['x', "y", z]`, []string{"x", "y", "z"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := Parse("---\n" + tc.line + "\n---\nbody")
			assertList(t, m, "tags", tc.want...)
		})
	}
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	input := "---\ntitle: First\ndate: 2020-01-01\ntitle: Second\n---\nbody"

	m, _ := Parse(input)

	assertText(t, m, "title", "Second")
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "title" || keys[1] != "date" {
		t.Fatalf("expected title to keep its original slot, got %v", keys)
	}
}

func TestParse_KeyLineClosesOpenList(t *testing.T) {
	input := "---\ntags:\ntitle: T\n  - late item\n---\nbody"

	m, _ := Parse(input)

	assertList(t, m, "tags")
	if m.Len() != 2 {
		t.Fatalf("expected two keys, got %v", m.Keys())
	}
}

func TestParse_IgnoresOtherLineShapes(t *testing.T) {
	input := "---\njust words without colon\n   indented: but not a list item\ntitle: Kept\n---\nbody"

	m, _ := Parse(input)

	if m.Len() != 1 {
		t.Fatalf("expected only the title key, got %v", m.Keys())
	}
	assertText(t, m, "title", "Kept")
}

func TestParse_BodyTrimming(t *testing.T) {
	input := "---\ntitle: T\n---\n\n\n  Body starts here.  \n\n"

	_, body := Parse(input)

	if body != "Body starts here." {
		t.Fatalf("expected trimmed body, got %q", body)
	}
}

func assertText(tb testing.TB, m *Mapping, key, want string) {
	tb.Helper()
	value, ok := m.Get(key)
	if !ok {
		tb.Fatalf("missing key %q in %v", key, m.Keys())
	}
	if value.Kind() != KindText {
		tb.Fatalf("expected %q to be text, got kind %d", key, value.Kind())
	}
	if value.Text() != want {
		tb.Fatalf("key %q: want %q, got %q", key, want, value.Text())
	}
}

func assertList(tb testing.TB, m *Mapping, key string, want ...string) {
	tb.Helper()
	value, ok := m.Get(key)
	if !ok {
		tb.Fatalf("missing key %q in %v", key, m.Keys())
	}
	if value.Kind() != KindList {
		tb.Fatalf("expected %q to be a list, got kind %d", key, value.Kind())
	}
	items := value.Items()
	if len(items) != len(want) {
		tb.Fatalf("key %q: want %v, got %v", key, want, items)
	}
	for i := range want {
		if items[i] != want[i] {
			tb.Fatalf("key %q item %d: want %q, got %q", key, i, want[i], items[i])
		}
	}
}
