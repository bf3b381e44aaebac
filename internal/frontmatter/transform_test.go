package frontmatter

import "testing"

func TestTransform_CopiesKnownFields(t *testing.T) {
	old := NewMapping()
	old.Set("title", Text("Hello"))
	old.Set("date", Text("2021-05-01"))
	old.Set("tags", List("a", "b"))
	old.Set("categories", List("x"))
	old.Set("excerpt", Text("teaser"))
	old.Set("custom", Text("whatever"))

	next := Transform(old)

	keys := next.Keys()
	want := []string{"title", "description", "date", "tags", "draft"}
	if len(keys) != len(want) {
		t.Fatalf("unexpected keys: %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key order mismatch at %d: want %q, got %q", i, want[i], keys[i])
		}
	}

	assertText(t, next, "title", "Hello")
	assertText(t, next, "description", ".")
	assertText(t, next, "date", "2021-05-01")
	assertList(t, next, "tags", "a", "b")

	draft, _ := next.Get("draft")
	if draft.Kind() != KindFlag || draft.Flag() {
		t.Fatalf("expected draft to be flag(false), got %v", draft)
	}
}

func TestTransform_Defaults(t *testing.T) {
	next := Transform(NewMapping())

	assertText(t, next, "title", "Untitled")
	assertText(t, next, "description", ".")
	assertText(t, next, "date", "2021-01-01")
	if next.Has("tags") {
		t.Fatalf("expected no tags key, got %v", next.Keys())
	}
}

func TestTransform_TagOmission(t *testing.T) {
	cases := []struct {
		name string
		tags *Value
	}{
		{"absent", nil},
		{"empty list", ptr(List())},
		{"empty string", ptr(Text(""))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			old := NewMapping()
			old.Set("title", Text("T"))
			if tc.tags != nil {
				old.Set("tags", *tc.tags)
			}

			next := Transform(old)

			if next.Has("tags") {
				t.Fatalf("expected tags to be omitted, got %v", next.Keys())
			}
		})
	}
}

func TestTransform_KeepsNonEmptyScalarTags(t *testing.T) {
	old := NewMapping()
	old.Set("tags", Text("solo"))

	next := Transform(old)

	tags, ok := next.Get("tags")
	if !ok || tags.Kind() != KindText || tags.Text() != "solo" {
		t.Fatalf("expected scalar tags to be copied verbatim, got %v", tags)
	}
}

func TestTransform_Idempotent(t *testing.T) {
	old := NewMapping()
	old.Set("title", Text("Hello"))
	old.Set("date", Text("2021-05-01"))
	old.Set("tags", List("a"))

	once := Transform(old)
	twice := Transform(once)

	if !once.Equal(twice) {
		t.Fatalf("expected transform to be idempotent:\nonce:  %v\ntwice: %v", once.Keys(), twice.Keys())
	}
}

func TestTransform_DoesNotMutateInput(t *testing.T) {
	old := NewMapping()
	old.Set("categories", List("x"))
	old.Set("title", Text("T"))

	Transform(old)

	if !old.Has("categories") || old.Len() != 2 {
		t.Fatalf("input mapping was mutated: %v", old.Keys())
	}
}

func ptr(v Value) *Value { return &v }
