package migrate

import (
	"context"
	"testing"
	"testing/fstest"
)

func TestLoaderDiscover(t *testing.T) {
	filesystem := fstest.MapFS{
		"2021-01-01-first.md":  &fstest.MapFile{Data: []byte("---\ntitle: a\n---\nb")},
		"nested/second.md":     &fstest.MapFile{Data: []byte("---\ntitle: b\n---\nb")},
		"README.md":            &fstest.MapFile{Data: []byte("readme")},
		"nested/readme.md":     &fstest.MapFile{Data: []byte("readme")},
		"assets/image.png":     &fstest.MapFile{Data: []byte{0x89}},
		"notes.txt":            &fstest.MapFile{Data: []byte("text")},
	}

	paths, err := NewLoader(filesystem).Discover(context.Background(), ".")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"2021-01-01-first.md", "nested/second.md"}
	if len(paths) != len(want) {
		t.Fatalf("want %v, got %v", want, paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("path %d: want %q, got %q", i, want[i], paths[i])
		}
	}
}

func TestLoaderDiscover_Subdirectory(t *testing.T) {
	filesystem := fstest.MapFS{
		"outside.md":    &fstest.MapFile{Data: []byte("x")},
		"inner/post.md": &fstest.MapFile{Data: []byte("x")},
	}

	paths, err := NewLoader(filesystem).Discover(context.Background(), "inner")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(paths) != 1 || paths[0] != "inner/post.md" {
		t.Fatalf("expected only the nested post, got %v", paths)
	}
}

func TestLoaderDiscover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(fstest.MapFS{}).Discover(ctx, ".")
	if err == nil {
		t.Fatal("expected context error")
	}
}
