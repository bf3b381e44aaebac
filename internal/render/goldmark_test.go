package render

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

func TestRenderer_BasicMarkdown(t *testing.T) {
	renderer := NewRenderer(interfaces.RenderOptions{}, nil)

	out, err := renderer.Render(context.Background(), []byte("# Gradient Descent\n\nSome *emphasis*."), interfaces.RenderOptions{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "<h1 id=\"gradient-descent\">Gradient Descent</h1>") {
		t.Fatalf("expected heading with auto id, got:\n%s", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Fatalf("expected emphasis, got:\n%s", html)
	}
}

func TestRenderer_GFMDefaults(t *testing.T) {
	renderer := NewRenderer(interfaces.RenderOptions{}, nil)

	out, err := renderer.Render(context.Background(), []byte("- [x] migrate\n- [ ] verify"), interfaces.RenderOptions{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(out), "checkbox") {
		t.Fatalf("expected task list rendering, got:\n%s", out)
	}
}

func TestRenderer_SanitizeSuppressesRawHTML(t *testing.T) {
	renderer := NewRenderer(interfaces.RenderOptions{}, nil)
	input := []byte("before\n\n<script>alert(1)</script>\n\nafter")

	unsafe, err := renderer.Render(context.Background(), input, interfaces.RenderOptions{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(unsafe), "<script>") {
		t.Fatalf("expected raw HTML without sanitize, got:\n%s", unsafe)
	}

	safe, err := renderer.Render(context.Background(), input, interfaces.RenderOptions{Sanitize: true})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(string(safe), "<script>") {
		t.Fatalf("sanitize should suppress raw HTML, got:\n%s", safe)
	}
}

func TestRenderer_UnknownExtensionsIgnored(t *testing.T) {
	renderer := NewRenderer(interfaces.RenderOptions{}, nil)

	out, err := renderer.Render(context.Background(), []byte("~~gone~~"), interfaces.RenderOptions{
		Extensions: []string{"strikethrough", "does-not-exist", ""},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(out), "<del>gone</del>") {
		t.Fatalf("expected strikethrough, got:\n%s", out)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer := NewRenderer(interfaces.RenderOptions{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, []byte("body"), interfaces.RenderOptions{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
