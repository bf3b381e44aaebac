package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-postmigrate/cmd/postmigrate/internal/bootstrap"
	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:]); err != nil {
		log.Fatalf("postmigrate preview: %v", err)
	}
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("postmigrate-preview", flag.ExitOnError)
	file := fs.String("file", "", "Path to a migrated index.md to render")
	extensions := fs.String("extensions", "", "Comma separated markdown extensions (defaults to GFM)")
	hardWraps := fs.Bool("hard-wraps", false, "Render newlines as <br> elements")
	sanitize := fs.Bool("sanitize", false, "Suppress raw HTML in the rendered output")
	logProvider := fs.String("log-provider", "noop", "Logging provider (noop, console, gologger)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*file) == "" {
		return fmt.Errorf("file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		LogProvider: *logProvider,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	// Strip the frontmatter block so only the post body is rendered.
	var meta map[string]any
	body, err := frontmatter.Parse(strings.NewReader(string(raw)), &meta)
	if err != nil {
		return fmt.Errorf("parse frontmatter: %w", err)
	}

	html, err := module.Module.Renderer().Render(context.Background(), body, interfaces.RenderOptions{
		Extensions: splitExtensions(*extensions),
		HardWraps:  *hardWraps,
		Sanitize:   *sanitize,
	})
	if err != nil {
		return fmt.Errorf("render body: %w", err)
	}

	_, err = os.Stdout.Write(html)
	return err
}

func splitExtensions(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
