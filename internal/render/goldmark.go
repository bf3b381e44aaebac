// Package render converts migrated post bodies into HTML previews using the
// goldmark engine.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-postmigrate/internal/logging"
	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

// Renderer implements interfaces.BodyRenderer on top of goldmark. The renderer
// is stateless so callers can reuse a single instance without locking.
type Renderer struct {
	defaults interfaces.RenderOptions
	logger   interfaces.Logger
}

// NewRenderer constructs a renderer with the given default options. Defaults
// apply whenever a Render call passes a zero-value options struct.
func NewRenderer(defaults interfaces.RenderOptions, logger interfaces.Logger) *Renderer {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Renderer{
		defaults: defaults,
		logger:   logger,
	}
}

var _ interfaces.BodyRenderer = (*Renderer)(nil)

// Render converts a markdown body into HTML using the supplied options,
// falling back to the renderer defaults when no extensions are requested.
func (r *Renderer) Render(ctx context.Context, markdown []byte, opts interfaces.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(opts.Extensions) == 0 {
		opts.Extensions = r.defaults.Extensions
	}

	engine := newEngine(opts)
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}

	r.logger.Debug("render.body.converted",
		"input_bytes", len(markdown),
		"output_bytes", buf.Len(),
	)
	return buf.Bytes(), nil
}

// newEngine builds a goldmark.Markdown for the supplied options. Unsupported
// extension names are ignored rather than rejected.
func newEngine(opts interfaces.RenderOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}

	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	// Sanitize keeps raw HTML out of the preview output.
	if !opts.Sanitize {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}

	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
