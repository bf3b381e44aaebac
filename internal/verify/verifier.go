// Package verify re-parses migrated posts with an independent frontmatter
// reader and validates the extracted metadata against the post schema. It acts
// as a second opinion on the migration output: the writer and the checker must
// never share a parser.
package verify

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-postmigrate/internal/logging"
	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

//go:embed schema/post.schema.json
var postSchemaJSON []byte

// ErrTargetRootMissing indicates the configured target root does not exist.
var ErrTargetRootMissing = errors.New("verify: target root does not exist")

// Config carries the verifier settings.
type Config struct {
	// TargetDir is the migration output root, e.g. src/content/blog.
	TargetDir string
}

// Verifier implements interfaces.OutputVerifier. The post schema is compiled
// once at construction time.
type Verifier struct {
	cfg    Config
	schema *jsonschema.Schema
	logger interfaces.Logger

	// fsys overrides the target filesystem in tests.
	fsys fs.FS
}

var _ interfaces.OutputVerifier = (*Verifier)(nil)

// NewVerifier compiles the embedded post schema and returns a verifier rooted
// at cfg.TargetDir.
func NewVerifier(cfg Config, logger interfaces.Logger) (*Verifier, error) {
	if logger == nil {
		logger = logging.NoOp()
	}

	schema, err := compilePostSchema()
	if err != nil {
		return nil, fmt.Errorf("verify: compile post schema: %w", err)
	}

	return &Verifier{
		cfg:    cfg,
		schema: schema,
		logger: logger,
	}, nil
}

func compilePostSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("post.schema.json", bytes.NewReader(postSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile("post.schema.json")
}

// VerifyDirectory checks every <slug>/index.md under dir, relative to the
// target root. It returns a report listing the files that failed verification;
// a non-nil error is reserved for run-level failures such as a missing root.
func (v *Verifier) VerifyDirectory(ctx context.Context, dir string) (*interfaces.VerifyReport, error) {
	fsys, err := v.targetFS()
	if err != nil {
		return nil, err
	}

	if dir == "" {
		dir = "."
	}
	dir = path.Clean(dir)

	report := &interfaces.VerifyReport{RunID: uuid.New()}
	logger := logging.WithFields(v.logger, map[string]any{"run_id": report.RunID.String()})

	files, err := collectIndexFiles(ctx, fsys, dir)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report.Checked++
		if problem := v.verifyFile(fsys, file); problem != nil {
			report.Problems = append(report.Problems, interfaces.VerifyProblem{
				Path: file,
				Err:  problem,
			})
			logger.Warn("verify.file.failed", "path", file, "error", problem)
			continue
		}
		logger.Debug("verify.file.ok", "path", file)
	}

	logger.Info("verify.run.completed",
		"checked", report.Checked,
		"problems", len(report.Problems),
	)
	return report, nil
}

func (v *Verifier) targetFS() (fs.FS, error) {
	if v.fsys != nil {
		return v.fsys, nil
	}

	info, err := os.Stat(v.cfg.TargetDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTargetRootMissing, v.cfg.TargetDir)
	}
	return os.DirFS(v.cfg.TargetDir), nil
}

func collectIndexFiles(ctx context.Context, fsys fs.FS, dir string) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, dir, func(entry string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || path.Base(entry) != "index.md" {
			return nil
		}
		files = append(files, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify: walk target tree: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// postEnvelope captures the migrated frontmatter schema. Pointer fields
// distinguish absent keys from zero values, and the inline map catches any key
// the migration should not have emitted.
type postEnvelope struct {
	Title       *string        `yaml:"title" json:"title,omitempty"`
	Description *string        `yaml:"description" json:"description,omitempty"`
	Date        *string        `yaml:"date" json:"date,omitempty"`
	Tags        []string       `yaml:"tags" json:"tags,omitempty"`
	Draft       *bool          `yaml:"draft" json:"draft,omitempty"`
	Custom      map[string]any `yaml:",inline" json:"-"`
}

func (v *Verifier) verifyFile(fsys fs.FS, file string) error {
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if !strings.HasPrefix(string(raw), "---\n") {
		return errors.New("missing frontmatter block")
	}

	var envelope postEnvelope
	if _, err := frontmatter.Parse(bytes.NewReader(raw), &envelope); err != nil {
		return fmt.Errorf("reparse frontmatter: %w", err)
	}

	payload, err := envelopePayload(envelope)
	if err != nil {
		return err
	}

	if err := v.schema.Validate(payload); err != nil {
		return fmt.Errorf("post schema: %w", err)
	}
	return nil
}

// envelopePayload converts the parsed envelope into the JSON-typed value tree
// the schema validator expects. A marshal/unmarshal round trip normalises the
// YAML decoder's types.
func envelopePayload(envelope postEnvelope) (any, error) {
	encoded, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return nil, fmt.Errorf("decode frontmatter: %w", err)
	}

	// Inline custom keys are re-attached so additionalProperties catches them.
	for key, value := range envelope.Custom {
		if _, ok := payload[key]; !ok {
			payload[key] = value
		}
	}
	return payload, nil
}
