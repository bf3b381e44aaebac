package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (r *recordingLogger) Trace(string, ...any)                        {}
func (r *recordingLogger) Debug(string, ...any)                        {}
func (r *recordingLogger) Info(string, ...any)                         {}
func (r *recordingLogger) Warn(string, ...any)                         {}
func (r *recordingLogger) Error(string, ...any)                        {}
func (r *recordingLogger) Fatal(string, ...any)                        {}
func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type stubProvider struct {
	logger interfaces.Logger
	names  []string
}

func (p *stubProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return p.logger
}

func TestModuleLogger_AttachesModuleField(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}

	logger := MigrateLogger(provider)

	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected recording logger, got %T", logger)
	}
	if rec.fields["module"] != "postmigrate.migrate" {
		t.Fatalf("expected module field, got %v", rec.fields)
	}
	if len(provider.names) != 1 || provider.names[0] != "postmigrate.migrate" {
		t.Fatalf("expected provider lookup by module name, got %v", provider.names)
	}
}

func TestModuleLogger_NilProviderIsNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "")
	// Must not panic.
	logger.Info("ignored", "key", "value")
}

func TestWithMigrationContext(t *testing.T) {
	logger := WithMigrationContext(&recordingLogger{}, " posts/a.md ", "")

	rec := logger.(*recordingLogger)
	if rec.fields["source"] != "posts/a.md" {
		t.Fatalf("expected trimmed source field, got %v", rec.fields)
	}
	if _, ok := rec.fields["slug"]; ok {
		t.Fatalf("empty slug must be omitted, got %v", rec.fields)
	}
}

func TestContextFields_RoundTrip(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"run_id": "abc"})
	ctx = ContextWithFields(ctx, map[string]any{"source": "a.md"})

	fields := ContextFields(ctx)
	if fields["run_id"] != "abc" || fields["source"] != "a.md" {
		t.Fatalf("expected merged context fields, got %v", fields)
	}
}
