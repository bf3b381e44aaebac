package migratecmd

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

type stubMigrationService struct {
	report  *interfaces.Report
	err     error
	lastDir string
	lastOpt interfaces.MigrateOptions
	calls   int
}

func (s *stubMigrationService) MigrateFile(ctx context.Context, path string, opts interfaces.MigrateOptions) (*interfaces.FileOutcome, error) {
	return nil, errors.New("not used")
}

func (s *stubMigrationService) MigrateDirectory(ctx context.Context, dir string, opts interfaces.MigrateOptions) (*interfaces.Report, error) {
	s.calls++
	s.lastDir = dir
	s.lastOpt = opts
	return s.report, s.err
}

type stubVerifier struct {
	report *interfaces.VerifyReport
	err    error
	calls  int
}

func (s *stubVerifier) VerifyDirectory(ctx context.Context, dir string) (*interfaces.VerifyReport, error) {
	s.calls++
	return s.report, s.err
}

func TestMigrateDirectoryHandler_Execute(t *testing.T) {
	service := &stubMigrationService{
		report: &interfaces.Report{
			RunID:    uuid.New(),
			Migrated: []interfaces.FileOutcome{{Source: "a.md", Slug: "a"}},
		},
	}
	handler := NewMigrateDirectoryHandler(service, nil)

	msg := MigrateDirectoryCommand{Directory: "posts", DryRun: true}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if service.calls != 1 {
		t.Fatalf("expected one service call, got %d", service.calls)
	}
	if service.lastDir != "posts" {
		t.Fatalf("unexpected directory: %s", service.lastDir)
	}
	if !service.lastOpt.DryRun {
		t.Fatal("expected dry run option to propagate")
	}
}

func TestMigrateDirectoryHandler_RequiresDirectory(t *testing.T) {
	service := &stubMigrationService{}
	handler := NewMigrateDirectoryHandler(service, nil)

	if err := handler.Execute(context.Background(), MigrateDirectoryCommand{Directory: "  "}); err == nil {
		t.Fatal("expected validation error for blank directory")
	}
	if service.calls != 0 {
		t.Fatal("service must not run when validation fails")
	}
}

func TestMigrateDirectoryHandler_PropagatesServiceError(t *testing.T) {
	cause := errors.New("source root missing")
	handler := NewMigrateDirectoryHandler(&stubMigrationService{err: cause}, nil)

	err := handler.Execute(context.Background(), MigrateDirectoryCommand{Directory: "."})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped service error, got %v", err)
	}
}

func TestVerifyDirectoryHandler_CleanReport(t *testing.T) {
	verifier := &stubVerifier{
		report: &interfaces.VerifyReport{RunID: uuid.New(), Checked: 3},
	}
	handler := NewVerifyDirectoryHandler(verifier, nil)

	if err := handler.Execute(context.Background(), VerifyDirectoryCommand{Directory: "."}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if verifier.calls != 1 {
		t.Fatalf("expected one verifier call, got %d", verifier.calls)
	}
}

func TestVerifyDirectoryHandler_ProblemsBecomeError(t *testing.T) {
	verifier := &stubVerifier{
		report: &interfaces.VerifyReport{
			RunID:   uuid.New(),
			Checked: 2,
			Problems: []interfaces.VerifyProblem{
				{Path: "bad/index.md", Err: errors.New("post schema: missing date")},
			},
		},
	}
	handler := NewVerifyDirectoryHandler(verifier, nil)

	err := handler.Execute(context.Background(), VerifyDirectoryCommand{Directory: "."})
	if !errors.Is(err, ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed, got %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	if got := (MigrateDirectoryCommand{}).Type(); got != "postmigrate.migrate_directory" {
		t.Fatalf("unexpected migrate message type: %s", got)
	}
	if got := (VerifyDirectoryCommand{}).Type(); got != "postmigrate.verify_directory" {
		t.Fatalf("unexpected verify message type: %s", got)
	}
}
