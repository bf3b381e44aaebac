// Package migratecmd exposes the migration workflows as go-command messages
// and handlers built on the shared command handler foundation.
package migratecmd

import (
	"context"
	"errors"
	"fmt"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-postmigrate/internal/commands"
	"github.com/goliatone/go-postmigrate/internal/logging"
	"github.com/goliatone/go-postmigrate/pkg/interfaces"
)

const (
	migrateOperation = "migrate.migrate_directory"
	verifyOperation  = "migrate.verify_directory"
)

// ErrVerificationFailed is returned when one or more migrated posts fail
// schema verification.
var ErrVerificationFailed = errors.New("migrate command: verification failed")

var (
	_ command.Commander[MigrateDirectoryCommand] = (*MigrateDirectoryHandler)(nil)
	_ command.Commander[VerifyDirectoryCommand]  = (*VerifyDirectoryHandler)(nil)
)

// MigrateDirectoryHandler orchestrates directory migrations via the shared
// command handler foundation.
type MigrateDirectoryHandler struct {
	inner *commands.Handler[MigrateDirectoryCommand]
}

// NewMigrateDirectoryHandler creates a handler bound to the supplied
// migration service.
func NewMigrateDirectoryHandler(service interfaces.MigrationService, logger interfaces.Logger, opts ...commands.HandlerOption[MigrateDirectoryCommand]) *MigrateDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg MigrateDirectoryCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		report, err := service.MigrateDirectory(ctx, msg.Directory, interfaces.MigrateOptions{
			DryRun: msg.DryRun,
		})
		if err != nil {
			return err
		}
		if report != nil {
			logging.WithFields(baseLogger, map[string]any{
				"run_id":        report.RunID.String(),
				"success_count": report.SuccessCount(),
				"skipped_count": report.SkippedCount(),
				"failure_count": report.FailureCount(),
				"dry_run":       msg.DryRun,
			}).Info("migrate.command.migrate_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[MigrateDirectoryCommand]{
		commands.WithLogger[MigrateDirectoryCommand](baseLogger),
		commands.WithOperation[MigrateDirectoryCommand](migrateOperation),
		commands.WithMessageFields(func(msg MigrateDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[MigrateDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &MigrateDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[MigrateDirectoryCommand].
func (h *MigrateDirectoryHandler) Execute(ctx context.Context, msg MigrateDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// VerifyDirectoryHandler re-validates migrated posts via the shared command
// handler foundation.
type VerifyDirectoryHandler struct {
	inner *commands.Handler[VerifyDirectoryCommand]
}

// NewVerifyDirectoryHandler creates a handler bound to the supplied output
// verifier. Verification problems surface as an execution error so callers
// observe a non-zero outcome.
func NewVerifyDirectoryHandler(verifier interfaces.OutputVerifier, logger interfaces.Logger, opts ...commands.HandlerOption[VerifyDirectoryCommand]) *VerifyDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg VerifyDirectoryCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		report, err := verifier.VerifyDirectory(ctx, msg.Directory)
		if err != nil {
			return err
		}
		if report == nil {
			return nil
		}

		logging.WithFields(baseLogger, map[string]any{
			"run_id":        report.RunID.String(),
			"checked_count": report.Checked,
			"problem_count": len(report.Problems),
		}).Info("migrate.command.verify_directory.completed")

		if !report.OK() {
			return fmt.Errorf("%w: %d of %d files", ErrVerificationFailed, len(report.Problems), report.Checked)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[VerifyDirectoryCommand]{
		commands.WithLogger[VerifyDirectoryCommand](baseLogger),
		commands.WithOperation[VerifyDirectoryCommand](verifyOperation),
		commands.WithMessageFields(func(msg VerifyDirectoryCommand) map[string]any {
			return map[string]any{
				"directory": msg.Directory,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[VerifyDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &VerifyDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[VerifyDirectoryCommand].
func (h *VerifyDirectoryHandler) Execute(ctx context.Context, msg VerifyDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
