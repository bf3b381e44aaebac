package migratecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	migrateDirectoryMessageType = "postmigrate.migrate_directory"
	verifyDirectoryMessageType  = "postmigrate.verify_directory"
)

// MigrateDirectoryCommand triggers a migration run over every markdown post
// under Directory, relative to the configured source root.
type MigrateDirectoryCommand struct {
	// Directory selects the subtree to migrate; "." migrates the whole source root.
	Directory string `json:"directory"`
	// DryRun runs the full pipeline without writing any output file.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (MigrateDirectoryCommand) Type() string { return migrateDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd MigrateDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("postmigrate.migrate_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// VerifyDirectoryCommand re-checks migrated posts under Directory, relative to
// the configured target root.
type VerifyDirectoryCommand struct {
	// Directory selects the subtree to verify; "." verifies the whole target root.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (VerifyDirectoryCommand) Type() string { return verifyDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd VerifyDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("postmigrate.verify_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
