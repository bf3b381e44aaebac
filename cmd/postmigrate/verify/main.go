package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-postmigrate/cmd/postmigrate/internal/bootstrap"
	migratecmd "github.com/goliatone/go-postmigrate/internal/commands/migrate"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runVerify(os.Args[1:]); err != nil {
		log.Fatalf("postmigrate verify: %v", err)
	}
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("postmigrate-verify", flag.ExitOnError)
	targetDir := fs.String("target-dir", "src/content/blog", "Path holding the migrated per-post directories")
	directory := fs.String("directory", ".", "Directory to verify, relative to the target root")
	logProvider := fs.String("log-provider", "console", "Logging provider (noop, console, gologger)")
	logLevel := fs.String("log-level", "info", "Minimum log level")
	logFormat := fs.String("log-format", "", "Log format for the gologger provider (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		TargetDir:   *targetDir,
		LogProvider: *logProvider,
		LogLevel:    *logLevel,
		LogFormat:   *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := migratecmd.NewVerifyDirectoryHandler(module.Module.Verifier(), module.Logger)
	cmd := migratecmd.VerifyDirectoryCommand{
		Directory: *directory,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute verify command: %w", err)
	}

	fmt.Fprintln(os.Stdout, "verification passed")
	return nil
}
