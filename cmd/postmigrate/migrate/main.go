package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-postmigrate/cmd/postmigrate/internal/bootstrap"
	migratecmd "github.com/goliatone/go-postmigrate/internal/commands/migrate"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runMigrate(os.Args[1:]); err != nil {
		log.Fatalf("postmigrate: %v", err)
	}
}

func runMigrate(args []string) error {
	fs := flag.NewFlagSet("postmigrate-migrate", flag.ExitOnError)
	sourceDir := fs.String("source-dir", "content/posts", "Path to the legacy flat post files")
	targetDir := fs.String("target-dir", "src/content/blog", "Path receiving the per-post directories")
	directory := fs.String("directory", ".", "Directory to migrate, relative to the source root")
	dryRun := fs.Bool("dry-run", false, "Run the pipeline without writing output files")
	logProvider := fs.String("log-provider", "console", "Logging provider (noop, console, gologger)")
	logLevel := fs.String("log-level", "info", "Minimum log level")
	logFormat := fs.String("log-format", "", "Log format for the gologger provider (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		SourceDir:   *sourceDir,
		TargetDir:   *targetDir,
		LogProvider: *logProvider,
		LogLevel:    *logLevel,
		LogFormat:   *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(os.Stdout, rule)
	fmt.Fprintf(os.Stdout, "Blog Post Migration: %s -> %s\n", *sourceDir, *targetDir)
	fmt.Fprintln(os.Stdout, rule)

	handler := migratecmd.NewMigrateDirectoryHandler(module.Module.Migrator(), module.Logger)
	cmd := migratecmd.MigrateDirectoryCommand{
		Directory: *directory,
		DryRun:    *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute migrate command: %w", err)
	}

	fmt.Fprintln(os.Stdout, rule)
	return nil
}
