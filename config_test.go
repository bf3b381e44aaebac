package postmigrate

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SourceDir != "content/posts" {
		t.Fatalf("unexpected default source dir: %s", cfg.SourceDir)
	}
	if cfg.TargetDir != "src/content/blog" {
		t.Fatalf("unexpected default target dir: %s", cfg.TargetDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigValidate_RequiresDirectories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceDir = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrSourceDirRequired) {
		t.Fatalf("expected ErrSourceDirRequired, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.TargetDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrTargetDirRequired) {
		t.Fatalf("expected ErrTargetDirRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_FormatOnlyCheckedForGologger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "console"
	cfg.Logging.Format = "weird"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("format must be ignored for console provider: %v", err)
	}

	cfg.Logging.Provider = "gologger"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_EmptyProviderAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty provider means logging disabled: %v", err)
	}
}
