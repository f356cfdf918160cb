package main

// Notes:
// - exitCodeFor: every sentinel from the md2adf, config and CLI packages,
//   plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants follow Unix conventions and stay below 126.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	md2adf "github.com/alnah/go-md2adf"
	"github.com/alnah/go-md2adf/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write json", ErrWriteJSON, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no markdown files", ErrNoMarkdownFiles, ExitIO},
		{"wrapped file not exist", fmt.Errorf("discovering files: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"invalid media layout", md2adf.ErrInvalidMediaLayout, ExitUsage},
		{"invalid language", md2adf.ErrInvalidLanguage, ExitUsage},
		{"invalid base url", md2adf.ErrInvalidBaseURL, ExitUsage},
		{"input too large", md2adf.ErrInputTooLarge, ExitUsage},
		{"invalid flag", ErrInvalidFlag, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"stdout multiple", ErrStdoutMultiple, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"wrapped config", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"conversion failed", ErrConversionFailed, ExitGeneral},
		{"cancelled", context.Canceled, ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO}
	seen := make(map[int]bool)
	for _, c := range codes {
		if c < 0 || c >= 126 {
			t.Errorf("exit code %d outside 0..125", c)
		}
		if seen[c] {
			t.Errorf("exit code %d used twice", c)
		}
		seen[c] = true
	}
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1, 2 must keep their Unix meaning")
	}
}
