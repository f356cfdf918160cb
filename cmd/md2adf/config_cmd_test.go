package main

// Notes:
// - runConfigCmd: printed YAML must load back as a config file. The
//   environment is not set here; loadEffectiveConfig covers env overrides.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2adf/internal/config"
)

func TestRunConfigCmd(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"team.yaml": "ids:\n  mode: sequence\n  prefix: t-\nmedia:\n  layout: wide\n",
	})

	env := newTestEnv("")
	if err := runConfigCmd([]string{"-c", filepath.Join(dir, "team.yaml")}, env.Environment); err != nil {
		t.Fatalf("runConfigCmd() error = %v", err)
	}

	out := env.stdout.String()
	for _, want := range []string{"mode: sequence", "layout: wide", "frontMatter: keep"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The printed config is itself loadable.
	printed := filepath.Join(dir, "printed.yaml")
	if err := os.WriteFile(printed, []byte(out), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadConfig(printed)
	if err != nil {
		t.Fatalf("LoadConfig(printed) error = %v", err)
	}
	if !cfg.SequentialIDs() || cfg.IDs.Prefix != "t-" || cfg.Media.Layout != "wide" {
		t.Errorf("round trip = %+v", cfg)
	}
}

func TestRunConfigCmd_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown flag", []string{"--bogus"}, ErrInvalidFlag},
		{"extra argument", []string{"extra"}, ErrInvalidFlag},
		{"missing file", []string{"-c", filepath.Join(t.TempDir(), "none.yaml")}, config.ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := runConfigCmd(tt.args, newTestEnv("").Environment)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runConfigCmd() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
