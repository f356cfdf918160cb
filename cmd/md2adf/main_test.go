package main

// Notes:
// - runMain: we test dispatch and exit codes end to end, including the
//   implicit convert shorthand. Conversion details are covered in
//   convert_test.go.
// - isCommand / looksLikeMarkdown: command name matching and input sniffing.
// - main itself only calls os.Exit and is not tested.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"doc.md": "# Hello\n"})

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"md2adf"}, ExitUsage, "", "Usage: md2adf"},
		{"unknown command", []string{"md2adf", "frobnicate"}, ExitUsage, "", "Unknown command: frobnicate"},
		{"version", []string{"md2adf", "version"}, ExitSuccess, "go-md2adf " + Version, ""},
		{"version flag", []string{"md2adf", "--version"}, ExitSuccess, "go-md2adf", ""},
		{"help", []string{"md2adf", "help"}, ExitSuccess, "Commands:", ""},
		{"help convert", []string{"md2adf", "help", "convert"}, ExitSuccess, "--sequential-ids", ""},
		{"completion", []string{"md2adf", "completion", "bash"}, ExitSuccess, "complete -F", ""},
		{"completion unsupported", []string{"md2adf", "completion", "tcsh"}, ExitUsage, "", "unsupported shell"},
		{"convert missing file", []string{"md2adf", "convert", filepath.Join(dir, "missing.md")}, ExitIO, "", "error:"},
		{"convert bad flag", []string{"md2adf", "convert", "--nope"}, ExitUsage, "", "invalid flag"},
		{"convert help", []string{"md2adf", "convert", "--help"}, ExitSuccess, "", "Usage: md2adf convert"},
		{"convert to stdout", []string{"md2adf", "convert", filepath.Join(dir, "doc.md"), "-o", "-"}, ExitSuccess, `"type":"heading"`, ""},
		{"implicit convert", []string{"md2adf", filepath.Join(dir, "doc.md"), "-o", "-"}, ExitSuccess, `"level":1`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("")
			code := runMain(tt.args, env.Environment)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, env.stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(env.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", env.stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", env.stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunMain_Stdin(t *testing.T) {
	t.Parallel()

	env := newTestEnv("- [x] done\n")
	code := runMain([]string{"md2adf", "-", "--sequential-ids", "--id-prefix", "t"}, env.Environment)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, env.stderr.String())
	}

	want := `{"version":1,"type":"doc","content":[{"type":"taskList","attrs":{"localId":"t1"},"content":[` +
		`{"type":"taskItem","attrs":{"localId":"t2","state":"DONE"},"content":[{"type":"text","text":"done"}]}]}]}` + "\n"
	if got := env.stdout.String(); got != want {
		t.Errorf("stdout =\n%s\nwant\n%s", got, want)
	}
}

func TestRunMain_WritesFile(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"doc.md": "text\n"})
	env := newTestEnv("")

	code := runMain([]string{"md2adf", "convert", filepath.Join(dir, "doc.md")}, env.Environment)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, env.stderr.String())
	}

	got := readFile(t, filepath.Join(dir, "doc.json"))
	if !strings.Contains(got, `"text":"text"`) {
		t.Errorf("doc.json = %s", got)
	}
	if !strings.Contains(env.stdout.String(), "Created") {
		t.Errorf("stdout = %q, want a Created line", env.stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestIsCommand / TestLooksLikeMarkdown - Argument classification
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"convert", "config", "version", "help", "completion"} {
		if !isCommand(name) {
			t.Errorf("isCommand(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "Convert", "doc.md", "--help"} {
		if isCommand(name) {
			t.Errorf("isCommand(%q) = true, want false", name)
		}
	}
}

func TestLooksLikeMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "docs"), 0o750); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		arg  string
		want bool
	}{
		{"README.md", true},
		{"notes.MARKDOWN", true},
		{filepath.Join(dir, "docs"), true},
		{filepath.Join(dir, "absent"), false},
		{"notes.txt", false},
		{"convert", false},
		{"-v", false},
	}

	for _, tt := range tests {
		if got := looksLikeMarkdown(tt.arg); got != tt.want {
			t.Errorf("looksLikeMarkdown(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}
