package main

// Notes:
// - Shared test infrastructure: an Environment backed by buffers, a fixed
//   clock, temp-dir fixtures and a scripted Converter.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	md2adf "github.com/alnah/go-md2adf"
	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/logging"
)

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment reading stdin from the given string.
// The clock advances one millisecond per call.
func newTestEnv(stdin string) *testEnv {
	var (
		mu  sync.Mutex
		now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Environment: &Environment{
			Now: func() time.Time {
				mu.Lock()
				defer mu.Unlock()
				now = now.Add(time.Millisecond)
				return now
			},
			Stdin:  strings.NewReader(stdin),
			Stdout: stdout,
			Stderr: stderr,
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// testParams returns conversion params with a silent logger.
func testParams() *conversionParams {
	return &conversionParams{
		maxInputSize: md2adf.DefaultMaxInputSize,
		logger:       logging.NewNop(),
	}
}

// mockConverter returns a fixed document or error and records inputs.
type mockConverter struct {
	mu     sync.Mutex
	err    error
	inputs []string
}

func (m *mockConverter) Convert(_ context.Context, input md2adf.Input) (*md2adf.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input.Markdown)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return &md2adf.ConvertResult{Document: adf.NewDocument(nil)}, nil
}
