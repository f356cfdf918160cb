package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user config path",
			paths:    []string{"./team.yaml", "/home/u/.config/go-md2adf/team.yaml"},
			contains: "create /home/u/.config/go-md2adf/team.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForMediaLayout(t *testing.T) {
	t.Parallel()

	if hint := ForMediaLayout(nil); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}
	if hint := ForMediaLayout([]string{"center", "wide"}); !strings.Contains(hint, "center, wide") {
		t.Errorf("expected layouts listed, got %q", hint)
	}
}

func TestForInputTooLarge(t *testing.T) {
	t.Parallel()

	if hint := ForInputTooLarge(0); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}
	if hint := ForInputTooLarge(10 << 20); !strings.Contains(hint, "10 MiB") {
		t.Errorf("expected human size, got %q", hint)
	}
}

func TestForNoInput(t *testing.T) {
	t.Parallel()

	hint := ForNoInput()
	for _, want := range []string{"file or directory", "stdin", "input.defaultDir"} {
		if !strings.Contains(hint, want) {
			t.Errorf("hint %q missing %q", hint, want)
		}
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForConfigNotFound(nil),
		ForOutputDirectory(),
		ForMediaLayout([]string{"center"}),
		ForInputTooLarge(1024),
		ForStdoutOutput(),
		ForNoInput(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
