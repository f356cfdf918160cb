package pipeline

import (
	"testing"

	"github.com/alnah/go-md2adf/internal/token"
)

// ---------------------------------------------------------------------------
// TestNormalizeText - Whitespace collapsing for text leaves
// ---------------------------------------------------------------------------

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"trailing newline dropped", "hello\n", "hello"},
		{"only one trailing newline dropped", "hello\n\n", "hello "},
		{"internal newline becomes space", "foo\nbar", "foo bar"},
		{"runs collapse", "a  \t b", "a b"},
		{"edges kept", "  a  ", " a "},
		{"byte order mark is space", "a\uFEFF\uFEFFb", "a b"},
		{"non-breaking space is space", "a\u00a0 b", "a b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeText(tt.input); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"hello\n",
		"a\n\nb\n",
		" \t\n x \n\n",
		"tab\tand nbsp\u00a0\uFEFF",
		"\n",
	}
	for _, in := range inputs {
		once := normalizeText(in)
		if twice := normalizeText(once); twice != once {
			t.Errorf("normalizeText not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

// ---------------------------------------------------------------------------
// TestSafeText - Display text of inline tokens
// ---------------------------------------------------------------------------

func TestSafeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tok  token.Token
		want string
	}{
		{
			name: "text normalized",
			tok:  &token.Text{Raw: "a\nb  c"},
			want: "a b c",
		},
		{
			name: "codespan verbatim",
			tok:  &token.Codespan{Raw: "a  b"},
			want: "a  b",
		},
		{
			name: "single child delegates",
			tok:  &token.Link{Tokens: []token.Token{&token.Codespan{Raw: "x  y"}}},
			want: "x  y",
		},
		{
			name: "nested single children",
			tok:  &token.Strong{Tokens: []token.Token{&token.Em{Tokens: []token.Token{&token.Text{Raw: "deep"}}}}},
			want: "deep",
		},
		{
			name: "several children joined and normalized",
			tok: &token.Em{Tokens: []token.Token{
				&token.Text{Raw: "a  "},
				&token.Strong{Tokens: []token.Token{&token.Text{Raw: " b"}}},
			}},
			want: "a b",
		},
		{
			name: "image alt",
			tok:  &token.Image{Alt: "pic"},
			want: "pic",
		},
		{
			name: "line break has no text",
			tok:  &token.LineBreak{},
			want: "",
		},
		{
			name: "html has no text",
			tok:  &token.HTML{Raw: "<b>"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := safeText(tt.tok); got != tt.want {
				t.Errorf("safeText() = %q, want %q", got, tt.want)
			}
		})
	}
}
