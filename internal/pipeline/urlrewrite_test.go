package pipeline

// Notes:
// - Resolve is tested table-driven over reference shapes; Rewrite is tested
//   through Builder.Document so the wiring is covered too.
// - Path traversal tests verify the observable behavior (reference left as
//   written) rather than the prefix check itself.

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/token"
)

// ---------------------------------------------------------------------------
// TestURLRewriterResolve - Reference resolution
// ---------------------------------------------------------------------------

func TestURLRewriterResolve(t *testing.T) {
	t.Parallel()

	r, err := NewURLRewriter("https://git.example.com/raw/main/docs")
	if err != nil {
		t.Fatalf("NewURLRewriter() error = %v", err)
	}

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"relative with dot slash", "./img/a.png", "https://git.example.com/raw/main/docs/img/a.png"},
		{"relative without dot slash", "img/a.png", "https://git.example.com/raw/main/docs/img/a.png"},
		{"parent inside base", "sub/../b.png", "https://git.example.com/raw/main/docs/b.png"},
		{"query kept", "a.png?raw=1", "https://git.example.com/raw/main/docs/a.png?raw=1"},
		{"absolute URL unchanged", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"mailto unchanged", "mailto:a@example.com", "mailto:a@example.com"},
		{"protocol relative unchanged", "//cdn.example.com/a.png", "//cdn.example.com/a.png"},
		{"data URI unchanged", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"anchor unchanged", "#usage", "#usage"},
		{"empty unchanged", "", ""},
		{"traversal unchanged", "../../secret.png", "../../secret.png"},
		{"root path escapes base", "/etc/passwd", "/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.Resolve(tt.ref); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestNewURLRewriterRejectsRelativeBase(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"", "docs/", "/abs/path", "https://", "%zz"} {
		if _, err := NewURLRewriter(base); err == nil {
			t.Errorf("NewURLRewriter(%q) error = nil, want error", base)
		}
	}
}

// ---------------------------------------------------------------------------
// TestBuilderRewritesURLs - Media and link rewriting in built documents
// ---------------------------------------------------------------------------

func TestBuilderRewritesURLs(t *testing.T) {
	t.Parallel()

	r, err := NewURLRewriter("https://h.example/d/")
	if err != nil {
		t.Fatal(err)
	}
	b := NewBuilder(Options{IDs: adf.NewSequence("id-"), URLs: r})

	doc := b.Document(token.Lex("![x](a.png)\n\n- see [**guide**](guide.md#top) and [web](https://w.example)"))

	want := []adf.Node{
		adf.MediaSingle(adf.LayoutCenter, "https://h.example/d/a.png", "x"),
		adf.BulletList(adf.ListItem(adf.Paragraph(
			adf.Text("see "),
			adf.Text("guide", adf.Link("https://h.example/d/guide.md#top"), adf.Strong()),
			adf.Text(" and "),
			adf.Text("web", adf.Link("https://w.example")),
		))),
	}
	if diff := cmp.Diff(want, doc.Content, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Document() mismatch (-want +got):\n%s", diff)
	}
}
