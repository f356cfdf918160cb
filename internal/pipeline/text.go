package pipeline

import (
	"strings"
	"unicode"

	"github.com/alnah/go-md2adf/internal/token"
)

// normalizeText prepares literal text for a text leaf: one trailing newline
// is dropped, remaining newlines become spaces and every whitespace run
// (including U+FEFF) collapses to a single space. Leading and trailing
// spaces survive. The function is idempotent.
func normalizeText(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.ReplaceAll(s, "\n", " ")

	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !inSpace {
				sb.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// safeText returns the display text of an inline token. A token with a
// single text-bearing child delegates to it; otherwise its own literal is
// used. Codespans keep their content verbatim.
func safeText(t token.Token) string {
	if kids := t.Children(); len(kids) == 1 {
		if _, ok := kids[0].Literal(); ok {
			return safeText(kids[0])
		}
	}

	s, ok := t.Literal()
	if !ok {
		return ""
	}
	if _, verbatim := t.(*token.Codespan); verbatim {
		return s
	}
	return normalizeText(s)
}
