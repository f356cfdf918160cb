package pipeline

import (
	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/token"
)

// Inline converts inline tokens to text and hardBreak nodes. Empty text
// leaves are dropped. Images and raw HTML produce nothing here; images are
// lifted out by the paragraph splitter before this point.
func (b *Builder) Inline(tokens []token.Token) []adf.Node {
	var out []adf.Node
	for _, t := range tokens {
		out = b.inline(out, t)
	}
	return out
}

func (b *Builder) inline(out []adf.Node, t token.Token) []adf.Node {
	switch tok := t.(type) {
	case *token.Text:
		if len(tok.Tokens) > 0 {
			for _, child := range tok.Tokens {
				out = b.inline(out, child)
			}
			return out
		}
		return appendText(out, normalizeText(tok.Raw), nil)

	case *token.Em:
		return appendFormatted(out, tok.Tokens, adf.Em())
	case *token.Strong:
		return appendFormatted(out, tok.Tokens, adf.Strong())
	case *token.Del:
		return appendFormatted(out, tok.Tokens, adf.Strike())

	case *token.Link, *token.Codespan:
		return appendText(out, safeText(tok), resolveMarks(tok))

	case *token.LineBreak:
		return append(out, adf.HardBreak())
	}
	return out
}

// appendFormatted emits one leaf per direct child of an em, strong or del
// token. Each leaf carries base plus the marks found below the child.
func appendFormatted(out []adf.Node, children []token.Token, base adf.Mark) []adf.Node {
	for _, child := range children {
		out = appendText(out, safeText(child), resolveMarks(child, base))
	}
	return out
}

func appendText(out []adf.Node, text string, marks []adf.Mark) []adf.Node {
	if text == "" {
		return out
	}
	return append(out, adf.Text(text, marks...))
}
