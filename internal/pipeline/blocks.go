package pipeline

import (
	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/token"
)

// Blocks converts a sequence of block tokens, concatenating the nodes each
// one yields. Raw HTML and unknown tokens yield nothing.
func (b *Builder) Blocks(tokens []token.Token) []adf.Node {
	var out []adf.Node
	for _, t := range tokens {
		out = append(out, b.block(t)...)
	}
	return out
}

func (b *Builder) block(t token.Token) []adf.Node {
	switch tok := t.(type) {
	case *token.Heading:
		return []adf.Node{adf.Heading(tok.Depth, b.Inline(tok.Tokens)...)}
	case *token.Paragraph:
		return b.Paragraph(tok.Tokens)
	case *token.Text:
		// Bare text at block level comes from tight list items.
		return b.Paragraph(unwrap(tok))
	case *token.List:
		return []adf.Node{b.List(tok)}
	case *token.Code:
		return []adf.Node{adf.CodeBlock(b.language(tok), tok.Text)}
	case *token.Blockquote:
		return []adf.Node{adf.Blockquote(b.Blocks(tok.Tokens)...)}
	case *token.HR:
		return []adf.Node{adf.Rule()}
	case *token.Table:
		return []adf.Node{b.Table(tok)}
	}
	return nil
}

// language picks the codeBlock language: the declared one, canonicalized
// or detected when a resolver is set, else the default.
func (b *Builder) language(c *token.Code) string {
	lang := c.Lang
	if b.languages != nil {
		lang = b.languages.Resolve(lang, c.Text)
	}
	if lang == "" {
		return b.defaultLanguage
	}
	return lang
}

// unwrap returns the inline content of a Text wrapper, or the token itself.
func unwrap(t *token.Text) []token.Token {
	if len(t.Tokens) > 0 {
		return t.Tokens
	}
	return []token.Token{t}
}
