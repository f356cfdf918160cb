package pipeline

import (
	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/token"
)

// Paragraph converts the inline content of a paragraph. Images cannot live
// inside an ADF paragraph, so every top-level image becomes a standalone
// mediaSingle node and the runs between images become paragraphs.
//
//	"a ![i](u) b"  ->  paragraph(a), mediaSingle(u), paragraph(b)
func (b *Builder) Paragraph(tokens []token.Token) []adf.Node {
	if len(tokens) == 1 {
		if img, ok := tokens[0].(*token.Image); ok {
			return []adf.Node{b.media(img)}
		}
	}

	var (
		out []adf.Node
		run []token.Token
	)
	flush := func() {
		if len(run) > 0 {
			out = append(out, adf.Paragraph(b.Inline(run)...))
			run = nil
		}
	}

	for _, t := range tokens {
		if img, ok := t.(*token.Image); ok {
			flush()
			out = append(out, b.media(img))
			continue
		}
		run = append(run, t)
	}
	flush()
	return out
}

func (b *Builder) media(img *token.Image) adf.Node {
	return adf.MediaSingle(b.layout, img.Href, img.Alt)
}
