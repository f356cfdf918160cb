package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/k0kubun/pp"

	"github.com/alnah/go-md2adf/internal/pipeline"
	"github.com/alnah/go-md2adf/internal/token"
)

// tokenDumper prints token trees for --dump-tokens. Workers share it, so
// dumps are serialized.
type tokenDumper struct {
	mu           sync.Mutex
	w            io.Writer
	preprocessor pipeline.MarkdownPreprocessor
}

func newTokenDumper(w io.Writer, stripFrontMatter bool) *tokenDumper {
	return &tokenDumper{
		w:            w,
		preprocessor: &pipeline.CommonMarkPreprocessor{StripFrontMatter: stripFrontMatter},
	}
}

// Dump writes the token tree the converter sees for markdown, labeled
// with name.
func (d *tokenDumper) Dump(ctx context.Context, name, markdown string) {
	tokens := token.Lex(d.preprocessor.PreprocessMarkdown(ctx, markdown))

	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "--- tokens: %s\n", name)
	_, _ = pp.Fprintln(d.w, tokens)
}
