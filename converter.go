package md2adf

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2adf/internal/pipeline"
	"github.com/alnah/go-md2adf/internal/token"
)

// Compile-time interface implementation checks.
var _ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)

// Converter orchestrates the markdown-to-ADF conversion pipeline.
// A Converter holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.MarkdownPreprocessor
	lexer        *token.Lexer
	languages    *pipeline.LanguageResolver
	urls         *pipeline.URLRewriter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithMediaLayout, WithIDGenerator).
// Returns an error if an option value is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:   defaultConverterConfig(),
		lexer: token.NewLexer(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.validate(); err != nil {
		return nil, err
	}

	// Test injection takes priority over the configured preprocessor
	if c.preprocessor == nil {
		c.preprocessor = &pipeline.CommonMarkPreprocessor{StripFrontMatter: c.cfg.stripFrontMatter}
	}
	if c.cfg.normalizeLanguage || c.cfg.detectLanguage {
		c.languages = pipeline.NewLanguageResolver(c.cfg.normalizeLanguage, c.cfg.detectLanguage)
	}
	if c.cfg.baseURL != "" {
		urls, err := pipeline.NewURLRewriter(c.cfg.baseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
		}
		c.urls = urls
	}

	return c, nil
}

// Convert runs the full pipeline and returns the ADF document.
// The context is checked between stages; conversion itself never blocks.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Tokenize
	tokens := c.lexer.Lex([]byte(mdContent))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Build the document with a fresh identifier source
	builder := pipeline.NewBuilder(pipeline.Options{
		IDs:             c.cfg.ids(),
		MediaLayout:     c.cfg.mediaLayout,
		DefaultLanguage: c.cfg.defaultLanguage,
		Languages:       c.languages,
		URLs:            c.urls,
	})

	return &ConvertResult{Document: builder.Document(tokens)}, nil
}

// validateInput checks the input against the converter limits.
func (c *Converter) validateInput(input Input) error {
	if len(input.Markdown) > c.cfg.maxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input.Markdown), c.cfg.maxInputSize)
	}
	return nil
}

// Convert converts markdown to an ADF document with default settings.
func Convert(markdown string) (*Document, error) {
	conv, err := NewConverter()
	if err != nil {
		return nil, err
	}
	res, err := conv.Convert(context.Background(), Input{Markdown: markdown})
	if err != nil {
		return nil, err
	}
	return res.Document, nil
}
