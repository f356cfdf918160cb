package pipeline

import (
	"context"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before tokenization.
type CommonMarkPreprocessor struct {
	// StripFrontMatter removes a leading YAML or TOML front matter block.
	StripFrontMatter bool
}

// PreprocessMarkdown applies all transformations to prepare Markdown for tokenization.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	if p.StripFrontMatter {
		content = stripFrontMatter(content)
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// stripFrontMatter drops a front matter block delimited by --- (YAML) or
// +++ (TOML). Content without one, or with one that fails to parse, is
// returned unchanged.
func stripFrontMatter(content string) string {
	var meta map[string]any
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return content
	}
	return string(body)
}
