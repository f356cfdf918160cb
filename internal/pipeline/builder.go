package pipeline

import (
	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/token"
)

// Default builder settings.
const (
	DefaultLanguage    = "text"
	DefaultMediaLayout = adf.LayoutCenter
)

// Options configures a Builder. Zero values select the defaults.
type Options struct {
	// IDs supplies localId values for task lists and items.
	IDs adf.IDGenerator
	// MediaLayout is the layout attribute of mediaSingle nodes.
	MediaLayout string
	// DefaultLanguage labels code blocks without a resolvable language.
	DefaultLanguage string
	// Languages canonicalizes or detects code block languages. Nil keeps
	// the declared language as written.
	Languages *LanguageResolver
	// URLs resolves relative image and link references. Nil leaves them
	// as written.
	URLs *URLRewriter
}

// Builder turns a token tree into ADF nodes. A Builder holds state for a
// single conversion and must not be shared between goroutines.
type Builder struct {
	ids             adf.IDGenerator
	layout          string
	defaultLanguage string
	languages       *LanguageResolver
	urls            *URLRewriter
}

// NewBuilder creates a Builder from opts.
func NewBuilder(opts Options) *Builder {
	b := &Builder{
		ids:             opts.IDs,
		layout:          opts.MediaLayout,
		defaultLanguage: opts.DefaultLanguage,
		languages:       opts.Languages,
		urls:            opts.URLs,
	}
	if b.ids == nil {
		b.ids = adf.NewUUIDs()
	}
	if b.layout == "" {
		b.layout = DefaultMediaLayout
	}
	if b.defaultLanguage == "" {
		b.defaultLanguage = DefaultLanguage
	}
	return b
}

// Document wraps the converted top-level tokens in a doc node.
func (b *Builder) Document(tokens []token.Token) *adf.Document {
	content := b.Blocks(tokens)
	if b.urls != nil {
		b.urls.Rewrite(content)
	}
	return adf.NewDocument(content)
}
