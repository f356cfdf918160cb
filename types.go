package md2adf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/alnah/go-md2adf/adf"
)

// Document is the ADF root node produced by a conversion.
type Document = adf.Document

// Node is one ADF node.
type Node = adf.Node

// Mark is a text formatting mark.
type Mark = adf.Mark

// IDGeneratorFunc creates the localId source for one conversion.
type IDGeneratorFunc = adf.IDGeneratorFunc

// Media layouts accepted by WithMediaLayout.
const (
	LayoutCenter    = adf.LayoutCenter
	LayoutWide      = adf.LayoutWide
	LayoutFullWidth = adf.LayoutFullWidth
)

// Size and language limits.
const (
	DefaultMaxInputSize = 10 << 20 // 10 MiB
	DefaultLanguage     = "text"
	MaxLanguageLength   = 64
)

// languagePattern matches fence info words such as "go", "c++", "objective-c", "f#".
var languagePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_+#.-]*$`)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content; empty yields an empty document
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	Document *Document
}

// JSON encodes the document. With indent, output uses two-space
// indentation. The result always ends with a newline.
func (r *ConvertResult) JSON(indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r.Document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONEncode, err)
	}
	return buf.Bytes(), nil
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	mediaLayout       string
	defaultLanguage   string
	normalizeLanguage bool
	detectLanguage    bool
	stripFrontMatter  bool
	baseURL           string
	ids               IDGeneratorFunc
	maxInputSize      int
}

func defaultConverterConfig() converterConfig {
	return converterConfig{
		mediaLayout:     LayoutCenter,
		defaultLanguage: DefaultLanguage,
		ids:             adf.NewUUIDs,
		maxInputSize:    DefaultMaxInputSize,
	}
}

// validate checks option values. It runs once in NewConverter.
func (c *converterConfig) validate() error {
	layouts := make([]any, len(adf.Layouts))
	for i, l := range adf.Layouts {
		layouts[i] = l
	}
	if err := validation.Validate(c.mediaLayout, validation.Required, validation.In(layouts...)); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidMediaLayout, c.mediaLayout, err)
	}
	if err := validation.Validate(c.defaultLanguage,
		validation.Required,
		validation.Length(1, MaxLanguageLength),
		validation.Match(languagePattern),
	); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, c.defaultLanguage, err)
	}
	if c.baseURL != "" {
		if err := validation.Validate(c.baseURL, is.RequestURL); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, c.baseURL, err)
		}
	}
	return nil
}

// WithMediaLayout sets the layout of mediaSingle nodes (default "center").
// NewConverter rejects layouts ADF does not define.
func WithMediaLayout(layout string) Option {
	return func(c *Converter) {
		c.cfg.mediaLayout = layout
	}
}

// WithDefaultLanguage sets the codeBlock language used when a fence
// declares none (default "text").
func WithDefaultLanguage(lang string) Option {
	return func(c *Converter) {
		c.cfg.defaultLanguage = lang
	}
}

// WithLanguageNormalization maps declared fence languages to their
// canonical name ("js" becomes "javascript").
func WithLanguageNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.normalizeLanguage = enabled
	}
}

// WithLanguageDetection guesses the language of fences that declare none
// from their content.
func WithLanguageDetection(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.detectLanguage = enabled
	}
}

// WithFrontMatter controls whether a leading YAML or TOML front matter
// block is removed before conversion.
func WithFrontMatter(strip bool) Option {
	return func(c *Converter) {
		c.cfg.stripFrontMatter = strip
	}
}

// WithBaseURL resolves relative image and link references against base,
// which must be an absolute URL with a host. References that would
// resolve outside base are left as written.
func WithBaseURL(base string) Option {
	return func(c *Converter) {
		c.cfg.baseURL = base
	}
}

// WithIDGenerator sets the source of task list identifiers. The function
// is called once per conversion. Use adf.SequenceFunc for reproducible
// output.
// Panics if fn is nil (programmer error).
func WithIDGenerator(fn IDGeneratorFunc) Option {
	if fn == nil {
		panic("md2adf: WithIDGenerator requires a non-nil function")
	}
	return func(c *Converter) {
		c.cfg.ids = fn
	}
}

// WithMaxInputSize caps the Markdown input size in bytes.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxInputSize(n int) Option {
	if n <= 0 {
		panic("md2adf: WithMaxInputSize must be positive")
	}
	return func(c *Converter) {
		c.cfg.maxInputSize = n
	}
}
