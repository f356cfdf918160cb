// Package token defines the Markdown token tree consumed by the ADF
// pipeline and the Lexer that builds it from source text with goldmark.
//
// Token is a closed sum type: only the variants declared here implement it,
// so every switch over tokens in the pipeline is written against a fixed set.
package token

import "strings"

// Kind identifies a token variant.
type Kind int

// Token kinds.
const (
	KindHeading Kind = iota + 1
	KindParagraph
	KindList
	KindListItem
	KindCode
	KindBlockquote
	KindHR
	KindTable
	KindHTML
	KindText
	KindEm
	KindStrong
	KindDel
	KindLink
	KindCodespan
	KindImage
	KindLineBreak
)

var kindNames = map[Kind]string{
	KindHeading:    "heading",
	KindParagraph:  "paragraph",
	KindList:       "list",
	KindListItem:   "list_item",
	KindCode:       "code",
	KindBlockquote: "blockquote",
	KindHR:         "hr",
	KindTable:      "table",
	KindHTML:       "html",
	KindText:       "text",
	KindEm:         "em",
	KindStrong:     "strong",
	KindDel:        "del",
	KindLink:       "link",
	KindCodespan:   "codespan",
	KindImage:      "image",
	KindLineBreak:  "br",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a node of the token tree.
type Token interface {
	Kind() Kind
	// Children returns nested tokens, nil for leaves.
	Children() []Token
	// Literal returns the token's text and whether it has one. Containers
	// report the plain text of their descendants.
	Literal() (string, bool)
	sealed()
}

// Heading is an ATX or setext heading.
type Heading struct {
	Depth  int
	Tokens []Token
}

// Paragraph is a block of inline content.
type Paragraph struct {
	Tokens []Token
}

// List is a bullet or ordered list.
type List struct {
	Ordered bool
	Start   int
	Items   []*ListItem
}

// ListItem is one list entry. Checked is non-nil when the item starts with
// a task checkbox.
type ListItem struct {
	Tokens  []Token
	Checked *bool
}

// IsTask reports whether the item carries a checkbox.
func (i *ListItem) IsTask() bool { return i.Checked != nil }

// Code is a fenced or indented code block. Text holds the content verbatim.
type Code struct {
	Lang string
	Text string
}

// Blockquote wraps block content.
type Blockquote struct {
	Tokens []Token
}

// HR is a thematic break.
type HR struct{}

// Cell is one table cell.
type Cell struct {
	Tokens []Token
}

// Table is a GFM table.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// HTML is a raw HTML block or inline tag.
type HTML struct {
	Raw string
}

// Text is literal text. When Tokens is non-empty the token only wraps
// richer inline content, as tight list items do.
type Text struct {
	Raw    string
	Tokens []Token
}

// Em is emphasis.
type Em struct {
	Tokens []Token
}

// Strong is strong emphasis.
type Strong struct {
	Tokens []Token
}

// Del is GFM strikethrough.
type Del struct {
	Tokens []Token
}

// Link is an inline link or autolink.
type Link struct {
	Href   string
	Title  string
	Tokens []Token
}

// Codespan is inline code. Raw is not whitespace-normalized.
type Codespan struct {
	Raw string
}

// Image is an inline image.
type Image struct {
	Href  string
	Alt   string
	Title string
}

// LineBreak is a hard line break.
type LineBreak struct{}

func (*Heading) Kind() Kind    { return KindHeading }
func (*Paragraph) Kind() Kind  { return KindParagraph }
func (*List) Kind() Kind       { return KindList }
func (*ListItem) Kind() Kind   { return KindListItem }
func (*Code) Kind() Kind       { return KindCode }
func (*Blockquote) Kind() Kind { return KindBlockquote }
func (*HR) Kind() Kind         { return KindHR }
func (*Table) Kind() Kind      { return KindTable }
func (*HTML) Kind() Kind       { return KindHTML }
func (*Text) Kind() Kind       { return KindText }
func (*Em) Kind() Kind         { return KindEm }
func (*Strong) Kind() Kind     { return KindStrong }
func (*Del) Kind() Kind        { return KindDel }
func (*Link) Kind() Kind       { return KindLink }
func (*Codespan) Kind() Kind   { return KindCodespan }
func (*Image) Kind() Kind      { return KindImage }
func (*LineBreak) Kind() Kind  { return KindLineBreak }

func (t *Heading) Children() []Token    { return t.Tokens }
func (t *Paragraph) Children() []Token  { return t.Tokens }
func (*List) Children() []Token         { return nil }
func (t *ListItem) Children() []Token   { return t.Tokens }
func (*Code) Children() []Token         { return nil }
func (t *Blockquote) Children() []Token { return t.Tokens }
func (*HR) Children() []Token           { return nil }
func (*Table) Children() []Token        { return nil }
func (*HTML) Children() []Token         { return nil }
func (t *Text) Children() []Token       { return t.Tokens }
func (t *Em) Children() []Token         { return t.Tokens }
func (t *Strong) Children() []Token     { return t.Tokens }
func (t *Del) Children() []Token        { return t.Tokens }
func (t *Link) Children() []Token       { return t.Tokens }
func (*Codespan) Children() []Token     { return nil }
func (*Image) Children() []Token        { return nil }
func (*LineBreak) Children() []Token    { return nil }

func (*Heading) Literal() (string, bool)    { return "", false }
func (*Paragraph) Literal() (string, bool)  { return "", false }
func (*List) Literal() (string, bool)       { return "", false }
func (*ListItem) Literal() (string, bool)   { return "", false }
func (*Code) Literal() (string, bool)       { return "", false }
func (*Blockquote) Literal() (string, bool) { return "", false }
func (*HR) Literal() (string, bool)         { return "", false }
func (*Table) Literal() (string, bool)      { return "", false }
func (*HTML) Literal() (string, bool)       { return "", false }
func (t *Em) Literal() (string, bool)       { return PlainText(t.Tokens), true }
func (t *Strong) Literal() (string, bool)   { return PlainText(t.Tokens), true }
func (t *Del) Literal() (string, bool)      { return PlainText(t.Tokens), true }
func (t *Link) Literal() (string, bool)     { return PlainText(t.Tokens), true }
func (t *Codespan) Literal() (string, bool) { return t.Raw, true }
func (t *Image) Literal() (string, bool)    { return t.Alt, true }
func (*LineBreak) Literal() (string, bool)  { return "", false }

func (t *Text) Literal() (string, bool) {
	if len(t.Tokens) > 0 {
		return PlainText(t.Tokens), true
	}
	return t.Raw, true
}

func (*Heading) sealed()    {}
func (*Paragraph) sealed()  {}
func (*List) sealed()       {}
func (*ListItem) sealed()   {}
func (*Code) sealed()       {}
func (*Blockquote) sealed() {}
func (*HR) sealed()         {}
func (*Table) sealed()      {}
func (*HTML) sealed()       {}
func (*Text) sealed()       {}
func (*Em) sealed()         {}
func (*Strong) sealed()     {}
func (*Del) sealed()        {}
func (*Link) sealed()       {}
func (*Codespan) sealed()   {}
func (*Image) sealed()      {}
func (*LineBreak) sealed()  {}

// PlainText concatenates the literal text of inline tokens. Line breaks
// contribute a newline; tokens without text contribute nothing.
func PlainText(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if _, ok := t.(*LineBreak); ok {
			sb.WriteByte('\n')
			continue
		}
		if s, ok := t.Literal(); ok {
			sb.WriteString(s)
		}
	}
	return sb.String()
}
