package token

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Lexer turns Markdown source into a token tree.
// A Lexer is safe for concurrent use.
type Lexer struct {
	parser parser.Parser
}

// NewLexer creates a Lexer with the GFM extensions enabled
// (tables, strikethrough, task lists, autolinks).
func NewLexer() *Lexer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, linkify, task lists
		),
	)
	return &Lexer{parser: md.Parser()}
}

var defaultLexer = NewLexer()

// Lex tokenizes source with the default Lexer.
func Lex(source string) []Token {
	return defaultLexer.Lex([]byte(source))
}

// Lex tokenizes source into top-level block tokens.
func (l *Lexer) Lex(source []byte) []Token {
	doc := l.parser.Parse(text.NewReader(source))
	w := &walker{source: source}
	return w.blocks(doc)
}

// walker maps one parsed goldmark document to tokens.
type walker struct {
	source []byte
}

func (w *walker) blocks(parent ast.Node) []Token {
	var out []Token
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if t := w.block(n); t != nil {
			out = append(out, t)
		}
	}
	return out
}

func (w *walker) block(n ast.Node) Token {
	switch node := n.(type) {
	case *ast.Heading:
		return &Heading{Depth: node.Level, Tokens: w.inline(node)}

	case *ast.Paragraph:
		return &Paragraph{Tokens: w.inline(node)}

	case *ast.TextBlock:
		// Tight list items hold their text in a TextBlock.
		return &Text{Tokens: w.inline(node)}

	case *ast.List:
		list := &List{Ordered: node.IsOrdered()}
		if list.Ordered {
			list.Start = node.Start
		}
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if item, ok := c.(*ast.ListItem); ok {
				list.Items = append(list.Items, w.listItem(item))
			}
		}
		return list

	case *ast.FencedCodeBlock:
		code := &Code{Text: w.lines(node.Lines())}
		if node.Info != nil {
			code.Lang = string(node.Language(w.source))
		}
		code.Text = strings.TrimSuffix(code.Text, "\n")
		return code

	case *ast.CodeBlock:
		return &Code{Text: strings.TrimRight(w.lines(node.Lines()), "\n")}

	case *ast.Blockquote:
		return &Blockquote{Tokens: w.blocks(node)}

	case *ast.ThematicBreak:
		return &HR{}

	case *ast.HTMLBlock:
		raw := w.lines(node.Lines())
		if node.HasClosure() {
			raw += string(node.ClosureLine.Value(w.source))
		}
		return &HTML{Raw: raw}

	case *extast.Table:
		return w.table(node)
	}
	return nil
}

func (w *walker) listItem(n *ast.ListItem) *ListItem {
	item := &ListItem{Tokens: w.blocks(n)}
	if first := n.FirstChild(); first != nil {
		if box, ok := first.FirstChild().(*extast.TaskCheckBox); ok {
			checked := box.IsChecked
			item.Checked = &checked
		}
	}
	return item
}

func (w *walker) table(n *extast.Table) *Table {
	table := &Table{}
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []Cell
		for c := row.FirstChild(); c != nil; c = c.NextSibling() {
			if cell, ok := c.(*extast.TableCell); ok {
				cells = append(cells, Cell{Tokens: w.inline(cell)})
			}
		}
		switch row.(type) {
		case *extast.TableHeader:
			table.Header = cells
		case *extast.TableRow:
			table.Rows = append(table.Rows, cells)
		}
	}
	return table
}

func (w *walker) lines(lines *text.Segments) string {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(w.source))
	}
	return buf.String()
}

// inline maps the inline children of n. Adjacent plain text segments are
// merged, soft line breaks become "\n" inside the merged text.
func (w *walker) inline(parent ast.Node) []Token {
	var out []Token
	trimNext := false

	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		trim := trimNext
		trimNext = false

		switch node := n.(type) {
		case *ast.Text:
			s := decode(node.Segment.Value(w.source))
			if trim {
				s = strings.TrimLeft(s, " \t")
			}
			if node.HardLineBreak() {
				s = strings.TrimRight(s, " \t")
			}
			out = appendText(out, s)
			if node.SoftLineBreak() {
				out = appendText(out, "\n")
			}
			if node.HardLineBreak() {
				out = append(out, &LineBreak{})
			}

		case *ast.String:
			out = appendText(out, string(node.Value))

		case *ast.Emphasis:
			if node.Level >= 2 {
				out = append(out, &Strong{Tokens: w.inline(node)})
			} else {
				out = append(out, &Em{Tokens: w.inline(node)})
			}

		case *extast.Strikethrough:
			out = append(out, &Del{Tokens: w.inline(node)})

		case *ast.Link:
			out = append(out, &Link{
				Href:   decode(node.Destination),
				Title:  string(node.Title),
				Tokens: w.inline(node),
			})

		case *ast.AutoLink:
			out = append(out, &Link{
				Href:   string(node.URL(w.source)),
				Tokens: []Token{&Text{Raw: string(node.Label(w.source))}},
			})

		case *ast.CodeSpan:
			out = append(out, &Codespan{Raw: w.codeSpan(node)})

		case *ast.Image:
			out = append(out, &Image{
				Href:  decode(node.Destination),
				Alt:   PlainText(w.inline(node)),
				Title: string(node.Title),
			})

		case *ast.RawHTML:
			out = append(out, &HTML{Raw: w.lines(node.Segments)})

		case *extast.TaskCheckBox:
			// Consumed by listItem; the text after the box loses its
			// leading separator.
			trimNext = true
		}
	}
	return out
}

// codeSpan joins the raw segments of a code span. Line endings inside the
// span become spaces.
func (w *walker) codeSpan(n *ast.CodeSpan) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		v := t.Segment.Value(w.source)
		if bytes.HasSuffix(v, []byte("\n")) {
			sb.Write(v[:len(v)-1])
			sb.WriteByte(' ')
			continue
		}
		sb.Write(v)
	}
	return sb.String()
}

// appendText merges s into a trailing plain Text token or starts one.
func appendText(out []Token, s string) []Token {
	if s == "" {
		return out
	}
	if len(out) > 0 {
		if last, ok := out[len(out)-1].(*Text); ok && len(last.Tokens) == 0 {
			last.Raw += s
			return out
		}
	}
	return append(out, &Text{Raw: s})
}

// decode resolves backslash escapes and character references the way the
// goldmark HTML writer does when it prints text.
func decode(b []byte) string {
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	b = util.ResolveEntityNames(b)
	return string(b)
}
