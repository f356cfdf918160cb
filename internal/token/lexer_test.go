package token

// Notes:
// - These tests pin the shape of the token tree built from goldmark's AST,
//   which is what the pipeline relies on. Exhaustive CommonMark conformance
//   is goldmark's job and is not re-tested here.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexOne(t *testing.T, src string) Token {
	t.Helper()
	tokens := Lex(src)
	require.Len(t, tokens, 1, "expected one block token for %q", src)
	return tokens[0]
}

func paragraphOf(t *testing.T, src string) []Token {
	t.Helper()
	p, ok := lexOne(t, src).(*Paragraph)
	require.True(t, ok, "expected *Paragraph for %q", src)
	return p.Tokens
}

// ---------------------------------------------------------------------------
// TestLexBlocks - Block token mapping
// ---------------------------------------------------------------------------

func TestLexHeading(t *testing.T) {
	t.Parallel()

	h, ok := lexOne(t, "## Hello").(*Heading)
	require.True(t, ok)
	assert.Equal(t, 2, h.Depth)
	require.Len(t, h.Tokens, 1)
	assert.Equal(t, &Text{Raw: "Hello"}, h.Tokens[0])
}

func TestLexFencedCode(t *testing.T) {
	t.Parallel()

	code, ok := lexOne(t, "```go\nfunc main() {\n\tfmt.Println()\n}\n```").(*Code)
	require.True(t, ok)
	assert.Equal(t, "go", code.Lang)
	assert.Equal(t, "func main() {\n\tfmt.Println()\n}", code.Text)
}

func TestLexFencedCodeNoLanguage(t *testing.T) {
	t.Parallel()

	code, ok := lexOne(t, "```\nplain  text\n```").(*Code)
	require.True(t, ok)
	assert.Empty(t, code.Lang)
	assert.Equal(t, "plain  text", code.Text)
}

func TestLexIndentedCode(t *testing.T) {
	t.Parallel()

	code, ok := lexOne(t, "    x := 1\n    y := 2\n").(*Code)
	require.True(t, ok)
	assert.Empty(t, code.Lang)
	assert.Equal(t, "x := 1\ny := 2", code.Text)
}

func TestLexBlockquote(t *testing.T) {
	t.Parallel()

	bq, ok := lexOne(t, "> quoted").(*Blockquote)
	require.True(t, ok)
	require.Len(t, bq.Tokens, 1)
	p, ok := bq.Tokens[0].(*Paragraph)
	require.True(t, ok)
	assert.Equal(t, []Token{&Text{Raw: "quoted"}}, p.Tokens)
}

func TestLexThematicBreak(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &HR{}, lexOne(t, "---"))
}

func TestLexHTMLBlock(t *testing.T) {
	t.Parallel()

	html, ok := lexOne(t, "<div>\nhi\n</div>").(*HTML)
	require.True(t, ok)
	assert.Contains(t, html.Raw, "<div>")
}

func TestLexTable(t *testing.T) {
	t.Parallel()

	table, ok := lexOne(t, "| a | b |\n|---|---|\n| x |  |").(*Table)
	require.True(t, ok)

	require.Len(t, table.Header, 2)
	assert.Equal(t, []Token{&Text{Raw: "a"}}, table.Header[0].Tokens)
	assert.Equal(t, []Token{&Text{Raw: "b"}}, table.Header[1].Tokens)

	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0], 2)
	assert.Equal(t, []Token{&Text{Raw: "x"}}, table.Rows[0][0].Tokens)
	assert.Empty(t, table.Rows[0][1].Tokens)
}

// ---------------------------------------------------------------------------
// TestLexLists - Lists, items and task checkboxes
// ---------------------------------------------------------------------------

func TestLexOrderedListStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		wantStart int
	}{
		{"starts at one", "1. a\n2. b", 1},
		{"starts at three", "3. a\n4. b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list, ok := lexOne(t, tt.src).(*List)
			require.True(t, ok)
			assert.True(t, list.Ordered)
			assert.Equal(t, tt.wantStart, list.Start)
			assert.Len(t, list.Items, 2)
		})
	}
}

func TestLexTightListItem(t *testing.T) {
	t.Parallel()

	list, ok := lexOne(t, "- a\n  - b").(*List)
	require.True(t, ok)
	assert.False(t, list.Ordered)
	require.Len(t, list.Items, 1)

	item := list.Items[0]
	assert.False(t, item.IsTask())
	require.Len(t, item.Tokens, 2)

	wrapper, ok := item.Tokens[0].(*Text)
	require.True(t, ok, "tight item text is wrapped in a Text token")
	assert.Equal(t, []Token{&Text{Raw: "a"}}, wrapper.Tokens)
	assert.IsType(t, &List{}, item.Tokens[1])
}

func TestLexLooseListItem(t *testing.T) {
	t.Parallel()

	list, ok := lexOne(t, "- a\n\n- b").(*List)
	require.True(t, ok)
	require.Len(t, list.Items, 2)
	assert.IsType(t, &Paragraph{}, list.Items[0].Tokens[0])
}

func TestLexTaskItems(t *testing.T) {
	t.Parallel()

	list, ok := lexOne(t, "- [x] done\n- [ ] todo\n- plain").(*List)
	require.True(t, ok)
	require.Len(t, list.Items, 3)

	require.True(t, list.Items[0].IsTask())
	assert.True(t, *list.Items[0].Checked)
	require.True(t, list.Items[1].IsTask())
	assert.False(t, *list.Items[1].Checked)
	assert.False(t, list.Items[2].IsTask())

	wrapper, ok := list.Items[1].Tokens[0].(*Text)
	require.True(t, ok)
	assert.Equal(t, "todo", PlainText(wrapper.Tokens), "checkbox and separator are removed")
}

// ---------------------------------------------------------------------------
// TestLexInline - Inline token mapping
// ---------------------------------------------------------------------------

func TestLexSoftBreakMergesText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Token{&Text{Raw: "foo\nbar"}}, paragraphOf(t, "foo\nbar"))
}

func TestLexHardBreak(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]Token{&Text{Raw: "a"}, &LineBreak{}, &Text{Raw: "b"}},
		paragraphOf(t, "a  \nb"),
	)
}

func TestLexEmphasis(t *testing.T) {
	t.Parallel()

	tokens := paragraphOf(t, "**_x_** and ~~y~~")
	require.Len(t, tokens, 3)

	strong, ok := tokens[0].(*Strong)
	require.True(t, ok)
	require.Len(t, strong.Tokens, 1)
	em, ok := strong.Tokens[0].(*Em)
	require.True(t, ok)
	assert.Equal(t, []Token{&Text{Raw: "x"}}, em.Tokens)

	assert.Equal(t, &Text{Raw: " and "}, tokens[1])
	assert.Equal(t, &Del{Tokens: []Token{&Text{Raw: "y"}}}, tokens[2])
}

func TestLexLinkWithCode(t *testing.T) {
	t.Parallel()

	tokens := paragraphOf(t, "[`x`](https://a)")
	require.Len(t, tokens, 1)
	assert.Equal(t, &Link{Href: "https://a", Tokens: []Token{&Codespan{Raw: "x"}}}, tokens[0])
}

func TestLexCodespanKeepsSpaces(t *testing.T) {
	t.Parallel()

	tokens := paragraphOf(t, "`a  b`")
	assert.Equal(t, []Token{&Codespan{Raw: "a  b"}}, tokens)
}

func TestLexAutolink(t *testing.T) {
	t.Parallel()

	tokens := paragraphOf(t, "see https://example.com")
	require.Len(t, tokens, 2)
	link, ok := tokens[1].(*Link)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", link.Href)
	assert.Equal(t, "https://example.com", PlainText(link.Tokens))
}

func TestLexImage(t *testing.T) {
	t.Parallel()

	tokens := paragraphOf(t, "![Example *Image*](https://picsum.photos/400/300)")
	require.Len(t, tokens, 1)
	assert.Equal(t, &Image{Href: "https://picsum.photos/400/300", Alt: "Example Image"}, tokens[0])
}

func TestLexEscapesAndEntities(t *testing.T) {
	t.Parallel()

	tokens := paragraphOf(t, `\*not em\* &amp; &#35;`)
	assert.Equal(t, "*not em* & #", PlainText(tokens))
	for _, tok := range tokens {
		assert.IsType(t, &Text{}, tok)
	}
}

func TestLexInlineHTML(t *testing.T) {
	t.Parallel()

	tokens := paragraphOf(t, "a <b>bold</b>")
	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind())
	}
	assert.Contains(t, kinds, KindHTML)
}

// ---------------------------------------------------------------------------
// TestPlainText - Literal text of token runs
// ---------------------------------------------------------------------------

func TestPlainText(t *testing.T) {
	t.Parallel()

	tokens := []Token{
		&Text{Raw: "a "},
		&Strong{Tokens: []Token{&Em{Tokens: []Token{&Text{Raw: "b"}}}}},
		&LineBreak{},
		&Codespan{Raw: "c"},
		&HTML{Raw: "<br>"},
	}
	assert.Equal(t, "a b\nc", PlainText(tokens))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "br", KindLineBreak.String())
	assert.Equal(t, "codespan", (&Codespan{}).Kind().String())
	assert.Equal(t, "unknown", Kind(0).String())
}
