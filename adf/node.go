// Package adf models the Atlassian Document Format tree produced by md2adf.
//
// A Document is a versioned root holding block nodes. Nodes carry a type,
// optional ordered attributes, optional children and, for text leaves, the
// text itself plus formatting marks. All values serialize with
// encoding/json into the shape expected by Atlassian REST APIs.
package adf

// Version is the ADF format version written on every Document.
const Version = 1

// NodeType is the "type" of an ADF node.
type NodeType string

// Node types emitted by the converter.
const (
	TypeDoc         NodeType = "doc"
	TypeParagraph   NodeType = "paragraph"
	TypeHeading     NodeType = "heading"
	TypeBulletList  NodeType = "bulletList"
	TypeOrderedList NodeType = "orderedList"
	TypeTaskList    NodeType = "taskList"
	TypeListItem    NodeType = "listItem"
	TypeTaskItem    NodeType = "taskItem"
	TypeCodeBlock   NodeType = "codeBlock"
	TypeBlockquote  NodeType = "blockquote"
	TypeRule        NodeType = "rule"
	TypeTable       NodeType = "table"
	TypeTableRow    NodeType = "tableRow"
	TypeTableHeader NodeType = "tableHeader"
	TypeTableCell   NodeType = "tableCell"
	TypeMediaSingle NodeType = "mediaSingle"
	TypeMedia       NodeType = "media"
	TypeText        NodeType = "text"
	TypeHardBreak   NodeType = "hardBreak"
)

// MarkType is the "type" of a text mark.
type MarkType string

// Mark types. A text node carries at most one mark of each type.
const (
	MarkEm     MarkType = "em"
	MarkStrong MarkType = "strong"
	MarkStrike MarkType = "strike"
	MarkCode   MarkType = "code"
	MarkLink   MarkType = "link"
)

// Task item states.
const (
	StateTodo = "TODO"
	StateDone = "DONE"
)

// Media layouts accepted on mediaSingle nodes.
const (
	LayoutCenter     = "center"
	LayoutWide       = "wide"
	LayoutFullWidth  = "full-width"
	LayoutAlignStart = "align-start"
	LayoutAlignEnd   = "align-end"
	LayoutWrapLeft   = "wrap-left"
	LayoutWrapRight  = "wrap-right"
)

// Layouts lists every valid mediaSingle layout.
var Layouts = []string{
	LayoutCenter,
	LayoutWide,
	LayoutFullWidth,
	LayoutAlignStart,
	LayoutAlignEnd,
	LayoutWrapLeft,
	LayoutWrapRight,
}

// Document is the root of an ADF tree.
type Document struct {
	Version int      `json:"version"`
	Type    NodeType `json:"type"`
	Content []Node   `json:"content"`
}

// NewDocument wraps top-level nodes in a version 1 doc.
// Content is never nil so the JSON form always has a content array.
func NewDocument(content []Node) *Document {
	if content == nil {
		content = []Node{}
	}
	return &Document{Version: Version, Type: TypeDoc, Content: content}
}

// Node is a single ADF node.
type Node struct {
	Type    NodeType `json:"type"`
	Attrs   Attrs    `json:"attrs,omitempty"`
	Content []Node   `json:"content,omitempty"`
	Marks   []Mark   `json:"marks,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// Mark is a formatting annotation on a text node.
type Mark struct {
	Type  MarkType `json:"type"`
	Attrs Attrs    `json:"attrs,omitempty"`
}

// HasMark reports whether the node carries a mark of type t.
func (n Node) HasMark(t MarkType) bool {
	for _, m := range n.Marks {
		if m.Type == t {
			return true
		}
	}
	return false
}

// Walk calls fn for n and every descendant in document order.
// Returning false from fn skips the node's children.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Content {
		child.Walk(fn)
	}
}

// Walk calls fn for every node of the document in document order.
func (d *Document) Walk(fn func(Node) bool) {
	for _, n := range d.Content {
		n.Walk(fn)
	}
}

// Text returns a text leaf.
func Text(text string, marks ...Mark) Node {
	return Node{Type: TypeText, Text: text, Marks: marks}
}

// HardBreak returns a hardBreak leaf.
func HardBreak() Node {
	return Node{Type: TypeHardBreak}
}

// Paragraph returns a paragraph holding inline content.
func Paragraph(content ...Node) Node {
	return Node{Type: TypeParagraph, Content: content}
}

// Heading returns a heading of the given level.
func Heading(level int, content ...Node) Node {
	return Node{Type: TypeHeading, Attrs: Attrs{{"level", level}}, Content: content}
}

// BulletList returns an unordered list.
func BulletList(items ...Node) Node {
	return Node{Type: TypeBulletList, Content: items}
}

// OrderedList returns an ordered list starting at order.
func OrderedList(order int, items ...Node) Node {
	return Node{Type: TypeOrderedList, Attrs: Attrs{{"order", order}}, Content: items}
}

// TaskList returns a task list with the given local identifier.
func TaskList(localID string, items ...Node) Node {
	return Node{Type: TypeTaskList, Attrs: Attrs{{"localId", localID}}, Content: items}
}

// ListItem returns a list item holding block content.
func ListItem(content ...Node) Node {
	return Node{Type: TypeListItem, Content: content}
}

// TaskItem returns a task item holding inline content.
func TaskItem(localID string, done bool, content ...Node) Node {
	state := StateTodo
	if done {
		state = StateDone
	}
	return Node{Type: TypeTaskItem, Attrs: Attrs{{"localId", localID}, {"state", state}}, Content: content}
}

// CodeBlock returns a code block. Empty code yields a block without content.
func CodeBlock(language, code string) Node {
	n := Node{Type: TypeCodeBlock, Attrs: Attrs{{"language", language}}}
	if code != "" {
		n.Content = []Node{Text(code)}
	}
	return n
}

// Blockquote returns a blockquote holding block content.
func Blockquote(content ...Node) Node {
	return Node{Type: TypeBlockquote, Content: content}
}

// Rule returns a horizontal rule.
func Rule() Node {
	return Node{Type: TypeRule}
}

// Table returns a table holding rows.
func Table(rows ...Node) Node {
	return Node{Type: TypeTable, Content: rows}
}

// TableRow returns a table row holding cells.
func TableRow(cells ...Node) Node {
	return Node{Type: TypeTableRow, Content: cells}
}

// TableHeader returns a header cell holding block content.
func TableHeader(content ...Node) Node {
	return Node{Type: TypeTableHeader, Content: content}
}

// TableCell returns a body cell holding block content.
func TableCell(content ...Node) Node {
	return Node{Type: TypeTableCell, Content: content}
}

// MediaSingle returns a mediaSingle wrapping one external media leaf.
func MediaSingle(layout, url, alt string) Node {
	return Node{
		Type:  TypeMediaSingle,
		Attrs: Attrs{{"layout", layout}},
		Content: []Node{{
			Type:  TypeMedia,
			Attrs: Attrs{{"type", "external"}, {"url", url}, {"alt", alt}},
		}},
	}
}

// Em returns an emphasis mark.
func Em() Mark { return Mark{Type: MarkEm} }

// Strong returns a strong mark.
func Strong() Mark { return Mark{Type: MarkStrong} }

// Strike returns a strikethrough mark.
func Strike() Mark { return Mark{Type: MarkStrike} }

// Code returns an inline code mark.
func Code() Mark { return Mark{Type: MarkCode} }

// Link returns a link mark pointing at href.
func Link(href string) Mark {
	return Mark{Type: MarkLink, Attrs: Attrs{{"href", href}}}
}
