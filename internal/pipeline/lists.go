package pipeline

import (
	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/token"
)

// List converts a list token. A list whose items all carry a checkbox
// becomes a taskList; otherwise an orderedList or bulletList, with any
// checkbox markers ignored.
func (b *Builder) List(l *token.List) adf.Node {
	if isTaskList(l) {
		return b.taskList(l)
	}

	items := make([]adf.Node, 0, len(l.Items))
	for _, item := range l.Items {
		items = append(items, adf.ListItem(b.itemContent(item.Tokens)...))
	}
	if !l.Ordered {
		return adf.BulletList(items...)
	}

	order := l.Start
	if order < 1 {
		order = 1
	}
	return adf.OrderedList(order, items...)
}

func isTaskList(l *token.List) bool {
	if len(l.Items) == 0 {
		return false
	}
	for _, item := range l.Items {
		if !item.IsTask() {
			return false
		}
	}
	return true
}

// isInline reports whether t can sit in a paragraph run.
func isInline(t token.Token) bool {
	switch t.(type) {
	case *token.Text, *token.Em, *token.Strong, *token.Del,
		*token.Link, *token.Codespan, *token.Image, *token.LineBreak:
		return true
	}
	return false
}

// splitItem separates item children into inline runs and block tokens,
// calling inline for each maximal run and block for everything else in
// document order. Text wrappers are unwrapped into the run.
func splitItem(tokens []token.Token, inline func([]token.Token), block func(token.Token)) {
	var run []token.Token
	flush := func() {
		if len(run) > 0 {
			inline(run)
			run = nil
		}
	}
	for _, t := range tokens {
		if !isInline(t) {
			flush()
			block(t)
			continue
		}
		if text, ok := t.(*token.Text); ok {
			run = append(run, unwrap(text)...)
			continue
		}
		run = append(run, t)
	}
	flush()
}

// itemContent converts the children of a regular list item. An item with
// no content gets an empty paragraph since listItem may not be empty.
func (b *Builder) itemContent(tokens []token.Token) []adf.Node {
	var out []adf.Node
	splitItem(tokens,
		func(run []token.Token) { out = append(out, b.Paragraph(run)...) },
		func(t token.Token) { out = append(out, b.block(t)...) },
	)
	if len(out) == 0 {
		out = []adf.Node{adf.Paragraph()}
	}
	return out
}

// taskList converts a list of checkbox items. Task items hold inline
// content directly. A nested task list follows its item as a sibling in
// the parent taskList; other nested blocks stay inside the item.
func (b *Builder) taskList(l *token.List) adf.Node {
	listID := b.ids.NewID()

	items := make([]adf.Node, 0, len(l.Items))
	for _, item := range l.Items {
		id := b.ids.NewID()
		var content, nested []adf.Node
		splitItem(item.Tokens,
			func(run []token.Token) { content = append(content, b.Inline(run)...) },
			func(t token.Token) {
				if sub, ok := t.(*token.List); ok && isTaskList(sub) {
					nested = append(nested, b.taskList(sub))
					return
				}
				content = append(content, b.block(t)...)
			},
		)
		items = append(items, adf.TaskItem(id, *item.Checked, content...))
		items = append(items, nested...)
	}
	return adf.TaskList(listID, items...)
}
