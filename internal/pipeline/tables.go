package pipeline

import (
	"github.com/alnah/go-md2adf/adf"
	"github.com/alnah/go-md2adf/internal/token"
)

// Table converts a GFM table. The header row, when present, becomes a row
// of tableHeader cells followed by one row of tableCell per body row.
func (b *Builder) Table(t *token.Table) adf.Node {
	rows := make([]adf.Node, 0, len(t.Rows)+1)
	if len(t.Header) > 0 {
		cells := make([]adf.Node, 0, len(t.Header))
		for _, c := range t.Header {
			cells = append(cells, adf.TableHeader(b.cell(c)...))
		}
		rows = append(rows, adf.TableRow(cells...))
	}
	for _, row := range t.Rows {
		cells := make([]adf.Node, 0, len(row))
		for _, c := range row {
			cells = append(cells, adf.TableCell(b.cell(c)...))
		}
		rows = append(rows, adf.TableRow(cells...))
	}
	return adf.Table(rows...)
}

// cell converts cell content. ADF rejects empty cells, so a cell with
// nothing in it holds a paragraph with a single space.
func (b *Builder) cell(c token.Cell) []adf.Node {
	content := b.Paragraph(c.Tokens)
	if len(content) == 0 {
		content = []adf.Node{adf.Paragraph(adf.Text(" "))}
	}
	return content
}
