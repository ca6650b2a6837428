package table

import (
	"fmt"
	"strings"
)

// ConvertToHTML turns a pipe table into an HTML table. Rows above the
// separator become header cells, the rest body cells.
func ConvertToHTML(text string) string {
	return Parse(text, true).HTML()
}

// HTML renders the grid as a <table>, one <tr> per line. Content is emitted
// verbatim so inline HTML inside cells survives the conversion.
func (g *Grid) HTML() string {
	aligns := g.Alignments()
	lines := []string{"<table>"}
	tag := "th"
	for _, row := range g.Rows {
		if g.isSeparatorRow(row) {
			tag = "td"
			continue
		}
		var b strings.Builder
		b.WriteString("<tr>")
		for i, id := range row {
			align := AlignNone
			if i < len(aligns) {
				align = aligns[i]
			}
			b.WriteString(g.slotHTML(id, tag, align))
		}
		b.WriteString("</tr>")
		lines = append(lines, b.String())
	}
	lines = append(lines, "</table>")
	return strings.Join(lines, "\n")
}

// Alignments reports the per-column alignment of the first separator row,
// or nil when the table has none.
func (g *Grid) Alignments() []Alignment {
	for _, row := range g.Rows {
		if !g.isSeparatorRow(row) {
			continue
		}
		aligns := make([]Alignment, len(row))
		for i, id := range row {
			aligns[i] = g.cells[id].Alignment()
		}
		return aligns
	}
	return nil
}

func (g *Grid) isSeparatorRow(row []CellID) bool {
	return len(row) > 0 && g.owner(row[0]).Separator
}

func (g *Grid) slotHTML(id CellID, tag string, align Alignment) string {
	c := g.cells[id]
	if c.IsPlaceholder() {
		return ""
	}
	var attrs strings.Builder
	if c.Colspan > 1 {
		fmt.Fprintf(&attrs, ` colspan="%d"`, c.Colspan)
	}
	if align != AlignNone {
		fmt.Fprintf(&attrs, ` align="%s"`, align)
	}
	return fmt.Sprintf("<%s%s>%s</%s>", tag, attrs.String(), c.Content, tag)
}
