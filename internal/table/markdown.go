package table

import "strings"

// Format re-pads a pipe table so that every column lines up. With trim unset
// columns never shrink below the width they already occupy.
func Format(text string, trim bool) string {
	return Parse(text, trim).Markdown()
}

// Markdown renders the resolved grid back into pipe-delimited rows.
func (g *Grid) Markdown() string {
	g.Resolve()
	lines := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		texts := make([]string, len(row))
		for j, id := range row {
			texts[j] = g.slotMarkdown(id)
		}
		lines[i] = "|" + strings.Join(texts, "|") + "|"
	}
	return strings.Join(lines, "\n")
}

// slotMarkdown renders one slot. A span is drawn once, by its leading slot;
// the other slots of the span stay empty so the row keeps its pipe count.
func (g *Grid) slotMarkdown(id CellID) string {
	c := g.cells[id]
	switch {
	case c.IsPlaceholder() && c.lead:
		return g.cells[c.Owner].markdown()
	case c.IsPlaceholder(), c.Colspan > 1:
		return ""
	default:
		return c.markdown()
	}
}
