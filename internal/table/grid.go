package table

import (
	"slices"
	"strings"
)

// Grid is a parsed table. Cells live in one arena and rows refer to them by
// CellID, so a cell spanning several columns is stored once.
type Grid struct {
	Rows [][]CellID

	cells    []Cell
	resolved bool
}

// Parse splits table text into rows of cells, one row per line.
//
// A single leading and trailing pipe is stripped from every line and the rest
// is split on '|'. An empty segment after the first one continues the previous
// cell: the previous slot becomes a placeholder and the owning cell moves to
// the new slot, so every slot still holds exactly one CellID.
//
// With trim set, segments are trimmed before their width is measured and a
// cell asks only for the width of its content. Without it, a cell keeps the
// width its segment already occupies.
//
// Until the first separator row is found, a row of dash or equals runs
// shorter than MinDashes is still taken as the separator. Past it, such runs
// are content.
func Parse(text string, trim bool) *Grid {
	g := &Grid{}
	ruled := false
	for _, line := range strings.Split(text, "\n") {
		row := g.parseRow(strings.TrimSuffix(line, "\r"), trim, !ruled)
		ruled = ruled || g.isSeparatorRow(row)
		g.Rows = append(g.Rows, row)
	}
	return g
}

func (g *Grid) parseRow(line string, trim, shortRules bool) []CellID {
	segments := strings.Split(trimBorder(line), "|")
	row := make([]CellID, 0, len(segments))
	for i, segment := range segments {
		if segment == "" && i > 0 {
			owner := row[i-1]
			lead := g.cells[owner].Colspan == 1
			g.cells[owner].Colspan++
			row[i-1] = g.add(newPlaceholder(owner, lead))
			row = append(row, owner)
			continue
		}
		if trim {
			segment = strings.TrimSpace(segment)
		}
		row = append(row, g.add(newCell(segment)))
	}
	if shortRules {
		g.markRuleRow(row)
	}
	return row
}

// markRuleRow flags every cell of a row made only of dash or equals runs as a
// separator, so a delimiter row like |-|-:| is recognized even though its
// cells are shorter than MinDashes.
func (g *Grid) markRuleRow(row []CellID) {
	content := 0
	for _, id := range row {
		c := g.cells[id]
		if c.IsPlaceholder() {
			continue
		}
		if !isRuleBody(c.Content) {
			return
		}
		content++
	}
	if content == 0 {
		return
	}
	for _, id := range row {
		if !g.cells[id].IsPlaceholder() {
			g.cells[id].Separator = true
		}
	}
}

func trimBorder(line string) string {
	start, end := 0, len(line)
	if end > 0 && line[0] == '|' {
		start++
	}
	if end > start && line[end-1] == '|' {
		end--
	}
	return line[start:end]
}

func (g *Grid) add(c Cell) CellID {
	g.cells = append(g.cells, c)
	return CellID(len(g.cells) - 1)
}

// Cell returns the cell stored under id.
func (g *Grid) Cell(id CellID) Cell {
	return g.cells[id]
}

// owner resolves a placeholder to the real cell it merges into.
func (g *Grid) owner(id CellID) Cell {
	c := g.cells[id]
	if c.IsPlaceholder() {
		return g.cells[c.Owner]
	}
	return c
}

// Columns transposes the rows. A short row simply has no entry in the columns
// past its end.
func (g *Grid) Columns() [][]CellID {
	count := 0
	for _, row := range g.Rows {
		count = max(count, len(row))
	}
	columns := make([][]CellID, count)
	for _, row := range g.Rows {
		for i, id := range row {
			columns[i] = append(columns[i], id)
		}
	}
	return columns
}

// Resolve gives every cell of a column the width of the column's widest cell.
// Columns are resolved left to right: the width handed to a placeholder is
// credited to its owner, which lowers what the owner asks of later columns.
// Calling Resolve again is a no-op.
func (g *Grid) Resolve() {
	if g.resolved {
		return
	}
	for _, column := range g.Columns() {
		g.cells = assignWidth(g.cells, column, columnWidth(g.cells, column))
	}
	g.resolved = true
}

// widths reports the resolved width of every column.
func (g *Grid) widths() []int {
	g.Resolve()
	columns := g.Columns()
	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = g.cells[column[0]].reserved
	}
	return widths
}

func columnWidth(cells []Cell, column []CellID) int {
	width := MinWidth
	for _, id := range column {
		width = max(width, cells[id].demand())
	}
	return width
}

func assignWidth(cells []Cell, column []CellID, width int) []Cell {
	next := slices.Clone(cells)
	for _, id := range column {
		if owner := next[id].Owner; owner != noOwner {
			next[owner].children += width
		}
		next[id].reserved = width
	}
	return next
}
