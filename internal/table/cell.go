package table

import (
	"strings"
	"unicode/utf8"

	textutil "github.com/kk-code-lab/mdtable/internal/textutil"
)

const (
	// MinWidth is the narrowest column the formatter emits, padding included.
	MinWidth = 5
	// MinDashes is the shortest dash or equals run recognized as a separator cell.
	MinDashes = 3
)

// CellID addresses a cell in a Grid.
type CellID int

const noOwner CellID = -1

// Alignment is the column alignment declared by a separator cell.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignRight
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return ""
	}
}

// Cell is either a real cell holding content or a placeholder standing in for
// a column consumed by its owner's colspan.
type Cell struct {
	// Content is the trimmed cell text. Always empty for placeholders.
	Content string
	// Owner is the real cell a placeholder merges into.
	Owner CellID
	// Colspan is the number of columns a real cell spans. Placeholders report 1.
	Colspan int
	// Separator marks a cell of the header/body separator row.
	Separator bool

	// lead is set on the placeholder occupying the first column of a span.
	lead     bool
	reserved int
	children int
}

func newCell(segment string) Cell {
	content := strings.TrimSpace(segment)
	return Cell{
		Content:   content,
		Owner:     noOwner,
		Colspan:   1,
		Separator: IsSeparator(content),
		reserved:  textutil.DisplayWidth(segment),
	}
}

func newPlaceholder(owner CellID, lead bool) Cell {
	return Cell{Owner: owner, Colspan: 1, lead: lead}
}

// IsPlaceholder reports whether the cell merges into a preceding real cell.
func (c Cell) IsPlaceholder() bool {
	return c.Owner != noOwner
}

// Alignment reports the alignment a separator cell declares.
func (c Cell) Alignment() Alignment {
	if !c.Separator {
		return AlignNone
	}
	return ParseAlignment(c.Content)
}

// demand is the width this cell asks of its column.
func (c Cell) demand() int {
	if c.IsPlaceholder() || c.Separator {
		return MinWidth
	}
	width := max(textutil.DisplayWidth(c.Content)+2, c.reserved) - c.children
	return max(width, MinWidth)
}

// spanWidth is the display width the cell fills once resolved, including the
// columns handed to its placeholders.
func (c Cell) spanWidth() int {
	return c.reserved + c.children
}

func (c Cell) markdown() string {
	if c.Separator {
		return separatorMarkdown(c.Content, c.spanWidth())
	}
	pad := c.spanWidth() - 2 - textutil.ExtraWidth(c.Content) - utf8.RuneCountInString(c.Content)
	return " " + c.Content + strings.Repeat(" ", max(pad, 0)) + " "
}

func separatorMarkdown(content string, width int) string {
	fill := "-"
	if body := strings.Trim(content, ":"); body != "" {
		r, _ := utf8.DecodeRuneInString(body)
		fill = string(r)
	}
	// An equals rule keeps '=' at its ends so it still reads as a rule.
	prefix, suffix := fill, fill
	if strings.HasPrefix(content, ":") {
		prefix = ":"
	}
	if strings.HasSuffix(content, ":") {
		suffix = ":"
	}
	return prefix + strings.Repeat(fill, max(width-2, MinDashes)) + suffix
}

// IsSeparator reports whether value, once surrounding colons are removed, is a
// run of at least MinDashes dashes or equals signs.
func IsSeparator(value string) bool {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) < MinDashes {
		return false
	}
	return isRuleBody(value)
}

// isRuleBody reports whether value is made only of '-' or only of '=' once
// surrounding colons are removed.
func isRuleBody(value string) bool {
	body := strings.Trim(value, ":")
	if body == "" {
		return false
	}
	return strings.Trim(body, "-") == "" || strings.Trim(body, "=") == ""
}

// ParseAlignment reads the alignment from the colons around a separator:
// a trailing colon alone means right, colons on both sides mean center.
func ParseAlignment(value string) Alignment {
	value = strings.TrimSpace(value)
	if !strings.HasSuffix(value, ":") {
		return AlignNone
	}
	if strings.HasPrefix(value, ":") && len(value) > 1 {
		return AlignCenter
	}
	return AlignRight
}
