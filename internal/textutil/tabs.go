package textutil

import "strings"

const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
// Columns restart after every newline so multi-line input expands per line.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text) + tabWidth)
	column := 0
	for _, ru := range text {
		switch ru {
		case '\t':
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		case '\n':
			builder.WriteRune(ru)
			column = 0
			continue
		}
		builder.WriteRune(ru)
		width := RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		column += width
	}
	return builder.String()
}
