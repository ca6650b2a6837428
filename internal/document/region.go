package document

import "strings"

// TableRange returns the block of lines around the caret, bounded by empty
// lines or the document edges. A line holding only spaces belongs to the
// block. It reports false when the caret sits on an empty line.
func TableRange(doc Document) (Range, bool) {
	caret := doc.CaretLine()
	if caret < 0 || caret > doc.LastLine() || doc.LineText(caret) == "" {
		return Range{}, false
	}

	first := caret
	for first > 0 && doc.LineText(first-1) != "" {
		first--
	}
	last := caret
	for last < doc.LastLine() && doc.LineText(last+1) != "" {
		last++
	}
	return Range{Start: doc.LineStart(first), End: doc.LineEnd(last)}, true
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// TrimmedRange spans the whole document minus leading and trailing blank
// lines, so a trailing newline does not turn into an empty table row. It
// reports false when every line is blank.
func TrimmedRange(doc Document) (Range, bool) {
	first, last := 0, doc.LastLine()
	for first <= last && isBlankLine(doc.LineText(first)) {
		first++
	}
	for last >= first && isBlankLine(doc.LineText(last)) {
		last--
	}
	if first > last {
		return Range{}, false
	}
	return Range{Start: doc.LineStart(first), End: doc.LineEnd(last)}, true
}
