package document

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRange is returned for lines or offsets outside the document.
var ErrRange = errors.New("out of range")

// Range is a half-open byte range [Start, End) of a document.
type Range struct {
	Start int
	End   int
}

// Document is the view of the host editor a table action needs.
// Lines are zero-based; LineEnd excludes the line terminator.
type Document interface {
	LastLine() int
	LineText(line int) string
	LineStart(line int) int
	LineEnd(line int) int
	CaretLine() int
	Text(r Range) string
	Replace(r Range, text string) error
}

// Buffer is an in-memory Document.
type Buffer struct {
	text  string
	lines []int
	caret int
}

// NewBuffer returns a buffer holding text with the caret on the first line.
func NewBuffer(text string) *Buffer {
	b := &Buffer{}
	b.setText(text)
	return b
}

func (b *Buffer) setText(text string) {
	b.text = text
	b.lines = b.lines[:0]
	b.lines = append(b.lines, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lines = append(b.lines, i+1)
		}
	}
	if b.caret > b.LastLine() {
		b.caret = b.LastLine()
	}
}

// String returns the whole buffer.
func (b *Buffer) String() string {
	return b.text
}

// SetCaretLine moves the caret to a zero-based line.
func (b *Buffer) SetCaretLine(line int) error {
	if line < 0 || line > b.LastLine() {
		return fmt.Errorf("caret line %d: %w", line, ErrRange)
	}
	b.caret = line
	return nil
}

func (b *Buffer) CaretLine() int {
	return b.caret
}

func (b *Buffer) LastLine() int {
	return len(b.lines) - 1
}

func (b *Buffer) LineStart(line int) int {
	return b.lines[line]
}

// LineEnd returns the offset just past the line's text, before "\n" or "\r\n".
func (b *Buffer) LineEnd(line int) int {
	end := len(b.text)
	if line < b.LastLine() {
		end = b.lines[line+1] - 1
	}
	if end > b.lines[line] && b.text[end-1] == '\r' {
		end--
	}
	return end
}

func (b *Buffer) LineText(line int) string {
	return b.text[b.LineStart(line):b.LineEnd(line)]
}

func (b *Buffer) Text(r Range) string {
	return b.text[r.Start:r.End]
}

// Replace swaps the text in r for text. The caret stays on its line when
// that line still exists.
func (b *Buffer) Replace(r Range, text string) error {
	if r.Start < 0 || r.End < r.Start || r.End > len(b.text) {
		return fmt.Errorf("replace [%d,%d) in %d bytes: %w", r.Start, r.End, len(b.text), ErrRange)
	}
	var sb strings.Builder
	sb.Grow(len(b.text) - (r.End - r.Start) + len(text))
	sb.WriteString(b.text[:r.Start])
	sb.WriteString(text)
	sb.WriteString(b.text[r.End:])
	b.setText(sb.String())
	return nil
}
