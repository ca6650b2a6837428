package textutil

import "github.com/mattn/go-runewidth"

// widthCondition pins ambiguous-width runes to a single column regardless of
// the user's locale, so output does not depend on RUNEWIDTH_EASTASIAN or LANG.
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// RuneWidth reports the number of terminal columns ru occupies: 2 for wide and
// full-width runes, 0 for combining marks and control runes, 1 otherwise.
func RuneWidth(ru rune) int {
	w := widthCondition.RuneWidth(ru)
	if w < 0 {
		return 0
	}
	return w
}

// DisplayWidth reports the printable width of text, summed per code point.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += RuneWidth(ru)
	}
	return width
}

// ExtraWidth reports how many columns text occupies beyond one per code point.
// Padding is counted in runes, so callers subtract this to land on a display width.
func ExtraWidth(text string) int {
	extra := 0
	for _, ru := range text {
		extra += RuneWidth(ru) - 1
	}
	return extra
}
