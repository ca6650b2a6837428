package textutil

import "sort"

var formattingRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x00AD: "⟪SHY⟫",
	0x180E: "⟪MVS⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SafeRune maps a rune to something that is safe to hand to a terminal cell.
// Control runes become '?', whitespace controls become a space and bidi or
// zero-width formatting runes become a middle dot so they stay visible.
func SafeRune(r rune) rune {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return ' '
	case isFormattingRune(r):
		return '·'
	case (r >= 0 && r < 0x20) || r == 0x7f:
		return '?'
	default:
		return r
	}
}

// FormattingRuneLabels lists, sorted and without duplicates, the labels of the
// invisible formatting runes found in text.
func FormattingRuneLabels(text string) []string {
	seen := make(map[string]struct{})
	for _, r := range text {
		if label, ok := formattingRuneLabels[r]; ok {
			seen[label] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func isFormattingRune(r rune) bool {
	_, ok := formattingRuneLabels[r]
	return ok
}
