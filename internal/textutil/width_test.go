package textutil

import "testing"

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii", 'a', 1},
		{"pipe", '|', 1},
		{"latin accented", 0x00E9, 1},
		{"cjk ideograph", '表', 2},
		{"hiragana", 'あ', 2},
		{"hangul", '한', 2},
		{"fullwidth latin", 'Ａ', 2},
		{"ambiguous greek", 'α', 1},
		{"combining acute", 0x0301, 0},
		{"supplementary cjk", 0x20000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneWidth(tt.r); got != tt.want {
				t.Fatalf("RuneWidth(%U)=%d want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"cjk", "表格", 4},
		{"mixed", "a表b", 4},
		{"combining sequence", "e\u0301", 1},
		{"supplementary plane", "\U00020000x", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtraWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"表格", 2},
		{"a表b", 1},
		{"e\u0301", -1},
	}
	for _, tt := range tests {
		if got := ExtraWidth(tt.text); got != tt.want {
			t.Fatalf("ExtraWidth(%q)=%d want %d", tt.text, got, tt.want)
		}
	}
}

func TestExpandTabsRestartsColumnPerLine(t *testing.T) {
	got := ExpandTabs("ab\tc\n\td", 4)
	want := "ab  c\n    d"
	if got != want {
		t.Fatalf("ExpandTabs = %q, want %q", got, want)
	}
	if got := ExpandTabs("no tabs", 4); got != "no tabs" {
		t.Fatalf("expected text without tabs to be untouched, got %q", got)
	}
}

func TestExpandTabsCountsWideRunes(t *testing.T) {
	got := ExpandTabs("表\tx", 4)
	want := "表  x"
	if got != want {
		t.Fatalf("ExpandTabs = %q, want %q", got, want)
	}
}
