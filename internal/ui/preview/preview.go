package preview

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdtable/internal/document"
	textutil "github.com/kk-code-lab/mdtable/internal/textutil"
)

// Decision is what the user chose in the preview.
type Decision int

const (
	Undecided Decision = iota
	Accept
	Reject
)

// Preview shows a planned table action before and after, and asks whether to
// apply it.
type Preview struct {
	screen tcell.Screen
	theme  ColorTheme
	result document.Result
	body   []styledLine
	scroll int
}

type styledLine struct {
	text  string
	color func(ColorTheme) tcell.Color
}

// New prepares a preview of res on screen. The screen must be initialized.
func New(screen tcell.Screen, res document.Result) *Preview {
	p := &Preview{
		screen: screen,
		theme:  GetColorTheme(),
		result: res,
	}
	p.body = buildBody(res)
	return p
}

func buildBody(res document.Result) []styledLine {
	heading := func(t ColorTheme) tcell.Color { return t.HeadingFg }
	before := func(t ColorTheme) tcell.Color { return t.BeforeFg }
	after := func(t ColorTheme) tcell.Color { return t.AfterFg }

	var lines []styledLine
	lines = append(lines, styledLine{text: "Before:", color: heading})
	for _, line := range splitLines(res.Before) {
		lines = append(lines, styledLine{text: line, color: before})
	}
	lines = append(lines, styledLine{}, styledLine{text: "After:", color: heading})
	for _, line := range splitLines(res.After) {
		lines = append(lines, styledLine{text: line, color: after})
	}
	return lines
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Draw renders the title bar, the scrolled body and the status line.
func (p *Preview) Draw() {
	w, h := p.screen.Size()
	p.screen.Clear()
	if w <= 0 || h <= 0 {
		p.screen.Show()
		return
	}

	titleStyle := tcell.StyleDefault.Background(p.theme.TitleBg).Foreground(p.theme.TitleFg).Bold(true)
	p.fillLine(0, w, titleStyle)
	title := fmt.Sprintf(" mdtable %s   [y/Enter] apply   [q/Esc] cancel   [j/k] scroll", p.result.Action)
	p.drawTextLine(0, 0, w, title, titleStyle)

	bodyHeight := p.bodyHeight()
	p.clampScroll()
	for row := 0; row < bodyHeight; row++ {
		idx := p.scroll + row
		if idx >= len(p.body) {
			break
		}
		line := p.body[idx]
		style := p.theme.style(p.theme.Foreground)
		if line.color != nil {
			style = p.theme.style(line.color(p.theme))
		}
		p.drawTextLine(0, row+1, w, line.text, style)
	}

	if h > 1 {
		status, warn := p.statusText()
		color := p.theme.StatusFg
		if warn {
			color = p.theme.WarningFg
		}
		p.drawTextLine(0, h-1, w, status, p.theme.style(color))
	}
	p.screen.Show()
}

func (p *Preview) statusText() (string, bool) {
	if labels := textutil.FormattingRuneLabels(p.result.Before); len(labels) > 0 {
		return "warning: table contains invisible characters " + strings.Join(labels, " "), true
	}
	if !p.result.Changed {
		return "table is unchanged", false
	}
	return fmt.Sprintf("%d lines -> %d lines", len(splitLines(p.result.Before)), len(splitLines(p.result.After))), false
}

func (p *Preview) bodyHeight() int {
	_, h := p.screen.Size()
	return max(h-2, 0)
}

func (p *Preview) clampScroll() {
	maxScroll := max(len(p.body)-p.bodyHeight(), 0)
	p.scroll = min(max(p.scroll, 0), maxScroll)
}

// HandleEvent updates the preview for one event and reports the decision it
// produced, if any.
func (p *Preview) HandleEvent(ev tcell.Event) Decision {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		return p.handleKey(ev)
	}
	return Undecided
}

func (p *Preview) handleKey(ev *tcell.EventKey) Decision {
	switch ev.Key() {
	case tcell.KeyEnter:
		return Accept
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Reject
	case tcell.KeyUp:
		p.scroll--
	case tcell.KeyDown:
		p.scroll++
	case tcell.KeyPgUp:
		p.scroll -= p.bodyHeight()
	case tcell.KeyPgDn:
		p.scroll += p.bodyHeight()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			return Accept
		case 'q', 'Q', 'n', 'N':
			return Reject
		case 'k':
			p.scroll--
		case 'j':
			p.scroll++
		}
	}
	p.clampScroll()
	return Undecided
}

// Run draws the preview and processes events until the user decides. A
// finalized screen counts as a rejection.
func (p *Preview) Run() bool {
	for {
		p.Draw()
		ev := p.screen.PollEvent()
		if ev == nil {
			return false
		}
		switch p.HandleEvent(ev) {
		case Accept:
			return true
		case Reject:
			return false
		}
	}
}
