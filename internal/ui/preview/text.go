package preview

import (
	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/mdtable/internal/textutil"
)

// drawTextLine draws text from startX, clipped to maxWidth columns. Zero-width
// runes are attached to the preceding cell as combining characters.
func (p *Preview) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := textutil.SafeRune(runes[i])
		i++

		var combc []rune
		for i < len(runes) && textutil.RuneWidth(runes[i]) == 0 && textutil.SafeRune(runes[i]) == runes[i] {
			combc = append(combc, runes[i])
			i++
		}

		w := textutil.RuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		p.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

func (p *Preview) fillLine(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		p.screen.SetContent(x, y, ' ', nil, style)
	}
}
