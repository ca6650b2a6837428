package preview

import "github.com/gdamore/tcell/v2"

// ColorTheme defines preview colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	TitleBg    tcell.Color
	TitleFg    tcell.Color
	HeadingFg  tcell.Color
	BeforeFg   tcell.Color
	AfterFg    tcell.Color
	StatusFg   tcell.Color
	WarningFg  tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		TitleBg:    tcell.Color33,
		TitleFg:    tcell.ColorWhite,
		HeadingFg:  tcell.Color44,
		BeforeFg:   tcell.Color252,
		AfterFg:    tcell.ColorDefault,
		StatusFg:   tcell.ColorLightSlateGray,
		WarningFg:  tcell.Color214,
	}
}

func (t ColorTheme) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(fg)
}
