package tui

import "github.com/lixenwraith/vi-dash/terminal"

// Theme defines semantic colors for dashboard widgets
type Theme struct {
	Bg       terminal.RGB
	Fg       terminal.RGB
	FocusBg  terminal.RGB
	CursorBg terminal.RGB

	Border      terminal.RGB
	FocusBorder terminal.RGB
	HeaderBg    terminal.RGB
	HeaderFg    terminal.RGB
	StatusFg    terminal.RGB
	HintFg      terminal.RGB
	Error       terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:          terminal.RGB{R: 20, G: 20, B: 30},
	Fg:          terminal.RGB{R: 200, G: 200, B: 200},
	FocusBg:     terminal.RGB{R: 30, G: 35, B: 45},
	CursorBg:    terminal.RGB{R: 50, G: 50, B: 70},
	Border:      terminal.RGB{R: 60, G: 80, B: 100},
	FocusBorder: terminal.RGB{R: 100, G: 180, B: 200},
	HeaderBg:    terminal.RGB{R: 40, G: 60, B: 90},
	HeaderFg:    terminal.RGB{R: 255, G: 255, B: 255},
	StatusFg:    terminal.RGB{R: 140, G: 140, B: 140},
	HintFg:      terminal.RGB{R: 100, G: 180, B: 200},
	Error:       terminal.RGB{R: 255, G: 80, B: 80},
}

// BorderFor returns the border color for a focused or unfocused panel
func (t Theme) BorderFor(focused bool) terminal.RGB {
	if focused {
		return t.FocusBorder
	}
	return t.Border
}
