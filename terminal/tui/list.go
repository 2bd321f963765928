package tui

import "github.com/lixenwraith/vi-dash/terminal"

// ListItem represents a single row in a scrollable list
type ListItem struct {
	Indent    int  // Left padding in cells
	Icon      rune // Bullet or marker, 0 = none
	IconFg    terminal.RGB
	Text      string
	TextStyle Style
}

// ListOpts configures list rendering
type ListOpts struct {
	CursorBg   terminal.RGB
	DefaultBg  terminal.RGB
	IconWidth  int  // Width reserved for icon, default 2
	HideCursor bool // Render the cursor row like any other, used when unfocused
}

// List renders scrollable list items within region, returns number of rows rendered
func (r Region) List(items []ListItem, cursor, scroll int, opts ListOpts) int {
	if r.H < 1 || len(items) == 0 {
		return 0
	}

	iconW := opts.IconWidth
	if iconW == 0 {
		iconW = 2
	}

	rendered := 0
	for y := 0; y < r.H; y++ {
		idx := scroll + y
		if idx < 0 {
			continue
		}
		if idx >= len(items) {
			break
		}

		item := items[idx]
		bg := opts.DefaultBg
		if idx == cursor && !opts.HideCursor {
			bg = opts.CursorBg
		}
		r.Sub(0, y, r.W, 1).Fill(bg)

		x := item.Indent
		if item.Icon != 0 && x < r.W {
			r.Cell(x, y, item.Icon, item.IconFg, bg, terminal.AttrNone)
		}
		x += iconW

		style := item.TextStyle
		if style.Bg.IsZero() {
			style.Bg = bg
		}
		r.TextStyled(x, y, Truncate(item.Text, r.W-x), style)
		rendered++
	}
	return rendered
}
