package tui

import (
	"strconv"

	"github.com/lixenwraith/vi-dash/terminal"
)

// AdjustScroll returns new scroll offset keeping cursor visible
func AdjustScroll(cursor, scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	if cursor < scroll {
		return cursor
	}
	if cursor >= scroll+visible {
		return cursor - visible + 1
	}
	return scroll
}

// ClampScroll ensures scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if total <= visible || scroll < 0 {
		return 0
	}
	if maxScroll := total - visible; scroll > maxScroll {
		return maxScroll
	}
	return scroll
}

// ClampCursor ensures cursor is within valid range
func ClampCursor(cursor, total int) int {
	if total <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}

// PageDelta returns recommended page scroll amount
func PageDelta(visible int) int {
	if visible/2 < 1 {
		return 1
	}
	return visible / 2
}

// ScrollBar draws a vertical track with thumb in column x
func (r Region) ScrollBar(x int, offset, visible, total int, fg terminal.RGB) {
	if x < 0 || x >= r.W || r.H < 1 {
		return
	}

	trackH := r.H
	if total <= visible || trackH < 3 {
		for y := 0; y < trackH; y++ {
			r.Cell(x, y, '│', fg, terminal.RGB{}, terminal.AttrDim)
		}
		return
	}

	thumbH := visible * trackH / total
	if thumbH < 1 {
		thumbH = 1
	}
	thumbY := ClampScroll(offset, visible, total) * (trackH - thumbH) / (total - visible)

	for y := 0; y < trackH; y++ {
		ch := '░'
		if y >= thumbY && y < thumbY+thumbH {
			ch = '█'
		}
		r.Cell(x, y, ch, fg, terminal.RGB{}, terminal.AttrNone)
	}
}

// ScrollLabel returns "Top", "Bot", or a percentage for the scroll position
func ScrollLabel(offset, visible, total int) string {
	switch {
	case total <= visible || offset <= 0:
		return "Top"
	case offset+visible >= total:
		return "Bot"
	}
	pct := offset * 100 / (total - visible)
	if pct > 99 {
		pct = 99
	}
	return strconv.Itoa(pct) + "%"
}
