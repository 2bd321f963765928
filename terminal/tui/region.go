package tui

import "github.com/lixenwraith/vi-dash/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{Cells: cells, TotalW: totalW, X: x, Y: y, W: w, H: h}
}

// Rect returns the absolute rect the region covers
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Empty reports whether the region has no drawable cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Within returns the region over an absolute rect, clipped to r
func (r Region) Within(rect Rect) Region {
	return r.Sub(rect.X-r.X, rect.Y-r.Y, rect.W, rect.H)
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x > r.W {
		x = r.W
	}
	if y > r.H {
		y = r.H
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	return NewRegion(r.Cells, r.TotalW, r.X+x, r.Y+y, w, h)
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

func (r Region) index(x, y int) (int, bool) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return 0, false
	}
	absX := r.X + x
	if uint(absX) >= uint(r.TotalW) {
		return 0, false
	}
	idx := (r.Y+y)*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return 0, false
	}
	return idx, true
}

// Cell sets a single cell with bounds checking
// A zero bg keeps the background already in the buffer
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	idx, ok := r.index(x, y)
	if !ok {
		return
	}
	if bg.IsZero() {
		bg = r.Cells[idx].Bg
	}
	r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
}

// At returns the cell at a relative position
func (r Region) At(x, y int) (terminal.Cell, bool) {
	idx, ok := r.index(x, y)
	if !ok {
		return terminal.Cell{}, false
	}
	return r.Cells[idx], true
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if idx, ok := r.index(x, y); ok {
				r.Cells[idx] = terminal.Cell{Rune: ' ', Bg: bg}
			}
		}
	}
}

// Clear fills region with spaces and zero colors
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}

// Width returns region width
func (r Region) Width() int {
	return r.W
}

// Height returns region height
func (r Region) Height() int {
	return r.H
}
