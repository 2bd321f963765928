package tui

import (
	"strings"

	"github.com/lixenwraith/vi-dash/terminal"
)

// Buffer is a full-screen cell grid, reused across frames
type Buffer struct {
	Cells []terminal.Cell
	W, H  int
}

// NewBuffer allocates a w*h buffer
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Resize adjusts dimensions, reusing the backing array when it is large enough
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	if cap(b.Cells) >= n {
		b.Cells = b.Cells[:n]
	} else {
		b.Cells = make([]terminal.Cell, n)
	}
	b.W, b.H = w, h
}

// Root returns a region covering the whole buffer
func (b *Buffer) Root() Region {
	return NewRegion(b.Cells, b.W, 0, 0, b.W, b.H)
}

// Row returns the runes of row y as a string, wide-char continuations skipped
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.H {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.Cells[y*b.W : (y+1)*b.W] {
		if c.Rune != 0 {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
