package tui

import "github.com/lixenwraith/vi-dash/terminal"

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg.IsZero() && s.Bg.IsZero() && s.Attr == terminal.AttrNone
}

// With returns a copy with attr added
func (s Style) With(attr terminal.Attr) Style {
	s.Attr |= attr
	return s
}
