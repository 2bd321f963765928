package tui

import "github.com/lixenwraith/vi-dash/terminal"

// BarSection represents one segment of a status bar
type BarSection struct {
	Label      string
	Value      string
	LabelStyle Style
	ValueStyle Style
	Priority   int // Higher = survives truncation
}

func (s BarSection) width() int {
	return Width(s.Label) + Width(s.Value)
}

// BarAlign specifies status bar alignment mode
type BarAlign uint8

const (
	BarAlignRight      BarAlign = iota // Pack sections from right
	BarAlignLeft                       // Pack sections from left
	BarAlignDistribute                 // Evenly space sections
)

// BarOpts configures status bar rendering
type BarOpts struct {
	Separator string // Between sections, default " │ "
	SepStyle  Style
	Bg        terminal.RGB
	Align     BarAlign
	Padding   int // Left/right padding, default 1
}

// StatusBar renders horizontal status bar on row y
func (r Region) StatusBar(y int, sections []BarSection, opts BarOpts) {
	if y < 0 || y >= r.H || len(sections) == 0 {
		return
	}
	if opts.Separator == "" {
		opts.Separator = " │ "
	}
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	r.Sub(0, y, r.W, 1).Fill(opts.Bg)

	sepLen := Width(opts.Separator)
	availW := r.W - opts.Padding*2
	sections = dropLowPriority(sections, sepLen, availW)
	totalW := barWidth(sections, sepLen)

	row := r.Sub(opts.Padding, y, availW, 1)
	x := 0
	switch opts.Align {
	case BarAlignRight:
		if x = availW - totalW; x < 0 {
			x = 0
		}
	case BarAlignDistribute:
		if len(sections) > 1 {
			gap := (availW - totalW + sepLen*(len(sections)-1)) / (len(sections) - 1)
			for _, sec := range sections {
				x = row.barSection(x, sec, opts.Bg) + gap
			}
			return
		}
	}

	for i, sec := range sections {
		x = row.barSection(x, sec, opts.Bg)
		if i < len(sections)-1 {
			x = row.Text(x, 0, opts.Separator, opts.SepStyle.Fg, opts.Bg, opts.SepStyle.Attr)
		}
	}
}

func (r Region) barSection(x int, sec BarSection, bg terminal.RGB) int {
	x = r.Text(x, 0, sec.Label, sec.LabelStyle.Fg, bg, sec.LabelStyle.Attr)
	return r.Text(x, 0, sec.Value, sec.ValueStyle.Fg, bg, sec.ValueStyle.Attr)
}

func barWidth(sections []BarSection, sepLen int) int {
	total := 0
	for i, sec := range sections {
		total += sec.width()
		if i > 0 {
			total += sepLen
		}
	}
	return total
}

// dropLowPriority removes lowest priority sections until the rest fit
func dropLowPriority(sections []BarSection, sepLen, availW int) []BarSection {
	secs := append([]BarSection(nil), sections...)
	for len(secs) > 1 && barWidth(secs, sepLen) > availW {
		minIdx := 0
		for i, sec := range secs {
			if sec.Priority < secs[minIdx].Priority {
				minIdx = i
			}
		}
		secs = append(secs[:minIdx], secs[minIdx+1:]...)
	}
	return secs
}
