package widgets

import (
	"fmt"

	"github.com/lixenwraith/vi-dash/engine"
	"github.com/lixenwraith/vi-dash/status"
	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// TitleBar is a one-row header: title on the left, session and state on the right
type TitleBar struct {
	Title string
	rt    *engine.Runtime
}

// NewTitleBar creates a header showing title
func NewTitleBar(title string) *TitleBar {
	return &TitleBar{Title: title}
}

func (t *TitleBar) Register(rt *engine.Runtime) { t.rt = rt }

func (t *TitleBar) HandleEvent(terminal.Event) error { return nil }

func (t *TitleBar) Render(r tui.Region) {
	th := theme(t.rt)
	r.Fill(th.HeaderBg)

	right := ""
	if t.rt != nil {
		reg := t.rt.Status()
		right = fmt.Sprintf("%.8s %s ", reg.Strings.Get(status.KeySession).Load(), reg.Strings.Get(status.KeyState).Load())
	}
	rightW := tui.Width(right)
	if rightW < r.W {
		r.TextRight(0, right, th.HintFg, terminal.RGB{}, terminal.AttrNone)
	} else {
		rightW = 0
	}
	r.Text(1, 0, tui.Truncate(t.Title, r.W-rightW-2), th.HeaderFg, terminal.RGB{}, terminal.AttrBold)
}

// StatusLine renders runtime counters from the status registry.
// Hint is shown first and dropped last when the row is narrow.
type StatusLine struct {
	Hint string
	rt   *engine.Runtime
}

// NewStatusLine creates a footer with a key hint
func NewStatusLine(hint string) *StatusLine {
	return &StatusLine{Hint: hint}
}

func (s *StatusLine) Register(rt *engine.Runtime) { s.rt = rt }

func (s *StatusLine) HandleEvent(terminal.Event) error { return nil }

// Sections returns the bar content for the current registry values
func (s *StatusLine) Sections() []tui.BarSection {
	th := theme(s.rt)
	label := tui.Style{Fg: th.StatusFg}
	value := tui.Style{Fg: th.Fg}

	secs := []tui.BarSection{{Value: s.Hint, ValueStyle: tui.Style{Fg: th.HintFg}, Priority: 9}}
	if s.rt == nil {
		return secs
	}
	reg := s.rt.Status()
	secs = append(secs,
		tui.BarSection{Label: "key ", Value: reg.Strings.Get(status.KeyLastKey).Load(), LabelStyle: label, ValueStyle: value, Priority: 2},
		tui.BarSection{Label: "msg ", Value: fmt.Sprint(reg.Ints.Get(status.KeyMessages).Load()), LabelStyle: label, ValueStyle: value, Priority: 1},
		tui.BarSection{Label: "frame ", Value: fmt.Sprint(reg.Ints.Get(status.KeyFrames).Load()), LabelStyle: label, ValueStyle: value, Priority: 5},
		tui.BarSection{Label: "", Value: fmt.Sprintf("%.1fms", reg.Floats.Get(status.KeyFrameMs).Get()), LabelStyle: label, ValueStyle: value, Priority: 3},
	)
	return secs
}

func (s *StatusLine) Render(r tui.Region) {
	th := theme(s.rt)
	r.StatusBar(0, s.Sections(), tui.BarOpts{
		Bg:       th.HeaderBg,
		Align:    tui.BarAlignLeft,
		SepStyle: tui.Style{Fg: th.Border},
	})
}
