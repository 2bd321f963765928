package widgets

import (
	"io"
	"log"
	"slices"
	"time"

	"github.com/lixenwraith/vi-dash/engine"
	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// scriptSurface replays events one per frame, then reports the terminal closed.
// A nil entry is an idle frame.
type scriptSurface struct {
	w, h   int
	script []*terminal.Event
	frames []*tui.Buffer
}

func newScript(w, h int, evs ...*terminal.Event) *scriptSurface {
	return &scriptSurface{w: w, h: h, script: evs}
}

func (s *scriptSurface) Init() error      { return nil }
func (s *scriptSurface) Fini()            {}
func (s *scriptSurface) Size() (int, int) { return s.w, s.h }

func (s *scriptSurface) PollEvent(time.Duration) (terminal.Event, bool, error) {
	if len(s.script) == 0 {
		return terminal.Event{Type: terminal.EventClosed}, true, nil
	}
	ev := s.script[0]
	s.script = s.script[1:]
	if ev == nil {
		return terminal.Event{}, false, nil
	}
	return *ev, true, nil
}

func (s *scriptSurface) Flush(cells []terminal.Cell, w, h int) error {
	s.frames = append(s.frames, &tui.Buffer{Cells: slices.Clone(cells), W: w, H: h})
	return nil
}

func rn(r rune) *terminal.Event {
	ev := terminal.RuneEvent(r)
	return &ev
}

func ky(k terminal.Key) *terminal.Event {
	ev := terminal.KeyEvent(k)
	return &ev
}

func click(x, y int) *terminal.Event {
	return &terminal.Event{
		Type:        terminal.EventMouse,
		MouseX:      x,
		MouseY:      y,
		MouseBtn:    terminal.MouseBtnLeft,
		MouseAction: terminal.MouseActionPress,
	}
}

func quiet() engine.Option {
	return engine.WithLogger(log.New(io.Discard, "", 0))
}

// cellAt returns the rune drawn at x, y in frame b
func cellAt(b *tui.Buffer, x, y int) rune {
	return b.Cells[y*b.W+x].Rune
}
