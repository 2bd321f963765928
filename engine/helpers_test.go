package engine

import (
	"io"
	"log"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// poll is one scripted PollEvent result; a nil event is an idle timeout
type poll struct {
	ev  *terminal.Event
	err error
}

func key(r rune) poll {
	ev := terminal.RuneEvent(r)
	return poll{ev: &ev}
}

func idle() poll { return poll{} }

// fakeSurface replays a script of polls, then reports the terminal closed
type fakeSurface struct {
	mu       sync.Mutex
	w, h     int
	script   []poll
	initErr  error
	flushErr error

	inits, finis int
	polls        int
	frames       []*tui.Buffer
}

func newSurface(w, h int, script ...poll) *fakeSurface {
	return &fakeSurface{w: w, h: h, script: script}
}

func (s *fakeSurface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inits++
	return s.initErr
}

func (s *fakeSurface) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finis++
}

func (s *fakeSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

func (s *fakeSurface) PollEvent(time.Duration) (terminal.Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls++
	if len(s.script) == 0 {
		return terminal.Event{Type: terminal.EventClosed}, true, nil
	}
	p := s.script[0]
	s.script = s.script[1:]
	if p.err != nil {
		return terminal.Event{}, false, p.err
	}
	if p.ev == nil {
		return terminal.Event{}, false, nil
	}
	if p.ev.Type == terminal.EventResize {
		s.w, s.h = p.ev.Width, p.ev.Height
	}
	return *p.ev, true, nil
}

func (s *fakeSurface) Flush(cells []terminal.Cell, w, h int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flushErr != nil {
		return s.flushErr
	}
	s.frames = append(s.frames, &tui.Buffer{Cells: slices.Clone(cells), W: w, H: h})
	return nil
}

// callLog records calls across widgets in order
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(s string) {
	l.mu.Lock()
	l.calls = append(l.calls, s)
	l.mu.Unlock()
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.calls)
}

// recorder counts every capability call and optionally fails or quits
type recorder struct {
	name    string
	log     *callLog
	rt      *Runtime
	err     error
	quitOn  rune
	panicOn rune

	registered int
	events     []terminal.Event
	renders    int
	lastRect   tui.Rect
}

func (r *recorder) Register(rt *Runtime) {
	r.registered++
	r.rt = rt
	if r.log != nil {
		r.log.add(r.name + ":register")
	}
}

func (r *recorder) HandleEvent(ev terminal.Event) error {
	r.events = append(r.events, ev)
	if r.log != nil {
		r.log.add(r.name + ":event")
	}
	if r.panicOn != 0 && ev.IsRune(r.panicOn) {
		panic("boom")
	}
	if r.quitOn != 0 && ev.IsRune(r.quitOn) {
		r.rt.Shutdown()
	}
	return r.err
}

func (r *recorder) Render(reg tui.Region) {
	r.renders++
	r.lastRect = reg.Rect()
	if r.log != nil {
		r.log.add(r.name + ":render")
	}
}

// counter increments on every event and renders its count
type counter struct {
	n int
}

func (c *counter) HandleEvent(terminal.Event) error {
	c.n++
	return nil
}

func (c *counter) Render(r tui.Region) {
	r.Text(0, 0, strconv.Itoa(c.n), tui.DefaultTheme.Fg, terminal.RGB{}, terminal.AttrNone)
}

func (c *counter) Expose() any { return c }

// plain implements only the required capability
type plain struct{ n int }

func (p *plain) HandleEvent(terminal.Event) error { return nil }
func (p *plain) Render(tui.Region)                {}

func quietLogger() Option {
	return WithLogger(log.New(io.Discard, "", 0))
}

// newSimSurface returns a tcell-backed terminal over a simulation screen
func newSimSurface(t *testing.T) terminal.Terminal {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	sim.SetSize(40, 10)
	return terminal.New(terminal.WithScreen(sim))
}
