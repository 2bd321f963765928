package engine

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// runWithin fails the test instead of hanging when Run does not return
func runWithin(t *testing.T, rt *Runtime, s Surface) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- rt.Run(context.Background(), s) }()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return: expose deadlocked")
		return nil
	}
}

// toggle hands its focus to peer on Tab by exposing it directly
type toggle struct {
	rt      *Runtime
	peer    Path
	focused bool
}

func (g *toggle) Register(rt *Runtime) { g.rt = rt }

func (g *toggle) HandleEvent(ev terminal.Event) error {
	if !g.focused || !ev.IsKey(terminal.KeyTab) {
		return nil
	}
	g.focused = false
	w, ok := g.rt.Lookup(g.peer)
	if !ok {
		return nil
	}
	Expose(w, func(p *toggle) { p.focused = true })
	return nil
}

func (g *toggle) Render(r tui.Region) {
	mark := "-"
	if g.focused {
		mark = "*"
	}
	r.Text(0, 0, mark, tui.DefaultTheme.Fg, terminal.RGB{}, terminal.AttrNone)
}

func (g *toggle) Expose() any { return g }

func TestExposeHandoffInsideHandler(t *testing.T) {
	a := &toggle{peer: Path{Widget: 1}, focused: true}
	b := &toggle{peer: Path{Widget: 0}}
	root := NewNode(tui.Vertical, tui.Length(1), tui.Length(1)).Add(0, a).Add(1, b)
	rt, err := New(root, quietLogger())
	require.NoError(t, err)

	tab := terminal.KeyEvent(terminal.KeyTab)
	s := newSurface(3, 2, poll{ev: &tab}, poll{ev: &tab}, idle())
	require.NoError(t, runWithin(t, rt, s))

	require.Len(t, s.frames, 3)
	rows := func(i int) []string { return []string{s.frames[i].Row(0), s.frames[i].Row(1)} }
	assert.Equal(t, []string{"-  ", "*  "}, rows(0), "handoff rendered in the frame that handled Tab")
	assert.Equal(t, []string{"*  ", "-  "}, rows(1))
	assert.Equal(t, []string{"*  ", "-  "}, rows(2))
	assert.Zero(t, rt.Pending())
}

// bumper increments every widget at targets through Expose on each event
type bumper struct {
	rt      *Runtime
	targets []Path
	n       int
}

func (b *bumper) Register(rt *Runtime) { b.rt = rt }

func (b *bumper) HandleEvent(terminal.Event) error {
	for _, p := range b.targets {
		w, ok := b.rt.Lookup(p)
		if !ok {
			continue
		}
		Expose(w, func(o *bumper) { o.n++ })
	}
	return nil
}

func (b *bumper) Render(r tui.Region) {
	r.Text(0, 0, strconv.Itoa(b.n), tui.DefaultTheme.Fg, terminal.RGB{}, terminal.AttrNone)
}

func (b *bumper) Expose() any { return b }

func TestExposeMutualHandlers(t *testing.T) {
	a := &bumper{targets: []Path{{Widget: 1}}}
	b := &bumper{targets: []Path{{Widget: 0}}}
	root := NewNode(tui.Vertical, tui.Length(1), tui.Length(1)).Add(0, a).Add(1, b)
	rt, err := New(root, quietLogger())
	require.NoError(t, err)

	s := newSurface(3, 2, key('x'), key('x'), key('x'))
	require.NoError(t, runWithin(t, rt, s))

	require.Len(t, s.frames, 3)
	for i, frame := range s.frames {
		want := tui.PadRight(strconv.Itoa(i+1), 3)
		assert.Equal(t, want, frame.Row(0), "frame %d", i)
		assert.Equal(t, want, frame.Row(1), "frame %d", i)
	}
}

func TestExposeSelfInsideHandler(t *testing.T) {
	self := &bumper{targets: []Path{{Widget: 0}}}
	rt, err := New(NewNode(tui.Vertical, tui.Length(1)).Add(0, self), quietLogger())
	require.NoError(t, err)

	s := newSurface(3, 1, key('x'), key('x'))
	require.NoError(t, runWithin(t, rt, s))

	require.Len(t, s.frames, 2)
	assert.Equal(t, "1  ", s.frames[0].Row(0))
	assert.Equal(t, "2  ", s.frames[1].Row(0))
}

// drawBumper exposes itself while rendering
type drawBumper struct {
	rt *Runtime
	n  int
}

func (d *drawBumper) Register(rt *Runtime)             { d.rt = rt }
func (d *drawBumper) HandleEvent(terminal.Event) error { return nil }
func (d *drawBumper) Expose() any                      { return d }

func (d *drawBumper) Render(r tui.Region) {
	r.Text(0, 0, strconv.Itoa(d.n), tui.DefaultTheme.Fg, terminal.RGB{}, terminal.AttrNone)
	if w, ok := d.rt.Lookup(Path{Widget: 0}); ok {
		Expose(w, func(o *drawBumper) { o.n++ })
	}
}

func TestExposeFromRenderLandsNextFrame(t *testing.T) {
	d := &drawBumper{}
	rt, err := New(NewNode(tui.Vertical, tui.Length(1)).Add(0, d), quietLogger())
	require.NoError(t, err)

	s := newSurface(3, 1, idle(), idle(), idle())
	require.NoError(t, runWithin(t, rt, s))

	require.Len(t, s.frames, 3)
	for i, frame := range s.frames {
		assert.Equal(t, tui.PadRight(strconv.Itoa(i), 3), frame.Row(0))
	}
	assert.Equal(t, 1, rt.Pending(), "the last frame's callback waits for the next frame")

	// Outside a frame Expose applies immediately
	w, ok := rt.Lookup(Path{Widget: 0})
	require.True(t, ok)
	assert.True(t, Expose(w, func(o *drawBumper) { o.n = 10 }))
	assert.Equal(t, 10, d.n)
}

// exposePanic panics inside a deferred Expose callback
type exposePanic struct {
	rt *Runtime
}

func (e *exposePanic) Register(rt *Runtime) { e.rt = rt }
func (e *exposePanic) Render(tui.Region)    {}
func (e *exposePanic) Expose() any          { return e }

func (e *exposePanic) HandleEvent(terminal.Event) error {
	w, _ := e.rt.Lookup(Path{Widget: 0})
	Expose(w, func(*exposePanic) { panic("bad callback") })
	return nil
}

func TestExposeCallbackPanicBecomesError(t *testing.T) {
	rt, err := New(NewNode(tui.Vertical, tui.Length(1)).Add(0, &exposePanic{}), quietLogger())
	require.NoError(t, err)
	s := newSurface(3, 1, key('x'))
	err = runWithin(t, rt, s)
	assert.ErrorIs(t, err, ErrWidgetPanic)
	assert.Contains(t, err.Error(), "expose")
	assert.Equal(t, 1, s.finis)
}
