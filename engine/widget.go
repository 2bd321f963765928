package engine

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// WidgetID is a widget's position in the runtime arena, stable for the runtime's lifetime
type WidgetID int

// NoWidget is the zero-value sender for messages posted from outside any widget
const NoWidget WidgetID = -1

// Widget is the lock-guarded handle binding a Component to a region index
type Widget struct {
	mu    sync.Mutex
	comp  Component
	rt    *Runtime
	id    WidgetID
	name  string
	index int
}

// ID returns the arena index assigned by New
func (w *Widget) ID() WidgetID { return w.id }

// Name returns the optional unique name, empty if unnamed
func (w *Widget) Name() string { return w.name }

// Index returns the region index within the owning node
func (w *Widget) Index() int { return w.index }

func (w *Widget) String() string {
	if w.name != "" {
		return fmt.Sprintf("widget %d(%s)", w.id, w.name)
	}
	return fmt.Sprintf("widget %d", w.id)
}

// handle runs HandleEvent under the widget lock, converting panics to errors
func (w *Widget) handle(ev terminal.Event) (err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	defer recoverInto(&err)
	return w.comp.HandleEvent(ev)
}

// render draws under the widget lock; a panic is returned as an error
func (w *Widget) render(r tui.Region) (err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	defer recoverInto(&err)
	w.comp.Render(r)
	return nil
}

// receive applies msg if the component is a Receiver, reporting whether it was accepted
func (w *Widget) receive(msg Message) (accepted bool, err error) {
	rc, ok := w.comp.(Receiver)
	if !ok {
		return false, nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	defer recoverInto(&err)
	return true, rc.Receive(msg)
}

// apply runs a deferred Expose callback under the widget lock
func (w *Widget) apply(fn func()) (err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	defer recoverInto(&err)
	fn()
	return nil
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v\n%s", ErrWidgetPanic, r, debug.Stack())
	}
}

func (w *Widget) exposed() bool {
	_, ok := w.comp.(Exposer)
	return ok
}

// Expose downcasts w's exposed value to T and calls fn with it under w's lock.
// Reports false when w is nil, not an Exposer, exposes nil, or is not a T.
//
// While a frame is in progress (from handlers, Receive or Render) fn is not run
// immediately: it is queued and applied under w's lock during message delivery, after
// every handler has returned. A widget may therefore expose itself or a peer that is
// exposing it back without deadlocking. Effects queued during dispatch are visible in
// the same frame's render; effects queued during render land in the next frame.
func Expose[T any](w *Widget, fn func(T)) bool {
	if w == nil {
		return false
	}
	ex, ok := w.comp.(Exposer)
	if !ok {
		return false
	}
	if rt := w.rt; rt != nil && rt.inFrame.Load() {
		v, ok := ex.Expose().(T)
		if !ok {
			return false
		}
		rt.applies.push(pendingApply{w: w, fn: func() { fn(v) }})
		return true
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := ex.Expose().(T)
	if !ok {
		return false
	}
	fn(v)
	return true
}
