package engine

import (
	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// Component is the contract every widget implements
type Component interface {
	// HandleEvent receives every polled event; errors abort the run loop
	HandleEvent(ev terminal.Event) error
	// Render draws into r, which covers the widget's rect for this frame. Must not block.
	Render(r tui.Region)
}

// Registrar components receive the runtime once, before the first frame
type Registrar interface {
	Register(rt *Runtime)
}

// Exposer components allow Lookup and Expose to reach their concrete value.
// Expose may be called without the widget lock held, so it must return a stable
// value, usually the receiver, without reading mutable state.
type Exposer interface {
	Expose() any
}

// Receiver components accept posted messages
type Receiver interface {
	Receive(msg Message) error
}
