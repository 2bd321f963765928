package engine

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-dash/terminal"
)

// dispatch hands ev to every bound widget concurrently and waits for all of them.
// The first handler error is returned after the join.
func (rt *Runtime) dispatch(ev terminal.Event) error {
	var g errgroup.Group
	for _, b := range rt.bindings {
		w := b.w
		g.Go(func() error {
			if err := w.handle(ev); err != nil {
				return fmt.Errorf("%s: %w", w, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// deliver applies queued Expose callbacks and messages in rounds. Work queued while a
// round is being delivered waits for the next round; whatever remains after the last
// round waits for the next frame.
func (rt *Runtime) deliver() error {
	for round := 0; round < rt.rounds; round++ {
		applies := rt.applies.take()
		batch := rt.mail.take()
		if len(applies) == 0 && len(batch) == 0 {
			break
		}
		for _, p := range applies {
			if err := p.w.apply(p.fn); err != nil {
				return fmt.Errorf("%s: expose: %w", p.w, err)
			}
		}
		for _, env := range batch {
			w := rt.widgets[env.to]
			accepted, err := w.receive(env.msg)
			if err != nil {
				return fmt.Errorf("%s: receive %T: %w", w, env.msg, err)
			}
			if !accepted {
				rt.logf("%s dropped %T: not a receiver", w, env.msg)
				continue
			}
			rt.mMessages.Add(1)
		}
	}
	rt.mPending.Store(int64(rt.Pending()))
	return nil
}

// Post queues msg for the widget with id to. Safe to call from handlers.
func (rt *Runtime) Post(to WidgetID, msg Message) error {
	if msg == nil {
		return fmt.Errorf("post to widget %d: nil message", to)
	}
	if to < 0 || int(to) >= len(rt.widgets) {
		return fmt.Errorf("%w: id %d", ErrWidgetNotFound, to)
	}
	rt.mail.push(envelope{to: to, msg: msg})
	return nil
}

// PostNamed queues msg for the widget registered under name
func (rt *Runtime) PostNamed(name string, msg Message) error {
	w, err := rt.Resolve(name)
	if err != nil {
		return err
	}
	return rt.Post(w.id, msg)
}

// Pending returns the number of queued, undelivered messages and Expose callbacks
func (rt *Runtime) Pending() int {
	return rt.mail.len() + rt.applies.len()
}
