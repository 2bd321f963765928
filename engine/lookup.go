package engine

import (
	"fmt"
	"maps"
	"slices"

	"github.com/agnivade/levenshtein"
)

// Path addresses a widget structurally: child positions from the root, then the
// widget's position among the final node's widgets, both in declaration order
type Path struct {
	Nodes  []int
	Widget int
}

// Lookup resolves path to a widget whose component implements Exposer.
// Invalid paths and components that do not expose themselves report false.
func (rt *Runtime) Lookup(p Path) (*Widget, bool) {
	n := rt.root
	for _, i := range p.Nodes {
		if i < 0 || i >= len(n.children) {
			return nil, false
		}
		n = n.children[i]
	}
	if p.Widget < 0 || p.Widget >= len(n.widgets) {
		return nil, false
	}
	w := n.widgets[p.Widget]
	if !w.exposed() {
		return nil, false
	}
	return w, true
}

// Widget returns the widget with the given id
func (rt *Runtime) Widget(id WidgetID) (*Widget, bool) {
	if id < 0 || int(id) >= len(rt.widgets) {
		return nil, false
	}
	return rt.widgets[id], true
}

// Widgets returns all widgets in id order
func (rt *Runtime) Widgets() []*Widget {
	return slices.Clone(rt.widgets)
}

// Find returns the widget registered under name
func (rt *Runtime) Find(name string) (*Widget, bool) {
	w, ok := rt.names[name]
	return w, ok
}

// Resolve is Find with an error naming the closest registered name on a miss
func (rt *Runtime) Resolve(name string) (*Widget, error) {
	if w, ok := rt.names[name]; ok {
		return w, nil
	}
	if guess := rt.suggest(name); guess != "" {
		return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrWidgetNotFound, name, guess)
	}
	return nil, fmt.Errorf("%w: %q", ErrWidgetNotFound, name)
}

// suggest returns the registered name nearest to name, or "" if none is close
func (rt *Runtime) suggest(name string) string {
	limit := max(2, len(name)/3)
	best, bestDist := "", limit+1
	for _, candidate := range slices.Sorted(maps.Keys(rt.names)) {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// Owner returns the widget wrapping c. Components call it from Register to learn
// their own id. Only pointer components with a non-empty pointee are found.
func (rt *Runtime) Owner(c Component) (*Widget, bool) {
	key, ok := identity(c)
	if !ok {
		return nil, false
	}
	for _, w := range rt.widgets {
		if k, ok := identity(w.comp); ok && k == key {
			return w, true
		}
	}
	return nil, false
}
