package engine

import "github.com/lixenwraith/vi-dash/terminal/tui"

// Node splits its area and binds widgets and child nodes to the resulting regions
type Node struct {
	dir         tui.Direction
	constraints []tui.Constraint
	widgets     []*Widget
	children    []*Node
	index       int // region index within the parent; unused for the root
	frozen      bool
}

// NewNode creates a node producing one region per constraint
func NewNode(dir tui.Direction, cs ...tui.Constraint) *Node {
	return &Node{dir: dir, constraints: append([]tui.Constraint(nil), cs...)}
}

// Add binds a component to region index. Bindings are validated by New.
// The tree is immutable once passed to a successful New; Add, AddNamed and Child panic after that.
func (n *Node) Add(index int, c Component) *Node {
	return n.AddNamed(index, "", c)
}

// AddNamed binds a component under a unique name, resolvable with Runtime.Find
func (n *Node) AddNamed(index int, name string, c Component) *Node {
	n.mustBeOpen()
	n.widgets = append(n.widgets, &Widget{comp: c, name: name, index: index, id: NoWidget})
	return n
}

// Child binds a sub-node to region index
func (n *Node) Child(index int, child *Node) *Node {
	n.mustBeOpen()
	if child != nil {
		child.mustBeOpen()
	}
	if child != nil {
		child.index = index
	}
	n.children = append(n.children, child)
	return n
}

func (n *Node) mustBeOpen() {
	if n.frozen {
		panic("engine: node modified after New; build a new tree and runtime instead")
	}
}

// Direction returns the split axis
func (n *Node) Direction() tui.Direction { return n.dir }

// Constraints returns a copy of the node's constraints
func (n *Node) Constraints() []tui.Constraint {
	return append([]tui.Constraint(nil), n.constraints...)
}

// Index returns the node's region index within its parent
func (n *Node) Index() int { return n.index }

// Widgets returns the widgets bound to this node in declaration order
func (n *Node) Widgets() []*Widget {
	return append([]*Widget(nil), n.widgets...)
}

// Children returns child nodes in declaration order
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Walk visits n and its descendants depth first. path holds child positions from n.
// Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(path []int, node *Node) bool) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []int, fn func([]int, *Node) bool) {
	if !fn(path, n) {
		return
	}
	for i, c := range n.children {
		if c != nil {
			c.walk(append(path[:len(path):len(path)], i), fn)
		}
	}
}

// binding pairs a widget with its rect for one frame
type binding struct {
	w    *Widget
	rect tui.Rect
}

// layout splits area and appends the node's bindings, then its children's, to out
func (n *Node) layout(area tui.Rect, out []binding) []binding {
	rects := tui.Split(area, n.dir, n.constraints...)
	for _, w := range n.widgets {
		out = append(out, binding{w: w, rect: rects[w.index]})
	}
	for _, c := range n.children {
		out = c.layout(rects[c.index], out)
	}
	return out
}
