package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// NodeInfo describes one node of a laid-out tree
type NodeInfo struct {
	Index       int
	Rect        tui.Rect
	Direction   tui.Direction
	Constraints []tui.Constraint
	Widgets     []WidgetInfo
	Children    []NodeInfo
}

// WidgetInfo describes one bound widget
type WidgetInfo struct {
	ID        WidgetID
	Name      string
	Index     int
	Type      string
	Rect      tui.Rect
	Registers bool
	Exposes   bool
	Receives  bool
}

// Describe lays the tree out over area and reports its structure
func (rt *Runtime) Describe(area tui.Rect) NodeInfo {
	return describe(rt.root, area, -1)
}

func describe(n *Node, area tui.Rect, index int) NodeInfo {
	rects := tui.Split(area, n.dir, n.constraints...)
	info := NodeInfo{
		Index:       index,
		Rect:        area,
		Direction:   n.dir,
		Constraints: n.Constraints(),
	}
	for _, w := range n.widgets {
		_, reg := w.comp.(Registrar)
		_, rcv := w.comp.(Receiver)
		info.Widgets = append(info.Widgets, WidgetInfo{
			ID:        w.id,
			Name:      w.name,
			Index:     w.index,
			Type:      fmt.Sprintf("%T", w.comp),
			Rect:      rects[w.index],
			Registers: reg,
			Exposes:   w.exposed(),
			Receives:  rcv,
		})
	}
	for _, c := range n.children {
		info.Children = append(info.Children, describe(c, rects[c.index], c.index))
	}
	return info
}

// Label summarizes the node on one line
func (n NodeInfo) Label() string {
	parts := make([]string, len(n.Constraints))
	for i, c := range n.Constraints {
		parts[i] = c.String()
	}
	prefix := "root"
	if n.Index >= 0 {
		prefix = fmt.Sprintf("[%d]", n.Index)
	}
	return fmt.Sprintf("%s %s %s (%s)", prefix, n.Direction, n.Rect, strings.Join(parts, ", "))
}

// Label summarizes the widget on one line
func (w WidgetInfo) Label() string {
	var caps []string
	if w.Registers {
		caps = append(caps, "register")
	}
	if w.Exposes {
		caps = append(caps, "expose")
	}
	if w.Receives {
		caps = append(caps, "receive")
	}
	name := w.Name
	if name == "" {
		name = "-"
	}
	return fmt.Sprintf("[%d] #%d %s %s %s {%s}", w.Index, w.ID, name, w.Type, w.Rect, strings.Join(caps, ","))
}
