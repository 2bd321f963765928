package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/lixenwraith/vi-dash/engine"
)

var (
	nodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#64b4c8")).Bold(true)
	widgetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c8c8c8"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3c5064"))
)

// layoutTree converts a runtime description into a lipgloss tree
func layoutTree(info engine.NodeInfo) *tree.Tree {
	t := tree.Root(nodeStyle.Render(info.Label())).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(branchStyle)
	for _, w := range info.Widgets {
		t.Child(widgetStyle.Render(w.Label()))
	}
	for _, c := range info.Children {
		t.Child(layoutTree(c))
	}
	return t
}

// printTree writes the layout description as an indented tree
func printTree(w io.Writer, info engine.NodeInfo) error {
	_, err := io.WriteString(w, layoutTree(info).String()+"\n")
	return err
}
