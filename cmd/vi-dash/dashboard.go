package main

import (
	"github.com/lixenwraith/vi-dash/engine"
	"github.com/lixenwraith/vi-dash/terminal/tui"
	"github.com/lixenwraith/vi-dash/widgets"
)

// Widget names used for message routing
const (
	nameTitle    = "title"
	nameSide     = "side-menu"
	nameMain     = "main-menu"
	nameDetail   = "detail"
	nameStatus   = "status"
	statusHint   = "Tab focus · j/k move · Enter select · J/K scroll · q quit"
	detailIntro  = "Select an entry with Enter. Tab moves focus between the two menus."
	wrapCacheLen = 64
)

var sections = []string{"Overview", "Layout", "Messages", "Status", "Keys"}

var topics = []string{"Length", "Min", "Fill", "Resize", "Shutdown"}

var pages = map[string]string{
	"Overview": "vi-dash lays widgets out on a tree of constraint splits and drives them from one frame loop. " +
		"Every event goes to every widget concurrently; rendering starts after all handlers return.",
	"Layout": "Each node splits its area along one direction. Length and Min are served in order, " +
		"the remainder goes to Fill entries by weight.\n\nThis panel is the Fill(2) half of its column.",
	"Messages": "Widgets talk through the runtime mailbox. Posting is safe from a handler; " +
		"messages are delivered after dispatch and before render, so the effect shows in the same frame.",
	"Status": "The footer reads counters the runtime publishes: frames presented, messages delivered, " +
		"smoothed frame build time and the last key.",
	"Keys": "Tab: hand focus to the other menu\nj/k, arrows: move\ng/G: first/last\nEnter: select\n" +
		"J/K, PgUp/PgDn: scroll this panel\nq, Esc: quit",
	"Length":   "Length(n) takes exactly n cells, or what is left when the area is smaller.",
	"Min":      "Min(n) takes at least n cells and shares leftover space when no Fill is present.",
	"Fill":     "Fill(w) splits leftover space by weight. Rounding remainders go to earlier entries.",
	"Resize":   "A resize is dispatched like any other event; the next layout uses the new size.",
	"Shutdown": "q requests shutdown. The frame that requested it is not rendered and the terminal is restored once.",
}

// dashboard holds the demo widgets so callers can inspect them
type dashboard struct {
	root   *engine.Node
	side   *widgets.Menu
	topics *widgets.Menu
	detail *widgets.TextView
}

// buildDashboard assembles
//
//	title
//	side-menu | main-menu
//	          | detail
//	status
func buildDashboard() (*dashboard, error) {
	detail, err := widgets.NewTextView("Detail", detailIntro, wrapCacheLen)
	if err != nil {
		return nil, err
	}
	detail.SetPages(pages)

	side := widgets.NewMenu("Sections", sections, widgets.MenuOpts{
		Target:  nameDetail,
		Peer:    nameMain,
		Focused: true,
		Quitter: true,
	})
	topicMenu := widgets.NewMenu("Layout topics", topics, widgets.MenuOpts{
		Target: nameDetail,
		Peer:   nameSide,
	})

	content := engine.NewNode(tui.Vertical, tui.Fill(1), tui.Fill(2)).
		AddNamed(0, nameMain, topicMenu).
		AddNamed(1, nameDetail, detail)
	body := engine.NewNode(tui.Horizontal, tui.Length(24), tui.Fill(1)).
		AddNamed(0, nameSide, side).
		Child(1, content)
	root := engine.NewNode(tui.Vertical, tui.Length(1), tui.Fill(1), tui.Length(1)).
		AddNamed(0, nameTitle, widgets.NewTitleBar("vi-dash")).
		Child(1, body).
		AddNamed(2, nameStatus, widgets.NewStatusLine(statusHint))

	return &dashboard{root: root, side: side, topics: topicMenu, detail: detail}, nil
}
