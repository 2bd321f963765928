package widgets

import (
	"github.com/lixenwraith/vi-dash/engine"
	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// MenuOpts wires a menu to its neighbours by widget name
type MenuOpts struct {
	Target  string // receives SelectMsg on Enter
	Peer    string // receives focus on Tab
	Focused bool   // initial focus
	Quitter bool   // q/Esc requests shutdown
}

// Menu is a focusable item list. Only the focused menu reacts to navigation keys.
type Menu struct {
	title string
	items []string
	opts  MenuOpts

	rt     *engine.Runtime
	self   engine.WidgetID
	target engine.WidgetID
	peer   engine.WidgetID

	focused bool
	cursor  int
	scroll  int
	rect    tui.Rect // last rendered rect, used for mouse hits
	visible int
}

// NewMenu creates a menu over items
func NewMenu(title string, items []string, opts MenuOpts) *Menu {
	return &Menu{
		title:   title,
		items:   items,
		opts:    opts,
		self:    engine.NoWidget,
		target:  engine.NoWidget,
		peer:    engine.NoWidget,
		focused: opts.Focused,
		visible: 1,
	}
}

// Register resolves Target and Peer once. A name that is not registered is logged and
// the corresponding action becomes a no-op.
func (m *Menu) Register(rt *engine.Runtime) {
	m.rt = rt
	if w, ok := rt.Owner(m); ok {
		m.self = w.ID()
	}
	m.target = m.resolve("target", m.opts.Target)
	m.peer = m.resolve("peer", m.opts.Peer)
}

func (m *Menu) resolve(role, name string) engine.WidgetID {
	if name == "" {
		return engine.NoWidget
	}
	w, err := m.rt.Resolve(name)
	if err != nil {
		m.rt.Logf("menu %q: %s: %v", m.title, role, err)
		return engine.NoWidget
	}
	return w.ID()
}

func (m *Menu) HandleEvent(ev terminal.Event) error {
	switch ev.Type {
	case terminal.EventKey:
		return m.handleKey(ev)
	case terminal.EventMouse:
		return m.handleMouse(ev)
	}
	return nil
}

func (m *Menu) handleKey(ev terminal.Event) error {
	if m.opts.Quitter && (ev.IsRune('q') || ev.IsKey(terminal.KeyEscape)) {
		m.rt.Shutdown()
		return nil
	}
	if !m.focused {
		return nil
	}

	switch {
	case ev.IsRune('j'), ev.IsKey(terminal.KeyDown):
		m.move(1)
	case ev.IsRune('k'), ev.IsKey(terminal.KeyUp):
		m.move(-1)
	case ev.IsRune('g'), ev.IsKey(terminal.KeyHome):
		m.move(-len(m.items))
	case ev.IsRune('G'), ev.IsKey(terminal.KeyEnd):
		m.move(len(m.items))
	case ev.IsKey(terminal.KeyPageDown), ev.IsKey(terminal.KeyCtrlD):
		m.move(tui.PageDelta(m.visible))
	case ev.IsKey(terminal.KeyPageUp), ev.IsKey(terminal.KeyCtrlU):
		m.move(-tui.PageDelta(m.visible))
	case ev.IsKey(terminal.KeyEnter):
		return m.selectCurrent()
	case ev.IsKey(terminal.KeyTab):
		return m.handOff()
	}
	return nil
}

// handleMouse moves the cursor to a clicked row and takes focus from the peer
func (m *Menu) handleMouse(ev terminal.Event) error {
	if ev.MouseAction != terminal.MouseActionPress {
		return nil
	}
	if !m.rect.Contains(ev.MouseX, ev.MouseY) {
		return nil
	}
	switch ev.MouseBtn {
	case terminal.MouseBtnWheelDown:
		if m.focused {
			m.move(1)
		}
		return nil
	case terminal.MouseBtnWheelUp:
		if m.focused {
			m.move(-1)
		}
		return nil
	case terminal.MouseBtnLeft:
	default:
		return nil
	}

	// Row 0 is the card border
	row := ev.MouseY - m.rect.Y - 1
	if row >= 0 && row < m.visible && m.scroll+row < len(m.items) {
		m.cursor = m.scroll + row
	}
	if m.focused {
		return nil
	}
	m.focused = true
	if m.peer == engine.NoWidget {
		return nil
	}
	return m.rt.Post(m.peer, engine.FocusMsg{From: m.self, Focused: false})
}

func (m *Menu) move(delta int) {
	m.cursor = tui.ClampCursor(m.cursor+delta, len(m.items))
	m.scroll = tui.AdjustScroll(m.cursor, m.scroll, m.visible, len(m.items))
}

func (m *Menu) selectCurrent() error {
	if m.target == engine.NoWidget || len(m.items) == 0 {
		return nil
	}
	return m.rt.Post(m.target, engine.SelectMsg{
		From:  m.self,
		Index: m.cursor,
		Label: m.items[m.cursor],
	})
}

// handOff grants focus to the peer during message delivery and drops it here once the
// message is queued, so exactly one of the pair is focused when the frame renders.
// Without a peer the menu keeps focus.
func (m *Menu) handOff() error {
	if m.peer == engine.NoWidget {
		return nil
	}
	if err := m.rt.Post(m.peer, engine.FocusMsg{From: m.self, Focused: true}); err != nil {
		return err
	}
	m.focused = false
	return nil
}

func (m *Menu) Receive(msg engine.Message) error {
	if f, ok := msg.(engine.FocusMsg); ok {
		m.focused = f.Focused
	}
	return nil
}

func (m *Menu) Expose() any { return m }

// Focused reports the focus flag
func (m *Menu) Focused() bool { return m.focused }

// Cursor returns the highlighted index
func (m *Menu) Cursor() int { return m.cursor }

// Selected returns the highlighted item, false when the menu is empty
func (m *Menu) Selected() (string, bool) {
	if len(m.items) == 0 {
		return "", false
	}
	return m.items[m.cursor], true
}

// SetItems replaces the items and clamps the cursor
func (m *Menu) SetItems(items []string) {
	m.items = items
	m.cursor = tui.ClampCursor(m.cursor, len(items))
	m.scroll = tui.ClampScroll(m.scroll, m.visible, len(items))
}

func (m *Menu) Render(r tui.Region) {
	th := theme(m.rt)
	m.rect = r.Rect()

	bg := th.Bg
	if m.focused {
		bg = th.FocusBg
	}
	r.Fill(bg)
	line := tui.LineSingle
	if m.focused {
		line = tui.LineRounded
	}
	inner := r.Card(m.title, line, th.BorderFor(m.focused))
	if inner.Empty() {
		return
	}

	m.visible = max(inner.H, 1)
	m.scroll = tui.AdjustScroll(m.cursor, m.scroll, m.visible, len(m.items))

	items := make([]tui.ListItem, len(m.items))
	for i, label := range m.items {
		items[i] = tui.ListItem{
			Icon:      '›',
			IconFg:    th.HintFg,
			Text:      label,
			TextStyle: tui.Style{Fg: th.Fg},
		}
		if i != m.cursor {
			items[i].Icon = 0
		}
	}
	list := inner
	if len(m.items) > inner.H && inner.W > 1 {
		list = inner.Sub(0, 0, inner.W-1, inner.H)
		inner.ScrollBar(inner.W-1, m.scroll, inner.H, len(m.items), th.Border)
	}
	list.List(items, m.cursor, m.scroll, tui.ListOpts{
		CursorBg:   th.CursorBg,
		DefaultBg:  bg,
		HideCursor: !m.focused,
	})
}

func theme(rt *engine.Runtime) tui.Theme {
	if rt == nil {
		return tui.DefaultTheme
	}
	return rt.Theme()
}
