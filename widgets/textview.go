package widgets

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lixenwraith/vi-dash/engine"
	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

// DefaultWrapCache is the number of (body, width) wraps a TextView keeps
const DefaultWrapCache = 32

type wrapKey struct {
	body  string
	width int
}

// TextView shows wrapped text. TextMsg replaces the content; SelectMsg shows the
// page registered for the selected label, or the label itself. J/K and
// PageUp/PageDown scroll.
type TextView struct {
	title string
	body  string
	pages map[string]string

	rt     *engine.Runtime
	scroll int
	lines  int
	height int

	wraps *lru.Cache[wrapKey, []string]
}

// NewTextView creates a view with an LRU of cacheSize wrapped layouts
func NewTextView(title, body string, cacheSize int) (*TextView, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultWrapCache
	}
	c, err := lru.New[wrapKey, []string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("text view cache: %w", err)
	}
	return &TextView{title: title, body: body, wraps: c, height: 1}, nil
}

func (v *TextView) Register(rt *engine.Runtime) { v.rt = rt }

func (v *TextView) HandleEvent(ev terminal.Event) error {
	switch {
	case ev.IsRune('J'):
		v.scrollBy(1)
	case ev.IsRune('K'):
		v.scrollBy(-1)
	case ev.IsKey(terminal.KeyPageDown):
		v.scrollBy(tui.PageDelta(v.height))
	case ev.IsKey(terminal.KeyPageUp):
		v.scrollBy(-tui.PageDelta(v.height))
	}
	return nil
}

func (v *TextView) scrollBy(delta int) {
	v.scroll = tui.ClampScroll(v.scroll+delta, v.height, v.lines)
}

func (v *TextView) Receive(msg engine.Message) error {
	switch m := msg.(type) {
	case engine.TextMsg:
		v.SetText(m.Title, m.Body)
	case engine.SelectMsg:
		if page, ok := v.pages[m.Label]; ok {
			v.SetText(m.Label, page)
			return nil
		}
		v.SetText(v.title, fmt.Sprintf("Selected %q (item %d)", m.Label, m.Index+1))
	}
	return nil
}

func (v *TextView) Expose() any { return v }

// SetText replaces the content; an empty title keeps the current one
func (v *TextView) SetText(title, body string) {
	if title != "" {
		v.title = title
	}
	v.body = body
	v.scroll = 0
}

// SetPages maps selection labels to the text shown when they are selected
func (v *TextView) SetPages(pages map[string]string) { v.pages = pages }

// Title returns the current title
func (v *TextView) Title() string { return v.title }

// Body returns the current text
func (v *TextView) Body() string { return v.body }

// wrap returns body wrapped to width, memoised per (body, width)
func (v *TextView) wrap(width int) []string {
	k := wrapKey{body: v.body, width: width}
	if lines, ok := v.wraps.Get(k); ok {
		return lines
	}
	lines := tui.WrapText(v.body, width)
	v.wraps.Add(k, lines)
	return lines
}

func (v *TextView) Render(r tui.Region) {
	th := theme(v.rt)
	r.Fill(th.Bg)
	inner := r.Card(v.title, tui.LineSingle, th.Border)
	if inner.W < 2 || inner.H < 1 {
		return
	}

	textW := inner.W - 1
	lines := v.wrap(textW)
	v.lines = len(lines)
	v.height = inner.H
	v.scroll = tui.ClampScroll(v.scroll, inner.H, len(lines))

	for y := 0; y < inner.H && v.scroll+y < len(lines); y++ {
		inner.Text(0, y, lines[v.scroll+y], th.Fg, terminal.RGB{}, terminal.AttrNone)
	}
	inner.ScrollBar(textW, v.scroll, inner.H, len(lines), th.Border)
	if len(lines) > inner.H {
		label := tui.ScrollLabel(v.scroll, inner.H, len(lines))
		r.TextRight(r.H-1, " "+label+" ", th.HintFg, terminal.RGB{}, terminal.AttrNone)
	}
}
