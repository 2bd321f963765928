package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-dash/engine"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

const fiveWords = "aaaa bbbb cccc dddd eeee"

func TestTextViewWrapsAndCaches(t *testing.T) {
	v, err := NewTextView("T", fiveWords, 4)
	require.NoError(t, err)

	buf := tui.NewBuffer(10, 5)
	v.Render(buf.Root())
	assert.True(t, strings.HasPrefix(buf.Row(1), "│aaaa"))
	assert.True(t, strings.HasPrefix(buf.Row(3), "│cccc"))
	assert.Equal(t, 5, v.lines)
	assert.Equal(t, 1, v.wraps.Len())

	v.Render(buf.Root())
	assert.Equal(t, 1, v.wraps.Len(), "same width reuses the cached wrap")

	buf.Resize(12, 5)
	v.Render(buf.Root())
	assert.Equal(t, 2, v.wraps.Len())
}

func TestTextViewScrollClamps(t *testing.T) {
	v, err := NewTextView("T", fiveWords, 0)
	require.NoError(t, err)
	buf := tui.NewBuffer(10, 5)
	v.Render(buf.Root())

	for range 3 {
		require.NoError(t, v.HandleEvent(*rn('J')))
	}
	assert.Equal(t, 2, v.scroll, "three lines visible out of five")

	v.Render(buf.Root())
	assert.True(t, strings.HasPrefix(buf.Row(1), "│cccc"))
	assert.Contains(t, buf.Row(4), "Bot")

	require.NoError(t, v.HandleEvent(*rn('K')))
	assert.Equal(t, 1, v.scroll)
}

func TestTextViewReceive(t *testing.T) {
	v, err := NewTextView("Old", fiveWords, 0)
	require.NoError(t, err)
	v.scroll = 2

	require.NoError(t, v.Receive(engine.TextMsg{Title: "New", Body: "hello"}))
	assert.Equal(t, "New", v.title)
	assert.Equal(t, "hello", v.Body())
	assert.Zero(t, v.scroll)

	require.NoError(t, v.Receive(engine.TextMsg{Body: "again"}))
	assert.Equal(t, "New", v.title, "empty title keeps the current one")

	require.NoError(t, v.Receive(engine.FocusMsg{Focused: true}))
	assert.Equal(t, "again", v.Body())
}

func TestTextViewTinyRegion(t *testing.T) {
	v, err := NewTextView("T", fiveWords, 0)
	require.NoError(t, err)
	buf := tui.NewBuffer(2, 2)
	assert.NotPanics(t, func() { v.Render(buf.Root()) })
	assert.Zero(t, v.wraps.Len())
}

func TestTextViewShowsSelectedPage(t *testing.T) {
	v, err := NewTextView("Detail", "", 0)
	require.NoError(t, err)
	v.SetPages(map[string]string{"Layout": "constraints split regions"})

	require.NoError(t, v.Receive(engine.SelectMsg{Index: 0, Label: "Layout"}))
	assert.Equal(t, "Layout", v.Title())
	assert.Equal(t, "constraints split regions", v.Body())

	require.NoError(t, v.Receive(engine.SelectMsg{Index: 4, Label: "Other"}))
	assert.Equal(t, "Layout", v.Title())
	assert.Equal(t, `Selected "Other" (item 5)`, v.Body())
}
