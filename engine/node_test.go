package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-dash/terminal/tui"
)

func TestNewRejectsOutOfRangeWidget(t *testing.T) {
	rec := &recorder{}
	node := NewNode(tui.Vertical, tui.Length(1), tui.Fill(1)).Add(2, rec)

	rt, err := New(node, quietLogger())
	require.Error(t, err)
	assert.Nil(t, rt)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	var be *BindingError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "widget", be.Kind)
	assert.Equal(t, 2, be.Index)
	assert.Equal(t, 2, be.Count)
	assert.Empty(t, be.Path)
	assert.Zero(t, rec.registered, "registration must not run for an invalid tree")
}

func TestNewRejectsOutOfRangeNested(t *testing.T) {
	inner := NewNode(tui.Horizontal, tui.Fill(1)).Add(0, &plain{}).Add(-1, &plain{})
	root := NewNode(tui.Vertical, tui.Length(1), tui.Fill(1)).
		Add(0, &plain{}).
		Child(1, inner)

	_, err := New(root, quietLogger())
	var be *BindingError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, []int{0}, be.Path)
	assert.Equal(t, -1, be.Index)
	assert.Contains(t, err.Error(), "node /0: widget index -1 out of range (1 regions)")
}

func TestNewRejectsOutOfRangeChild(t *testing.T) {
	root := NewNode(tui.Vertical, tui.Fill(1)).Child(3, NewNode(tui.Horizontal))
	_, err := New(root, quietLogger())
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	var be *BindingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "child", be.Kind)
}

func TestNewRejectsZeroConstraintBinding(t *testing.T) {
	_, err := New(NewNode(tui.Horizontal).Add(0, &plain{}), quietLogger())
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNewRejectsDuplicates(t *testing.T) {
	shared := &plain{}
	_, err := New(NewNode(tui.Horizontal, tui.Fill(1), tui.Fill(1)).Add(0, shared).Add(1, shared), quietLogger())
	assert.ErrorIs(t, err, ErrDuplicateWidget)

	child := NewNode(tui.Vertical, tui.Fill(1))
	_, err = New(NewNode(tui.Horizontal, tui.Fill(1), tui.Fill(1)).Child(0, child).Child(1, child), quietLogger())
	assert.ErrorIs(t, err, ErrDuplicateNode)

	_, err = New(NewNode(tui.Horizontal, tui.Fill(1), tui.Fill(1)).
		AddNamed(0, "menu", &plain{}).
		AddNamed(1, "menu", &plain{}), quietLogger())
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), `"menu"`)
}

func TestNewRejectsNil(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilNode)

	_, err = New(NewNode(tui.Horizontal, tui.Fill(1)).Add(0, nil), quietLogger())
	assert.ErrorIs(t, err, ErrNilComponent)

	_, err = New(NewNode(tui.Horizontal, tui.Fill(1)).Child(0, nil), quietLogger())
	assert.ErrorIs(t, err, ErrNilNode)

	var typed *counter
	_, err = New(NewNode(tui.Horizontal, tui.Fill(1)).Add(0, typed), quietLogger())
	assert.ErrorIs(t, err, ErrNilComponent, "typed nil pointer is rejected at build")
}

func TestNodeFrozenAfterNew(t *testing.T) {
	child := NewNode(tui.Horizontal, tui.Fill(1))
	root := NewNode(tui.Vertical, tui.Fill(1), tui.Fill(1)).Add(0, &plain{}).Child(1, child)
	_, err := New(root, quietLogger())
	require.NoError(t, err)

	assert.PanicsWithValue(t, "engine: node modified after New; build a new tree and runtime instead", func() {
		root.Add(5, &plain{})
	})
	assert.Panics(t, func() { child.AddNamed(0, "late", &plain{}) })
	assert.Panics(t, func() { root.Child(0, NewNode(tui.Horizontal, tui.Fill(1))) })
	assert.Panics(t, func() { NewNode(tui.Horizontal, tui.Fill(1)).Child(0, child) }, "a built subtree cannot be reparented")
	assert.Len(t, root.Widgets(), 1)

	// A failed build leaves the tree open for correction
	open := NewNode(tui.Horizontal, tui.Fill(1)).Add(3, &plain{})
	_, err = New(open, quietLogger())
	require.Error(t, err)
	assert.NotPanics(t, func() { open.Add(0, &plain{}) })
}

func TestIDsFollowDeclarationOrder(t *testing.T) {
	a, b, c, d := &plain{}, &plain{}, &plain{}, &plain{}
	inner := NewNode(tui.Horizontal, tui.Fill(1), tui.Fill(1)).Add(1, c).Add(0, d)
	root := NewNode(tui.Vertical, tui.Length(1), tui.Fill(1), tui.Length(1)).
		Add(0, a).
		Child(1, inner).
		AddNamed(2, "status", b)

	rt, err := New(root, quietLogger())
	require.NoError(t, err)

	ws := rt.Widgets()
	require.Len(t, ws, 4)
	assert.Same(t, a, ws[0].comp)
	assert.Same(t, b, ws[1].comp)
	assert.Same(t, c, ws[2].comp)
	assert.Same(t, d, ws[3].comp)
	for i, w := range ws {
		assert.Equal(t, WidgetID(i), w.ID())
	}
	assert.Equal(t, "status", ws[1].Name())
	assert.Equal(t, 2, ws[1].Index())
	assert.Equal(t, "widget 1(status)", ws[1].String())
	assert.Equal(t, "widget 0", ws[0].String())
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	leafA := NewNode(tui.Horizontal, tui.Fill(1))
	leafB := NewNode(tui.Horizontal, tui.Fill(1))
	mid := NewNode(tui.Vertical, tui.Fill(1), tui.Fill(1)).Child(0, leafA).Child(1, leafB)
	root := NewNode(tui.Vertical, tui.Length(1), tui.Fill(1)).Child(1, mid)

	var paths [][]int
	var nodes []*Node
	root.Walk(func(path []int, n *Node) bool {
		paths = append(paths, append([]int(nil), path...))
		nodes = append(nodes, n)
		return true
	})
	assert.Equal(t, [][]int{nil, {0}, {0, 0}, {0, 1}}, paths)
	assert.Equal(t, []*Node{root, mid, leafA, leafB}, nodes)

	count := 0
	root.Walk(func(path []int, n *Node) bool {
		count++
		return n != mid
	})
	assert.Equal(t, 2, count, "returning false skips the subtree")
}

func TestNodeAccessorsCopy(t *testing.T) {
	n := NewNode(tui.Horizontal, tui.Length(2), tui.Fill(1))
	cs := n.Constraints()
	cs[0] = tui.Fill(9)
	assert.Equal(t, tui.Length(2), n.Constraints()[0])
	assert.Equal(t, tui.Horizontal, n.Direction())
}

func TestDescribe(t *testing.T) {
	root := NewNode(tui.Vertical, tui.Length(1), tui.Fill(1)).
		AddNamed(0, "title", &plain{}).
		Child(1, NewNode(tui.Horizontal, tui.Length(4), tui.Fill(1)).AddNamed(1, "body", &counter{}))
	rt, err := New(root, quietLogger())
	require.NoError(t, err)

	info := rt.Describe(tui.Rect{W: 20, H: 10})
	assert.Equal(t, "root vertical 20x10+0+0 (len(1), fill(1))", info.Label())
	require.Len(t, info.Children, 1)
	child := info.Children[0]
	assert.Equal(t, tui.Rect{Y: 1, W: 20, H: 9}, child.Rect)
	require.Len(t, child.Widgets, 1)
	body := child.Widgets[0]
	assert.Equal(t, tui.Rect{X: 4, Y: 1, W: 16, H: 9}, body.Rect)
	assert.True(t, body.Exposes)
	assert.False(t, body.Receives)
	assert.Equal(t, "[1] #1 body *engine.counter 16x9+4+1 {expose}", body.Label())
}
