package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrIndexOutOfRange = errors.New("binding index out of range")
	ErrDuplicateNode   = errors.New("node bound more than once")
	ErrDuplicateWidget = errors.New("component bound more than once")
	ErrDuplicateName   = errors.New("widget name already registered")
	ErrNilComponent    = errors.New("nil component")
	ErrNilNode         = errors.New("nil node")
	ErrNotRunnable     = errors.New("runtime already started")
	ErrWidgetNotFound  = errors.New("widget not found")
	ErrWidgetPanic     = errors.New("widget panicked")
)

// BindingError reports a widget or child bound to a region index its node does not have
type BindingError struct {
	Path  []int  // child positions from the root to the offending node
	Kind  string // "widget" or "child"
	Index int
	Count int // regions the node's constraints produce
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("node %s: %s index %d out of range (%d regions)",
		formatPath(e.Path), e.Kind, e.Index, e.Count)
}

func (e *BindingError) Unwrap() error {
	return ErrIndexOutOfRange
}

func formatPath(path []int) string {
	if len(path) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, p := range path {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}
