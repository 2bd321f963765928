package engine

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-dash/status"
	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

const (
	DefaultFrameInterval = 33 * time.Millisecond
	DefaultMessageRounds = 8
)

// Surface is the terminal the runtime draws to and polls from
type Surface interface {
	Init() error
	Fini()
	Size() (int, int)
	PollEvent(timeout time.Duration) (terminal.Event, bool, error)
	Flush(cells []terminal.Cell, w, h int) error
}

// Option configures a Runtime
type Option func(*Runtime)

// WithFrameInterval sets how long a frame waits for input before redrawing
func WithFrameInterval(d time.Duration) Option {
	return func(rt *Runtime) {
		if d > 0 {
			rt.interval = d
		}
	}
}

// WithMessageRounds bounds mailbox delivery rounds per frame
func WithMessageRounds(n int) Option {
	return func(rt *Runtime) {
		if n > 0 {
			rt.rounds = n
		}
	}
}

// WithTheme sets the theme widgets read through Runtime.Theme
func WithTheme(t tui.Theme) Option {
	return func(rt *Runtime) { rt.theme = t }
}

// WithStatus publishes runtime metrics into reg
func WithStatus(reg *status.Registry) Option {
	return func(rt *Runtime) { rt.status = reg }
}

// WithLogger routes lifecycle logging; defaults to the standard logger
func WithLogger(l *log.Logger) Option {
	return func(rt *Runtime) { rt.logger = l }
}

// WithSession overrides the generated session id
func WithSession(id string) Option {
	return func(rt *Runtime) { rt.session = id }
}

// Runtime owns the layout tree, the widget arena and the frame loop
type Runtime struct {
	root    *Node
	widgets []*Widget
	names   map[string]*Widget

	state atomic.Int32
	frame atomic.Int64

	interval time.Duration
	rounds   int
	theme    tui.Theme
	status   *status.Registry
	logger   *log.Logger
	session  string

	mail     mailbox
	applies  applyQueue
	inFrame  atomic.Bool // dispatch through render; Expose defers while set
	buf      *tui.Buffer
	bindings []binding

	// Cached metric pointers
	mFrames   *atomic.Int64
	mEvents   *atomic.Int64
	mMessages *atomic.Int64
	mPending  *atomic.Int64
	mFrameMs  *status.AtomicFloat
	mState    *status.AtomicString
	mLastKey  *status.AtomicString
	mRunning  *atomic.Bool
}

// New validates the tree rooted at root, assigns widget ids and runs the registration pass
func New(root *Node, opts ...Option) (*Runtime, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	rt := &Runtime{
		root:     root,
		names:    make(map[string]*Widget),
		interval: DefaultFrameInterval,
		rounds:   DefaultMessageRounds,
		theme:    tui.DefaultTheme,
		buf:      tui.NewBuffer(0, 0),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.status == nil {
		rt.status = status.NewRegistry()
	}
	if rt.logger == nil {
		rt.logger = log.Default()
	}
	if rt.session == "" {
		rt.session = uuid.NewString()
	}

	if err := rt.build(); err != nil {
		return nil, err
	}
	rt.root.Walk(func(_ []int, n *Node) bool {
		n.frozen = true
		return true
	})
	rt.cacheMetrics()

	for _, w := range rt.widgets {
		if r, ok := w.comp.(Registrar); ok {
			r.Register(rt)
		}
	}
	rt.logf("registered %d widgets", len(rt.widgets))
	return rt, nil
}

// build walks the tree validating bindings and filling the widget arena
func (rt *Runtime) build() error {
	seenNodes := make(map[*Node]bool)
	seenComps := make(map[any]bool)

	var visit func(path []int, n *Node) error
	visit = func(path []int, n *Node) error {
		if n == nil {
			return fmt.Errorf("node %s: %w", formatPath(path), ErrNilNode)
		}
		if seenNodes[n] {
			return fmt.Errorf("node %s: %w", formatPath(path), ErrDuplicateNode)
		}
		seenNodes[n] = true
		count := len(n.constraints)

		for _, w := range n.widgets {
			if w.index < 0 || w.index >= count {
				return &BindingError{Path: path, Kind: "widget", Index: w.index, Count: count}
			}
			if isNil(w.comp) {
				return fmt.Errorf("node %s: widget index %d: %w", formatPath(path), w.index, ErrNilComponent)
			}
			if key, ok := identity(w.comp); ok {
				if seenComps[key] {
					return fmt.Errorf("node %s: %T: %w", formatPath(path), w.comp, ErrDuplicateWidget)
				}
				seenComps[key] = true
			}
			if w.name != "" {
				if _, dup := rt.names[w.name]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateName, w.name)
				}
				rt.names[w.name] = w
			}
			w.id = WidgetID(len(rt.widgets))
			w.rt = rt
			rt.widgets = append(rt.widgets, w)
		}

		for i, c := range n.children {
			if c != nil && (c.index < 0 || c.index >= count) {
				return &BindingError{Path: path, Kind: "child", Index: c.index, Count: count}
			}
			if err := visit(append(path[:len(path):len(path)], i), c); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(nil, rt.root)
}

// isNil reports a nil interface or a typed nil pointer, map, slice, chan or func
func isNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// identity returns a map key for components bound by pointer.
// Zero-size pointees may share an address and are not tracked.
func identity(c Component) (any, bool) {
	t := reflect.TypeOf(c)
	if t.Kind() != reflect.Pointer || t.Elem().Size() == 0 {
		return nil, false
	}
	return c, true
}

func (rt *Runtime) cacheMetrics() {
	rt.mFrames = rt.status.Ints.Get(status.KeyFrames)
	rt.mEvents = rt.status.Ints.Get(status.KeyEvents)
	rt.mMessages = rt.status.Ints.Get(status.KeyMessages)
	rt.mPending = rt.status.Ints.Get(status.KeyPending)
	rt.mFrameMs = rt.status.Floats.Get(status.KeyFrameMs)
	rt.mState = rt.status.Strings.Get(status.KeyState)
	rt.mLastKey = rt.status.Strings.Get(status.KeyLastKey)
	rt.mRunning = rt.status.Bools.Get(status.KeyRunning)

	rt.status.Ints.Get(status.KeyWidgets).Store(int64(len(rt.widgets)))
	rt.status.Strings.Get(status.KeySession).Store(rt.session)
	rt.publishState()
}

func (rt *Runtime) publishState() {
	s := rt.State()
	rt.mState.Store(s.String())
	rt.mRunning.Store(s == StateRunning)
}

// Logf writes a session-tagged line to the runtime logger
func (rt *Runtime) Logf(format string, args ...any) {
	rt.logf(format, args...)
}

func (rt *Runtime) logf(format string, args ...any) {
	rt.logger.Printf("[vi-dash %.8s] "+format, append([]any{rt.session}, args...)...)
}

// Run enters the surface and loops until Shutdown, a fatal error, or ctx cancellation.
// The surface is released before Run returns. Cancellation counts as a shutdown.
func (rt *Runtime) Run(ctx context.Context, s Surface) error {
	if !rt.state.CompareAndSwap(int32(StateConstructing), int32(StateRunning)) {
		return ErrNotRunnable
	}
	rt.publishState()
	rt.logf("running, frame interval %s", rt.interval)

	if err := s.Init(); err != nil {
		rt.Shutdown()
		return fmt.Errorf("surface init: %w", err)
	}
	defer s.Fini()

	err := rt.loop(ctx, s)
	rt.Shutdown()
	if err != nil {
		rt.logf("aborted: %v", err)
	}
	return err
}

func (rt *Runtime) loop(ctx context.Context, s Surface) error {
	for rt.Running() {
		if ctx.Err() != nil {
			return nil
		}
		ev, ok, err := s.PollEvent(rt.interval)
		if err != nil {
			return fmt.Errorf("poll: %w", err)
		}
		var evp *terminal.Event
		if ok {
			switch ev.Type {
			case terminal.EventClosed:
				return nil
			case terminal.EventError:
				return fmt.Errorf("terminal: %w", ev.Err)
			}
			evp = &ev
		}
		if err := rt.step(s, evp); err != nil {
			return err
		}
	}
	return nil
}

// step runs one frame: layout, dispatch, message delivery, render, present
func (rt *Runtime) step(s Surface, ev *terminal.Event) error {
	start := time.Now()

	w, h := s.Size()
	rt.buf.Resize(w, h)
	root := rt.buf.Root()
	root.Fill(rt.theme.Bg)
	rt.bindings = rt.root.layout(root.Rect(), rt.bindings[:0])

	rt.inFrame.Store(true)
	defer rt.inFrame.Store(false)

	if ev != nil {
		rt.mEvents.Add(1)
		if ev.Type == terminal.EventKey {
			rt.mLastKey.Store(terminal.Describe(*ev))
		}
		if err := rt.dispatch(*ev); err != nil {
			return err
		}
		if !rt.Running() {
			return nil
		}
	}

	if err := rt.deliver(); err != nil {
		return err
	}
	if !rt.Running() {
		return nil
	}

	for _, b := range rt.bindings {
		if err := b.w.render(root.Within(b.rect)); err != nil {
			return fmt.Errorf("%s: render: %w", b.w, err)
		}
	}
	if err := s.Flush(rt.buf.Cells, w, h); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	rt.frame.Add(1)
	rt.mFrames.Store(rt.frame.Load())
	rt.mFrameMs.Smooth(float64(time.Since(start).Microseconds())/1000, 0.1)
	return nil
}

// Shutdown clears the running flag; the current frame finishes its dispatch and is not rendered
func (rt *Runtime) Shutdown() {
	for {
		cur := rt.state.Load()
		if State(cur) == StateStopped {
			return
		}
		if rt.state.CompareAndSwap(cur, int32(StateStopped)) {
			rt.publishState()
			rt.logf("shutdown after %d frames", rt.frame.Load())
			return
		}
	}
}

// State returns the lifecycle phase
func (rt *Runtime) State() State { return State(rt.state.Load()) }

// Running reports whether the frame loop should continue
func (rt *Runtime) Running() bool { return rt.State() == StateRunning }

// Frame returns the number of frames presented
func (rt *Runtime) Frame() int64 { return rt.frame.Load() }

// Status returns the metrics registry the runtime publishes to
func (rt *Runtime) Status() *status.Registry { return rt.status }

// Theme returns the configured theme
func (rt *Runtime) Theme() tui.Theme { return rt.theme }

// Session returns the run's session id
func (rt *Runtime) Session() string { return rt.session }

// Root returns the layout tree
func (rt *Runtime) Root() *Node { return rt.root }
