package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned by Init when stdin is not a tty
	ErrNotTerminal = errors.New("stdin is not a terminal")
	// ErrNotInitialized is returned by Flush outside Init/Fini
	ErrNotInitialized = errors.New("terminal not initialized")
)

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush presents a cell buffer as one frame
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int) error

	// PollEvent waits up to timeout for one event; ok is false on timeout
	// A zero timeout never blocks
	PollEvent(timeout time.Duration) (ev Event, ok bool, err error)

	// PostEvent injects a synthetic event
	PostEvent(Event)
}

// Option configures a Terminal
type Option func(*tcellTerm)

// WithScreen uses the given tcell screen instead of the process tty
// Tests pass tcell.NewSimulationScreen here
func WithScreen(s tcell.Screen) Option {
	return func(t *tcellTerm) {
		t.screen = s
	}
}

// WithMouse enables mouse reporting after Init
func WithMouse(enabled bool) Option {
	return func(t *tcellTerm) {
		t.mouse = enabled
	}
}

// tcellTerm implements Terminal on a tcell screen
type tcellTerm struct {
	screen tcell.Screen
	mouse  bool

	eventCh     chan Event
	syntheticCh chan Event
	stopCh      chan struct{}
	doneCh      chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a new Terminal instance
func New(opts ...Option) Terminal {
	t := &tcellTerm{
		eventCh:     make(chan Event, 256),
		syntheticCh: make(chan Event, 16),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init enters raw mode and sets up terminal
func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if t.screen == nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return ErrNotTerminal
		}
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		t.screen = s
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	if t.mouse {
		t.screen.EnableMouse()
	}
	t.screen.Clear()

	go t.pollLoop()

	t.initialized = true
	return nil
}

// pollLoop forwards tcell events until the screen is finalized
func (t *tcellTerm) pollLoop() {
	defer close(t.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMINAL POLL CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		// Returns nil once Fini has run
		tev := t.screen.PollEvent()
		if tev == nil {
			return
		}
		ev, ok := translate(tev)
		if !ok {
			continue
		}
		select {
		case t.eventCh <- ev:
		case <-t.stopCh:
			return
		}
	}
}

// Fini restores terminal state
func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	close(t.stopCh)
	if t.mouse {
		t.screen.DisableMouse()
	}
	t.screen.ShowCursor(0, 0)
	t.screen.Fini()

	// Wait with timeout - don't block forever if poll is stuck
	select {
	case <-t.doneCh:
	case <-time.After(100 * time.Millisecond):
	}

	t.finalized = true
}

// Size returns current terminal dimensions
func (t *tcellTerm) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen == nil || !t.initialized {
		return 0, 0
	}
	return t.screen.Size()
}

// Flush writes cell buffer to terminal
// Holds lock for entire operation to prevent race with Fini
func (t *tcellTerm) Flush(cells []Cell, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return ErrNotInitialized
	}
	if len(cells) < width*height {
		return fmt.Errorf("flush: %d cells for %dx%d", len(cells), width, height)
	}

	// Drop the frame on size mismatch; the next frame is sized from Size()
	currW, currH := t.screen.Size()
	if currW != width || currH != height {
		return nil
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, c.style())
		}
	}
	t.screen.Show()
	return nil
}

// PollEvent returns a synthetic or real event, waiting at most timeout
func (t *tcellTerm) PollEvent(timeout time.Duration) (Event, bool, error) {
	// Synthetic events first
	select {
	case ev := <-t.syntheticCh:
		return ev, true, nil
	default:
	}

	if timeout <= 0 {
		select {
		case ev := <-t.syntheticCh:
			return ev, true, nil
		case ev := <-t.eventCh:
			return ev, true, ev.Err
		default:
			return Event{}, false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.syntheticCh:
		return ev, true, nil
	case ev := <-t.eventCh:
		return ev, true, ev.Err
	case <-timer.C:
		return Event{}, false, nil
	}
}

// PostEvent injects a synthetic event
func (t *tcellTerm) PostEvent(ev Event) {
	select {
	case t.syntheticCh <- ev:
	default:
		// Channel full, drop
	}
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiPasteOff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
