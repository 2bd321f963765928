package terminal

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventError  // Read error
	EventClosed // Input closed
)

// String returns the event type name
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventMouse:
		return "mouse"
	case EventError:
		return "error"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError

	// Mouse event fields
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// KeyEvent builds a key event, used by tests and synthetic input
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds a printable key event
func RuneEvent(r rune) Event {
	if r == ' ' {
		return Event{Type: EventKey, Key: KeySpace, Rune: ' '}
	}
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// IsRune reports whether ev is the printable key r
func (ev Event) IsRune(r rune) bool {
	return ev.Type == EventKey && ev.Key == KeyRune && ev.Rune == r
}

// IsKey reports whether ev is the key k
func (ev Event) IsKey(k Key) bool {
	return ev.Type == EventKey && ev.Key == k
}

// tcellKeys maps named tcell keys; Ctrl+letter and F-keys are ranges
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyEsc:        KeyEscape,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyCtrlSpace:  KeyCtrlSpace,
}

// translate converts a tcell event, ok is false for events the runtime ignores
func translate(tev tcell.Event) (Event, bool) {
	switch e := tev.(type) {
	case *tcell.EventKey:
		return keyEvent(e), true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventMouse:
		return mouseEvent(e), true
	case *tcell.EventError:
		return Event{Type: EventError, Err: e}, true
	}
	return Event{}, false
}

func keyEvent(e *tcell.EventKey) Event {
	mods := modifiers(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		r := e.Rune()
		// Some terminals report Ctrl+letter as a rune with the Ctrl modifier
		if mods.Has(ModCtrl) && r >= 'a' && r <= 'z' {
			return Event{Type: EventKey, Key: KeyCtrlA + Key(r-'a'), Modifiers: mods}
		}
		ev := RuneEvent(r)
		ev.Modifiers = mods
		return ev
	}

	ev := Event{Type: EventKey, Modifiers: mods}
	if key, ok := tcellKeys[k]; ok {
		ev.Key = key
		return ev
	}
	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		ev.Key = KeyF1 + Key(k-tcell.KeyF1)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		ev.Key = KeyCtrlA + Key(k-tcell.KeyCtrlA)
	default:
		ev.Key = KeyNone
	}
	return ev
}

func modifiers(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	return mods
}

func mouseEvent(e *tcell.EventMouse) Event {
	x, y := e.Position()
	ev := Event{
		Type:        EventMouse,
		MouseX:      x,
		MouseY:      y,
		Modifiers:   modifiers(e.Modifiers()),
		MouseAction: MouseActionPress,
	}
	btn := e.Buttons()
	switch {
	case btn&tcell.Button1 != 0:
		ev.MouseBtn = MouseBtnLeft
	case btn&tcell.Button2 != 0:
		ev.MouseBtn = MouseBtnRight
	case btn&tcell.Button3 != 0:
		ev.MouseBtn = MouseBtnMiddle
	case btn&tcell.WheelUp != 0:
		ev.MouseBtn = MouseBtnWheelUp
	case btn&tcell.WheelDown != 0:
		ev.MouseBtn = MouseBtnWheelDown
	default:
		ev.MouseBtn = MouseBtnNone
		ev.MouseAction = MouseActionMove
	}
	return ev
}
