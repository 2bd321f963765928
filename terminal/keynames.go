package terminal

import (
	"strconv"
	"strings"
)

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeySpace:     "space",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyCtrlSpace: "ctrl_space",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	// Generated ranges rather than 38 literal entries
	for i := 0; i < 12; i++ {
		keyToName[KeyF1+Key(i)] = "f" + strconv.Itoa(i+1)
	}
	for i := 0; i < 26; i++ {
		keyToName[KeyCtrlA+Key(i)] = "ctrl_" + string(rune('a'+i))
	}

	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["shift_tab"] = KeyBacktab
	nameToKey["esc"] = KeyEscape
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[strings.ToLower(name)]
	return k, ok
}

// Describe renders a key event for status display: "q", "alt+x", "ctrl_c", "resize 80x24"
func Describe(ev Event) string {
	switch ev.Type {
	case EventKey:
	case EventResize:
		return "resize " + strconv.Itoa(ev.Width) + "x" + strconv.Itoa(ev.Height)
	case EventMouse:
		return "mouse " + ev.MouseBtn.String() + " " + ev.MouseAction.String()
	default:
		return ""
	}

	var b strings.Builder
	if ev.Modifiers.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if ev.Key == KeyRune {
		b.WriteRune(ev.Rune)
		return b.String()
	}
	b.WriteString(KeyName(ev.Key))
	return b.String()
}
