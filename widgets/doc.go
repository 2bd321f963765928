// Package widgets provides reference components for the engine runtime.
//
// Menu pairs hand focus to each other through FocusMsg and report choices with
// SelectMsg. TextView displays text posted to it. TitleBar and StatusLine read
// the runtime status registry.
package widgets
