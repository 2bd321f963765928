//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls differ; the escape
// sequences in EmergencyReset still run
func resetTerminalMode() {}
