// Package terminal is the surface the dashboard runtime draws on.
//
// It wraps a tcell screen behind a small cell-buffer contract:
//   - Init enters raw mode and the alternate screen, Fini restores both
//   - PollEvent waits up to a timeout for at most one input event
//   - Flush presents a full row-major cell buffer as one frame
//
// Input is normalized into Event/Key values so widgets never import tcell.
// EmergencyReset restores a sane terminal from panic handlers where Fini
// cannot run.
package terminal
