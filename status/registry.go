package status

import (
	"strconv"
	"sync/atomic"
)

// Keys published by the engine runtime
const (
	KeyFrames   = "frames"   // int: frames presented
	KeyEvents   = "events"   // int: events dispatched
	KeyMessages = "messages" // int: mailbox messages delivered
	KeyPending  = "pending"  // int: messages carried to the next frame
	KeyWidgets  = "widgets"  // int: registered widgets
	KeyFrameMs  = "frame_ms" // float: smoothed frame build time
	KeyState    = "state"    // string: runtime state
	KeyLastKey  = "last_key" // string: description of the last key event
	KeySession  = "session"  // string: run session id
	KeyRunning  = "running"  // bool
)

// Registry is the central metrics facade
// Writers cache pointers once and store directly to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot formats every metric as a string keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = strconv.FormatBool(v.Load()) })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = strconv.FormatInt(v.Load(), 10) })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = strconv.FormatFloat(v.Get(), 'f', 1, 64) })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
