package engine

// State is the runtime lifecycle phase
type State int32

const (
	StateConstructing State = iota
	StateRunning
	StateStopped // terminal
)

func (s State) String() string {
	switch s {
	case StateConstructing:
		return "constructing"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
