package timer

// State is the run state of a Machine.
type State int

const (
	// Finished is both the initial state and the state reached on expiry or stop.
	Finished State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}
	return "unknown"
}
