package ui

// ActionState is the lifecycle of one user-triggered request.
type ActionState int

const (
	StateIdle ActionState = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s ActionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Pending reports whether a request is in flight.
func (s ActionState) Pending() bool { return s == StatePending }
