package core

// Phase is a step of the board pipeline.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFilling
	PhaseSwapping
	PhaseReverting
	PhaseDetecting
	PhaseRemoving
	PhaseGravity
	PhaseRefilling
	PhaseChecking
	PhaseShuffling
	PhaseSettled
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFilling:
		return "filling"
	case PhaseSwapping:
		return "swapping"
	case PhaseReverting:
		return "reverting"
	case PhaseDetecting:
		return "detecting"
	case PhaseRemoving:
		return "removing"
	case PhaseGravity:
		return "gravity"
	case PhaseRefilling:
		return "refilling"
	case PhaseChecking:
		return "checking"
	case PhaseShuffling:
		return "shuffling"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// State is the lifecycle state of a Board.
type State int

const (
	StateEmpty State = iota
	StateCreating
	StateReady
	StateResolving
	StateUnplayable
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateCreating:
		return "creating"
	case StateReady:
		return "ready"
	case StateResolving:
		return "resolving"
	case StateUnplayable:
		return "unplayable"
	default:
		return "unknown"
	}
}
