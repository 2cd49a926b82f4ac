package solver

import "github.com/corwin-vance/xcover/internal/xcover"

// EventKind tags the variant carried by an Event.
type EventKind int

const (
	// SolutionFound carries a complete set of option names in Options.
	SolutionFound EventKind = iota
	// ProgressUpdated carries a fraction in [0.0, 1.0] in Progress; absent
	// any estimator, Progress is always the sentinel 0.0.
	ProgressUpdated
	// Paused is emitted once the worker has blocked awaiting Run or Abort.
	Paused
	// Aborted carries a Snapshot of matrix state at the point abort was
	// observed. It is always the last event on the channel.
	Aborted
	// Finished means the search tree was exhausted normally. It is always
	// the last event on the channel.
	Finished
)

func (k EventKind) String() string {
	switch k {
	case SolutionFound:
		return "SolutionFound"
	case ProgressUpdated:
		return "ProgressUpdated"
	case Paused:
		return "Paused"
	case Aborted:
		return "Aborted"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Event is the sum-type payload delivered on a Driver's event channel. Only
// the fields relevant to Kind are populated.
type Event[N any] struct {
	Kind     EventKind
	Options  []N
	Progress float64
	Snapshot *AbortSnapshot[N]
}

// AbortSnapshot is the minimal, safe projection of Matrix state emitted
// alongside Aborted: the still-active columns (by name/size) and the
// partial solution translated to option names. It is not a serialization
// of the Matrix's internal node graph.
type AbortSnapshot[N any] struct {
	ActiveColumns   []xcover.ColumnSnapshot
	PartialSolution []N
}

// signal is the controller -> worker direction of the channel protocol.
type signal int

const (
	signalRun signal = iota
	signalRequestProgress
	signalPause
	signalAbort
)
