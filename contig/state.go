package contig

// State is one of the three exclusive row-index assignment states. The
// zero value is Unassigned.
type State int

const (
	Unassigned State = iota
	Binned
	Restricted
)

func (s State) String() string {
	switch s {
	case Unassigned:
		return "unassigned"
	case Binned:
		return "binned"
	case Restricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// AssignmentTracker owns the process-wide, exclusive assignment state of
// every row-index. Transitions are monotone: Unassigned->Binned or
// Unassigned->Restricted only. No index re-enters Unassigned.
//
// Not safe for concurrent use; the clustering engine owns it exclusively
// for the duration of a run, per the single-threaded round loop.
type AssignmentTracker struct {
	states []State
}

// NewAssignmentTracker returns a tracker for n row-indices, all Unassigned.
func NewAssignmentTracker(n int) *AssignmentTracker {
	return &AssignmentTracker{states: make([]State, n)}
}

// N returns the number of tracked row-indices.
func (t *AssignmentTracker) N() int { return len(t.states) }

// State returns the current state of row-index i.
func (t *AssignmentTracker) State(i int) State {
	if i < 0 || i >= len(t.states) {
		return Unassigned
	}

	return t.states[i]
}

// IsUnassigned reports whether i is currently Unassigned.
func (t *AssignmentTracker) IsUnassigned(i int) bool {
	return t.State(i) == Unassigned
}

// Bin transitions i from Unassigned to Binned. Returns ErrInvalidTransition
// if i is not currently Unassigned, or ErrIndexOutOfRange if i is invalid.
func (t *AssignmentTracker) Bin(i int) error {
	return t.transition(i, Binned)
}

// Restrict transitions i from Unassigned to Restricted. Returns
// ErrInvalidTransition if i is not currently Unassigned, or
// ErrIndexOutOfRange if i is invalid.
func (t *AssignmentTracker) Restrict(i int) error {
	return t.transition(i, Restricted)
}

func (t *AssignmentTracker) transition(i int, to State) error {
	if i < 0 || i >= len(t.states) {
		return ErrIndexOutOfRange
	}
	if t.states[i] != Unassigned {
		return ErrInvalidTransition
	}
	t.states[i] = to

	return nil
}

// Counts returns the number of row-indices in each of the three states, in
// (unassigned, binned, restricted) order. Their sum always equals N.
func (t *AssignmentTracker) Counts() (unassigned, binned, restricted int) {
	for _, s := range t.states {
		switch s {
		case Unassigned:
			unassigned++
		case Binned:
			binned++
		case Restricted:
			restricted++
		}
	}

	return
}
