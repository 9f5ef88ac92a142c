package trace

// Reason classifies why a search ended without a path.
type Reason int

const (
	// ReasonNone means the search succeeded.
	ReasonNone Reason = iota

	// ReasonExhausted means the frontier emptied without reaching the goal:
	// no path exists (within the memory bound, if any). A normal outcome.
	ReasonExhausted

	// ReasonMemory means SMA* could not evict a node without destroying the
	// path to a still-needed frontier member: the bound is too small for
	// this graph, not that no path exists.
	ReasonMemory
)

// String returns a short stable label for logs and snapshots.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonExhausted:
		return "exhausted"
	case ReasonMemory:
		return "memory-infeasible"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a search run.
type Outcome struct {
	// Found reports whether a path from start to goal was resolved.
	Found bool

	// Reason distinguishes failure modes; ReasonNone when Found.
	Reason Reason

	// Path is the resolved vertex sequence from start to goal; nil on failure.
	Path []string

	// Cost is the summed edge weight along Path; 0 on failure.
	Cost float64
}

// Succeeded builds a successful Outcome.
func Succeeded(path []string, cost float64) Outcome {
	return Outcome{Found: true, Reason: ReasonNone, Path: cloneStrings(path), Cost: cost}
}

// Failed builds a failure Outcome with the given reason.
func Failed(reason Reason) Outcome {
	return Outcome{Found: false, Reason: reason}
}

// Snapshot is one immutable frame of search progress. All slices are
// owned by the Trace; treat them as read-only.
type Snapshot struct {
	// Step is the 1-based expansion counter.
	Step int

	// Current is the vertex expanded (or resolved) at this step; empty in
	// a failure frame emitted after the frontier drained.
	Current string

	// Frontier lists the generated-but-not-fully-expanded vertex IDs, best
	// first.
	Frontier []string

	// Visited lists expanded vertex IDs in expansion order.
	Visited []string

	// Path is the best-known partial path, root → Current; on the final
	// successful frame it is the full start → goal path.
	Path []string

	// Done marks the terminal frame of a run.
	Done bool

	// Found is true only on a terminal frame that resolved a path.
	Found bool
}

// clone deep-copies s so later engine mutation cannot leak into the trace.
func (s Snapshot) clone() Snapshot {
	s.Frontier = cloneStrings(s.Frontier)
	s.Visited = cloneStrings(s.Visited)
	s.Path = cloneStrings(s.Path)

	return s
}

// Trace is a finished, materialized snapshot sequence. It is safe to
// iterate repeatedly and from multiple goroutines.
type Trace struct {
	snaps   []Snapshot
	outcome Outcome
}

// Len returns the number of snapshots.
func (t *Trace) Len() int { return len(t.snaps) }

// At returns the i-th snapshot (0-based). Panics on out-of-range access,
// mirroring slice indexing.
func (t *Trace) At(i int) Snapshot { return t.snaps[i] }

// Snapshots returns the full frame sequence. The slice header is fresh on
// every call; the frames themselves are shared and read-only.
func (t *Trace) Snapshots() []Snapshot {
	out := make([]Snapshot, len(t.snaps))
	copy(out, t.snaps)

	return out
}

// Outcome returns the terminal result recorded at Finalize.
func (t *Trace) Outcome() Outcome { return t.outcome }

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)

	return out
}
