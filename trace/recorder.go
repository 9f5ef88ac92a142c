package trace

// Recorder accumulates snapshots for one search run. It is a pure
// accumulator: Record appends, Finalize seals. A Recorder is not safe for
// concurrent use; each engine run owns its own.
type Recorder struct {
	snaps     []Snapshot
	finalized bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a deep copy of s. Calls after Finalize are ignored, so a
// sealed trace can never grow.
func (r *Recorder) Record(s Snapshot) {
	if r.finalized {
		return
	}
	r.snaps = append(r.snaps, s.clone())
}

// Len returns the number of snapshots recorded so far.
func (r *Recorder) Len() int { return len(r.snaps) }

// Finalize seals the recorder and returns the finished Trace together
// with the outcome it carries. Subsequent Record calls are no-ops.
func (r *Recorder) Finalize(outcome Outcome) (*Trace, Outcome) {
	r.finalized = true

	return &Trace{snaps: r.snaps, outcome: outcome}, outcome
}
