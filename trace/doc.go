// Package trace captures the stepwise progress of a search as a replayable
// sequence of immutable snapshots.
//
// What
//
//   - Snapshot: one frozen frame of search state — the frontier, the
//     visited set, and the best-known partial path at that step.
//   - Recorder: append-only accumulator the engines feed one Snapshot per
//     expansion; Finalize seals it into a Trace plus an Outcome.
//   - Trace: a finite, materialized sequence that renderers may iterate
//     any number of times (e.g. for a looping animation).
//   - Outcome: Succeeded with the resolved path and cost, or Failed with a
//     distinguishing Reason (search space exhausted vs. memory-infeasible
//     bound).
//
// Snapshots are deep-copied on Record, so an engine reusing its internal
// buffers cannot retroactively change an emitted frame, and iterating a
// finished Trace twice yields identical content.
//
// Failure is data, not error: an unreachable goal or an infeasible memory
// bound produces a Failed Outcome and a final failure Snapshot, never a
// Go error.
package trace
