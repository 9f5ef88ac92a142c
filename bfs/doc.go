// Package bfs provides goal-directed breadth-first search over a
// core.Graph, emitting one trace.Snapshot per expansion so the run can be
// replayed as an animation.
//
// What
//
//   - Explore vertices in FIFO order from the start vertex until the goal
//     is dequeued or the frontier drains.
//   - Neighbors are enqueued in the graph's declared adjacency order, so
//     the visit sequence — and therefore the trace — is fully reproducible.
//   - Returns the finished trace.Trace plus a trace.Outcome: Succeeded
//     with the fewest-edge path and its summed weight, or Failed with
//     ReasonExhausted when no path exists.
//
// BFS ignores edge weights while searching; the path it finds minimizes
// edge count, not cost. The weight only appears in Outcome.Cost so the
// result can be compared against SMA*'s cost-optimal path.
//
// The frontier is unbounded and nothing is ever evicted.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrVertexNotFound  if start or goal is absent (checked before any
//     snapshot is produced).
//   - ErrOptionViolation if an invalid Option is supplied.
//   - Context errors and user hook errors abort the run.
package bfs
