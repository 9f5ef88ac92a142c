// Package smastar implements Simplified Memory-bounded A* (SMA*) over a
// core.Graph, emitting one trace.Snapshot per expansion so the run can be
// replayed as an animation.
//
// What
//
//   - Best-first search ordered by f = g + h, where h is the graph's
//     Euclidean heuristic. With an admissible, consistent heuristic and a
//     sufficient bound, the returned path is cost-optimal.
//   - The frontier holds at most `bound` nodes: unexpanded leaves plus
//     parents standing in for branches that were forgotten beneath them.
//     When an insertion overflows the bound, the worst frontier node
//     (highest f, ties to the shallowest then oldest) is evicted;
//     ancestors of live frontier nodes are never victims.
//   - Evicting a node does not silently discard it: its f-value is backed
//     up into the parent's forgotten table, the parent's backed-up f
//     never decreases, and the parent immediately re-enters the frontier
//     priced at its cheapest forgotten subtree. A forgotten branch
//     therefore resurfaces as soon as everything cheaper has been tried,
//     and is regenerated with an f no lower than the value it was
//     forgotten at, so a tight bound can never silently trade away a
//     cheaper route that still fits in memory.
//   - Search-tree nodes live in an arena addressed by generation-counted
//     handles; parent links are handles, never pointer pairs, so eviction
//     is an arena free plus a stale-handle check.
//
// Two failure modes are distinguished in the trace.Outcome:
//
//   - ReasonExhausted — the frontier drained: no path exists.
//   - ReasonMemory    — eviction would have to remove the start node,
//     a node generated by the current expansion, or an ancestor of live
//     frontier nodes: the bound is too small for this graph, and no
//     (possibly suboptimal) path is invented to hide that.
//
// Tie-breaking
//
//	Expansion pops the lowest f, preferring higher g (deeper, better
//	informed) and then earlier insertion. Eviction picks the highest f,
//	preferring shallower and then older nodes. Both rules are fixed so
//	traces are reproducible run to run.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrVertexNotFound  if start or goal is absent (checked eagerly).
//   - ErrInvalidBound    if bound < 2: the start and one successor must be
//     able to coexist during the first expansion.
//   - ErrOptionViolation if an invalid Option is supplied.
package smastar
