// Package core provides the weighted, undirected, coordinate-embedded
// graph consumed by the search engines.
//
// What
//
//   - Graph: named vertices with 2D coordinates and non-negative weighted
//     undirected edges.
//   - Neighbors(id) returns the insertion-ordered adjacency of a vertex,
//     so traversals are fully reproducible.
//   - Heuristic(a, b) is the Euclidean (straight-line) distance between
//     vertex coordinates — admissible and consistent for graphs whose
//     edge weights are at least the straight-line distance between their
//     endpoints.
//
// Invariants
//
//   - Edges are symmetric: AddEdge(u, v, w) registers the edge in both
//     adjacency lists with equal weight, atomically.
//   - Weights are ≥ 0; AddEdge rejects negative weights.
//   - Self-loops are rejected.
//   - Engines never mutate a Graph; after construction it is safe to share
//     one Graph between concurrent search runs.
//
// Determinism
//
//	Vertices() and Neighbors() preserve insertion order. Two searches over
//	the same Graph with the same endpoints produce identical traces.
//
// Errors
//
//   - ErrEmptyVertexID      if a vertex ID is the empty string.
//   - ErrDuplicateVertex    if a vertex ID is added twice.
//   - ErrVertexNotFound     if an operation references an unknown vertex.
//   - ErrNegativeWeight     if an edge weight is negative.
//   - ErrLoopNotAllowed     if an edge connects a vertex to itself.
package core
