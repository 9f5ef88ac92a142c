// Package builder constructs core.Graph values from external sources, so
// the engines only ever see finished, validated graphs.
//
// Two constructors are provided:
//
//   - FromJSON / FromFile — decode the JSON graph document format
//     {"nodes": {name: {"utm": [x, y]}}, "edges": [{"start", "end",
//     "distance"}]} into a graph. Every structural problem (bad
//     coordinates, unknown endpoints, negative or conflicting weights)
//     fails here, at load time, never inside a search.
//
//   - RandomGeometric — a seeded random geometric graph: n points placed
//     uniformly in a square, connected when closer than a radius, with
//     edge weights equal to the Euclidean distance. Weights never
//     undercut the straight-line distance, so the graph's heuristic stays
//     admissible and consistent by construction.
//
// Determinism is strict: the same document bytes, or the same (n, radius,
// seed) triple, always produce an identical graph, including vertex and
// adjacency ordering.
package builder
