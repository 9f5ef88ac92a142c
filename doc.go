// Package graphsearcher searches weighted coordinate graphs and records
// every step of the search so it can be replayed as an animation — from
// the graph primitives up to Simplified Memory-bounded A*.
//
// 🚀 What is graph-searcher?
//
//	A small, deterministic search toolkit that brings together:
//		• Core primitives: named vertices with 2D coordinates, symmetric
//		  weighted edges, a Euclidean heuristic
//		• Traversal: unbounded BFS for fewest-edges paths
//		• Memory-bounded search: SMA* with eviction, backed-up forgotten
//		  costs and node regeneration for cost-optimal paths under a
//		  fixed frontier budget
//		• Traces: one immutable snapshot per expansion, replayable any
//		  number of times
//		• Builders: a JSON graph loader and a seeded random geometric
//		  generator
//		• A terminal player: the bundled CLI animates any recorded trace
//
// Everything is organized under per-concern packages:
//
//	core/    — Graph, Coord, Neighbor, the Euclidean heuristic
//	trace/   — Snapshot, Trace, Recorder, Outcome
//	bfs/     — breadth-first engine
//	smastar/ — memory-bounded A* engine (arena, frontier, eviction)
//	search/  — unified entry point selecting an engine
//	builder/ — graph loading & random generation
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	BFS(A, C) minimizes edges; SMAStar(A, C, bound) minimizes weighted
//	cost while never holding more than bound frontier nodes.
//
// Dive into the package docs for the eviction and regeneration rules
// that make the bounded search honest about what it forgot.
//
//	go get github.com/Tomcat-42/graph-searcher
package graphsearcher
