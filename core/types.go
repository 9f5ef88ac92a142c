// Package core defines the Graph, Coord, Neighbor and Edge types and the
// sentinel errors shared by all graph operations.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a vertex with the same ID already exists.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Coord is a 2D position attached to a vertex. Coordinates feed the
// Euclidean heuristic; they carry no meaning for connectivity.
type Coord struct {
	X float64
	Y float64
}

// Neighbor pairs an adjacent vertex ID with the weight of the connecting
// edge. Neighbors of a vertex are reported in edge insertion order.
type Neighbor struct {
	// ID is the adjacent vertex identifier.
	ID string

	// Weight is the non-negative cost of the connecting edge.
	Weight float64
}

// Edge is one undirected edge reported by Graph.Edges. From/To follow the
// order the edge was added with; the edge itself has no direction.
type Edge struct {
	From   string
	To     string
	Weight float64
}
