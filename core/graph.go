package core

import (
	"fmt"
	"sync"
)

// Graph is the in-memory undirected weighted graph searched by the engines.
//
// A Graph is built once with AddVertex/AddEdge and then treated as
// read-only: engines only call the query methods, so a single Graph may
// back multiple concurrent searches. The RWMutex exists for callers that
// interleave construction with queries; query-only sharing never contends.
type Graph struct {
	mu sync.RWMutex

	order  []string              // vertex IDs in insertion order
	coords map[string]Coord      // vertex ID → position
	adj    map[string][]Neighbor // vertex ID → insertion-ordered adjacency

	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		coords: make(map[string]Coord),
		adj:    make(map[string][]Neighbor),
	}
}

// AddVertex registers a vertex with its coordinate.
// Returns ErrEmptyVertexID for an empty ID and ErrDuplicateVertex if the
// ID was added before.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, c Coord) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.coords[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	g.order = append(g.order, id)
	g.coords[id] = c
	g.adj[id] = nil

	return nil
}

// AddEdge connects u and v with a non-negative weight, registering the
// edge in both adjacency lists so the symmetry invariant holds by
// construction. Both endpoints must already exist.
// Returns ErrVertexNotFound, ErrNegativeWeight or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) error {
	if u == v {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s–%s weight=%g", ErrNegativeWeight, u, v, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range []string{u, v} {
		if _, ok := g.coords[id]; !ok {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	for _, n := range g.adj[u] {
		if n.ID == v {
			return fmt.Errorf("%w: %s–%s", ErrMultiEdgeNotAllowed, u, v)
		}
	}
	g.adj[u] = append(g.adj[u], Neighbor{ID: v, Weight: weight})
	g.adj[v] = append(g.adj[v], Neighbor{ID: u, Weight: weight})
	g.edgeCount++

	return nil
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.coords[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order. The slice is a copy.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Neighbors returns the adjacency of id in edge insertion order.
// The slice is a copy; mutating it does not affect the graph.
// Returns ErrVertexNotFound for unknown ids.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ns, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Neighbor, len(ns))
	copy(out, ns)

	return out, nil
}

// CoordOf returns the coordinate of id, or ErrVertexNotFound.
func (g *Graph) CoordOf(id string) (Coord, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.coords[id]
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return c, nil
}

// Edges returns every undirected edge exactly once, ordered by the
// insertion order of its first endpoint and then of the edge itself.
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[[2]string]bool, g.edgeCount)
	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.order {
		for _, n := range g.adj[u] {
			key := [2]string{u, n.ID}
			if u > n.ID {
				key = [2]string{n.ID, u}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, Edge{From: u, To: n.ID, Weight: n.Weight})
		}
	}

	return out
}
