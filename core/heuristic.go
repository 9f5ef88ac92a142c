package core

import (
	"fmt"
	"math"
)

// Heuristic returns the Euclidean distance between the coordinates of a
// and b. It never overestimates the true shortest-path cost (admissible)
// and satisfies the triangle inequality (consistent) whenever every edge
// weight is at least the straight-line distance between its endpoints —
// the contract loaders and generators must uphold for SMA* optimality.
// Returns ErrVertexNotFound if either vertex is absent.
// Complexity: O(1)
func (g *Graph) Heuristic(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ca, ok := g.coords[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	cb, ok := g.coords[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}

	return math.Hypot(ca.X-cb.X, ca.Y-cb.Y), nil
}
