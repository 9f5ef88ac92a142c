package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Tomcat-42/graph-searcher/core"
)

// span is the side length of the square the generator places points in.
const span = 100.0

// RandomGeometric builds a seeded random geometric graph: n vertices
// (named n0..n{n-1}) placed uniformly in a span×span square, with an edge
// between every pair closer than radius. Edge weight equals the Euclidean
// distance between the endpoints, so the straight-line heuristic is exact
// on edges and admissible everywhere.
//
// A vertex the radius pass leaves isolated is connected to its nearest
// other vertex, so every generated instance is searchable end to end.
// The same (n, radius, seed) triple always yields an identical graph.
func RandomGeometric(n int, radius float64, seed int64) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrTooFewVertices, n)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}

	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()

	coords := make([]core.Coord, n)
	for i := 0; i < n; i++ {
		coords[i] = core.Coord{X: rng.Float64() * span, Y: rng.Float64() * span}
		if err := g.AddVertex(vertexID(i), coords[i]); err != nil {
			return nil, err
		}
	}

	degree := make([]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist(coords[i], coords[j])
			if d == 0 || d > radius {
				continue
			}
			if err := g.AddEdge(vertexID(i), vertexID(j), d); err != nil {
				return nil, err
			}
			degree[i]++
			degree[j]++
		}
	}

	// rescue pass: attach every isolated vertex to its nearest peer
	for i := 0; i < n; i++ {
		if degree[i] > 0 {
			continue
		}
		nearest, best := -1, math.Inf(1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if d := dist(coords[i], coords[j]); d > 0 && d < best {
				nearest, best = j, d
			}
		}
		if nearest < 0 {
			// every other point coincides with this one; nothing to attach
			continue
		}
		if err := g.AddEdge(vertexID(i), vertexID(nearest), best); err != nil {
			return nil, err
		}
		degree[i]++
		degree[nearest]++
	}

	return g, nil
}

func vertexID(i int) string { return fmt.Sprintf("n%d", i) }

func dist(a, b core.Coord) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
