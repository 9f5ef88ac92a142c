package smastar_test

import (
	"fmt"

	"github.com/Tomcat-42/graph-searcher/core"
	"github.com/Tomcat-42/graph-searcher/smastar"
)

// ExampleSMAStar runs memory-bounded A* over a small weighted graph: a
// cheap three-edge chain A–B–C–D against a direct but heavy A–D edge.
// With a frontier bound of 3 the engine still finds the cost-optimal
// chain, unlike BFS which would take the two-vertex hop.
func ExampleSMAStar() {
	g := core.NewGraph()
	for i, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id, core.Coord{X: float64(i)})
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)
	_ = g.AddEdge("A", "D", 5)

	tr, out, err := smastar.SMAStar(g, "A", "D", 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Path, out.Cost, tr.Len())
	// Output: [A B C D] 3 4
}

// ExampleSMAStar_evictions observes memory pressure through the eviction
// hook: with a three-slot frontier the expensive detour through Q is
// forgotten, yet the optimal path survives.
func ExampleSMAStar_evictions() {
	g := core.NewGraph()
	_ = g.AddVertex("S", core.Coord{X: 0, Y: 0})
	_ = g.AddVertex("P", core.Coord{X: 1, Y: 0})
	_ = g.AddVertex("Q", core.Coord{X: 0, Y: 5})
	_ = g.AddVertex("M", core.Coord{X: 2, Y: 1})
	_ = g.AddVertex("N", core.Coord{X: 2, Y: -1})
	_ = g.AddVertex("G", core.Coord{X: 3, Y: 0})
	_ = g.AddEdge("S", "P", 1)
	_ = g.AddEdge("S", "Q", 5)
	_ = g.AddEdge("P", "M", 1.5)
	_ = g.AddEdge("P", "N", 1.5)
	_ = g.AddEdge("M", "G", 1.5)
	_ = g.AddEdge("N", "G", 1.5)
	_ = g.AddEdge("Q", "G", 6)

	_, out, err := smastar.SMAStar(g, "S", "G", 3,
		smastar.WithOnEvict(func(ev smastar.Eviction) {
			fmt.Printf("forgot %s (parent %s)\n", ev.ID, ev.ParentID)
		}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Path, out.Cost)
	// Output:
	// forgot Q (parent S)
	// [S P M G] 4
}
