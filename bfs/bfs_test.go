package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Tomcat-42/graph-searcher/bfs"
	"github.com/Tomcat-42/graph-searcher/core"
	"github.com/Tomcat-42/graph-searcher/trace"
)

// diamond builds the reference graph: A–B–C–D chain of weight 1 plus a
// direct A–D edge of weight 5, on a line so the heuristic stays admissible.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	coords := map[string]core.Coord{
		"A": {X: 0}, "B": {X: 1}, "C": {X: 2}, "D": {X: 3},
	}
	for _, id := range []string{"A", "B", "C", "D"} {
		if err := g.AddVertex(id, coords[id]); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}, {"A", "D", 5}} {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies invalid inputs are rejected before any snapshot.
func TestBFS_Errors(t *testing.T) {
	if _, _, err := bfs.BFS(nil, "A", "B"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	g.AddVertex("A", core.Coord{})
	if _, _, err := bfs.BFS(g, "missing", "A"); !errors.Is(err, bfs.ErrVertexNotFound) {
		t.Errorf("missing start: want ErrVertexNotFound, got %v", err)
	}
	if _, _, err := bfs.BFS(g, "A", "missing"); !errors.Is(err, bfs.ErrVertexNotFound) {
		t.Errorf("missing goal: want ErrVertexNotFound, got %v", err)
	}
}

// TestBFS_Diamond checks the reference scenario: BFS minimizes edge count,
// so it takes the expensive direct edge, and the final visited set is
// {A, B, D} because D is dequeued before C.
func TestBFS_Diamond(t *testing.T) {
	g := diamond(t)
	tr, out, err := bfs.BFS(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Found {
		t.Fatalf("outcome = %+v; want Found", out)
	}
	if want := []string{"A", "D"}; !reflect.DeepEqual(out.Path, want) {
		t.Errorf("path = %v; want %v", out.Path, want)
	}
	if out.Cost != 5 {
		t.Errorf("cost = %g; want 5", out.Cost)
	}

	final := tr.At(tr.Len() - 1)
	if !final.Done || !final.Found {
		t.Errorf("final snapshot flags = %+v", final)
	}
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(final.Visited, want) {
		t.Errorf("final visited = %v; want %v", final.Visited, want)
	}
}

// TestBFS_FewestEdges verifies the three-hop route loses to a two-hop one
// regardless of weights.
func TestBFS_FewestEdges(t *testing.T) {
	g := core.NewGraph()
	for i, id := range []string{"A", "B", "C", "D", "E"} {
		g.AddVertex(id, core.Coord{X: float64(i)})
	}
	// A–B–C–E (3 edges, cost 3) vs A–D–E (2 edges, cost 20)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "E", 1)
	g.AddEdge("A", "D", 10)
	g.AddEdge("D", "E", 10)

	_, out, err := bfs.BFS(g, "A", "E")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "D", "E"}; !reflect.DeepEqual(out.Path, want) {
		t.Errorf("path = %v; want %v (fewest edges)", out.Path, want)
	}
	if out.Cost != 20 {
		t.Errorf("cost = %g; want 20", out.Cost)
	}
}

// TestBFS_StartEqualsGoal covers the trivial single-snapshot trace.
func TestBFS_StartEqualsGoal(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("X", core.Coord{})
	tr, out, err := bfs.BFS(g, "X", "X")
	if err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 1 {
		t.Fatalf("trace length = %d; want 1", tr.Len())
	}
	if want := []string{"X"}; !reflect.DeepEqual(out.Path, want) {
		t.Errorf("path = %v; want %v", out.Path, want)
	}
	if out.Cost != 0 {
		t.Errorf("cost = %g; want 0", out.Cost)
	}
}

// TestBFS_Disconnected ensures an unreachable goal yields a Failed outcome
// with a non-empty trace ending in a terminal failure frame.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A", core.Coord{})
	g.AddVertex("B", core.Coord{X: 1})
	g.AddVertex("Z", core.Coord{X: 9})
	g.AddEdge("A", "B", 1)

	tr, out, err := bfs.BFS(g, "A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	if out.Found {
		t.Fatal("expected Failed outcome")
	}
	if out.Reason != trace.ReasonExhausted {
		t.Errorf("reason = %v; want ReasonExhausted", out.Reason)
	}
	if tr.Len() == 0 {
		t.Fatal("trace must not be empty on failure")
	}
	final := tr.At(tr.Len() - 1)
	if !final.Done || final.Found {
		t.Errorf("final snapshot flags = %+v", final)
	}
	if len(final.Path) != 0 {
		t.Errorf("failure path = %v; want empty", final.Path)
	}
}

// TestBFS_Determinism runs the same search twice and compares traces
// frame by frame.
func TestBFS_Determinism(t *testing.T) {
	g := diamond(t)
	tr1, out1, err := bfs.BFS(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	tr2, out2, err := bfs.BFS(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out1, out2) {
		t.Errorf("outcomes differ: %+v vs %+v", out1, out2)
	}
	if !reflect.DeepEqual(tr1.Snapshots(), tr2.Snapshots()) {
		t.Error("traces differ between identical runs")
	}
}

// TestBFS_SnapshotPerExpansion checks one frame per dequeue and that
// frontier/visited evolve step by step on the diamond.
func TestBFS_SnapshotPerExpansion(t *testing.T) {
	g := diamond(t)
	tr, _, err := bfs.BFS(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 3 {
		t.Fatalf("trace length = %d; want 3", tr.Len())
	}
	s0 := tr.At(0)
	if s0.Current != "A" || !reflect.DeepEqual(s0.Frontier, []string{"B", "D"}) {
		t.Errorf("frame 0 = %+v", s0)
	}
	s1 := tr.At(1)
	if s1.Current != "B" || !reflect.DeepEqual(s1.Frontier, []string{"D", "C"}) {
		t.Errorf("frame 1 = %+v", s1)
	}
}

// TestBFS_Hooks asserts enqueue/expand hooks fire in order with depths.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph()
	for i, id := range []string{"A", "B", "C"} {
		g.AddVertex(id, core.Coord{X: float64(i)})
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	var enq, exp []string
	_, _, err := bfs.BFS(g, "A", "C",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, fmt.Sprintf("%s@%d", id, d)) }),
		bfs.WithOnExpand(func(id string, d int) error {
			exp = append(exp, fmt.Sprintf("%s@%d", id, d))
			return nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A@0", "B@1", "C@2"}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueue order = %v; want %v", enq, want)
	}
	// goal C is dequeued but not expanded
	if want := []string{"A@0", "B@1"}; !reflect.DeepEqual(exp, want) {
		t.Errorf("expand order = %v; want %v", exp, want)
	}
}

// TestBFS_HookAbort propagates an OnExpand error.
func TestBFS_HookAbort(t *testing.T) {
	g := diamond(t)
	boom := errors.New("boom")
	_, _, err := bfs.BFS(g, "A", "D", bfs.WithOnExpand(func(string, int) error { return boom }))
	if !errors.Is(err, boom) {
		t.Errorf("want hook error, got %v", err)
	}
}

// TestBFS_Cancellation verifies a cancelled context halts the search.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i <= 100; i++ {
		g.AddVertex(fmt.Sprintf("v%d", i), core.Coord{X: float64(i)})
	}
	for i := 0; i < 100; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := bfs.BFS(g, "v0", "v100", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
