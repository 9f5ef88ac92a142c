package bfs

import (
	"fmt"

	"github.com/Tomcat-42/graph-searcher/core"
	"github.com/Tomcat-42/graph-searcher/trace"
)

// BFS searches g for a path from start to goal, recording one snapshot per
// expansion. The returned trace always contains at least one frame: the
// terminal success or failure snapshot.
//
// The goal test happens at dequeue time; the dequeued goal joins the
// visited set of the final snapshot. An exhausted frontier is not an
// error: it yields a Failed outcome with trace.ReasonExhausted.
func BFS(g *core.Graph, start, goal string, opts ...Option) (*trace.Trace, trace.Outcome, error) {
	if g == nil {
		return nil, trace.Outcome{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, trace.Outcome{}, o.err
	}
	for _, id := range []string{start, goal} {
		if !g.HasVertex(id) {
			return nil, trace.Outcome{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool, g.VertexCount()),
		inQueue: make(map[string]bool, g.VertexCount()),
		parent:  make(map[string]string, g.VertexCount()),
		rec:     trace.NewRecorder(),
	}

	return w.run(start, goal)
}

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	inQueue map[string]bool
	visited map[string]bool
	order   []string // expansion order
	parent  map[string]string
	step    int
	rec     *trace.Recorder
}

// run seeds the frontier and processes it until the goal is dequeued, the
// frontier drains, or the context is cancelled.
func (w *walker) run(start, goal string) (*trace.Trace, trace.Outcome, error) {
	w.enqueue(start, 0)

	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, trace.Outcome{}, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		delete(w.inQueue, item.id)
		w.step++

		if item.id == goal {
			return w.succeed(item)
		}
		if err := w.expand(item); err != nil {
			return nil, trace.Outcome{}, err
		}
	}

	// frontier drained: no path exists
	w.step++
	w.rec.Record(trace.Snapshot{
		Step:    w.step,
		Visited: w.order,
		Done:    true,
	})
	t, out := w.rec.Finalize(trace.Failed(trace.ReasonExhausted))

	return t, out, nil
}

// enqueue marks id as frontier-resident at depth d and fires OnEnqueue.
func (w *walker) enqueue(id string, d int) {
	w.inQueue[id] = true
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// expand visits item, enqueues its unseen neighbors in adjacency order,
// and emits the step snapshot.
func (w *walker) expand(item queueItem) error {
	w.visited[item.id] = true
	w.order = append(w.order, item.id)
	if err := w.opts.OnExpand(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnExpand error at %q: %w", item.id, err)
	}

	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr.ID] || w.inQueue[nbr.ID] {
			continue
		}
		w.parent[nbr.ID] = item.id
		w.enqueue(nbr.ID, item.depth+1)
	}

	w.rec.Record(trace.Snapshot{
		Step:     w.step,
		Current:  item.id,
		Frontier: w.frontierIDs(),
		Visited:  w.order,
		Path:     w.pathTo(item.id),
	})

	return nil
}

// succeed reconstructs the path, emits the terminal snapshot and seals the
// trace.
func (w *walker) succeed(item queueItem) (*trace.Trace, trace.Outcome, error) {
	w.visited[item.id] = true
	w.order = append(w.order, item.id)
	path := w.pathTo(item.id)
	cost, err := pathCost(w.graph, path)
	if err != nil {
		return nil, trace.Outcome{}, err
	}

	w.rec.Record(trace.Snapshot{
		Step:     w.step,
		Current:  item.id,
		Frontier: w.frontierIDs(),
		Visited:  w.order,
		Path:     path,
		Done:     true,
		Found:    true,
	})
	t, out := w.rec.Finalize(trace.Succeeded(path, cost))

	return t, out, nil
}

// frontierIDs copies the queue contents in FIFO order.
func (w *walker) frontierIDs() []string {
	ids := make([]string, len(w.queue))
	for i, it := range w.queue {
		ids[i] = it.id
	}

	return ids
}

// pathTo walks parent links from id back to the root and reverses.
func (w *walker) pathTo(id string) []string {
	path := []string{id}
	for {
		p, ok := w.parent[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathCost sums the edge weights along path.
func pathCost(g *core.Graph, path []string) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		ns, err := g.Neighbors(path[i-1])
		if err != nil {
			return 0, err
		}
		found := false
		for _, n := range ns {
			if n.ID == path[i] {
				total += n.Weight
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: edge %s–%s", core.ErrVertexNotFound, path[i-1], path[i])
		}
	}

	return total, nil
}
