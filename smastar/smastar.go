package smastar

import (
	"fmt"
	"math"

	"github.com/Tomcat-42/graph-searcher/core"
	"github.com/Tomcat-42/graph-searcher/trace"
)

// SMAStar searches g for a cost-optimal path from start to goal while
// never holding more than bound nodes in the frontier, recording one
// snapshot per expansion. The returned trace always contains at least one
// frame: the terminal success or failure snapshot.
//
// Under memory pressure the worst frontier node is forgotten: its f is
// folded into the parent's backed-up f and its regeneration value is kept
// in the parent's forgotten table, and the parent re-enters the frontier
// priced at its cheapest forgotten branch, so an abandoned subtree always
// resurfaces once everything cheaper has been tried. When forgetting
// cannot proceed without destroying the start node, the freshly generated
// successors, or an ancestor of live frontier nodes, the run fails with
// trace.ReasonMemory; an emptied frontier fails with
// trace.ReasonExhausted.
func SMAStar(g *core.Graph, start, goal string, bound int, opts ...Option) (*trace.Trace, trace.Outcome, error) {
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
	if bound < MinBound {
		return nil, trace.Outcome{}, fmt.Errorf("%w: got %d", ErrInvalidBound, bound)
	}
	for _, id := range []string{start, goal} {
		if !g.HasVertex(id) {
			return nil, trace.Outcome{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	a := newArena(bound + 1)
	r := &runner{
		graph:    g,
		opts:     o,
		goal:     goal,
		bound:    bound,
		arena:    a,
		frontier: newFrontier(a, bound+1),
		seen:     make(map[string]bool, g.VertexCount()),
		rec:      trace.NewRecorder(),
	}

	return r.run(start)
}

// runner encapsulates mutable SMA* state for one run.
type runner struct {
	graph *core.Graph
	opts  Options
	goal  string
	bound int

	arena    *arena
	frontier *frontier

	seen  map[string]bool // vertices that appeared in Visited already
	order []string        // deduplicated expansion order
	step  int
	rec   *trace.Recorder
}

// run seeds the root and drives the expand/evict loop to a terminal frame.
func (r *runner) run(start string) (*trace.Trace, trace.Outcome, error) {
	h0, err := r.graph.Heuristic(start, r.goal)
	if err != nil {
		return nil, trace.Outcome{}, err
	}
	r.frontier.push(r.arena.alloc(start, noHandle, 0, 0, h0, h0))

	for r.frontier.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return nil, trace.Outcome{}, r.opts.Ctx.Err()
		default:
		}

		hCur := r.frontier.popBest()
		cur := r.arena.node(hCur)
		curID := cur.id

		if math.IsInf(cur.f, 1) {
			// every option beneath cur is a known dead end; collapse it
			// into its parent so cheaper forgotten siblings resurface
			r.forgetDeadEnd(hCur)
			continue
		}
		r.step++

		if curID == r.goal {
			return r.succeed(hCur)
		}
		if err := r.opts.OnExpand(curID, cur.f); err != nil {
			return nil, trace.Outcome{}, fmt.Errorf("smastar: OnExpand error at %q: %w", curID, err)
		}

		// expand may grow the arena slab and release dead ends, so the
		// path and id are captured first
		path := r.pathTo(hCur)
		generated, err := r.expand(hCur)
		if err != nil {
			return nil, trace.Outcome{}, err
		}
		if ok := r.shrink(generated); !ok {
			return r.fail(curID, trace.ReasonMemory)
		}

		r.record(curID, path, false, false)
	}

	// frontier drained: nothing reachable leads to the goal
	r.step++

	return r.fail("", trace.ReasonExhausted)
}

// expand generates cur's successors, skipping vertices already on cur's
// root path, children that are still live elsewhere in the tree and
// children known to be dead ends. Regenerated children come back at no
// less than the f they were forgotten at. A childless cur is a dead end
// and is folded into its parent immediately. Returns the set of freshly
// generated handles, which eviction must not touch this step.
func (r *runner) expand(hCur handle) (map[handle]struct{}, error) {
	cur := r.arena.node(hCur)
	if !r.seen[cur.id] {
		r.seen[cur.id] = true
		r.order = append(r.order, cur.id)
	}

	neighbors, err := r.graph.Neighbors(cur.id)
	if err != nil {
		return nil, fmt.Errorf("smastar: failed to get neighbors of %q: %w", cur.id, err)
	}

	generated := make(map[handle]struct{}, len(neighbors))
	curG, curDepth := cur.g, cur.depth
	for _, nbr := range neighbors {
		if r.onRootPath(hCur, nbr.ID) {
			continue
		}
		if _, live := cur.kids[nbr.ID]; live {
			continue
		}
		if f, ok := cur.forgotten[nbr.ID]; ok && math.IsInf(f, 1) {
			continue
		}
		h, err := r.graph.Heuristic(nbr.ID, r.goal)
		if err != nil {
			return nil, err
		}
		childG := curG + nbr.Weight
		childF := childG + h
		if f, ok := cur.forgotten[nbr.ID]; ok {
			if f > childF {
				childF = f
			}
			delete(cur.forgotten, nbr.ID)
		}
		hChild := r.arena.alloc(nbr.ID, hCur, curDepth+1, childG, h, childF)
		cur = r.arena.node(hCur) // alloc may have grown the slab
		if cur.kids == nil {
			cur.kids = make(map[string]struct{}, len(neighbors))
		}
		cur.kids[nbr.ID] = struct{}{}
		cur.liveChildren++
		r.frontier.push(hChild)
		generated[hChild] = struct{}{}
	}

	if cur.liveChildren == 0 {
		r.forgetDeadEnd(hCur)
	}

	return generated, nil
}

// shrink evicts worst-first until the frontier fits the bound. Freshly
// generated children and ancestors of live frontier nodes are off
// limits; a childless stand-in parent is not. Reports false when no
// legal victim exists or the victim would be the start node.
func (r *runner) shrink(protected map[handle]struct{}) bool {
	for r.frontier.Len() > r.bound {
		hVictim := r.frontier.worst(protected)
		if hVictim == noHandle {
			return false
		}
		victim := r.arena.node(hVictim)
		if victim.parent == noHandle {
			// forgetting the start node would orphan the whole tree;
			// shield it and look for another victim
			protected[hVictim] = struct{}{}
			continue
		}
		r.frontier.remove(hVictim)
		r.forget(hVictim)
	}

	return true
}

// forget folds victim into its parent: the parent's backed-up f absorbs
// victim.f and the forgotten table records the regeneration floor. The
// parent then re-enters the frontier (or is repriced in place) at its
// cheapest forgotten branch, so the abandoned subtree stays reachable no
// matter how many siblings are still live.
func (r *runner) forget(hVictim handle) {
	victim := r.arena.node(hVictim)
	parent := r.arena.node(victim.parent)

	if victim.f > parent.backedUpF {
		parent.backedUpF = victim.f
	}
	if parent.forgotten == nil {
		parent.forgotten = make(map[string]float64, 2)
	}
	if old, ok := parent.forgotten[victim.id]; !ok || victim.f > old {
		parent.forgotten[victim.id] = victim.f
	}
	delete(parent.kids, victim.id)
	parent.liveChildren--

	r.opts.OnEvict(Eviction{
		ID:              victim.id,
		F:               victim.f,
		ParentID:        parent.id,
		ParentBackedUpF: parent.backedUpF,
	})

	hParent := victim.parent
	r.arena.release(hVictim)
	if parent.inFrontier {
		r.reprice(hParent)
	} else {
		r.rejoin(hParent)
	}
}

// forgetDeadEnd removes a node with no viable successors, marking it as
// unrecoverable (+Inf) in its parent's forgotten table. A dead-end start
// node simply leaves the frontier empty.
func (r *runner) forgetDeadEnd(hDead handle) {
	dead := r.arena.node(hDead)
	hParent := dead.parent
	if hParent == noHandle {
		r.arena.release(hDead)
		return
	}
	parent := r.arena.node(hParent)
	parent.backedUpF = math.Inf(1)
	if parent.forgotten == nil {
		parent.forgotten = make(map[string]float64, 2)
	}
	parent.forgotten[dead.id] = math.Inf(1)
	delete(parent.kids, dead.id)
	parent.liveChildren--
	r.arena.release(hDead)

	// a +Inf entry never lowers the parent's price, so only a parent
	// left childless needs to come back for its own eventual collapse
	if parent.liveChildren == 0 && !parent.inFrontier {
		r.rejoin(hParent)
	}
}

// rejoin pushes an interior node back onto the frontier as a stand-in
// for its forgotten children.
func (r *runner) rejoin(h handle) {
	n := r.arena.node(h)
	n.f = r.price(n)
	n.seq = r.arena.nextSeq()
	r.frontier.push(h)
}

// reprice refreshes a frontier-resident node's priority after its
// forgotten table changed.
func (r *runner) reprice(h handle) {
	n := r.arena.node(h)
	if p := r.price(n); p != n.f {
		n.f = p
		r.frontier.fix(h)
	}
}

// price is what revisiting a node's forgotten branches costs: the
// cheapest regeneration value in its forgotten table, never below the f
// the node itself was generated at.
func (r *runner) price(n *node) float64 {
	minF := math.Inf(1)
	for _, f := range n.forgotten {
		if f < minF {
			minF = f
		}
	}
	if minF < n.f0 {
		return n.f0
	}

	return minF
}

// succeed reconstructs the path to hGoal, emits the terminal snapshot and
// seals the trace.
func (r *runner) succeed(hGoal handle) (*trace.Trace, trace.Outcome, error) {
	n := r.arena.node(hGoal)
	if !r.seen[n.id] {
		r.seen[n.id] = true
		r.order = append(r.order, n.id)
	}
	path := r.pathTo(hGoal)
	r.record(n.id, path, true, true)
	t, out := r.rec.Finalize(trace.Succeeded(path, n.g))

	return t, out, nil
}

// fail emits the terminal failure frame and seals the trace.
func (r *runner) fail(current string, reason trace.Reason) (*trace.Trace, trace.Outcome, error) {
	r.record(current, nil, true, false)
	t, out := r.rec.Finalize(trace.Failed(reason))

	return t, out, nil
}

// record emits one snapshot for the current step.
func (r *runner) record(current string, path []string, done, found bool) {
	r.rec.Record(trace.Snapshot{
		Step:     r.step,
		Current:  current,
		Frontier: r.frontier.ordered(),
		Visited:  r.order,
		Path:     path,
		Done:     done,
		Found:    found,
	})
}

// onRootPath reports whether id names h or any of h's ancestors.
func (r *runner) onRootPath(h handle, id string) bool {
	for h != noHandle {
		n := r.arena.node(h)
		if n.id == id {
			return true
		}
		h = n.parent
	}

	return false
}

// pathTo walks parent handles from h back to the root and reverses.
func (r *runner) pathTo(h handle) []string {
	var path []string
	for h != noHandle {
		n := r.arena.node(h)
		path = append(path, n.id)
		h = n.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
