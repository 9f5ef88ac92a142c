package smastar

// handle addresses a node in the arena. The generation counter detects
// stale handles after a slot is recycled, so a dangling parent reference
// can never resurrect an evicted node.
type handle struct {
	idx int32
	gen uint32
}

// noHandle is the root's parent.
var noHandle = handle{idx: -1}

// node is one SearchNode: a vertex-in-tree record owned by the arena.
// Parent links are handles; together they form a tree rooted at the start
// vertex, walked backwards for path reconstruction.
type node struct {
	gen uint32
	id  string

	parent handle
	depth  int
	seq    uint64 // frontier insertion order, for deterministic tie-breaks

	g  float64 // accumulated path cost from start
	h  float64 // heuristic estimate to goal
	f  float64 // current frontier priority
	f0 float64 // f at generation: max(g+h, regeneration floor); f never drops below it

	// backedUpF is the maximum f among all descendants ever forgotten
	// beneath this node. It only grows.
	backedUpF float64

	// forgotten maps a forgotten child's vertex ID to the f it must be
	// regenerated at. A +Inf entry marks a known dead end.
	forgotten map[string]float64

	// kids holds the vertex IDs of currently live children, so a
	// re-expansion regenerates only forgotten branches and never
	// duplicates a live one.
	kids map[string]struct{}

	liveChildren int
	inFrontier   bool
	heapIdx      int

	free     bool
	nextFree int32
}

// arena is the owning store for search nodes: a slab with a free list.
// Handles stay valid until their slot is freed; reuse bumps the
// generation so stale handles are detectable.
type arena struct {
	slots    []node
	freeHead int32
	live     int
	seq      uint64
}

func newArena(capacityHint int) *arena {
	return &arena{
		slots:    make([]node, 0, capacityHint),
		freeHead: -1,
	}
}

// alloc creates a live node and returns its handle.
func (a *arena) alloc(id string, parent handle, depth int, g, h, f float64) handle {
	a.seq++
	var idx int32
	if a.freeHead >= 0 {
		idx = a.freeHead
		a.freeHead = a.slots[idx].nextFree
		gen := a.slots[idx].gen + 1
		a.slots[idx] = node{gen: gen}
	} else {
		a.slots = append(a.slots, node{})
		idx = int32(len(a.slots) - 1)
	}
	n := &a.slots[idx]
	n.id = id
	n.parent = parent
	n.depth = depth
	n.seq = a.seq
	n.g, n.h, n.f, n.f0 = g, h, f, f
	n.heapIdx = -1
	a.live++

	return handle{idx: idx, gen: n.gen}
}

// node resolves h, or nil if the handle is stale or freed.
func (a *arena) node(h handle) *node {
	if h.idx < 0 || int(h.idx) >= len(a.slots) {
		return nil
	}
	n := &a.slots[h.idx]
	if n.free || n.gen != h.gen {
		return nil
	}

	return n
}

// release frees the slot behind h. The handle becomes stale immediately.
func (a *arena) release(h handle) {
	n := a.node(h)
	if n == nil {
		return
	}
	n.free = true
	n.forgotten = nil
	n.kids = nil
	n.nextFree = a.freeHead
	a.freeHead = h.idx
	a.live--
}

// liveCount returns the number of live nodes.
func (a *arena) liveCount() int { return a.live }

// nextSeq hands out a fresh insertion sequence number, used when a parent
// rejoins the frontier to stand in for forgotten children.
func (a *arena) nextSeq() uint64 {
	a.seq++

	return a.seq
}
