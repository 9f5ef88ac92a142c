package smastar

import "container/heap"

// frontier is the ordered multiset of nodes awaiting a pop, unexpanded
// leaves plus parents standing in for forgotten subtrees: a min-heap of
// arena handles keyed by (f asc, g desc, seq asc). A node's
// heapIdx is kept in sync on every move so heap.Remove works from the
// worst-node scan.
type frontier struct {
	a     *arena
	items []handle
}

func newFrontier(a *arena, capacityHint int) *frontier {
	f := &frontier{a: a, items: make([]handle, 0, capacityHint)}
	heap.Init(f)

	return f
}

// Len implements heap.Interface.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by ascending f, then descending g (prefer deeper nodes among
// equal f), then ascending insertion order for determinism.
func (f *frontier) Less(i, j int) bool {
	return f.less(f.items[i], f.items[j])
}

// Swap implements heap.Interface, maintaining heapIdx.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.a.node(f.items[i]).heapIdx = i
	f.a.node(f.items[j]).heapIdx = j
}

// Push implements heap.Interface. Use push instead.
func (f *frontier) Push(x any) {
	h := x.(handle)
	f.a.node(h).heapIdx = len(f.items)
	f.items = append(f.items, h)
}

// Pop implements heap.Interface. Use popBest instead.
func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	h := old[n-1]
	f.items = old[:n-1]

	return h
}

// push inserts a live node.
func (f *frontier) push(h handle) {
	n := f.a.node(h)
	n.inFrontier = true
	heap.Push(f, h)
}

// popBest removes and returns the best node (lowest f under the tie-break
// rules).
func (f *frontier) popBest() handle {
	h := heap.Pop(f).(handle)
	n := f.a.node(h)
	n.inFrontier = false
	n.heapIdx = -1

	return h
}

// remove deletes an arbitrary frontier member by handle.
func (f *frontier) remove(h handle) {
	n := f.a.node(h)
	heap.Remove(f, n.heapIdx)
	n.inFrontier = false
	n.heapIdx = -1
}

// worst returns the eviction victim: highest f, ties broken toward the
// shallowest then oldest node. Handles in protected are skipped, so
// children generated by the in-progress expansion are never victims, and
// so are nodes with live children: forgetting one of those would orphan
// frontier nodes beneath it. Returns noHandle when no candidate exists.
func (f *frontier) worst(protected map[handle]struct{}) handle {
	best := noHandle
	var bn *node
	for _, h := range f.items {
		if _, ok := protected[h]; ok {
			continue
		}
		n := f.a.node(h)
		if n.liveChildren > 0 {
			continue
		}
		if bn == nil || worseThan(n, bn) {
			best, bn = h, n
		}
	}

	return best
}

// fix restores heap order after h's priority changed in place.
func (f *frontier) fix(h handle) {
	heap.Fix(f, f.a.node(h).heapIdx)
}

// worseThan reports whether a is a better eviction victim than b.
func worseThan(a, b *node) bool {
	if a.f != b.f {
		return a.f > b.f
	}
	if a.depth != b.depth {
		return a.depth < b.depth
	}

	return a.seq < b.seq
}

// ordered returns the frontier vertex IDs best-first, without disturbing
// the heap. Used for snapshots.
func (f *frontier) ordered() []string {
	hs := make([]handle, len(f.items))
	copy(hs, f.items)
	tmp := frontier{a: f.a, items: hs}
	// selection by repeated min would churn heapIdx; a simple sort on the
	// copied slice keeps the live heap untouched.
	sortHandles(&tmp)
	ids := make([]string, len(hs))
	for i, h := range hs {
		ids[i] = f.a.node(h).id
	}

	return ids
}

// sortHandles insertion-sorts tmp.items with frontier ordering. Frontier
// sizes are bounded, so quadratic cost is irrelevant next to heap churn.
func sortHandles(tmp *frontier) {
	items := tmp.items
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && tmp.less(items[j], items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// less compares two handles directly with the frontier ordering.
func (f *frontier) less(hi, hj handle) bool {
	ni, nj := f.a.node(hi), f.a.node(hj)
	if ni.f != nj.f {
		return ni.f < nj.f
	}
	if ni.g != nj.g {
		return ni.g > nj.g
	}

	return ni.seq < nj.seq
}
