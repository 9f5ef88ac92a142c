package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomcat-42/graph-searcher/trace"
)

// TestRecorder_AppendOnly checks ordering and sealing semantics.
func TestRecorder_AppendOnly(t *testing.T) {
	r := trace.NewRecorder()
	r.Record(trace.Snapshot{Step: 1, Current: "A"})
	r.Record(trace.Snapshot{Step: 2, Current: "B"})
	require.Equal(t, 2, r.Len())

	tr, out := r.Finalize(trace.Failed(trace.ReasonExhausted))
	assert.False(t, out.Found)
	assert.Equal(t, trace.ReasonExhausted, out.Reason)
	require.Equal(t, 2, tr.Len())

	// recording after Finalize must not grow the sealed trace
	r.Record(trace.Snapshot{Step: 3, Current: "C"})
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, "B", tr.At(1).Current)
}

// TestSnapshot_Immutable verifies that Record deep-copies, so mutating
// the engine-side buffers afterwards does not alter emitted frames.
func TestSnapshot_Immutable(t *testing.T) {
	frontier := []string{"B", "C"}
	visited := []string{"A"}

	r := trace.NewRecorder()
	r.Record(trace.Snapshot{Step: 1, Current: "A", Frontier: frontier, Visited: visited})

	frontier[0] = "X"
	visited[0] = "Y"

	tr, _ := r.Finalize(trace.Succeeded([]string{"A", "C"}, 2))
	got := tr.At(0)
	assert.Equal(t, []string{"B", "C"}, got.Frontier)
	assert.Equal(t, []string{"A"}, got.Visited)
}

// TestTrace_RepeatedIteration ensures two passes over a finished trace see
// identical content (restartable replay for looping animations).
func TestTrace_RepeatedIteration(t *testing.T) {
	r := trace.NewRecorder()
	for i, id := range []string{"A", "B", "C"} {
		r.Record(trace.Snapshot{Step: i + 1, Current: id, Visited: []string{id}})
	}
	tr, _ := r.Finalize(trace.Succeeded([]string{"A", "C"}, 3))

	first := tr.Snapshots()
	second := tr.Snapshots()
	require.Equal(t, len(first), second[len(second)-1].Step)
	assert.Equal(t, first, second)

	// slice headers are independent copies
	first[0] = trace.Snapshot{}
	assert.Equal(t, "A", tr.At(0).Current)
}

// TestOutcome_Constructors covers the success/failure helpers.
func TestOutcome_Constructors(t *testing.T) {
	path := []string{"A", "B"}
	out := trace.Succeeded(path, 1.5)
	assert.True(t, out.Found)
	assert.Equal(t, trace.ReasonNone, out.Reason)
	assert.InDelta(t, 1.5, out.Cost, 1e-12)

	// Succeeded copies the path
	path[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, out.Path)

	fail := trace.Failed(trace.ReasonMemory)
	assert.False(t, fail.Found)
	assert.Nil(t, fail.Path)
	assert.Equal(t, "memory-infeasible", fail.Reason.String())
	assert.Equal(t, "exhausted", trace.ReasonExhausted.String())
	assert.Equal(t, "none", trace.ReasonNone.String())
}
