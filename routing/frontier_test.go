package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_ExtractsInPriorityOrder(t *testing.T) {
	f := NewFrontier[string, NodeState]()
	f.Upsert("C", NodeState{Priority: 30})
	f.Upsert("A", NodeState{Priority: 10})
	f.Upsert("B", NodeState{Priority: 20})
	require.Equal(t, 3, f.Len())

	var order []string
	for !f.IsEmpty() {
		node, _ := f.ExtractMin()
		order = append(order, node)
	}
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestFrontier_UpsertOverwrites(t *testing.T) {
	f := NewFrontier[string, NodeState]()
	f.Upsert("A", NodeState{Priority: 10})
	f.Upsert("B", NodeState{Priority: 20})
	f.Upsert("B", NodeState{Priority: 5, FlightHops: 2})

	assert.Equal(t, 2, f.Len())
	state, ok := f.Peek("B")
	require.True(t, ok)
	assert.Equal(t, NodeState{Priority: 5, FlightHops: 2}, state)

	node, state := f.ExtractMin()
	assert.Equal(t, "B", node)
	assert.Equal(t, 2, state.FlightHops)
	assert.False(t, f.Has("B"))
	assert.True(t, f.Has("A"))

	_, ok = f.Peek("B")
	assert.False(t, ok)
}

func TestFrontier_TieBreakIsInsertionOrder(t *testing.T) {
	f := NewFrontier[int, NodeState]()
	for _, n := range []int{7, 3, 9, 1} {
		f.Upsert(n, NodeState{Priority: 1})
	}
	var order []int
	for !f.IsEmpty() {
		n, _ := f.ExtractMin()
		order = append(order, n)
	}
	assert.Equal(t, []int{7, 3, 9, 1}, order)
}

func TestFrontier_ExtractFromEmptyPanics(t *testing.T) {
	f := NewFrontier[int, NodeState]()
	assert.PanicsWithValue(t, ErrEmptyFrontier, func() { f.ExtractMin() })
}
