package routing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacency_GetSetHas(t *testing.T) {
	a := NewAdjacency[string]()

	_, ok := a.Get("A", "B")
	assert.False(t, ok)
	assert.False(t, a.Has("A", "B"))

	a.Set("A", "B", Edge{Cost: 10, Mode: Flight})
	edge, ok := a.Get("A", "B")
	require.True(t, ok)
	assert.Equal(t, Edge{Cost: 10, Mode: Flight}, edge)
	assert.True(t, a.Has("A", "B"))
	assert.False(t, a.Has("B", "A"))

	a.Set("A", "B", Edge{Cost: 10, Mode: Either})
	edge, _ = a.Get("A", "B")
	assert.Equal(t, Either, edge.Mode)
	assert.Equal(t, 1, a.EdgeCount())
	assert.Equal(t, 1, a.Len())
}

func TestAdjacency_NeighborsOfUnknownNode(t *testing.T) {
	a := NewAdjacency[int64]()
	a.Set(1, 2, Edge{Cost: 1, Mode: Ground})

	got := a.NeighborsOf(42)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = a.NeighborsOf(1)
	got[3] = Edge{Cost: 5, Mode: Flight}
	assert.False(t, a.Has(1, 3), "NeighborsOf must not expose internal state")
}

func TestAdjacency_TraversalOrder(t *testing.T) {
	a := NewAdjacency[string]()
	a.Set("B", "C", Edge{Cost: 2, Mode: Flight})
	a.Set("A", "Z", Edge{Cost: 1, Mode: Flight})
	a.Set("A", "M", Edge{Cost: 3, Mode: Ground})
	a.Set("B", "C", Edge{Cost: 4, Mode: Flight})

	var neighbors []string
	for to := range a.Neighbors("A") {
		neighbors = append(neighbors, to)
	}
	assert.Equal(t, []string{"Z", "M"}, neighbors)

	collect := func() []Entry[string] {
		var out []Entry[string]
		for e := range a.Entries() {
			out = append(out, e)
		}
		return out
	}
	want := []Entry[string]{
		{From: "B", To: "C", Edge: Edge{Cost: 4, Mode: Flight}},
		{From: "A", To: "Z", Edge: Edge{Cost: 1, Mode: Flight}},
		{From: "A", To: "M", Edge: Edge{Cost: 3, Mode: Ground}},
	}
	assert.Equal(t, want, collect())
	assert.Equal(t, want, collect(), "entries must be restartable")
	assert.Equal(t, []string{"B", "A"}, a.Sources())
}

func TestAdjacency_EntriesStopsEarly(t *testing.T) {
	a := NewAdjacency[int]()
	for i := 0; i < 10; i++ {
		a.Set(i, i+1, Edge{Cost: 1, Mode: Flight})
	}
	n := 0
	for range a.Entries() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestMode_Text(t *testing.T) {
	raw, err := json.Marshal(Edge{Cost: 1.5, Mode: Either})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cost":1.5,"type":"EITHER"}`, string(raw))

	var e Edge
	require.NoError(t, json.Unmarshal([]byte(`{"cost":2,"type":"ground"}`), &e))
	assert.Equal(t, Edge{Cost: 2, Mode: Ground}, e)

	assert.Error(t, json.Unmarshal([]byte(`{"cost":2,"type":"TRAIN"}`), &e))
	_, err = json.Marshal(Edge{Cost: 1})
	assert.Error(t, err)
	assert.Equal(t, "UNKNOWN", Mode(9).String())
}
