package routing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments(t *testing.T) {
	g := NewAdjacency[int64]()
	g.Set(1, 2, Edge{Cost: 12.5, Mode: Flight})
	g.Set(2, 3, Edge{Cost: 40, Mode: Either})

	segments, err := Segments(g, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []Segment[int64]{
		{From: 1, To: 2, Edge: Edge{Cost: 12.5, Mode: Flight}},
		{From: 2, To: 3, Edge: Edge{Cost: 40, Mode: Either}},
	}, segments)

	segments, err = Segments(g, []int64{1})
	assert.NoError(t, err)
	assert.Empty(t, segments)

	_, err = Segments(g, []int64{1, 3})
	assert.True(t, errors.Is(err, ErrMissingEdge))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.24, Round2(1.235000001))
	assert.Equal(t, 100.0, Round2(99.999))
	assert.Equal(t, 0.0, Round2(0))
}
