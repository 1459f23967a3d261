package routing

import (
	"errors"
	"fmt"
	"math"
)

// ErrMissingEdge means a path step has no edge in the adjacency.
var ErrMissingEdge = errors.New("routing: path step without edge")

// Segment is one traversed edge of a path.
type Segment[K comparable] struct {
	From K
	To   K
	Edge Edge
}

// Segments looks up the edge for every consecutive pair of path. Paths
// with fewer than two nodes yield no segments.
func Segments[K comparable](graph *Adjacency[K], path []K) ([]Segment[K], error) {
	if len(path) < 2 {
		return nil, nil
	}
	segments := make([]Segment[K], 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		edge, ok := graph.Get(from, to)
		if !ok {
			return nil, fmt.Errorf("%w: %v -> %v", ErrMissingEdge, from, to)
		}
		segments = append(segments, Segment[K]{From: from, To: to, Edge: edge})
	}
	return segments, nil
}

// Round2 rounds x to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
