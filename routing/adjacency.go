package routing

import (
	"iter"
	"maps"
)

// Edge is a directed connection to a neighbor. Cost must be non-negative.
type Edge struct {
	Cost float64 `json:"cost"`
	Mode Mode    `json:"type"`
}

// Entry is one (from, to, edge) triple of an Adjacency.
type Entry[K comparable] struct {
	From K
	To   K
	Edge Edge
}

// Adjacency maps a node to its outgoing edges. Sources and neighbors are
// remembered in insertion order so traversal is reproducible.
//
// An Adjacency is safe for concurrent readers once it is no longer written.
type Adjacency[K comparable] struct {
	edges     map[K]map[K]Edge
	sources   []K
	neighbors map[K][]K
	size      int
}

func NewAdjacency[K comparable]() *Adjacency[K] {
	return &Adjacency[K]{
		edges:     make(map[K]map[K]Edge),
		neighbors: make(map[K][]K),
	}
}

// Get returns the edge from -> to and whether it exists.
func (a *Adjacency[K]) Get(from, to K) (Edge, bool) {
	edge, ok := a.edges[from][to]
	return edge, ok
}

// Set inserts the edge from -> to or overwrites an existing one in place.
func (a *Adjacency[K]) Set(from, to K, edge Edge) {
	out, ok := a.edges[from]
	if !ok {
		out = make(map[K]Edge)
		a.edges[from] = out
		a.sources = append(a.sources, from)
	}
	if _, exists := out[to]; !exists {
		a.neighbors[from] = append(a.neighbors[from], to)
		a.size++
	}
	out[to] = edge
}

func (a *Adjacency[K]) Has(from, to K) bool {
	_, ok := a.edges[from][to]
	return ok
}

// NeighborsOf returns a copy of the outgoing edges of node. Unknown nodes
// yield an empty map.
func (a *Adjacency[K]) NeighborsOf(node K) map[K]Edge {
	out, ok := a.edges[node]
	if !ok {
		return map[K]Edge{}
	}
	return maps.Clone(out)
}

// Neighbors iterates the outgoing edges of node in insertion order.
func (a *Adjacency[K]) Neighbors(node K) iter.Seq2[K, Edge] {
	return func(yield func(K, Edge) bool) {
		out := a.edges[node]
		for _, to := range a.neighbors[node] {
			if !yield(to, out[to]) {
				return
			}
		}
	}
}

// Entries iterates every edge in insertion order. The sequence can be
// ranged over any number of times.
func (a *Adjacency[K]) Entries() iter.Seq[Entry[K]] {
	return func(yield func(Entry[K]) bool) {
		for _, from := range a.sources {
			out := a.edges[from]
			for _, to := range a.neighbors[from] {
				if !yield(Entry[K]{From: from, To: to, Edge: out[to]}) {
					return
				}
			}
		}
	}
}

// Sources returns the nodes with at least one outgoing edge.
func (a *Adjacency[K]) Sources() []K {
	return append([]K(nil), a.sources...)
}

// Len is the number of nodes with outgoing edges.
func (a *Adjacency[K]) Len() int { return len(a.sources) }

// EdgeCount is the number of directed edges.
func (a *Adjacency[K]) EdgeCount() int { return a.size }
