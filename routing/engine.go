package routing

// Policy decides how the engine accounts for and restricts edges.
// Implementations must be pure: the engine may call them any number of
// times with the same arguments.
type Policy[S Ranked] interface {
	// InitialState is the state of the start node.
	InitialState() S
	// ShouldPrune reports whether edge may not be taken from state.
	ShouldPrune(state S, edge Edge, budgets Budgets) bool
	// Transition returns the state reached by taking edge from state.
	Transition(state S, edge Edge, budgets Budgets) S
}

// Result is the outcome of a search. Path is nil when no route exists.
type Result[K comparable] struct {
	Path []K
	Cost float64
}

// Found reports whether the result carries a path.
func (r Result[K]) Found() bool { return r.Path != nil }

// Engine runs a best-first search over a read-only Adjacency, delegating
// pruning and state accounting to a Policy. One Engine may serve any
// number of concurrent searches.
type Engine[K comparable, S Ranked] struct {
	graph  *Adjacency[K]
	policy Policy[S]
}

func NewEngine[K comparable, S Ranked](graph *Adjacency[K], policy Policy[S]) *Engine[K, S] {
	return &Engine[K, S]{graph: graph, policy: policy}
}

// Graph returns the adjacency the engine searches.
func (e *Engine[K, S]) Graph() *Adjacency[K] { return e.graph }

// Path returns the cheapest path from start to goal that the policy admits
// under budgets. Each node keeps a single state, so a node settled with
// the lowest cost may carry counters that block a continuation a costlier
// arrival would have allowed.
func (e *Engine[K, S]) Path(start, goal K, budgets Budgets) Result[K] {
	if e.graph.Len() == 0 {
		return Result[K]{}
	}
	s := &search[K, S]{
		engine:   e,
		budgets:  budgets,
		frontier: NewFrontier[K, S](),
		settled:  make(map[K]struct{}),
		previous: make(map[K]K),
	}
	return s.run(start, goal)
}

// search holds the mutable structures of a single Path call.
type search[K comparable, S Ranked] struct {
	engine   *Engine[K, S]
	budgets  Budgets
	frontier *Frontier[K, S]
	settled  map[K]struct{}
	previous map[K]K
}

func (s *search[K, S]) run(start, goal K) Result[K] {
	policy := s.engine.policy
	s.frontier.Upsert(start, policy.InitialState())

	for !s.frontier.IsEmpty() {
		node, state := s.frontier.ExtractMin()
		if node == goal {
			return Result[K]{Path: s.reconstruct(start, goal), Cost: state.Rank()}
		}
		s.settled[node] = struct{}{}

		for next, edge := range s.engine.graph.Neighbors(node) {
			if _, done := s.settled[next]; done {
				continue
			}
			if policy.ShouldPrune(state, edge, s.budgets) {
				continue
			}
			candidate := policy.Transition(state, edge, s.budgets)
			if current, queued := s.frontier.Peek(next); queued && candidate.Rank() >= current.Rank() {
				continue
			}
			s.frontier.Upsert(next, candidate)
			s.previous[next] = node
		}
	}
	return Result[K]{}
}

func (s *search[K, S]) reconstruct(start, goal K) []K {
	path := []K{goal}
	for node := goal; node != start; {
		node = s.previous[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
