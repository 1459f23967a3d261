package routing

const (
	DefaultMaxFlightHops     = 3
	DefaultMaxGroundSwitches = 1
)

// Budgets caps how many flight hops and ground switches a route may use.
type Budgets struct {
	MaxFlightHops     int
	MaxGroundSwitches int
}

func DefaultBudgets() Budgets {
	return Budgets{
		MaxFlightHops:     DefaultMaxFlightHops,
		MaxGroundSwitches: DefaultMaxGroundSwitches,
	}
}

// NodeState is the best known arrival at a node.
type NodeState struct {
	Priority       float64
	FlightHops     int
	GroundSwitches int
}

func (s NodeState) Rank() float64 { return s.Priority }

// ConstrainedPolicy enforces the flight hop and ground switch budgets.
// An EITHER edge is accounted as a ground switch while switches remain,
// and as a flight hop afterwards.
type ConstrainedPolicy struct{}

func (ConstrainedPolicy) InitialState() NodeState { return NodeState{} }

func (ConstrainedPolicy) ShouldPrune(state NodeState, edge Edge, budgets Budgets) bool {
	flightBlocked := state.FlightHops+1 > budgets.MaxFlightHops
	groundBlocked := state.GroundSwitches >= budgets.MaxGroundSwitches

	switch edge.Mode {
	case Flight:
		return flightBlocked
	case Ground:
		return groundBlocked
	case Either:
		return flightBlocked && groundBlocked
	default:
		return true
	}
}

func (ConstrainedPolicy) Transition(state NodeState, edge Edge, budgets Budgets) NodeState {
	next := NodeState{
		Priority:       state.Priority + edge.Cost,
		FlightHops:     state.FlightHops,
		GroundSwitches: state.GroundSwitches,
	}
	switch edge.Mode {
	case Flight:
		next.FlightHops++
	case Ground:
		next.GroundSwitches++
	case Either:
		if state.GroundSwitches < budgets.MaxGroundSwitches {
			next.GroundSwitches++
		} else {
			next.FlightHops++
		}
	}
	return next
}

// CostPolicy ignores budgets and only sums edge costs. Edges of unknown
// mode are still skipped.
type CostPolicy struct{}

func (CostPolicy) InitialState() NodeState { return NodeState{} }

func (CostPolicy) ShouldPrune(_ NodeState, edge Edge, _ Budgets) bool {
	return edge.Mode == Unknown
}

func (CostPolicy) Transition(state NodeState, edge Edge, _ Budgets) NodeState {
	return NodeState{
		Priority:       state.Priority + edge.Cost,
		FlightHops:     state.FlightHops,
		GroundSwitches: state.GroundSwitches,
	}
}

// NewRouteEngine is the engine used for airport routing.
func NewRouteEngine(graph *Adjacency[int64]) *Engine[int64, NodeState] {
	return NewEngine[int64, NodeState](graph, ConstrainedPolicy{})
}
