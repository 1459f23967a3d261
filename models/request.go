package models

// FindQuery holds the raw query parameters of a route search. Budget
// values stay strings until validated so that malformed input can be
// reported with a precise message.
type FindQuery struct {
	From        string `form:"from" binding:"required"`
	To          string `form:"to" binding:"required"`
	MaxHops     string `form:"max_hops" binding:"omitempty,number"`
	MaxStops    string `form:"max_stops" binding:"omitempty,number"`
	MaxSwitches string `form:"max_switches" binding:"omitempty,number"`
}

// Budgets are resolved search limits. Nil fields fall back to defaults.
type Budgets struct {
	MaxFlightHops     *int
	MaxGroundSwitches *int
}
