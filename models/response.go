package models

type Segment struct {
	From     int64   `json:"from"`
	To       int64   `json:"to"`
	Distance float64 `json:"distance"`
	Type     string  `json:"type"`
}

type RoutingResult struct {
	Airports      map[int64]Airport `json:"airports"`
	From          int64             `json:"from"`
	To            int64             `json:"to"`
	Segments      []Segment         `json:"segments"`
	TotalDistance float64           `json:"totalDistance"`
}

type RoutingResponse struct {
	Result RoutingResult `json:"result"`
}

type ApiError struct {
	Error string `json:"error"`
}

// GraphStats summarizes the loaded dataset.
type GraphStats struct {
	Airports int            `json:"airports"`
	Nodes    int            `json:"nodes"`
	Edges    int            `json:"edges"`
	ByMode   map[string]int `json:"byMode"`
}
