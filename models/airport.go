package models

// Airport is a node of the routing graph. IATA and ICAO are nil when the
// source data has no code.
type Airport struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	IATA      *string `json:"iata"`
	ICAO      *string `json:"icao"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Codes returns the non-empty IATA and ICAO codes of the airport.
func (a Airport) Codes() []string {
	var codes []string
	if a.IATA != nil && *a.IATA != "" {
		codes = append(codes, *a.IATA)
	}
	if a.ICAO != nil && *a.ICAO != "" {
		codes = append(codes, *a.ICAO)
	}
	return codes
}
