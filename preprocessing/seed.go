package preprocessing

import (
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/mihuman/flight-route-finder/graphs"
	"github.com/mihuman/flight-route-finder/models"
)

// Stats counts what the seeding pipeline read, kept and dropped.
type Stats struct {
	AirportsRead        int `json:"airportsRead"`
	AirportsKept        int `json:"airportsKept"`
	AirportsMalformed   int `json:"airportsMalformed"`
	AirportsWithoutCode int `json:"airportsWithoutCode"`

	RoutesRead           int `json:"routesRead"`
	RoutesMalformed      int `json:"routesMalformed"`
	RoutesUnknownAirport int `json:"routesUnknownAirport"`

	FlightEdges int `json:"flightEdges"`
	GroundEdges int `json:"groundEdges"`
	MergedEdges int `json:"mergedEdges"`
}

// SeedConfig names the raw OpenFlights inputs.
type SeedConfig struct {
	AirportsFile     string
	RoutesFile       string
	AdjacentRadiusKm float64
}

// Seed builds the routing dataset from raw airports and routes files.
func Seed(cfg SeedConfig) (*graphs.Dataset, *Stats, error) {
	start := time.Now()
	if cfg.AdjacentRadiusKm <= 0 {
		cfg.AdjacentRadiusKm = DefaultAdjacentRadiusKm
	}

	af, err := os.Open(cfg.AirportsFile)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open airports data")
	}
	defer af.Close()

	airports, stats, err := ReadAirports(af)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Read %d airports, kept %d (%d without code, %d malformed)",
		stats.AirportsRead, stats.AirportsKept, stats.AirportsWithoutCode, stats.AirportsMalformed)

	rf, err := os.Open(cfg.RoutesFile)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open routes data")
	}
	defer rf.Close()

	pairs, err := ReadRoutes(rf, stats)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Read %d routes, %d usable", stats.RoutesRead, len(pairs))

	byID := make(map[int64]models.Airport, len(airports))
	for _, a := range airports {
		byID[a.ID] = a
	}

	ground := AdjacentAirports(airports, cfg.AdjacentRadiusKm)
	log.Printf("Found %d ground links within %.0f km", ground.EdgeCount(), cfg.AdjacentRadiusKm)

	routes := BuildRoutes(pairs, byID, ground, stats)
	log.Printf("Built %d edges (%d flight, %d ground, %d either) in %s",
		routes.EdgeCount(), stats.FlightEdges-stats.MergedEdges, stats.GroundEdges, stats.MergedEdges,
		time.Since(start).Round(time.Millisecond))

	return &graphs.Dataset{Airports: graphs.NewAirportStore(airports), Routes: routes}, stats, nil
}
