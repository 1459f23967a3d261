package preprocessing

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/mihuman/flight-route-finder/models"
	"github.com/mihuman/flight-route-finder/routing"
)

// DefaultAdjacentRadiusKm links airports closer than this by ground.
const DefaultAdjacentRadiusKm = 100

// kmPerDegreeLat is a lower bound of the length of one degree of latitude.
const kmPerDegreeLat = 110.0

func point(a models.Airport) orb.Point {
	return orb.Point{a.Longitude, a.Latitude}
}

// DistanceKm is the haversine distance between two airports in
// kilometres, rounded to two decimals.
func DistanceKm(from, to models.Airport) float64 {
	return routing.Round2(geo.DistanceHaversine(point(from), point(to)) / 1000)
}

// AdjacentAirports links every pair of airports at most radiusKm apart
// with GROUND edges in both directions.
func AdjacentAirports(airports []models.Airport, radiusKm float64) *routing.Adjacency[int64] {
	links := routing.NewAdjacency[int64]()
	maxLatDelta := radiusKm / kmPerDegreeLat

	for i := 0; i < len(airports); i++ {
		for j := i + 1; j < len(airports); j++ {
			from, to := airports[i], airports[j]
			if math.Abs(from.Latitude-to.Latitude) > maxLatDelta {
				continue
			}
			km := DistanceKm(from, to)
			if km > radiusKm {
				continue
			}
			links.Set(from.ID, to.ID, routing.Edge{Cost: km, Mode: routing.Ground})
			links.Set(to.ID, from.ID, routing.Edge{Cost: km, Mode: routing.Ground})
		}
	}
	return links
}

// BuildRoutes turns flight pairs into FLIGHT edges weighted by distance,
// then overlays ground links. A ground link over an existing flight
// becomes EITHER and keeps the flight distance. Flights touching unknown
// airports are dropped.
func BuildRoutes(pairs []RoutePair, airports map[int64]models.Airport, ground *routing.Adjacency[int64], stats *Stats) *routing.Adjacency[int64] {
	routes := routing.NewAdjacency[int64]()
	for _, p := range pairs {
		from, okFrom := airports[p.From]
		to, okTo := airports[p.To]
		if !okFrom || !okTo {
			stats.RoutesUnknownAirport++
			continue
		}
		routes.Set(p.From, p.To, routing.Edge{Cost: DistanceKm(from, to), Mode: routing.Flight})
	}
	stats.FlightEdges = routes.EdgeCount()

	for e := range ground.Entries() {
		if flight, ok := routes.Get(e.From, e.To); ok {
			routes.Set(e.From, e.To, routing.Edge{Cost: flight.Cost, Mode: routing.Either})
			stats.MergedEdges++
			continue
		}
		routes.Set(e.From, e.To, e.Edge)
		stats.GroundEdges++
	}
	return routes
}
