package services

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/mihuman/flight-route-finder/models"
)

// FeatureCollection renders a routing result as one Point per airport
// followed by one LineString per segment, in travel order.
func FeatureCollection(result *models.RoutingResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	seen := make(map[int64]bool, len(result.Airports))
	addAirport := func(id int64) {
		if seen[id] {
			return
		}
		seen[id] = true
		a := result.Airports[id]
		f := geojson.NewPointFeature([]float64{a.Longitude, a.Latitude})
		f.ID = a.ID
		f.SetProperty("kind", "airport")
		f.SetProperty("name", a.Name)
		f.SetProperty("city", a.City)
		f.SetProperty("country", a.Country)
		if a.IATA != nil {
			f.SetProperty("iata", *a.IATA)
		}
		if a.ICAO != nil {
			f.SetProperty("icao", *a.ICAO)
		}
		fc.AddFeature(f)
	}
	for _, s := range result.Segments {
		addAirport(s.From)
		addAirport(s.To)
	}

	for _, s := range result.Segments {
		from, to := result.Airports[s.From], result.Airports[s.To]
		f := geojson.NewLineStringFeature([][]float64{
			{from.Longitude, from.Latitude},
			{to.Longitude, to.Latitude},
		})
		f.SetProperty("kind", "segment")
		f.SetProperty("from", s.From)
		f.SetProperty("to", s.To)
		f.SetProperty("distance", s.Distance)
		f.SetProperty("type", s.Type)
		fc.AddFeature(f)
	}
	return fc
}
