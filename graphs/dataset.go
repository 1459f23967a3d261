package graphs

import (
	"log"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/mihuman/flight-route-finder/routing"
)

const (
	airportsFile = "airports"
	routesFile   = "routes"
)

// Dataset is the airport metadata and route graph the service searches.
type Dataset struct {
	Airports *AirportStore
	Routes   *routing.Adjacency[int64]
}

// Paths returns the airports and routes file names inside dir for format.
func Paths(dir string, format Format) (airports, routes string) {
	ext := "." + string(format)
	return filepath.Join(dir, airportsFile+ext), filepath.Join(dir, routesFile+ext)
}

// LoadDataset reads airports and routes from dir.
func LoadDataset(dir string, format Format) (*Dataset, error) {
	start := time.Now()
	airportsPath, routesPath := Paths(dir, format)

	airports, err := LoadAirports(airportsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", airportsPath)
	}
	routes, err := LoadRoutes(routesPath)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", routesPath)
	}

	log.Printf("Loaded dataset from %s in %s: %d airports, %d nodes, %d edges",
		dir, time.Since(start).Round(time.Millisecond), airports.Len(), routes.Len(), routes.EdgeCount())
	return &Dataset{Airports: airports, Routes: routes}, nil
}

// Save writes the dataset into dir.
func (d *Dataset) Save(dir string, format Format) error {
	airportsPath, routesPath := Paths(dir, format)
	if err := SaveAirports(airportsPath, d.Airports); err != nil {
		return errors.Wrapf(err, "save %s", airportsPath)
	}
	if err := SaveRoutes(routesPath, d.Routes); err != nil {
		return errors.Wrapf(err, "save %s", routesPath)
	}
	return nil
}

// EdgesByMode counts the route edges per mode.
func (d *Dataset) EdgesByMode() map[routing.Mode]int {
	counts := make(map[routing.Mode]int)
	for e := range d.Routes.Entries() {
		counts[e.Edge.Mode]++
	}
	return counts
}
