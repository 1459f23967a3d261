// Command seeder turns OpenFlights airports.dat and routes.dat into the
// airports and routes files the server loads.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mihuman/flight-route-finder/config"
	"github.com/mihuman/flight-route-finder/graphs"
	"github.com/mihuman/flight-route-finder/preprocessing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var (
		airportsFile string
		routesFile   string
		out          string
		format       string
		radius       float64
		convert      bool
		statsFile    string
	)
	flag.StringVar(&airportsFile, "airports", "data/airports.dat", "Path to OpenFlights airports.dat")
	flag.StringVar(&routesFile, "routes", "data/routes.dat", "Path to OpenFlights routes.dat")
	flag.StringVar(&out, "out", cfg.DataDir, "Directory to write airports and routes files to")
	flag.StringVar(&format, "format", string(cfg.DataFormat), "Output format: json or gob")
	flag.Float64Var(&radius, "radius", cfg.AdjacentRadiusKm, "Link airports closer than this many km by ground")
	flag.BoolVar(&convert, "convert", false, "Convert the JSON dataset in -out to -format instead of seeding")
	flag.StringVar(&statsFile, "stats", "", "Optional path to write seeding statistics as JSON")
	flag.Parse()

	outFormat, err := graphs.ParseFormat(format)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		log.Fatalf("failed to ensure output dir: %v", err)
	}

	if convert {
		log.Printf("Converting dataset in %s to %s...", out, outFormat)
		ds, err := graphs.LoadDataset(out, graphs.FormatJSON)
		if err != nil {
			log.Fatalf("failed to load dataset: %v", err)
		}
		if err := ds.Save(out, outFormat); err != nil {
			log.Fatalf("failed to write dataset: %v", err)
		}
		fmt.Printf("Dataset converted to %s in %s\n", outFormat, out)
		return
	}

	log.Printf("Seeding from %s and %s...", airportsFile, routesFile)
	ds, stats, err := preprocessing.Seed(preprocessing.SeedConfig{
		AirportsFile:     airportsFile,
		RoutesFile:       routesFile,
		AdjacentRadiusKm: radius,
	})
	if err != nil {
		log.Fatalf("There was an error while seeding data: %v", err)
	}
	if err := ds.Save(out, outFormat); err != nil {
		log.Fatalf("failed to write dataset: %v", err)
	}

	if statsFile != "" {
		f, err := os.Create(statsFile)
		if err != nil {
			log.Fatalf("failed to create stats file %s: %v", statsFile, err)
		}
		defer f.Close()

		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stats); err != nil {
			log.Fatalf("failed to write stats: %v", err)
		}
	}

	airportsPath, routesPath := graphs.Paths(out, outFormat)
	fmt.Printf("Data successfully seeded: %s, %s\n", airportsPath, routesPath)
	fmt.Printf("Summary: airports=%d nodes=%d edges=%d\n",
		ds.Airports.Len(), ds.Routes.Len(), ds.Routes.EdgeCount())
}
