// Package config loads service settings from the environment, reading a
// .env file first when one exists.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/mihuman/flight-route-finder/graphs"
	"github.com/mihuman/flight-route-finder/preprocessing"
	"github.com/mihuman/flight-route-finder/routing"
)

type Config struct {
	Port        string
	AdminPort   string
	Env         string
	Origins     []string
	Credentials bool
	LogFormat   string

	DataDir    string
	DataFormat graphs.Format

	DefaultBudgets   routing.Budgets
	AdjacentRadiusKm float64
	SearchTimeout    time.Duration
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool { return c.Env == "production" }

// Load reads .env files (if any) and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using default environment variables")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, which follows os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Port:      get("PORT", "3000"),
		AdminPort: get("ADMIN_PORT", "9100"),
		Env:       get("NODE_ENV", get("APP_ENV", "development")),
		LogFormat: strings.ToLower(get("LOG_FORMAT", "text")),
		DataDir:   get("DATA_DIR", "data"),
	}

	for _, o := range strings.Split(get("ORIGIN", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.Origins = append(cfg.Origins, o)
		}
	}

	var err error
	if cfg.Credentials, err = strconv.ParseBool(get("CREDENTIALS", "false")); err != nil {
		return nil, errors.Wrap(err, "CREDENTIALS")
	}
	if cfg.DataFormat, err = graphs.ParseFormat(get("DATA_FORMAT", "json")); err != nil {
		return nil, errors.Wrap(err, "DATA_FORMAT")
	}
	if cfg.DefaultBudgets.MaxFlightHops, err = nonNegative(get("DEFAULT_MAX_ROUTE_HOPS", strconv.Itoa(routing.DefaultMaxFlightHops))); err != nil {
		return nil, errors.Wrap(err, "DEFAULT_MAX_ROUTE_HOPS")
	}
	if cfg.DefaultBudgets.MaxGroundSwitches, err = nonNegative(get("DEFAULT_MAX_ROUTE_GROUND_SWITCHES", strconv.Itoa(routing.DefaultMaxGroundSwitches))); err != nil {
		return nil, errors.Wrap(err, "DEFAULT_MAX_ROUTE_GROUND_SWITCHES")
	}
	if cfg.AdjacentRadiusKm, err = strconv.ParseFloat(get("MAX_ADJACENT_AIRPORT_DISTANCE", strconv.Itoa(preprocessing.DefaultAdjacentRadiusKm)), 64); err != nil {
		return nil, errors.Wrap(err, "MAX_ADJACENT_AIRPORT_DISTANCE")
	}
	if cfg.SearchTimeout, err = time.ParseDuration(get("SEARCH_TIMEOUT", "2s")); err != nil {
		return nil, errors.Wrap(err, "SEARCH_TIMEOUT")
	}
	return cfg, nil
}

func nonNegative(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Errorf("%d is negative", n)
	}
	return n, nil
}
