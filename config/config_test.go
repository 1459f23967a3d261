package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihuman/flight-route-finder/graphs"
	"github.com/mihuman/flight-route-finder/routing"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "9100", cfg.AdminPort)
	assert.Equal(t, []string{"*"}, cfg.Origins)
	assert.False(t, cfg.Credentials)
	assert.False(t, cfg.Production())
	assert.Equal(t, graphs.FormatJSON, cfg.DataFormat)
	assert.Equal(t, routing.Budgets{MaxFlightHops: 3, MaxGroundSwitches: 1}, cfg.DefaultBudgets)
	assert.Equal(t, 100.0, cfg.AdjacentRadiusKm)
	assert.Equal(t, 2*time.Second, cfg.SearchTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PORT":                              "8080",
		"NODE_ENV":                          "production",
		"ORIGIN":                            "https://a.example, https://b.example",
		"CREDENTIALS":                       "true",
		"LOG_FORMAT":                        "JSON",
		"DATA_DIR":                          "/srv/data",
		"DATA_FORMAT":                       "gob",
		"DEFAULT_MAX_ROUTE_HOPS":            "5",
		"DEFAULT_MAX_ROUTE_GROUND_SWITCHES": "0",
		"MAX_ADJACENT_AIRPORT_DISTANCE":     "50.5",
		"SEARCH_TIMEOUT":                    "250ms",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Production())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins)
	assert.True(t, cfg.Credentials)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, graphs.FormatGob, cfg.DataFormat)
	assert.Equal(t, routing.Budgets{MaxFlightHops: 5, MaxGroundSwitches: 0}, cfg.DefaultBudgets)
	assert.Equal(t, 50.5, cfg.AdjacentRadiusKm)
	assert.Equal(t, 250*time.Millisecond, cfg.SearchTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	for key, value := range map[string]string{
		"CREDENTIALS":                       "maybe",
		"DATA_FORMAT":                       "xml",
		"DEFAULT_MAX_ROUTE_HOPS":            "-1",
		"DEFAULT_MAX_ROUTE_GROUND_SWITCHES": "one",
		"MAX_ADJACENT_AIRPORT_DISTANCE":     "far",
		"SEARCH_TIMEOUT":                    "soon",
	} {
		t.Run(key, func(t *testing.T) {
			_, err := FromEnv(env(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_PORT=9999\n"), 0o644))
	t.Setenv("ADMIN_PORT", "")
	os.Unsetenv("ADMIN_PORT")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.AdminPort)
}
