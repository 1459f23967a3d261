package graphs

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihuman/flight-route-finder/models"
	"github.com/mihuman/flight-route-finder/routing"
)

func strPtr(s string) *string { return &s }

func sampleAirports() []models.Airport {
	return []models.Airport{
		{ID: 1, Name: "Tallinn Airport", City: "Tallinn", Country: "Estonia", IATA: strPtr("TLL"), ICAO: strPtr("EETN"), Latitude: 59.41, Longitude: 24.83},
		{ID: 2, Name: "Helsinki Vantaa", City: "Helsinki", Country: "Finland", IATA: strPtr("HEL"), ICAO: strPtr("EFHK"), Latitude: 60.31, Longitude: 24.96},
		{ID: 3, Name: "Field", City: "Nowhere", Country: "Estonia", ICAO: strPtr("EE00"), Latitude: 58.0, Longitude: 25.0},
	}
}

func sampleRoutes() *routing.Adjacency[int64] {
	g := routing.NewAdjacency[int64]()
	g.Set(10, 2, routing.Edge{Cost: 5, Mode: routing.Ground})
	g.Set(2, 10, routing.Edge{Cost: 5, Mode: routing.Ground})
	g.Set(1, 2, routing.Edge{Cost: 100.25, Mode: routing.Flight})
	g.Set(1, 3, routing.Edge{Cost: 160, Mode: routing.Either})
	return g
}

func entries(g *routing.Adjacency[int64]) []routing.Entry[int64] {
	var out []routing.Entry[int64]
	for e := range g.Entries() {
		out = append(out, e)
	}
	return out
}

func TestAirportStore_Lookup(t *testing.T) {
	s := NewAirportStore(sampleAirports())
	assert.Equal(t, 3, s.Len())

	a, ok := s.ByCode("TLL")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.ID)

	a, ok = s.ByCode("EFHK")
	require.True(t, ok)
	assert.Equal(t, "Helsinki", a.City)

	a, ok = s.ByCode("EE00")
	require.True(t, ok)
	assert.Nil(t, a.IATA)

	_, ok = s.ByCode("tll")
	assert.False(t, ok, "codes are case sensitive")
	_, ok = s.ByID(99)
	assert.False(t, ok)
}

func TestAirportStore_JSONLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewAirportStore(sampleAirports()[2:]).WriteJSON(&buf))
	assert.JSONEq(t, `{
		"airports": {"3": {"id": 3, "name": "Field", "city": "Nowhere", "country": "Estonia",
			"iata": null, "icao": "EE00", "latitude": 58, "longitude": 25}},
		"codes": {"EE00": 3}
	}`, buf.String())

	s, err := ReadAirportsJSON(&buf)
	require.NoError(t, err)
	a, ok := s.ByCode("EE00")
	require.True(t, ok)
	assert.Equal(t, sampleAirports()[2], a)
}

func TestReadAirportsJSON_InvalidID(t *testing.T) {
	_, err := ReadAirportsJSON(strings.NewReader(`{"airports": {"abc": {}}, "codes": {}}`))
	assert.Error(t, err)
}

func TestReadRoutesJSON_SortsByID(t *testing.T) {
	doc := `{
		"10": {"2": {"cost": 5, "type": "GROUND"}},
		"2": {"10": {"cost": 5, "type": "GROUND"}},
		"1": {"3": {"cost": 160, "type": "EITHER"}, "2": {"cost": 100.25, "type": "FLIGHT"}}
	}`
	g, err := ReadRoutesJSON(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 10}, g.Sources())
	assert.Equal(t, []routing.Entry[int64]{
		{From: 1, To: 2, Edge: routing.Edge{Cost: 100.25, Mode: routing.Flight}},
		{From: 1, To: 3, Edge: routing.Edge{Cost: 160, Mode: routing.Either}},
		{From: 2, To: 10, Edge: routing.Edge{Cost: 5, Mode: routing.Ground}},
		{From: 10, To: 2, Edge: routing.Edge{Cost: 5, Mode: routing.Ground}},
	}, entries(g))
}

func TestReadRoutesJSON_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"bad source id": `{"x": {"1": {"cost": 1, "type": "FLIGHT"}}}`,
		"bad target id": `{"1": {"y": {"cost": 1, "type": "FLIGHT"}}}`,
		"bad mode":      `{"1": {"2": {"cost": 1, "type": "BOAT"}}}`,
		"not json":      `[`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadRoutesJSON(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestRoutesGobKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	original := sampleRoutes()
	require.NoError(t, WriteRoutesGob(&buf, original))

	g, err := ReadRoutesGob(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries(original), entries(g))
}

func TestDataset_SaveAndLoad(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatGob} {
		t.Run(string(format), func(t *testing.T) {
			dir := t.TempDir()
			ds := &Dataset{Airports: NewAirportStore(sampleAirports()), Routes: sampleRoutes()}
			require.NoError(t, ds.Save(dir, format))

			airportsPath, routesPath := Paths(dir, format)
			assert.Equal(t, filepath.Join(dir, "airports."+string(format)), airportsPath)
			assert.Equal(t, filepath.Join(dir, "routes."+string(format)), routesPath)

			loaded, err := LoadDataset(dir, format)
			require.NoError(t, err)
			assert.Equal(t, 3, loaded.Airports.Len())
			assert.Equal(t, 4, loaded.Routes.EdgeCount())

			edge, ok := loaded.Routes.Get(1, 3)
			require.True(t, ok)
			assert.Equal(t, routing.Edge{Cost: 160, Mode: routing.Either}, edge)

			a, ok := loaded.Airports.ByCode("EE00")
			require.True(t, ok)
			assert.Nil(t, a.IATA)

			assert.Equal(t, map[routing.Mode]int{routing.Flight: 1, routing.Ground: 2, routing.Either: 1}, loaded.EdgesByMode())
		})
	}
}

func TestLoadDataset_MissingFiles(t *testing.T) {
	_, err := LoadDataset(t.TempDir(), FormatJSON)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("gob")
	require.NoError(t, err)
	assert.Equal(t, FormatGob, f)
	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}
