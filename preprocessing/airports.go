package preprocessing

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mihuman/flight-route-finder/models"
)

// NullValue marks a missing field in OpenFlights data.
const NullValue = `\N`

// airports.dat column positions.
const (
	colAirportID = iota
	colName
	colCity
	colCountry
	colIATA
	colICAO
	colLatitude
	colLongitude
	airportColumns
)

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return cr
}

func nullable(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" || v == NullValue {
		return nil
	}
	return &v
}

// ReadAirports parses OpenFlights airports.dat. Rows without an IATA or
// ICAO code and rows with malformed id or coordinates are skipped.
func ReadAirports(r io.Reader) ([]models.Airport, *Stats, error) {
	stats := &Stats{}
	cr := newReader(r)

	var airports []models.Airport
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(err, "read airports row")
		}
		stats.AirportsRead++

		if len(row) < airportColumns {
			stats.AirportsMalformed++
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(row[colAirportID]), 10, 64)
		if err != nil {
			stats.AirportsMalformed++
			continue
		}
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(row[colLatitude]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(row[colLongitude]), 64)
		if errLat != nil || errLon != nil {
			stats.AirportsMalformed++
			continue
		}

		a := models.Airport{
			ID:        id,
			Name:      row[colName],
			City:      row[colCity],
			Country:   row[colCountry],
			IATA:      nullable(row[colIATA]),
			ICAO:      nullable(row[colICAO]),
			Latitude:  lat,
			Longitude: lon,
		}
		if a.IATA == nil && a.ICAO == nil {
			stats.AirportsWithoutCode++
			continue
		}
		airports = append(airports, a)
	}
	stats.AirportsKept = len(airports)
	return airports, stats, nil
}
