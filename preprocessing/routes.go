package preprocessing

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// routes.dat column positions of the airport ids.
const (
	colSourceID = 3
	colDestID   = 5
)

// RoutePair is a direct flight between two airport ids.
type RoutePair struct {
	From int64
	To   int64
}

// ReadRoutes parses OpenFlights routes.dat. Rows with a missing or
// non-numeric airport id and rows flying to their own origin are skipped.
func ReadRoutes(r io.Reader, stats *Stats) ([]RoutePair, error) {
	cr := newReader(r)

	var pairs []RoutePair
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read routes row")
		}
		stats.RoutesRead++

		if len(row) <= colDestID {
			stats.RoutesMalformed++
			continue
		}
		from, okFrom := parseID(row[colSourceID])
		to, okTo := parseID(row[colDestID])
		if !okFrom || !okTo || from == to {
			stats.RoutesMalformed++
			continue
		}
		pairs = append(pairs, RoutePair{From: from, To: to})
	}
	return pairs, nil
}

func parseID(v string) (int64, bool) {
	v = strings.TrimSpace(v)
	if v == NullValue {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	return id, err == nil
}
