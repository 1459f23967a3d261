package graphs

import (
	"cmp"
	"encoding/gob"
	"encoding/json"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/mihuman/flight-route-finder/routing"
)

// Format selects the on-disk encoding of the dataset.
type Format string

const (
	FormatJSON Format = "json"
	FormatGob  Format = "gob"
)

// ParseFormat accepts "json" or "gob".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatGob:
		return Format(s), nil
	}
	return "", errors.Errorf("unknown data format %q", s)
}

func formatOf(path string) Format {
	if filepath.Ext(path) == ".gob" {
		return FormatGob
	}
	return FormatJSON
}

// routesDocument is the JSON layout: from id -> to id -> edge.
type routesDocument map[string]map[string]routing.Edge

// routeRecord is one edge of a gob snapshot.
type routeRecord struct {
	From int64
	To   int64
	Cost float64
	Mode string
}

// ReadRoutesJSON decodes a routes document. Nodes and neighbors are
// inserted in ascending id order.
func ReadRoutesJSON(r io.Reader) (*routing.Adjacency[int64], error) {
	var doc routesDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode routes json")
	}

	type keyed struct {
		id  int64
		raw string
	}
	sortedKeys := func(raw []string) ([]keyed, error) {
		keys := make([]keyed, 0, len(raw))
		for _, k := range raw {
			id, err := strconv.ParseInt(k, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid airport id %q", k)
			}
			keys = append(keys, keyed{id: id, raw: k})
		}
		slices.SortFunc(keys, func(a, b keyed) int { return cmp.Compare(a.id, b.id) })
		return keys, nil
	}

	graph := routing.NewAdjacency[int64]()
	sources, err := sortedKeys(slices.Collect(maps.Keys(doc)))
	if err != nil {
		return nil, err
	}
	for _, from := range sources {
		targets, err := sortedKeys(slices.Collect(maps.Keys(doc[from.raw])))
		if err != nil {
			return nil, err
		}
		for _, to := range targets {
			graph.Set(from.id, to.id, doc[from.raw][to.raw])
		}
	}
	return graph, nil
}

// WriteRoutesJSON encodes graph as a routes document.
func WriteRoutesJSON(w io.Writer, graph *routing.Adjacency[int64]) error {
	doc := make(routesDocument, graph.Len())
	for e := range graph.Entries() {
		from := strconv.FormatInt(e.From, 10)
		if doc[from] == nil {
			doc[from] = make(map[string]routing.Edge)
		}
		doc[from][strconv.FormatInt(e.To, 10)] = e.Edge
	}
	return errors.Wrap(json.NewEncoder(w).Encode(doc), "encode routes json")
}

// ReadRoutesGob decodes a gob snapshot, keeping its edge order.
func ReadRoutesGob(r io.Reader) (*routing.Adjacency[int64], error) {
	var records []routeRecord
	if err := gob.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decode routes gob")
	}
	graph := routing.NewAdjacency[int64]()
	for _, rec := range records {
		mode, err := routing.ParseMode(rec.Mode)
		if err != nil {
			return nil, errors.Wrapf(err, "route %d -> %d", rec.From, rec.To)
		}
		graph.Set(rec.From, rec.To, routing.Edge{Cost: rec.Cost, Mode: mode})
	}
	return graph, nil
}

func WriteRoutesGob(w io.Writer, graph *routing.Adjacency[int64]) error {
	records := make([]routeRecord, 0, graph.EdgeCount())
	for e := range graph.Entries() {
		records = append(records, routeRecord{From: e.From, To: e.To, Cost: e.Edge.Cost, Mode: e.Edge.Mode.String()})
	}
	return errors.Wrap(gob.NewEncoder(w).Encode(records), "encode routes gob")
}

// LoadRoutes reads a routes file, choosing the codec by extension.
func LoadRoutes(path string) (*routing.Adjacency[int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open routes file")
	}
	defer f.Close()

	if formatOf(path) == FormatGob {
		return ReadRoutesGob(f)
	}
	return ReadRoutesJSON(f)
}

// SaveRoutes writes graph to path, choosing the codec by extension.
func SaveRoutes(path string, graph *routing.Adjacency[int64]) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create routes file")
	}
	defer f.Close()

	if formatOf(path) == FormatGob {
		err = WriteRoutesGob(f, graph)
	} else {
		err = WriteRoutesJSON(f, graph)
	}
	if err != nil {
		return err
	}
	return errors.Wrap(f.Sync(), "sync routes file")
}
