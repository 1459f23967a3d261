package graphs

import (
	"encoding/gob"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/mihuman/flight-route-finder/models"
)

// AirportStore resolves airports by id and by IATA or ICAO code. It is
// read-only after construction.
type AirportStore struct {
	byID  map[int64]models.Airport
	codes map[string]int64
}

// NewAirportStore indexes airports by id and registers every IATA and
// ICAO code. Later airports win on duplicate codes.
func NewAirportStore(airports []models.Airport) *AirportStore {
	s := &AirportStore{
		byID:  make(map[int64]models.Airport, len(airports)),
		codes: make(map[string]int64, 2*len(airports)),
	}
	for _, a := range airports {
		s.byID[a.ID] = a
		for _, code := range a.Codes() {
			s.codes[code] = a.ID
		}
	}
	return s
}

func (s *AirportStore) ByID(id int64) (models.Airport, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// ByCode looks up an airport by exact IATA or ICAO code.
func (s *AirportStore) ByCode(code string) (models.Airport, bool) {
	id, ok := s.codes[code]
	if !ok {
		return models.Airport{}, false
	}
	return s.ByID(id)
}

func (s *AirportStore) Len() int { return len(s.byID) }

// airportsDocument is the persisted layout shared by the JSON and gob codecs.
type airportsDocument struct {
	Airports map[string]models.Airport `json:"airports"`
	Codes    map[string]int64          `json:"codes"`
}

func (s *AirportStore) document() airportsDocument {
	doc := airportsDocument{
		Airports: make(map[string]models.Airport, len(s.byID)),
		Codes:    s.codes,
	}
	for id, a := range s.byID {
		doc.Airports[strconv.FormatInt(id, 10)] = a
	}
	return doc
}

func storeFromDocument(doc airportsDocument) (*AirportStore, error) {
	s := &AirportStore{
		byID:  make(map[int64]models.Airport, len(doc.Airports)),
		codes: doc.Codes,
	}
	if s.codes == nil {
		s.codes = make(map[string]int64)
	}
	for k, a := range doc.Airports {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid airport id %q", k)
		}
		s.byID[id] = a
	}
	return s, nil
}

func ReadAirportsJSON(r io.Reader) (*AirportStore, error) {
	var doc airportsDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode airports json")
	}
	return storeFromDocument(doc)
}

func (s *AirportStore) WriteJSON(w io.Writer) error {
	return errors.Wrap(json.NewEncoder(w).Encode(s.document()), "encode airports json")
}

func ReadAirportsGob(r io.Reader) (*AirportStore, error) {
	var doc airportsDocument
	if err := gob.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode airports gob")
	}
	return storeFromDocument(doc)
}

func (s *AirportStore) WriteGob(w io.Writer) error {
	return errors.Wrap(gob.NewEncoder(w).Encode(s.document()), "encode airports gob")
}

// LoadAirports reads an airports file, choosing the codec by extension.
func LoadAirports(path string) (*AirportStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open airports file")
	}
	defer f.Close()

	if formatOf(path) == FormatGob {
		return ReadAirportsGob(f)
	}
	return ReadAirportsJSON(f)
}

func SaveAirports(path string, s *AirportStore) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create airports file")
	}
	defer f.Close()

	if formatOf(path) == FormatGob {
		err = s.WriteGob(f)
	} else {
		err = s.WriteJSON(f)
	}
	if err != nil {
		return err
	}
	return errors.Wrap(f.Sync(), "sync airports file")
}
