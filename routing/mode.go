package routing

import (
	"fmt"
	"strings"
)

// Mode is the transport mode of an edge.
type Mode int

const (
	Unknown Mode = iota
	Flight
	Ground
	Either
)

var modeNames = map[Mode]string{
	Flight: "FLIGHT",
	Ground: "GROUND",
	Either: "EITHER",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseMode accepts FLIGHT, GROUND or EITHER in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FLIGHT":
		return Flight, nil
	case "GROUND":
		return Ground, nil
	case "EITHER":
		return Either, nil
	}
	return Unknown, fmt.Errorf("unknown edge mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if _, ok := modeNames[m]; !ok {
		return nil, fmt.Errorf("cannot marshal edge mode %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
