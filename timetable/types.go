package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// Category classifies a movement's service kind. It drives which display
// panel a board consumer places the movement on, nothing else.
type Category int

const (
	LongDistance Category = iota
	Commuter
	Feeder
)

var categoryTags = map[Category]string{
	LongDistance: "LD",
	Commuter:     "LOC",
	Feeder:       "FDR",
}

func (c Category) String() string {
	if tag, ok := categoryTags[c]; ok {
		return tag
	}
	return "UNKNOWN"
}

// MarshalText renders the data-file tag, keeping JSON and TOML in sync.
func (c Category) MarshalText() ([]byte, error) {
	tag, ok := categoryTags[c]
	if !ok {
		return nil, fmt.Errorf("timetable: invalid category %d", int(c))
	}
	return []byte(tag), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for cat, tag := range categoryTags {
		if tag == string(text) {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("timetable: unknown category tag %q", string(text))
}

// ClockTime is a time of day with minute precision, the only temporal
// resolution the timetable carries. The calendar date is resolved against
// a reference instant at evaluation time.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" (24-hour).
func ParseClock(s string) (ClockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("timetable: malformed clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("timetable: malformed clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, fmt.Errorf("timetable: malformed clock time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("timetable: clock time %q out of range", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t ClockTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Movement is one scheduled train event at one station. A nil Arrival means
// the movement originates here; a nil Departure means it terminates here.
type Movement struct {
	StationCode string     `toml:"station" json:"station"`
	TrainNumber string     `toml:"number" json:"trainNumber"`
	TrainName   string     `toml:"name" json:"trainName"`
	RouteText   string     `toml:"route" json:"route"`
	Arrival     *ClockTime `toml:"arr" json:"arrival,omitempty"`
	Departure   *ClockTime `toml:"dep" json:"departure,omitempty"`
	Track       int        `toml:"track" json:"track"`
	Category    Category   `toml:"type" json:"category"`
}
