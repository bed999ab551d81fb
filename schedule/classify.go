package schedule

import (
	"fmt"
	"strings"

	"github.com/dhisandaichi/poskoka-board/config"
	"github.com/dhisandaichi/poskoka-board/timetable"
)

const (
	// maxLookaheadMin bounds how far ahead a countdown is shown at all.
	maxLookaheadMin = 180
	// arrivedHoldMin is how long a terminated train keeps its "Arrived" row.
	arrivedHoldMin = 20
	// urgentWindowMin is the imminence threshold for visual emphasis.
	urgentWindowMin = 5
)

// Classification says what role the station plays for a movement.
type Classification int

const (
	Terminating Classification = iota
	Originating
	PassingThrough
)

var classificationNames = map[Classification]string{
	Terminating:    "terminating",
	Originating:    "originating",
	PassingThrough: "passing-through",
}

func (c Classification) String() string {
	if name, ok := classificationNames[c]; ok {
		return name
	}
	return "unknown"
}

func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Entry is one processed movement, recomputed fresh on every evaluation and
// never stored. Status is always non-empty and PrimaryTime always set.
type Entry struct {
	Movement           timetable.Movement  `json:"movement"`
	Origin             string              `json:"origin"`
	Destination        string              `json:"destination"`
	MinutesToArrival   *int                `json:"minutesToArrival,omitempty"`
	MinutesToDeparture *int                `json:"minutesToDeparture,omitempty"`
	Classification     Classification      `json:"classification"`
	PrimaryTime        timetable.ClockTime `json:"primaryTime"`
	Status             string              `json:"status"`
	Context            string              `json:"context"`
	Urgent             bool                `json:"urgent"`
}

// Classify decides a movement's role at the station and renders its display
// status. It returns nil when the movement has no currently relevant status
// and should be omitted from the feed. First matching branch wins:
//
//  1. Terminating — the destination label names this station, or there is
//     no scheduled departure.
//  2. Originating — the origin label names this station, or there is no
//     scheduled arrival.
//  3. Passing through — neither label matches; both times are present here,
//     since a missing departure lands in branch 1 and a missing arrival in
//     branch 2.
//
// Label matching is a case-insensitive substring test against the station's
// display name, so "KIARACONDONG" matches route text like
// "KUTOARJO - KIARACONDONG".
func Classify(mv timetable.Movement, origin, destination string, minToArr, minToDep *int, rules config.StationRules) *Entry {
	stationName := strings.ToUpper(rules.Name)

	entry := Entry{
		Movement:           mv,
		Origin:             origin,
		Destination:        destination,
		MinutesToArrival:   minToArr,
		MinutesToDeparture: minToDep,
	}

	switch {
	case strings.Contains(strings.ToUpper(destination), stationName) || mv.Departure == nil:
		entry.Classification = Terminating
		switch {
		case minToArr != nil && *minToArr > 0 && *minToArr <= maxLookaheadMin:
			entry.Status = fmt.Sprintf("Arriving in %d min", *minToArr)
			entry.Context = "From " + origin
			entry.PrimaryTime = *mv.Arrival
			entry.Urgent = *minToArr < urgentWindowMin
		case minToArr != nil && *minToArr <= 0 && *minToArr > -arrivedHoldMin:
			entry.Status = "Arrived"
			entry.Context = "From " + origin
			entry.PrimaryTime = *mv.Arrival
		default:
			return nil
		}

	case strings.Contains(strings.ToUpper(origin), stationName) || mv.Arrival == nil:
		entry.Classification = Originating
		if minToDep == nil || *minToDep <= 0 || *minToDep > maxLookaheadMin {
			return nil
		}
		entry.Status = fmt.Sprintf("Departing in %d min", *minToDep)
		entry.Context = "To " + destination
		entry.PrimaryTime = *mv.Departure
		if *minToDep <= rules.BoardingCloseMin {
			entry.Status = "Boarding Closed"
			entry.Urgent = true
		}

	default:
		entry.Classification = PassingThrough
		entry.Context = fmt.Sprintf("%s (via %s)", destination, origin)
		if minToArr != nil && *minToArr > 0 && *minToArr <= rules.StopoverImminentMin {
			entry.Status = fmt.Sprintf("Arrives in %d min", *minToArr)
			entry.PrimaryTime = *mv.Arrival
			entry.Urgent = *minToArr < urgentWindowMin
		} else {
			entry.Status = fmt.Sprintf("Departs at %s", mv.Departure)
			entry.PrimaryTime = *mv.Departure
			entry.Urgent = minToDep != nil && *minToDep > 0 && *minToDep < urgentWindowMin
		}
	}

	return &entry
}
