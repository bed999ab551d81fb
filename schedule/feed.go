package schedule

import (
	"time"

	"github.com/dhisandaichi/poskoka-board/config"
	"github.com/dhisandaichi/poskoka-board/timetable"
)

// FeedBuilder evaluates the timetable for one station against a supplied
// clock. It holds only immutable inputs and is safe for concurrent use.
type FeedBuilder struct {
	catalog *timetable.Catalog
	cfg     config.AppConfig
}

// NewFeedBuilder creates a feed builder over a loaded catalog and rule table.
func NewFeedBuilder(catalog *timetable.Catalog, cfg config.AppConfig) *FeedBuilder {
	return &FeedBuilder{catalog: catalog, cfg: cfg}
}

// BuildFeed returns the currently relevant entries for a station at the
// given instant, in timetable order. An unknown station code is an error;
// a station with nothing relevant right now yields an empty slice.
func (b *FeedBuilder) BuildFeed(stationCode string, now time.Time) ([]Entry, error) {
	rules, err := b.cfg.RulesFor(stationCode)
	if err != nil {
		return nil, err
	}
	movements := b.catalog.ByStation(stationCode)
	entries := make([]Entry, 0, len(movements))
	for _, mv := range movements {
		origin, destination := ParseRoute(mv.RouteText)
		minToArr := MinutesUntil(mv.Arrival, now)
		minToDep := MinutesUntil(mv.Departure, now)
		if e := Classify(mv, origin, destination, minToArr, minToDep, rules); e != nil {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}
