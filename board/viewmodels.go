package board

import (
	"strings"
	"time"

	"github.com/dhisandaichi/poskoka-board/config"
	"github.com/dhisandaichi/poskoka-board/schedule"
	"github.com/dhisandaichi/poskoka-board/timetable"
)

// CommuterRow mirrors the commuter-line panel layout: a big destination
// line over a small "Via X - KA nnn" line, with the running status text.
type CommuterRow struct {
	Destination string `json:"destination"`
	Via         string `json:"via"`
	Status      string `json:"status"`
	ETA         string `json:"eta"`
	Track       int    `json:"track"`
	Urgent      bool   `json:"urgent"`
}

// FeederRow is a commuter-style row for the Whoosh feeder shuttle panel,
// plus the platform notice the feeder track announces.
type FeederRow struct {
	CommuterRow
	Notice bool `json:"notice"`
}

// IntercityRow mirrors the long-distance panel layout.
type IntercityRow struct {
	Train       string `json:"train"`
	Destination string `json:"destination"`
	Time        string `json:"time"`
	Platform    int    `json:"platform"`
	Info        string `json:"info"`
	Status      string `json:"status"`
	Urgent      bool   `json:"urgent"`
}

// BoardView is the full display-board payload for one station: ranked,
// truncated, and split into the panels the board renders side by side.
// The feeder panel is present only for stations with a feeder platform.
type BoardView struct {
	Station        string         `json:"station"`
	StationName    string         `json:"stationName"`
	UpdatedAt      string         `json:"updatedAt"`
	RefreshSeconds int            `json:"refreshSeconds"`
	Commuter       []CommuterRow  `json:"commuter"`
	Feeder         []FeederRow    `json:"feeder"`
	Intercity      []IntercityRow `json:"intercity"`
}

// BuildBoardView ranks and truncates the feed, then maps each entry onto
// its panel by category. limit <= 0 keeps every entry.
func BuildBoardView(rules config.StationRules, entries []schedule.Entry, now time.Time, refreshSeconds, limit int) BoardView {
	Rank(entries)
	entries = Truncate(entries, limit)

	view := BoardView{
		Station:        rules.Code,
		StationName:    rules.Name,
		UpdatedAt:      now.Format("15:04:05"),
		RefreshSeconds: refreshSeconds,
		Commuter:       []CommuterRow{},
		Intercity:      []IntercityRow{},
	}
	if rules.FeederNoticeMin > 0 {
		view.Feeder = []FeederRow{}
	}

	for _, e := range entries {
		switch e.Movement.Category {
		case timetable.Commuter:
			view.Commuter = append(view.Commuter, commuterRow(e))
		case timetable.Feeder:
			view.Feeder = append(view.Feeder, FeederRow{
				CommuterRow: commuterRow(e),
				Notice:      withinNotice(e, rules.FeederNoticeMin),
			})
		default:
			view.Intercity = append(view.Intercity, IntercityRow{
				Train:       e.Movement.TrainName + " (" + e.Movement.TrainNumber + ")",
				Destination: e.Destination,
				Time:        e.PrimaryTime.String(),
				Platform:    e.Movement.Track,
				Info:        e.Context,
				Status:      e.Status,
				Urgent:      e.Urgent,
			})
		}
	}
	return view
}

func commuterRow(e schedule.Entry) CommuterRow {
	return CommuterRow{
		Destination: e.Destination,
		Via:         "Via " + e.Origin + " - KA " + digitsOnly(e.Movement.TrainNumber),
		Status:      e.Status,
		ETA:         e.PrimaryTime.String(),
		Track:       e.Movement.Track,
		Urgent:      e.Urgent,
	}
}

func withinNotice(e schedule.Entry, noticeMin int) bool {
	if noticeMin <= 0 {
		return false
	}
	m := e.MinutesToArrival
	if m == nil {
		m = e.MinutesToDeparture
	}
	return m != nil && *m > 0 && *m <= noticeMin
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrackLane is one platform's ranked entries on the per-track view.
type TrackLane struct {
	Track   int              `json:"track"`
	Entries []schedule.Entry `json:"entries"`
}

// TrackView groups a station's feed per platform, one lane per configured
// track, empty lanes included so the view always shows full capacity.
type TrackView struct {
	Station     string      `json:"station"`
	StationName string      `json:"stationName"`
	TotalTracks int         `json:"totalTracks"`
	UpdatedAt   string      `json:"updatedAt"`
	Lanes       []TrackLane `json:"lanes"`
}

// BuildTrackView splits the feed across the station's tracks and ranks
// each lane independently.
func BuildTrackView(rules config.StationRules, entries []schedule.Entry, now time.Time) TrackView {
	byTrack := map[int][]schedule.Entry{}
	for _, e := range entries {
		byTrack[e.Movement.Track] = append(byTrack[e.Movement.Track], e)
	}
	view := TrackView{
		Station:     rules.Code,
		StationName: rules.Name,
		TotalTracks: rules.TotalTracks,
		UpdatedAt:   now.Format("15:04:05"),
		Lanes:       make([]TrackLane, 0, rules.TotalTracks),
	}
	for track := 1; track <= rules.TotalTracks; track++ {
		lane := TrackLane{Track: track, Entries: []schedule.Entry{}}
		if ents := byTrack[track]; len(ents) > 0 {
			Rank(ents)
			lane.Entries = ents
		}
		view.Lanes = append(view.Lanes, lane)
	}
	return view
}
