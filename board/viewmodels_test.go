package board

import (
	"testing"
	"time"

	"github.com/dhisandaichi/poskoka-board/config"
	"github.com/dhisandaichi/poskoka-board/schedule"
	"github.com/dhisandaichi/poskoka-board/timetable"
)

var bdRules = config.StationRules{
	Code: "BD", Name: "BANDUNG", TotalTracks: 7,
	StopoverImminentMin: 20, BoardingCloseMin: 5, FeederNoticeMin: 5,
}

var kacRules = config.StationRules{
	Code: "KAC", Name: "KIARACONDONG", TotalTracks: 6,
	StopoverImminentMin: 10, BoardingCloseMin: 5,
}

func boardEntry(number, name string, cat timetable.Category, track int, minToArr *int) schedule.Entry {
	return schedule.Entry{
		Movement: timetable.Movement{
			TrainNumber: number,
			TrainName:   name,
			Track:       track,
			Category:    cat,
		},
		Origin:           "PADALARANG",
		Destination:      "CICALENGKA",
		MinutesToArrival: minToArr,
		Classification:   schedule.Terminating,
		PrimaryTime:      timetable.ClockTime{Hour: 8, Minute: 15},
		Status:           "Arriving in 10 min",
		Context:          "From PADALARANG",
	}
}

func TestBuildBoardView_PanelGrouping(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 5, 0, 0, time.UTC)
	entries := []schedule.Entry{
		boardEntry("KA 370", "Commuter Line Bandung Raya", timetable.Commuter, 1, intp(10)),
		boardEntry("KA 652", "Feeder Whoosh", timetable.Feeder, 7, intp(3)),
		boardEntry("KA 71", "Mutiara Selatan", timetable.LongDistance, 5, intp(25)),
	}

	view := BuildBoardView(bdRules, entries, now, 30, 0)

	if view.Station != "BD" || view.StationName != "BANDUNG" {
		t.Errorf("unexpected station header %s/%s", view.Station, view.StationName)
	}
	if view.RefreshSeconds != 30 {
		t.Errorf("expected refresh 30, got %d", view.RefreshSeconds)
	}
	if view.UpdatedAt != "08:05:00" {
		t.Errorf("unexpected updated-at %q", view.UpdatedAt)
	}
	if len(view.Commuter) != 1 || len(view.Feeder) != 1 || len(view.Intercity) != 1 {
		t.Fatalf("expected one row per panel, got %d/%d/%d",
			len(view.Commuter), len(view.Feeder), len(view.Intercity))
	}

	commuter := view.Commuter[0]
	if commuter.Via != "Via PADALARANG - KA 370" {
		t.Errorf("unexpected via line %q", commuter.Via)
	}
	if commuter.ETA != "08:15" {
		t.Errorf("unexpected eta %q", commuter.ETA)
	}

	feeder := view.Feeder[0]
	if !feeder.Notice {
		t.Error("a feeder 3 minutes out should carry the platform notice")
	}

	intercity := view.Intercity[0]
	if intercity.Train != "Mutiara Selatan (KA 71)" {
		t.Errorf("unexpected train label %q", intercity.Train)
	}
	if intercity.Platform != 5 {
		t.Errorf("unexpected platform %d", intercity.Platform)
	}
	if intercity.Info != "From PADALARANG" {
		t.Errorf("unexpected info %q", intercity.Info)
	}
}

func TestBuildBoardView_FeederPanelOnlyWhereConfigured(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 5, 0, 0, time.UTC)
	view := BuildBoardView(kacRules, nil, now, 30, 0)
	if view.Feeder != nil {
		t.Error("a station without a feeder window should have no feeder panel")
	}

	view = BuildBoardView(bdRules, nil, now, 30, 0)
	if view.Feeder == nil {
		t.Error("a feeder station should always render the panel, even empty")
	}
}

func TestBuildBoardView_RanksAndTruncates(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 5, 0, 0, time.UTC)
	entries := []schedule.Entry{
		boardEntry("KA 1", "A", timetable.LongDistance, 1, intp(60)),
		boardEntry("KA 2", "B", timetable.LongDistance, 2, intp(5)),
		boardEntry("KA 3", "C", timetable.LongDistance, 3, intp(30)),
	}

	view := BuildBoardView(kacRules, entries, now, 30, 2)

	if len(view.Intercity) != 2 {
		t.Fatalf("expected truncation to 2 rows, got %d", len(view.Intercity))
	}
	if view.Intercity[0].Train != "B (KA 2)" || view.Intercity[1].Train != "C (KA 3)" {
		t.Errorf("expected proximity order B then C, got %s then %s",
			view.Intercity[0].Train, view.Intercity[1].Train)
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "KA 370", want: "370"},
		{input: "PLB 7021B", want: "7021"},
		{input: "398A", want: "398"},
		{input: "KA", want: ""},
	}
	for _, tt := range tests {
		if got := digitsOnly(tt.input); got != tt.want {
			t.Errorf("digitsOnly(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestBuildTrackView(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 5, 0, 0, time.UTC)
	entries := []schedule.Entry{
		boardEntry("KA 1", "A", timetable.Commuter, 1, intp(40)),
		boardEntry("KA 2", "B", timetable.Commuter, 1, intp(10)),
		boardEntry("KA 3", "C", timetable.LongDistance, 6, intp(20)),
	}

	view := BuildTrackView(kacRules, entries, now)

	if len(view.Lanes) != kacRules.TotalTracks {
		t.Fatalf("expected %d lanes, got %d", kacRules.TotalTracks, len(view.Lanes))
	}
	lane1 := view.Lanes[0]
	if lane1.Track != 1 || len(lane1.Entries) != 2 {
		t.Fatalf("expected 2 entries on track 1, got %d", len(lane1.Entries))
	}
	if lane1.Entries[0].Movement.TrainNumber != "KA 2" {
		t.Errorf("expected track 1 ranked by proximity, got %s first", lane1.Entries[0].Movement.TrainNumber)
	}
	if len(view.Lanes[5].Entries) != 1 {
		t.Errorf("expected 1 entry on track 6, got %d", len(view.Lanes[5].Entries))
	}
	if len(view.Lanes[2].Entries) != 0 {
		t.Errorf("expected empty lane for track 3, got %d", len(view.Lanes[2].Entries))
	}
}
