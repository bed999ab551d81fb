package board

import (
	"testing"

	"github.com/dhisandaichi/poskoka-board/schedule"
	"github.com/dhisandaichi/poskoka-board/timetable"
)

func intp(n int) *int { return &n }

func entryWith(number string, minToArr, minToDep *int) schedule.Entry {
	return schedule.Entry{
		Movement:           timetable.Movement{TrainNumber: number, Track: 1},
		MinutesToArrival:   minToArr,
		MinutesToDeparture: minToDep,
		Status:             "Arriving in 1 min",
	}
}

func TestRank(t *testing.T) {
	entries := []schedule.Entry{
		entryWith("far", intp(90), nil),
		entryWith("no-countdown", nil, nil),
		entryWith("just-arrived", intp(-3), intp(5)),
		entryWith("departing", nil, intp(12)),
	}

	Rank(entries)

	want := []string{"just-arrived", "departing", "far", "no-countdown"}
	for i, number := range want {
		if entries[i].Movement.TrainNumber != number {
			t.Errorf("position %d: expected %s, got %s", i, number, entries[i].Movement.TrainNumber)
		}
	}
}

func TestRank_ArrivalWinsOverDeparture(t *testing.T) {
	// An entry with both countdowns ranks by arrival, even when the
	// departure is nearer.
	entries := []schedule.Entry{
		entryWith("both", intp(40), intp(2)),
		entryWith("dep-only", nil, intp(10)),
	}
	Rank(entries)
	if entries[0].Movement.TrainNumber != "dep-only" {
		t.Errorf("expected dep-only first, got %s", entries[0].Movement.TrainNumber)
	}
}

func TestTruncate(t *testing.T) {
	entries := []schedule.Entry{
		entryWith("a", intp(1), nil),
		entryWith("b", intp(2), nil),
		entryWith("c", intp(3), nil),
	}

	if got := Truncate(entries, 2); len(got) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got))
	}
	if got := Truncate(entries, 0); len(got) != 3 {
		t.Errorf("limit 0 should keep everything, got %d", len(got))
	}
	if got := Truncate(entries, 10); len(got) != 3 {
		t.Errorf("limit beyond length should keep everything, got %d", len(got))
	}
}
