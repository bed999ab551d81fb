package board

import (
	"sort"

	"github.com/dhisandaichi/poskoka-board/schedule"
)

// fallbackMinutes ranks entries with no countdown at all behind everything
// with one.
const fallbackMinutes = 999

func eventMinutes(e schedule.Entry) int {
	switch {
	case e.MinutesToArrival != nil:
		return abs(*e.MinutesToArrival)
	case e.MinutesToDeparture != nil:
		return abs(*e.MinutesToDeparture)
	default:
		return fallbackMinutes
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Rank sorts entries in place by absolute proximity to their relevant
// event. The sort is stable so ties keep timetable order.
func Rank(entries []schedule.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return eventMinutes(entries[i]) < eventMinutes(entries[j])
	})
}

// Truncate limits entries to a display count. n <= 0 means no limit.
func Truncate(entries []schedule.Entry, n int) []schedule.Entry {
	if n <= 0 || len(entries) <= n {
		return entries
	}
	return entries[:n]
}
