package schedule

import (
	"math"
	"time"

	"github.com/dhisandaichi/poskoka-board/timetable"
)

// MinutesUntil returns the signed whole-minute distance from now to the
// given time of day: positive = future, negative = past, floor rounding.
// A nil time (no scheduled event) yields nil.
//
// The schedule carries only times of day, so a target near midnight is
// ambiguous relative to "now". The resolution is a 12-hour heuristic: a
// candidate more than 12 hours behind now is advanced one day, more than
// 12 hours ahead is moved back one day. With now=23:50 a target of 00:05
// resolves to +15 minutes, not -23h45m. The heuristic misreads offsets
// genuinely beyond 12 hours, which no movement's relevant window ever
// approaches in practice.
func MinutesUntil(t *timetable.ClockTime, now time.Time) *int {
	if t == nil {
		return nil
	}
	target := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
	if target.Before(now) && now.Hour()-t.Hour > 12 {
		target = target.AddDate(0, 0, 1)
	} else if target.After(now) && t.Hour-now.Hour() > 12 {
		target = target.AddDate(0, 0, -1)
	}
	min := int(math.Floor(target.Sub(now).Minutes()))
	return &min
}
