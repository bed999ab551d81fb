/*
Package schedule is the train schedule processing engine.

Given the static timetable, the station rule table, and a caller-supplied
wall-clock instant, it computes signed countdowns for every movement at a
station, classifies each movement as terminating, originating, or passing
through, and renders a display status with an urgency flag. Movements with
no currently relevant status are dropped, which is how the feed stays
limited to "now-relevant" trains instead of the whole day's timetable.

Every operation here is a deterministic, side-effect-free transformation of
immutable inputs into a freshly allocated output. The engine never reads
the system clock: the caller passes "now" on every call, which makes each
evaluation reproducible and testable without mocking time. A FeedBuilder is
safe for concurrent use.

Typical usage:

	cfg, _ := config.LoadAppConfig("config.yml")
	catalog, _ := timetable.Load(cfg.TimetablePath, cfg)
	feeds := schedule.NewFeedBuilder(catalog, cfg)

	entries, err := feeds.BuildFeed("KAC", time.Now())

The returned entries are in timetable order; ranking and truncation for
display are consumer concerns (see package board).
*/
package schedule
