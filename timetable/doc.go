/*
Package timetable provides the static timetable store.

The timetable is a hand-curated TOML file of scheduled movements, one
[[movement]] table per train-at-a-station. It is loaded once at startup into
an immutable in-memory Catalog keyed by station code; nothing mutates it
afterwards, so the catalog is safe to share across goroutines.

A movement is one scheduled arrival/departure event for a single train at a
single station. The same physical train appearing at two stations is two
independent movements; no cross-station linkage is modeled.

Load-time hygiene: entries with neither an arrival nor a departure carry no
usable information and are skipped with a log line. A track number outside
the station's configured capacity, or a station code with no rule-table
entry, aborts the load — those are deployment errors, not data noise.
*/
package timetable
