package schedule

import "strings"

// ParseRoute splits a free-text route description such as
// "BANDUNG - CICALENGKA" or "SURABAYA GUBENG -> BANDUNG" into origin and
// destination labels.
//
// The parser is permissive by contract: timetable data is externally
// curated and not validated at ingestion, so text that does not split into
// two parts yields the raw input as both labels rather than an error.
func ParseRoute(routeText string) (origin, destination string) {
	clean := strings.ReplaceAll(routeText, "->", "-")
	parts := strings.Split(clean, "-")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return routeText, routeText
}
