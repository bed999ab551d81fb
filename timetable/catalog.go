package timetable

import (
	"sort"
	"strings"
)

// Catalog stores the loaded timetable in memory for fast per-station lookups
type Catalog struct {
	byStation map[string][]Movement
	total     int
}

// NewCatalog indexes movements by station code, preserving file order
// within each station.
func NewCatalog(movements []Movement) *Catalog {
	c := &Catalog{byStation: map[string][]Movement{}}
	for _, mv := range movements {
		code := strings.ToUpper(mv.StationCode)
		c.byStation[code] = append(c.byStation[code], mv)
		c.total++
	}
	return c
}

// ByStation returns the station's movements in timetable order.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) ByStation(code string) []Movement {
	return c.byStation[strings.ToUpper(code)]
}

// Stations returns the known station codes, sorted.
func (c *Catalog) Stations() []string {
	codes := make([]string, 0, len(c.byStation))
	for code := range c.byStation {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the total movement count across all stations.
func (c *Catalog) Len() int { return c.total }
