package timetable

import (
	"fmt"
	"log"

	"github.com/BurntSushi/toml"

	"github.com/dhisandaichi/poskoka-board/config"
)

type timetableFile struct {
	Movement []Movement `toml:"movement"`
}

// Load reads the timetable TOML file and builds a Catalog, validating each
// movement against the station rule table. Entries with no scheduled times
// are skipped; capacity and station-code violations abort the load.
func Load(path string, cfg config.AppConfig) (*Catalog, error) {
	var file timetableFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("timetable: decode %s: %w", path, err)
	}
	movements := make([]Movement, 0, len(file.Movement))
	for _, mv := range file.Movement {
		if mv.Arrival == nil && mv.Departure == nil {
			log.Printf("timetable: skipping %s at %s: no scheduled times", mv.TrainNumber, mv.StationCode)
			continue
		}
		rules, err := cfg.RulesFor(mv.StationCode)
		if err != nil {
			return nil, fmt.Errorf("timetable: train %s: %w", mv.TrainNumber, err)
		}
		if mv.Track < 1 || mv.Track > rules.TotalTracks {
			return nil, fmt.Errorf("timetable: train %s at %s: track %d outside 1..%d",
				mv.TrainNumber, mv.StationCode, mv.Track, rules.TotalTracks)
		}
		movements = append(movements, mv)
	}
	return NewCatalog(movements), nil
}
