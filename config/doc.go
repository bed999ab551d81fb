// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// The station list doubles as the station rule table: every station the
// timetable references must have an entry here, and an unknown station code
// at lookup time is treated as a deployment error, not a runtime condition.
package config
