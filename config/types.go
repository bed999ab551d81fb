package config

// ServerConfig contains the HTTP API configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// BoardConfig contains display-board behavior shared with consumers
type BoardConfig struct {
	RefreshSeconds int `yaml:"refreshSeconds" validate:"gte=0"`
	MaxItems       int `yaml:"maxItems" validate:"gte=0"`
}

// TelemetryConfig contains the metrics listener configuration.
// An empty address disables telemetry entirely.
type TelemetryConfig struct {
	Addr string `yaml:"addr"`
}

// StationRules holds one station's capacity and timing thresholds.
// All windows are in minutes.
type StationRules struct {
	Code        string `yaml:"code" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	TotalTracks int    `yaml:"totalTracks" validate:"gt=0"`

	// BoardingOpenMin is how long before departure boarding opens.
	BoardingOpenMin int `yaml:"boardingOpenMin" validate:"gte=0"`
	// StopoverImminentMin is how soon before arrival a passing-through
	// train is announced by its arrival instead of its departure time.
	StopoverImminentMin int `yaml:"stopoverImminentMin" validate:"gt=0"`
	// BoardingCloseMin is how soon before departure an originating
	// train flips to "Boarding Closed".
	BoardingCloseMin int `yaml:"boardingCloseMin" validate:"gt=0"`
	// FeederNoticeMin is an extra notice window for feeder shuttles.
	// Zero means the station has no feeder platform.
	FeederNoticeMin int `yaml:"feederNoticeMin" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server        ServerConfig    `yaml:"server" validate:"required"`
	Board         BoardConfig     `yaml:"board"`
	Telemetry     TelemetryConfig `yaml:"telemetry"`
	TimetablePath string          `yaml:"timetablePath" validate:"required"`
	Stations      []StationRules  `yaml:"stations" validate:"required,min=1,dive"`
}
