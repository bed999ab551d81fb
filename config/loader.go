package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = 16181
	defaultRefreshSeconds = 30
	defaultMaxItems       = 12

	// Board refresh is clamped so a misconfigured consumer can neither
	// hammer the server nor show stale countdowns.
	minRefreshSeconds = 10
	maxRefreshSeconds = 60
)

// LoadAppConfig loads and validates the application configuration.
// When path is empty the default locations are tried in order.
func LoadAppConfig(path string) (AppConfig, error) {
	paths := []string{"config.yml", "./deploy/config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: %w", err)
	}
	seen := map[string]bool{}
	for _, st := range cfg.Stations {
		code := strings.ToUpper(st.Code)
		if seen[code] {
			return AppConfig{}, fmt.Errorf("config: duplicate station code %q", st.Code)
		}
		seen[code] = true
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Board.RefreshSeconds == 0 {
		cfg.Board.RefreshSeconds = defaultRefreshSeconds
	}
	if cfg.Board.RefreshSeconds < minRefreshSeconds {
		cfg.Board.RefreshSeconds = minRefreshSeconds
	}
	if cfg.Board.RefreshSeconds > maxRefreshSeconds {
		cfg.Board.RefreshSeconds = maxRefreshSeconds
	}
	if cfg.Board.MaxItems == 0 {
		cfg.Board.MaxItems = defaultMaxItems
	}
}

// RulesFor returns the rule table entry for a station code.
// Unknown codes indicate a configuration mismatch and fail fast.
func (c AppConfig) RulesFor(code string) (StationRules, error) {
	for _, st := range c.Stations {
		if strings.EqualFold(st.Code, code) {
			return st, nil
		}
	}
	return StationRules{}, fmt.Errorf("config: unknown station code %q", code)
}
