package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const flightFile = "flight.yaml"

// LoadFlight loads the flight configuration. Files are applied on top of the
// defaults, so a partial file only overrides the keys it names.
// Search order: customPath -> ~/.flight/configs/flight.yaml -> ./configs/flight.yaml -> embedded default
func LoadFlight(customPath string) (FlightConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := baseConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(flightFile); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", flightFile)); ok {
		return cfg, nil
	}

	return baseConfig(), nil
}

// baseConfig returns the embedded defaults, or the hard-coded ones if the
// embedded file is broken.
func baseConfig() FlightConfig {
	cfg := DefaultFlightConfig()
	if err := yaml.Unmarshal(defaultFlightYAML, &cfg); err != nil {
		return DefaultFlightConfig()
	}
	return cfg
}

// tryFile loads an optional config file; unreadable or invalid files are skipped.
func tryFile(path string) (FlightConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlightConfig{}, false
	}
	cfg := baseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlightConfig{}, false
	}
	if cfg.Validate() != nil {
		return FlightConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flight", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c FlightConfig) Validate() error {
	var errs []error
	positiveInt := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	positiveInt("missiles.spawn_interval", c.Missiles.SpawnInterval)
	positiveInt("coins.spawn_interval", c.Coins.SpawnInterval)
	positiveInt("powerups.spawn_interval", c.PowerUps.SpawnInterval)
	positiveInt("world.trail_length", c.World.TrailLength)
	positiveInt("weather.cycle_ticks", c.Weather.CycleTicks)
	positive("player.speed", c.Player.Speed)
	positive("player.radius", c.Player.Radius)
	positive("missiles.radius", c.Missiles.Radius)
	positive("coins.radius", c.Coins.Radius)
	positive("powerups.radius", c.PowerUps.Radius)
	positive("allies.radius", c.Allies.Radius)
	positive("world.cell_width", c.World.CellWidth)
	positive("world.cell_height", c.World.CellHeight)
	if c.Weather.Hold < 0 || c.Weather.Hold >= 1 {
		errs = append(errs, fmt.Errorf("weather.hold must be in [0, 1), got %g", c.Weather.Hold))
	}
	if c.Camera.Follow <= 0 || c.Camera.Follow > 1 {
		errs = append(errs, fmt.Errorf("camera.follow must be in (0, 1], got %g", c.Camera.Follow))
	}
	return errors.Join(errs...)
}

// ApplyModePreset modifies the config for a game mode.
func ApplyModePreset(cfg *FlightConfig, mode Mode) {
	switch mode {
	case ModeCompetition:
		cfg.Difficulty.Enabled = true
		cfg.Revive.MaxRevives = cfg.Revive.CompetitionMaxRevives
	case ModeChill:
		// Relaxed flight: no enemies, no ramp.
		cfg.Difficulty.Enabled = false
		cfg.Missiles.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
	}
}
