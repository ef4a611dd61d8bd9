package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg FlightConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlightConfig()) {
		t.Errorf("embedded YAML and DefaultFlightConfig() differ:\nyaml: %+v\ncode: %+v", cfg, DefaultFlightConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFlightCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  speed: 7\nmissiles:\n  graze_distance: 40\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlight(path)
	if err != nil {
		t.Fatalf("LoadFlight() error = %v", err)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("Player.Speed = %v, expected 7", cfg.Player.Speed)
	}
	if cfg.Missiles.GrazeDistance != 40 {
		t.Errorf("Missiles.GrazeDistance = %v, expected 40", cfg.Missiles.GrazeDistance)
	}
	// Untouched keys keep their defaults
	if cfg.Player.BoostSpeed != 9 || cfg.Coins.MagnetRadius != 350 {
		t.Errorf("partial file should keep defaults, got boost %v magnet %v", cfg.Player.BoostSpeed, cfg.Coins.MagnetRadius)
	}
}

func TestLoadFlightCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlight(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlight(bad); err == nil {
		t.Error("unparseable custom file should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("weather:\n  cycle_ticks: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlight(invalid); err == nil {
		t.Error("invalid custom file should be an error")
	}
}

func TestLoadFlightSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadFlight("")
	if err != nil {
		t.Fatalf("LoadFlight() error = %v", err)
	}
	if cfg.Player.Speed != 5.5 {
		t.Errorf("default Player.Speed = %v, expected 5.5", cfg.Player.Speed)
	}

	// Local file is picked up
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "flight.yaml"), []byte("player:\n  speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadFlight("")
	if cfg.Player.Speed != 6 {
		t.Errorf("local Player.Speed = %v, expected 6", cfg.Player.Speed)
	}

	// User file wins over local
	userDir := filepath.Join(home, ".flight", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "flight.yaml"), []byte("player:\n  speed: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadFlight("")
	if cfg.Player.Speed != 8 {
		t.Errorf("user Player.Speed = %v, expected 8", cfg.Player.Speed)
	}

	// A broken user file is skipped, falling through to local
	if err := os.WriteFile(filepath.Join(userDir, "flight.yaml"), []byte("::not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadFlight("")
	if cfg.Player.Speed != 6 {
		t.Errorf("after broken user file Player.Speed = %v, expected 6", cfg.Player.Speed)
	}
}

func TestApplyModePreset(t *testing.T) {
	tests := []struct {
		mode       Mode
		difficulty bool
		missiles   bool
		maxRevives int
	}{
		{ModeNormal, true, true, 0},
		{ModeCompetition, true, true, 3},
		{ModeChill, false, false, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			cfg := DefaultFlightConfig()
			ApplyModePreset(&cfg, tc.mode)
			if cfg.Difficulty.Enabled != tc.difficulty {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.difficulty)
			}
			if cfg.Missiles.Enabled != tc.missiles {
				t.Errorf("Missiles.Enabled = %v, expected %v", cfg.Missiles.Enabled, tc.missiles)
			}
			if cfg.Revive.MaxRevives != tc.maxRevives {
				t.Errorf("Revive.MaxRevives = %d, expected %d", cfg.Revive.MaxRevives, tc.maxRevives)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode("chill"); !ok || m != ModeChill {
		t.Errorf("ParseMode(chill) = %v, %v", m, ok)
	}
	if m, ok := ParseMode("hardcore"); ok || m != ModeNormal {
		t.Errorf("ParseMode(hardcore) = %v, %v; expected normal, false", m, ok)
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	cfg := DefaultFlightConfig().Difficulty

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 1},
		{1500, 1.5},
		{3000, 2},
		{3600, 2.2},
		{100000, 2.2}, // capped at 1 + max_bonus
	}

	d := NewDifficultyManager(cfg)
	for _, tc := range tests {
		if got := d.Multiplier(tc.score); got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("Multiplier(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	d.SetEnabled(false)
	if got := d.Multiplier(100000); got != 1 {
		t.Errorf("disabled Multiplier() = %v, expected 1", got)
	}
}

func TestDifficultySpawnInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultFlightConfig().Difficulty)

	if got := d.SpawnInterval(100, 0); got != 100 {
		t.Errorf("SpawnInterval(100, 0) = %d, expected 100", got)
	}
	// 100 / 1.5 = 66.67 -> 66
	if got := d.SpawnInterval(100, 1500); got != 66 {
		t.Errorf("SpawnInterval(100, 1500) = %d, expected 66", got)
	}
	if got := d.SpawnInterval(1, 100000); got != 1 {
		t.Errorf("SpawnInterval never drops below 1, got %d", got)
	}
}

func TestValidateRejectsNonPositiveRadii(t *testing.T) {
	tests := []struct {
		key    string
		mutate func(*FlightConfig, float64)
	}{
		{"missiles.radius", func(c *FlightConfig, v float64) { c.Missiles.Radius = v }},
		{"coins.radius", func(c *FlightConfig, v float64) { c.Coins.Radius = v }},
		{"powerups.radius", func(c *FlightConfig, v float64) { c.PowerUps.Radius = v }},
		{"allies.radius", func(c *FlightConfig, v float64) { c.Allies.Radius = v }},
	}
	for _, tt := range tests {
		for _, v := range []float64{0, -3} {
			cfg := DefaultFlightConfig()
			tt.mutate(&cfg, v)
			err := cfg.Validate()
			if err == nil {
				t.Errorf("%s = %g should fail validation", tt.key, v)
				continue
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("%s = %g: error %q does not name the key", tt.key, v, err)
			}
		}
	}
}
