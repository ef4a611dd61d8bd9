// Package config provides YAML-based game configuration loading and
// difficulty scaling for paper flight.
package config

// FlightConfig contains every tunable of the simulation.
// Distances are world units, durations are logic ticks (60 per second).
type FlightConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Missiles   MissileConfig    `yaml:"missiles"`
	Coins      CoinConfig       `yaml:"coins"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Allies     AllyConfig       `yaml:"allies"`
	World      WorldConfig      `yaml:"world"`
	Weather    WeatherConfig    `yaml:"weather"`
	Particles  ParticleConfig   `yaml:"particles"`
	Camera     CameraConfig     `yaml:"camera"`
	Revive     ReviveConfig     `yaml:"revive"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the glider's handling.
type PlayerConfig struct {
	Speed         float64 `yaml:"speed"`
	BoostSpeed    float64 `yaml:"boost_speed"`
	TurnSpeed     float64 `yaml:"turn_speed"` // rad per tick
	Radius        float64 `yaml:"radius"`
	DeadZone      float64 `yaml:"dead_zone"` // minimum drag length, pixels
	TailOffset    float64 `yaml:"tail_offset"`
	SurvivalScore float64 `yaml:"survival_score"` // points per tick alive
}

// MissileConfig defines homing missiles and their scoring.
type MissileConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SpawnInterval  int     `yaml:"spawn_interval"`
	Speed          float64 `yaml:"speed"`
	TurnRate       float64 `yaml:"turn_rate"`
	Radius         float64 `yaml:"radius"`
	Drift          float64 `yaml:"drift"` // velocity blend toward desired
	HitMargin      float64 `yaml:"hit_margin"`
	GrazeDistance  float64 `yaml:"graze_distance"`
	GrazeScore     int     `yaml:"graze_score"`
	ShieldBonus    int     `yaml:"shield_bonus"`
	CollisionBonus int     `yaml:"collision_bonus"` // missile x missile
}

// CoinConfig defines collectible coins and the magnet.
type CoinConfig struct {
	SpawnInterval int     `yaml:"spawn_interval"`
	MaxLive       int     `yaml:"max_live"`
	Radius        float64 `yaml:"radius"`
	Value         int     `yaml:"value"`
	Score         int     `yaml:"score"`
	MagnetRadius  float64 `yaml:"magnet_radius"`
	MagnetSpeed   float64 `yaml:"magnet_speed"`
}

// PowerUpConfig defines pickups, effect durations and pre-run boosts.
type PowerUpConfig struct {
	SpawnInterval  int         `yaml:"spawn_interval"`
	MaxLive        int         `yaml:"max_live"`
	Radius         float64     `yaml:"radius"`
	ShieldTicks    int         `yaml:"shield_ticks"`
	SpeedTicks     int         `yaml:"speed_ticks"`
	MagnetTicks    int         `yaml:"magnet_ticks"`
	ShockwaveBonus int         `yaml:"shockwave_bonus"`
	Boosts         BoostConfig `yaml:"boosts"`
}

// BoostConfig defines effect durations granted by pre-run boosts.
type BoostConfig struct {
	ShieldTicks int `yaml:"shield_ticks"`
	MagnetTicks int `yaml:"magnet_ticks"`
	SpeedTicks  int `yaml:"speed_ticks"`
}

// AllyConfig defines the escort squad.
type AllyConfig struct {
	Count        int     `yaml:"count"`
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	LifeTicks    int     `yaml:"life_ticks"`
	DetectRadius float64 `yaml:"detect_radius"`
	KillRadius   float64 `yaml:"kill_radius"`
	OrbitRadius  float64 `yaml:"orbit_radius"`
	OrbitSpeed   float64 `yaml:"orbit_speed"` // rad per tick
	SpawnJitter  float64 `yaml:"spawn_jitter"`
	KillBonus    int     `yaml:"kill_bonus"`
}

// WorldConfig defines spawn/despawn radii, trails and the terminal scale.
type WorldConfig struct {
	SpawnOffset     float64 `yaml:"spawn_offset"`
	DespawnDistance float64 `yaml:"despawn_distance"`
	TrailLength     int     `yaml:"trail_length"`
	CellWidth       float64 `yaml:"cell_width"`  // world units per terminal column
	CellHeight      float64 `yaml:"cell_height"` // world units per terminal row
}

// WeatherConfig defines the day/night cycle and random weather events.
type WeatherConfig struct {
	CycleTicks         int     `yaml:"cycle_ticks"`
	Hold               float64 `yaml:"hold"` // fraction of a phase before blending
	StormChance        float64 `yaml:"storm_chance"`
	SnowChance         float64 `yaml:"snow_chance"`
	StormTicks         int     `yaml:"storm_ticks"`
	SnowTicks          int     `yaml:"snow_ticks"`
	IntensityRate      float64 `yaml:"intensity_rate"`
	LightningThreshold float64 `yaml:"lightning_threshold"`
	LightningChance    float64 `yaml:"lightning_chance"`
	LightningTicks     int     `yaml:"lightning_ticks"`
	LightningAlpha     float64 `yaml:"lightning_alpha"`
	LightningDecay     float64 `yaml:"lightning_decay"`
}

// ParticleConfig defines burst particles.
type ParticleConfig struct {
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Decay    float64 `yaml:"decay"` // life lost per tick
	Friction float64 `yaml:"friction"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
}

// CameraConfig defines camera smoothing.
type CameraConfig struct {
	Follow float64 `yaml:"follow"`
}

// ReviveConfig defines continuing a run after a crash.
type ReviveConfig struct {
	ShieldTicks int `yaml:"shield_ticks"`
	MaxRevives  int `yaml:"max_revives"` // 0 = unlimited
	// CompetitionMaxRevives replaces MaxRevives in competition mode.
	CompetitionMaxRevives int `yaml:"competition_max_revives"`
	CostCoins             int `yaml:"cost_coins"`
}

// DifficultyConfig defines how hard the game gets as the score grows:
// multiplier = 1 + min(score/score_scale, max_bonus).
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled"`
	ScoreScale float64 `yaml:"score_scale"`
	MaxBonus   float64 `yaml:"max_bonus"`
}

// Mode represents a named game mode.
type Mode string

const (
	ModeNormal      Mode = "normal"
	ModeCompetition Mode = "competition"
	ModeChill       Mode = "chill"
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeNormal, ModeCompetition, ModeChill}

// ParseMode parses a mode name, defaulting to normal.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if string(m) == s {
			return m, true
		}
	}
	return ModeNormal, false
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeCompetition:
		return "Competition"
	case ModeChill:
		return "Chill"
	default:
		return "Normal"
	}
}
