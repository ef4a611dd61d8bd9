package config

import (
	_ "embed"
)

//go:embed defaults/flight.yaml
var defaultFlightYAML []byte

// DefaultFlightConfig returns the hard-coded flight configuration.
// It mirrors defaults/flight.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlightConfig() FlightConfig {
	return FlightConfig{
		Player: PlayerConfig{
			Speed:         5.5,
			BoostSpeed:    9,
			TurnSpeed:     0.12,
			Radius:        14,
			DeadZone:      10,
			TailOffset:    18,
			SurvivalScore: 0.2,
		},
		Missiles: MissileConfig{
			Enabled:        true,
			SpawnInterval:  100,
			Speed:          4,
			TurnRate:       0.045,
			Radius:         7,
			Drift:          0.05,
			HitMargin:      5,
			GrazeDistance:  35,
			GrazeScore:     25,
			ShieldBonus:    50,
			CollisionBonus: 100,
		},
		Coins: CoinConfig{
			SpawnInterval: 100,
			MaxLive:       10,
			Radius:        12,
			Value:         10,
			Score:         10,
			MagnetRadius:  350,
			MagnetSpeed:   14,
		},
		PowerUps: PowerUpConfig{
			SpawnInterval:  600,
			MaxLive:        3,
			Radius:         14,
			ShieldTicks:    300,
			SpeedTicks:     300,
			MagnetTicks:    480,
			ShockwaveBonus: 50,
			Boosts: BoostConfig{
				ShieldTicks: 600,
				MagnetTicks: 900,
				SpeedTicks:  300,
			},
		},
		Allies: AllyConfig{
			Count:        3,
			Radius:       8,
			Speed:        7,
			LifeTicks:    600,
			DetectRadius: 500,
			KillRadius:   20,
			OrbitRadius:  60,
			OrbitSpeed:   0.05,
			SpawnJitter:  25,
			KillBonus:    50,
		},
		World: WorldConfig{
			SpawnOffset:     100,
			DespawnDistance: 2000,
			TrailLength:     30,
			CellWidth:       10,
			CellHeight:      20,
		},
		Weather: WeatherConfig{
			CycleTicks:         4500,
			Hold:               0.7,
			StormChance:        0.00001,
			SnowChance:         0.00001,
			StormTicks:         1200,
			SnowTicks:          1500,
			IntensityRate:      0.01,
			LightningThreshold: 0.5,
			LightningChance:    0.01,
			LightningTicks:     10,
			LightningAlpha:     0.8,
			LightningDecay:     0.8,
		},
		Particles: ParticleConfig{
			MinSpeed: 2,
			MaxSpeed: 7,
			Decay:    0.03,
			Friction: 0.95,
			MinSize:  2,
			MaxSize:  7,
		},
		Camera: CameraConfig{
			Follow: 0.1,
		},
		Revive: ReviveConfig{
			ShieldTicks:           300,
			MaxRevives:            0,
			CompetitionMaxRevives: 3,
			CostCoins:             200,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			ScoreScale: 3000,
			MaxBonus:   1.2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlightYAML
}
