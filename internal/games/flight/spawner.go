package flight

import (
	"math"

	"github.com/vovakirdan/paper-flight/internal/config"
	"github.com/vovakirdan/paper-flight/internal/core"
)

// Spawner emits missiles, coins and power-ups on frame-counted cadences.
// Everything appears on a circle around the camera just outside the
// viewport so it always arrives from off-screen.
type Spawner struct {
	cfg        config.FlightConfig
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner.
func NewSpawner(cfg config.FlightConfig, difficulty *config.DifficultyManager) *Spawner {
	return &Spawner{cfg: cfg, difficulty: difficulty}
}

// SpawnRadius is the distance from the camera centre at which things appear:
// half the viewport diagonal plus the configured offset.
func (s *Spawner) SpawnRadius(viewport core.Vector) float64 {
	return viewport.Len()/2 + s.cfg.World.SpawnOffset
}

// MissileInterval returns the current missile cadence in ticks.
func (s *Spawner) MissileInterval(score int) int {
	return s.difficulty.SpawnInterval(s.cfg.Missiles.SpawnInterval, score)
}

// Update runs the emitters for the world's current frame.
func (s *Spawner) Update(w *World) {
	frame := w.frame
	score := w.Score()

	if s.cfg.Missiles.Enabled && frame%s.MissileInterval(score) == 0 {
		s.spawnMissile(w, s.difficulty.Multiplier(score))
	}
	if frame%s.cfg.Coins.SpawnInterval == 0 && len(w.Coins) < s.cfg.Coins.MaxLive {
		s.spawnCoin(w)
	}
	if frame%s.cfg.PowerUps.SpawnInterval == 0 && len(w.PowerUps) < s.cfg.PowerUps.MaxLive {
		s.spawnPowerUp(w)
	}
}

func (s *Spawner) position(w *World) core.Vector {
	angle := w.rng.Float64() * 2 * math.Pi
	return w.Camera.Pos.Add(core.FromAngle(angle, s.SpawnRadius(w.viewport)))
}

func (s *Spawner) spawnMissile(w *World, difficulty float64) {
	mc := s.cfg.Missiles
	e := w.newEntity(s.position(w), mc.Radius)
	e.Trail = NewTrail(s.cfg.World.TrailLength)
	w.Missiles = append(w.Missiles, &Missile{
		Entity:   e,
		TurnRate: mc.TurnRate * difficulty,
		Speed:    mc.Speed * difficulty,
	})
}

func (s *Spawner) spawnCoin(w *World) {
	cc := s.cfg.Coins
	w.Coins = append(w.Coins, &Coin{
		Entity: w.newEntity(s.position(w), cc.Radius),
		Value:  cc.Value,
	})
}

func (s *Spawner) spawnPowerUp(w *World) {
	pos := s.position(w)
	kind := PowerUpKind(w.rng.Intn(int(powerKindCount)))
	w.PowerUps = append(w.PowerUps, &PowerUp{
		Entity: w.newEntity(pos, s.cfg.PowerUps.Radius),
		Kind:   kind,
	})
}
