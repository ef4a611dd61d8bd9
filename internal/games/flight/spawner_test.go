package flight

import (
	"math"
	"testing"

	"github.com/vovakirdan/paper-flight/internal/config"
	"github.com/vovakirdan/paper-flight/internal/core"
)

func TestSpawnRadius(t *testing.T) {
	w, _ := newTestWorld(config.DefaultFlightConfig())
	want := math.Hypot(800, 480)/2 + w.cfg.World.SpawnOffset

	if got := w.spawner.SpawnRadius(w.viewport); math.Abs(got-want) > 1e-9 {
		t.Fatalf("SpawnRadius = %f, want %f", got, want)
	}

	w.Camera.Pos = core.Vec(300, -200)
	w.frame = w.cfg.Missiles.SpawnInterval
	w.spawner.Update(w)

	if len(w.Missiles) != 1 || len(w.Coins) != 1 {
		t.Fatalf("expected one missile and one coin, got %d and %d", len(w.Missiles), len(w.Coins))
	}
	for _, p := range []core.Vector{w.Missiles[0].Pos, w.Coins[0].Pos} {
		if d := core.Dist(p, w.Camera.Pos); math.Abs(d-want) > 1e-6 {
			t.Errorf("spawned %f from the camera, want %f", d, want)
		}
	}
}

func TestSpawnerCaps(t *testing.T) {
	cfg := config.DefaultFlightConfig()
	cfg.Missiles.Enabled = false
	w, _ := newTestWorld(cfg)

	for f := 1; f <= 20000; f++ {
		w.frame = f
		w.spawner.Update(w)
		if len(w.Coins) > cfg.Coins.MaxLive {
			t.Fatalf("frame %d: %d coins live, cap %d", f, len(w.Coins), cfg.Coins.MaxLive)
		}
		if len(w.PowerUps) > cfg.PowerUps.MaxLive {
			t.Fatalf("frame %d: %d power-ups live, cap %d", f, len(w.PowerUps), cfg.PowerUps.MaxLive)
		}
	}
	if len(w.Coins) != cfg.Coins.MaxLive || len(w.PowerUps) != cfg.PowerUps.MaxLive {
		t.Errorf("caps should be reached: %d coins, %d power-ups", len(w.Coins), len(w.PowerUps))
	}
}

func TestPowerUpKindsAreUniform(t *testing.T) {
	cfg := config.DefaultFlightConfig()
	cfg.PowerUps.MaxLive = 1 << 20
	w, _ := newTestWorld(cfg)

	seen := map[PowerUpKind]int{}
	for i := 0; i < 500; i++ {
		w.spawner.spawnPowerUp(w)
	}
	for _, pu := range w.PowerUps {
		seen[pu.Kind]++
	}
	for k := PowerShield; k < powerKindCount; k++ {
		if seen[k] == 0 {
			t.Errorf("kind %v never spawned", k)
		}
	}
}

func TestMissileDifficultyScaling(t *testing.T) {
	w, _ := newTestWorld(config.DefaultFlightConfig())
	mc := w.cfg.Missiles

	if got := w.spawner.MissileInterval(0); got != mc.SpawnInterval {
		t.Errorf("interval at score 0 = %d, want %d", got, mc.SpawnInterval)
	}
	if got := w.spawner.MissileInterval(1500); got != 66 {
		t.Errorf("interval at score 1500 = %d, want 66", got)
	}

	w.score = 3000
	w.frame = w.spawner.MissileInterval(w.score)
	w.spawner.Update(w)
	if len(w.Missiles) != 1 {
		t.Fatalf("expected a missile, got %d", len(w.Missiles))
	}
	m := w.Missiles[0]
	if math.Abs(m.Speed-mc.Speed*2) > 1e-9 || math.Abs(m.TurnRate-mc.TurnRate*2) > 1e-9 {
		t.Errorf("missile speed/turn = %f/%f, want doubled", m.Speed, m.TurnRate)
	}
}

func TestChillModeHasNoMissiles(t *testing.T) {
	cfg := config.DefaultFlightConfig()
	config.ApplyModePreset(&cfg, config.ModeChill)
	w, _ := newTestWorld(cfg)

	for i := 0; i < 2000 && !w.Dead(); i++ {
		w.Tick(steerScript(i))
	}
	if w.Frame() != 2000 {
		t.Errorf("chill run ended at frame %d", w.Frame())
	}
	if len(w.Missiles) != 0 {
		t.Errorf("chill mode spawned %d missiles", len(w.Missiles))
	}
	if w.Difficulty() != 1 {
		t.Errorf("chill difficulty = %f, want 1", w.Difficulty())
	}
}
