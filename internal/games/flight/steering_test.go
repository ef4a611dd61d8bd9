package flight

import (
	"math"
	"testing"

	"github.com/vovakirdan/paper-flight/internal/core"
)

const eps = 1e-9

func TestTurnToward(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		target  float64
		maxTurn float64
		want    float64
	}{
		{"clamped left", 0, math.Pi / 2, 0.1, 0.1},
		{"clamped right", 0, -math.Pi / 2, 0.1, -0.1},
		{"within reach", 0, 0.05, 0.1, 0.05},
		{"short way across pi", 3.0, -3.0, 0.1, 3.1},
		{"unwrapped heading", 6 * math.Pi, math.Pi / 2, 0.1, 6*math.Pi + 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TurnToward(tt.heading, tt.target, tt.maxTurn)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("TurnToward(%v, %v, %v) = %v, want %v", tt.heading, tt.target, tt.maxTurn, got, tt.want)
			}
		})
	}
}

func TestPlayerTurnRateClamp(t *testing.T) {
	w, _ := newTestWorld(quietConfig())
	maxTurn := w.cfg.Player.TurnSpeed * w.cosmetics.Model(w.Player.Loadout.ModelID).Turn
	back := core.Steer{Active: true, Current: core.Vec(-100, 0)}

	for i := 0; i < 40; i++ {
		before := w.Player.Heading
		w.Tick(back)
		if d := math.Abs(core.WrapAngle(w.Player.Heading - before)); d > maxTurn+eps {
			t.Fatalf("tick %d turned %f, limit %f", i, d, maxTurn)
		}
	}
	if d := math.Abs(core.WrapAngle(w.Player.Heading - math.Pi)); d > eps {
		t.Errorf("heading should settle on pi, off by %f", d)
	}
}

func TestSteerDeadZoneAndRelease(t *testing.T) {
	w, _ := newTestWorld(quietConfig())

	w.Tick(core.Steer{Active: true, Current: core.Vec(0, 5)})
	if w.Player.Heading != 0 {
		t.Errorf("drag inside the dead zone turned to %f", w.Player.Heading)
	}

	w.Tick(core.Steer{Active: true, Current: core.Vec(0, 100)})
	turned := w.Player.Heading
	if turned <= 0 {
		t.Fatalf("drag down should turn clockwise, heading %f", turned)
	}

	w.Tick(core.Steer{})
	if w.Player.Heading != turned {
		t.Errorf("released drag changed heading from %f to %f", turned, w.Player.Heading)
	}
}

func TestMissileTurnRateClamp(t *testing.T) {
	w, _ := newTestWorld(quietConfig())
	m := addMissile(w, core.Vec(500, 0), w.cfg.Missiles.Speed)

	for i := 0; i < 30; i++ {
		before := m.Heading
		w.Tick(core.Steer{})
		if d := math.Abs(core.WrapAngle(m.Heading - before)); d > m.TurnRate+eps {
			t.Fatalf("tick %d: missile turned %f, limit %f", i, d, m.TurnRate)
		}
	}
}

func TestMissileFirstTickSnapsVelocity(t *testing.T) {
	w, _ := newTestWorld(quietConfig())
	m := addMissile(w, core.Vec(0, 500), 4)

	w.Tick(core.Steer{})

	if math.Abs(m.Vel.Len()-4) > eps {
		t.Errorf("first tick speed = %f, want 4", m.Vel.Len())
	}
}

func TestGrazeAwardsOnce(t *testing.T) {
	w, rec := newTestWorld(quietConfig())
	m := addMissile(w, core.Vec(5.5, 25), 0)

	for i := 0; i < 3; i++ {
		w.Tick(core.Steer{})
	}

	if !m.Grazed {
		t.Fatal("missile inside the graze band should be grazed")
	}
	if n := rec.cueCount(core.CueGraze); n != 1 {
		t.Errorf("graze cue count = %d, want 1", n)
	}
	if got := rec.total(core.EventScore); got != w.cfg.Missiles.GrazeScore {
		t.Errorf("graze score = %d, want %d", got, w.cfg.Missiles.GrazeScore)
	}
	if w.Dead() {
		t.Error("graze must not kill")
	}
}

func TestNoGrazeInsideHitBand(t *testing.T) {
	w, rec := newTestWorld(quietConfig())
	m := addMissile(w, core.Vec(5.5, 10), 0)

	w.Tick(core.Steer{})

	if m.Grazed || rec.cueCount(core.CueGraze) != 0 {
		t.Error("contact inside the hit band is not a graze")
	}
	if !w.Dead() {
		t.Error("contact inside the hit band should kill")
	}
}

func TestAllySquad(t *testing.T) {
	w, _ := newTestWorld(quietConfig())
	w.powerups.Activate(w, PowerAllies)

	ac := w.cfg.Allies
	if len(w.Allies) != ac.Count {
		t.Fatalf("allies = %d, want %d", len(w.Allies), ac.Count)
	}
	for i, a := range w.Allies {
		want := float64(i) * 2 * math.Pi / float64(ac.Count)
		if math.Abs(a.OrbitOffset-want) > eps {
			t.Errorf("ally %d orbit offset = %f, want %f", i, a.OrbitOffset, want)
		}
		if a.LifeTicks != ac.LifeTicks {
			t.Errorf("ally %d life = %d, want %d", i, a.LifeTicks, ac.LifeTicks)
		}
		if d := core.Dist(a.Pos, w.Player.Pos); d > ac.SpawnJitter*math.Sqrt2+eps {
			t.Errorf("ally %d spawned %f away", i, d)
		}
	}

	for i := 0; i < 10; i++ {
		w.Tick(core.Steer{})
	}
	for i, a := range w.Allies {
		if a.TargetID != 0 {
			t.Errorf("ally %d has a target without missiles", i)
		}
		if a.LifeTicks != ac.LifeTicks-10 {
			t.Errorf("ally %d life = %d, want %d", i, a.LifeTicks, ac.LifeTicks-10)
		}
	}
}

func TestAllyKillsMissile(t *testing.T) {
	w, rec := newTestWorld(quietConfig())
	w.powerups.Activate(w, PowerAllies)
	m := addMissile(w, core.Vec(0, 150), 0)

	for i := 0; i < 40 && m.Alive; i++ {
		w.Tick(core.Steer{})
	}

	if m.Alive {
		t.Fatal("allies should have destroyed the missile")
	}
	if got := w.LiveAllies(); got != w.cfg.Allies.Count-1 {
		t.Errorf("live allies = %d, want %d", got, w.cfg.Allies.Count-1)
	}
	if rec.total(core.EventMissiles) != 1 {
		t.Errorf("missiles credited = %d, want 1", rec.total(core.EventMissiles))
	}
	if rec.total(core.EventScore) != w.cfg.Allies.KillBonus {
		t.Errorf("score = %d, want %d", rec.total(core.EventScore), w.cfg.Allies.KillBonus)
	}
}

func TestAllyExpiry(t *testing.T) {
	w, _ := newTestWorld(quietConfig())
	w.powerups.Activate(w, PowerAllies)
	for _, a := range w.Allies {
		a.LifeTicks = 1
	}

	w.Tick(core.Steer{})

	if len(w.Allies) != 0 {
		t.Errorf("expired allies should be removed, %d left", len(w.Allies))
	}
}

func TestTrailThrottling(t *testing.T) {
	w, _ := newTestWorld(quietConfig())

	for i := 0; i < 10; i++ {
		w.Tick(core.Steer{})
	}
	if got := w.Player.Trail.Len(); got != 5 {
		t.Errorf("trail after 10 ticks = %d points, want 5", got)
	}

	for i := 0; i < 100; i++ {
		w.Tick(core.Steer{})
	}
	if got, want := w.Player.Trail.Len(), w.cfg.World.TrailLength; got != want {
		t.Errorf("trail length = %d, want capped at %d", got, want)
	}
}

func TestCamera(t *testing.T) {
	c := NewCamera(core.Vector{}, 0.1)
	c.Update(core.Vec(100, 0))
	if math.Abs(c.Pos.X-10) > eps || c.Pos.Y != 0 {
		t.Errorf("camera = %v, want (10, 0)", c.Pos)
	}

	viewport := core.Vec(800, 480)
	if got := c.WorldToScreen(c.Pos, viewport); got != core.Vec(400, 240) {
		t.Errorf("camera centre maps to %v, want (400, 240)", got)
	}
	p := core.Vec(123, -45)
	if got := c.ScreenToWorld(c.WorldToScreen(p, viewport), viewport); core.Dist(got, p) > eps {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}
