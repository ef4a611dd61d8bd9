package flight

import "github.com/vovakirdan/paper-flight/internal/core"

// Particle counts of the fixed-palette bursts.
const (
	shieldBurst    = 10
	collisionBurst = 20
	allyBurst      = 10
	coinBurst      = 5
	pickupBurst    = 15
	shockwaveBurst = 5
)

// Overlap reports circle-circle contact.
func Overlap(a, b core.Vector, ra, rb float64) bool {
	return core.Dist(a, b) < ra+rb
}

// collide resolves every contact of the tick. Entities killed here stay in
// their slices until the end-of-tick filter but are skipped from then on.
func (w *World) collide() {
	w.collideMissilesWithPlayer()
	w.collideMissiles()
	w.collideAllies()
	w.collectCoins()
	w.collectPowerUps()
	w.despawn()
}

func (w *World) collideMissilesWithPlayer() {
	p := w.Player
	for _, m := range w.Missiles {
		if !m.Alive || !p.Alive {
			continue
		}
		if core.Dist(m.Pos, p.Pos) >= w.hitDistance(m) {
			continue
		}
		if p.ShieldActive {
			m.Alive = false
			w.addScore(w.cfg.Missiles.ShieldBonus)
			w.sinks.Stats.OnEvent(core.EventMissiles, 1)
			w.burst(m.Pos, colorShield, shieldBurst)
			w.sinks.Cues.OnCue(core.CueExplosion)
			continue
		}
		w.killPlayer()
	}
}

// killPlayer ends the run.
func (w *World) killPlayer() {
	p := w.Player
	p.Alive = false
	w.deathBurst(p.Pos, w.cosmetics.DeathEffect(p.Loadout.DeathEffectID))
	w.sinks.Cues.OnCue(core.CueGameOver)
	w.sinks.Lifecycle.OnPlayerDied()
}

func (w *World) collideMissiles() {
	for i, a := range w.Missiles {
		if !a.Alive {
			continue
		}
		for _, b := range w.Missiles[i+1:] {
			if !b.Alive || !Overlap(a.Pos, b.Pos, a.Radius, b.Radius) {
				continue
			}
			a.Alive = false
			b.Alive = false
			w.addScore(w.cfg.Missiles.CollisionBonus)
			w.sinks.Stats.OnEvent(core.EventMissiles, 2)
			w.burst(a.Pos, colorGold, collisionBurst)
			w.sinks.Cues.OnCue(core.CueExplosion)
			break
		}
	}
}

// collideAllies lets each ally take out the missile it is chasing.
func (w *World) collideAllies() {
	for _, a := range w.Allies {
		if !a.Alive || a.TargetID == 0 {
			continue
		}
		m := w.missileByID(a.TargetID)
		if m == nil || !m.Alive || core.Dist(a.Pos, m.Pos) >= w.cfg.Allies.KillRadius {
			continue
		}
		a.Alive = false
		m.Alive = false
		w.addScore(w.cfg.Allies.KillBonus)
		w.sinks.Stats.OnEvent(core.EventMissiles, 1)
		w.burst(m.Pos, colorAlly, allyBurst)
		w.sinks.Cues.OnCue(core.CueExplosion)
	}
}

func (w *World) missileByID(id int) *Missile {
	for _, m := range w.Missiles {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (w *World) collectCoins() {
	p := w.Player
	for _, c := range w.Coins {
		if !c.Alive || !p.Alive || !Overlap(c.Pos, p.Pos, c.Radius, p.Radius) {
			continue
		}
		c.Alive = false
		w.coins += c.Value
		w.sinks.Currency.OnCoinsCollected(c.Value)
		w.sinks.Stats.OnEvent(core.EventCoins, c.Value)
		w.addScore(w.cfg.Coins.Score)
		w.burst(c.Pos, colorGold, coinBurst)
		w.sinks.Cues.OnCue(core.CueCoin)
	}
}

func (w *World) collectPowerUps() {
	p := w.Player
	for _, pu := range w.PowerUps {
		if !pu.Alive || !p.Alive || !Overlap(pu.Pos, p.Pos, pu.Radius, p.Radius) {
			continue
		}
		pu.Alive = false
		w.powerups.Queue(pu.Kind)
		w.burst(pu.Pos, pu.Kind.Color(), pickupBurst)
		w.sinks.Cues.OnCue(core.CuePowerUp)
	}
}

// despawn drops anything that drifted beyond the despawn radius.
func (w *World) despawn() {
	center := w.Player.Pos
	limit := w.DespawnDistance()
	far := func(e *Entity) {
		if e.Alive && core.Dist(e.Pos, center) > limit {
			e.Alive = false
		}
	}
	for _, m := range w.Missiles {
		far(&m.Entity)
	}
	for _, c := range w.Coins {
		far(&c.Entity)
	}
	for _, pu := range w.PowerUps {
		far(&pu.Entity)
	}
	for _, a := range w.Allies {
		far(&a.Entity)
	}
}
