package flight

import (
	"math"

	"github.com/vovakirdan/paper-flight/internal/catalog"
	"github.com/vovakirdan/paper-flight/internal/core"
)

// Trail throttles and tail offsets per entity kind.
const (
	playerTrailEvery  = 2
	missileTrailEvery = 2
	allyTrailEvery    = 4
	missileTailOffset = 10
	allyTailOffset    = 8
)

// TurnToward rotates heading toward target by at most maxTurn radians,
// taking the short way round.
func TurnToward(heading, target, maxTurn float64) float64 {
	diff := core.WrapAngle(target - heading)
	return heading + core.ClampF(diff, -maxTurn, maxTurn)
}

// steer moves every live entity for this tick. The model is looked up
// once per tick so a loadout change never leaves a stale reference.
func (w *World) steer(in core.Steer) {
	model := w.cosmetics.Model(w.Player.Loadout.ModelID)
	w.steerPlayer(in, model)
	w.Camera.Update(w.Player.Pos)

	for _, a := range w.Allies {
		if a.Alive {
			w.steerAlly(a)
		}
	}
	for _, m := range w.Missiles {
		if m.Alive {
			w.steerMissile(m)
			w.checkGraze(m)
		}
	}
	for _, c := range w.Coins {
		if c.Alive {
			w.pullCoin(c)
		}
	}
}

// steerPlayer turns toward the drag direction once the drag leaves the dead
// zone, then flies forward. Releasing the drag keeps the current heading.
func (w *World) steerPlayer(in core.Steer, model catalog.Model) {
	p := w.Player
	pc := w.cfg.Player

	if drag := in.Vector(); in.Active && drag.Len() > pc.DeadZone {
		p.Heading = TurnToward(p.Heading, drag.Angle(), pc.TurnSpeed*model.Turn)
	}

	speed := pc.Speed
	if p.SpeedActive {
		speed = pc.BoostSpeed
	}
	p.Vel = core.FromAngle(p.Heading, speed*model.Speed)
	p.Pos = p.Pos.Add(p.Vel)

	if w.frame%playerTrailEvery == 0 {
		p.Trail.Push(p.tail(pc.TailOffset))
	}
}

// steerMissile homes toward the player with a clamped turn, then eases the
// velocity toward the new heading so pursuit drifts instead of locking on.
func (w *World) steerMissile(m *Missile) {
	bearing := w.Player.Pos.Sub(m.Pos).Angle()
	m.Heading = TurnToward(m.Heading, bearing, m.TurnRate)

	desired := core.FromAngle(m.Heading, m.Speed)
	if m.Vel.IsZero() {
		m.Vel = desired
	} else {
		m.Vel = m.Vel.Add(desired.Sub(m.Vel).Scale(w.cfg.Missiles.Drift))
	}
	m.Pos = m.Pos.Add(m.Vel)

	if w.frame%missileTrailEvery == 0 {
		m.Trail.Push(m.tail(missileTailOffset))
	}
}

// checkGraze rewards a near miss: inside the graze band but outside the hit
// band, once per missile.
func (w *World) checkGraze(m *Missile) {
	p := w.Player
	if m.Grazed || !p.Alive {
		return
	}
	d := core.Dist(m.Pos, p.Pos)
	if d >= w.hitDistance(m) && d < w.cfg.Missiles.GrazeDistance {
		m.Grazed = true
		w.addScore(w.cfg.Missiles.GrazeScore)
		w.sinks.Cues.OnCue(core.CueGraze)
	}
}

// hitDistance is the missile-player contact threshold, shrunk by the margin.
func (w *World) hitDistance(m *Missile) float64 {
	return m.Radius + w.Player.Radius - w.cfg.Missiles.HitMargin
}

// steerAlly chases the nearest missile inside the detection radius, or
// orbits the player on its own phase so the squad fans out.
func (w *World) steerAlly(a *Ally) {
	ac := w.cfg.Allies

	target, d := w.nearestMissile(a.Pos)
	if target != nil && d < ac.DetectRadius {
		a.Heading = target.Pos.Sub(a.Pos).Angle()
		a.TargetID = target.ID
	} else {
		angle := float64(w.frame)*ac.OrbitSpeed + a.OrbitOffset
		slot := w.Player.Pos.Add(core.FromAngle(angle, ac.OrbitRadius))
		a.Heading = slot.Sub(a.Pos).Angle()
		a.TargetID = 0
	}

	a.Vel = core.FromAngle(a.Heading, ac.Speed)
	a.Pos = a.Pos.Add(a.Vel)

	a.LifeTicks--
	if a.LifeTicks <= 0 {
		a.Alive = false
	}

	if w.frame%allyTrailEvery == 0 {
		a.Trail.Push(a.tail(allyTailOffset))
	}
}

func (w *World) nearestMissile(from core.Vector) (*Missile, float64) {
	var best *Missile
	bestDist := math.Inf(1)
	for _, m := range w.Missiles {
		if !m.Alive {
			continue
		}
		if d := core.Dist(from, m.Pos); d < bestDist {
			best, bestDist = m, d
		}
	}
	return best, bestDist
}

// pullCoin magnetizes coins near the player while the magnet is on and
// moves magnetized coins straight at the player.
func (w *World) pullCoin(c *Coin) {
	p := w.Player
	cc := w.cfg.Coins
	if p.MagnetActive && core.Dist(c.Pos, p.Pos) < cc.MagnetRadius {
		c.Magnetized = true
	}
	if c.Magnetized {
		dir := p.Pos.Sub(c.Pos).Normalize()
		c.Pos = c.Pos.Add(dir.Scale(cc.MagnetSpeed))
	}
}
