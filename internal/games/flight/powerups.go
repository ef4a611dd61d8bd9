package flight

import (
	"math"

	"github.com/vovakirdan/paper-flight/internal/config"
	"github.com/vovakirdan/paper-flight/internal/core"
)

// Effect is a timed power-up with its remaining ticks.
type Effect struct {
	Kind      PowerUpKind
	Remaining int
}

// PowerUpController owns effect timers. Pickups found by the collision
// stage are queued and applied after the timers of this tick have run, so
// expiry is counted in ticks and never needs an out-of-band timer.
type PowerUpController struct {
	cfg     config.PowerUpConfig
	allies  config.AllyConfig
	trail   int
	pending []PowerUpKind
}

// NewPowerUpController creates a controller.
func NewPowerUpController(cfg config.FlightConfig) *PowerUpController {
	return &PowerUpController{
		cfg:    cfg.PowerUps,
		allies: cfg.Allies,
		trail:  cfg.World.TrailLength,
	}
}

// Queue schedules kind for activation at the next Update.
func (c *PowerUpController) Queue(kind PowerUpKind) {
	c.pending = append(c.pending, kind)
}

// Update counts down active effects, then applies queued pickups.
func (c *PowerUpController) Update(w *World) {
	p := w.Player
	countdown(&p.ShieldActive, &p.ShieldTicks)
	countdown(&p.SpeedActive, &p.SpeedTicks)
	countdown(&p.MagnetActive, &p.MagnetTicks)

	for _, kind := range c.pending {
		c.Activate(w, kind)
	}
	c.pending = c.pending[:0]
}

func countdown(active *bool, ticks *int) {
	if !*active {
		return
	}
	*ticks--
	if *ticks <= 0 {
		*active = false
		*ticks = 0
	}
}

// arm switches an effect on for at least ticks. A running effect keeps the
// longer of its remaining time and the new duration.
func arm(active *bool, remaining *int, ticks int) {
	if ticks <= 0 {
		return
	}
	*active = true
	*remaining = max(*remaining, ticks)
}

// Activate applies kind immediately.
func (c *PowerUpController) Activate(w *World, kind PowerUpKind) {
	p := w.Player
	switch kind {
	case PowerShield:
		arm(&p.ShieldActive, &p.ShieldTicks, c.cfg.ShieldTicks)
	case PowerSpeed:
		arm(&p.SpeedActive, &p.SpeedTicks, c.cfg.SpeedTicks)
	case PowerMagnet:
		arm(&p.MagnetActive, &p.MagnetTicks, c.cfg.MagnetTicks)
	case PowerShockwave:
		c.shockwave(w)
	case PowerAllies:
		c.spawnAllies(w)
	}
}

// shockwave destroys every live missile at once.
func (c *PowerUpController) shockwave(w *World) {
	w.sinks.Cues.OnCue(core.CueShockwave)
	w.ring(w.Player.Pos)

	killed := 0
	for _, m := range w.Missiles {
		if !m.Alive {
			continue
		}
		m.Alive = false
		killed++
		w.burst(m.Pos, colorRed, shockwaveBurst)
	}
	if killed == 0 {
		return
	}
	w.sinks.Stats.OnEvent(core.EventMissiles, killed)
	for i := 0; i < killed; i++ {
		w.addScore(c.cfg.ShockwaveBonus)
	}
}

// spawnAllies launches a squad around the player, evenly phased.
func (c *PowerUpController) spawnAllies(w *World) {
	ac := c.allies
	for i := 0; i < ac.Count; i++ {
		jitter := core.Vec(
			core.RandRange(w.rng, -ac.SpawnJitter, ac.SpawnJitter),
			core.RandRange(w.rng, -ac.SpawnJitter, ac.SpawnJitter),
		)
		e := w.newEntity(w.Player.Pos.Add(jitter), ac.Radius)
		e.Heading = w.rng.Float64() * 2 * math.Pi
		e.Trail = NewTrail(c.trail)
		w.Allies = append(w.Allies, &Ally{
			Entity:      e,
			LifeTicks:   ac.LifeTicks,
			OrbitOffset: float64(i) * 2 * math.Pi / float64(ac.Count),
		})
	}
}

// ApplyBoosts grants the pre-run boosts. Called once at run start.
func (c *PowerUpController) ApplyBoosts(w *World, boosts Boost) {
	p := w.Player
	bc := c.cfg.Boosts
	if boosts.Has(BoostShield) {
		arm(&p.ShieldActive, &p.ShieldTicks, bc.ShieldTicks)
	}
	if boosts.Has(BoostMagnet) {
		arm(&p.MagnetActive, &p.MagnetTicks, bc.MagnetTicks)
	}
	if boosts.Has(BoostSpeed) {
		arm(&p.SpeedActive, &p.SpeedTicks, bc.SpeedTicks)
	}
}

// Revive brings the player back with a short shield and a cleared sky.
func (c *PowerUpController) Revive(w *World, shieldTicks int) {
	p := w.Player
	p.Alive = true
	for _, m := range w.Missiles {
		m.Alive = false
	}
	w.Missiles = w.Missiles[:0]
	p.ShieldActive = false
	p.ShieldTicks = 0
	arm(&p.ShieldActive, &p.ShieldTicks, shieldTicks)
	c.pending = c.pending[:0]
}

// ActiveEffects lists running timed effects and the live squad for HUDs.
func (c *PowerUpController) ActiveEffects(w *World) []Effect {
	p := w.Player
	var out []Effect
	if p.ShieldActive {
		out = append(out, Effect{Kind: PowerShield, Remaining: p.ShieldTicks})
	}
	if p.SpeedActive {
		out = append(out, Effect{Kind: PowerSpeed, Remaining: p.SpeedTicks})
	}
	if p.MagnetActive {
		out = append(out, Effect{Kind: PowerMagnet, Remaining: p.MagnetTicks})
	}
	if n := w.LiveAllies(); n > 0 {
		out = append(out, Effect{Kind: PowerAllies, Remaining: n})
	}
	return out
}
