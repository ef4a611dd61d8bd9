package flight

import (
	"github.com/vovakirdan/paper-flight/internal/catalog"
	"github.com/vovakirdan/paper-flight/internal/config"
	"github.com/vovakirdan/paper-flight/internal/core"
)

// ticksPerSecond paces the time event and the survival score flush.
const ticksPerSecond = core.DefaultTickRate

// despawnMargin separates the spawn circle from the despawn circle, covering
// the camera's lag behind the player.
const despawnMargin = 500

// WorldOptions carries the collaborators of a run. Zero values are valid:
// nil RNGs are seeded with 0, nil sinks discard, a nil catalog means the
// built-in one.
type WorldOptions struct {
	RNG         core.RNG
	CosmeticRNG core.RNG
	Sinks       core.Sinks
	Catalog     catalog.Catalog
	Viewport    core.Vector // world units
	Loadout     Loadout
	Sky         SkyMode
}

// World is the whole simulation state of one run. It is not safe for
// concurrent use; one goroutine owns it.
type World struct {
	cfg        config.FlightConfig
	rng        core.RNG
	sinks      core.Sinks
	cosmetics  *catalog.Resolver
	difficulty *config.DifficultyManager
	spawner    *Spawner
	powerups   *PowerUpController
	weather    *Weather
	viewport   core.Vector

	Player    *Player
	Missiles  []*Missile
	Coins     []*Coin
	PowerUps  []*PowerUp
	Allies    []*Ally
	Particles []*Particle
	Camera    *Camera

	frame    int
	nextID   int
	score    int
	survival float64 // fractional survival score not yet flushed
	coins    int
}

// NewWorld creates a run with the player at the origin heading right.
// Pre-run boosts of the loadout are applied at once.
func NewWorld(cfg config.FlightConfig, opts WorldOptions) *World {
	if opts.RNG == nil {
		opts.RNG = core.NewRNG(0)
	}
	if opts.CosmeticRNG == nil {
		opts.CosmeticRNG = core.NewRNG(0)
	}
	if opts.Viewport.IsZero() {
		opts.Viewport = core.Vec(800, 480)
	}

	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	w := &World{
		cfg:        cfg,
		rng:        opts.RNG,
		sinks:      opts.Sinks.WithDefaults(),
		cosmetics:  catalog.NewResolver(opts.Catalog),
		difficulty: difficulty,
		spawner:    NewSpawner(cfg, difficulty),
		powerups:   NewPowerUpController(cfg),
		viewport:   opts.Viewport,
		Camera:     NewCamera(core.Vector{}, cfg.Camera.Follow),
	}
	w.weather = NewWeather(cfg.Weather, opts.Sky, opts.RNG, NewBackdrop(opts.CosmeticRNG))

	player := w.newEntity(core.Vector{}, cfg.Player.Radius)
	player.Trail = NewTrail(cfg.World.TrailLength)
	w.Player = &Player{Entity: player, Loadout: opts.Loadout}

	w.powerups.ApplyBoosts(w, opts.Loadout.Boosts)
	return w
}

// newEntity issues the next id. Ids are never reused within a run.
func (w *World) newEntity(pos core.Vector, radius float64) Entity {
	w.nextID++
	return Entity{ID: w.nextID, Pos: pos, Radius: radius, Alive: true}
}

// addScore credits n points and reports them.
func (w *World) addScore(n int) {
	if n <= 0 {
		return
	}
	w.score += n
	w.sinks.Stats.OnEvent(core.EventScore, n)
}

// Tick advances one logic step of active play. A dead player freezes the
// simulation; only cosmetics keep moving.
func (w *World) Tick(in core.Steer) {
	if w.Dead() {
		w.CosmeticTick()
		return
	}
	w.frame++

	w.spawner.Update(w)
	w.steer(in)
	w.collide()
	w.powerups.Update(w)
	w.weather.Tick(w.sinks.Cues, w.Camera.Pos, w.viewport)
	w.survive()

	w.Missiles = sweep(w.Missiles)
	w.Coins = sweep(w.Coins)
	w.PowerUps = sweep(w.PowerUps)
	w.Allies = sweep(w.Allies)
	w.updateParticles()
}

// CosmeticTick advances what keeps moving outside active play.
func (w *World) CosmeticTick() {
	w.weather.CosmeticTick(w.Camera.Pos, w.viewport)
	w.updateParticles()
}

// survive accrues the passive score and reports one second of flight
// every ticksPerSecond ticks.
func (w *World) survive() {
	if !w.Player.Alive {
		return
	}
	w.survival += w.cfg.Player.SurvivalScore
	if w.frame%ticksPerSecond != 0 {
		return
	}
	w.sinks.Stats.OnEvent(core.EventTime, 1)
	n := int(w.survival)
	w.survival -= float64(n)
	w.addScore(n)
}

// alive is satisfied by every entity pointer.
type alive interface{ isAlive() bool }

func (e *Entity) isAlive() bool { return e.Alive }

// sweep drops dead entities in place, keeping order.
func sweep[T alive](s []T) []T {
	live := s[:0]
	for _, e := range s {
		if e.isAlive() {
			live = append(live, e)
		}
	}
	clear(s[len(live):])
	return live
}

// Revive brings a dead player back. Whether a revive is allowed or paid
// for is decided by the caller.
func (w *World) Revive() {
	if !w.Dead() {
		return
	}
	w.powerups.Revive(w, w.cfg.Revive.ShieldTicks)
	w.sinks.Lifecycle.OnRevive()
}

// Dead reports whether the player has crashed.
func (w *World) Dead() bool { return !w.Player.Alive }

// Score returns the integer score of the run.
func (w *World) Score() int { return w.score }

// RunCoins returns the currency collected this run.
func (w *World) RunCoins() int { return w.coins }

// Frame returns the number of ticks of active play.
func (w *World) Frame() int { return w.frame }

// Difficulty returns the current difficulty multiplier.
func (w *World) Difficulty() float64 { return w.difficulty.Multiplier(w.score) }

// Sky returns the weather snapshot.
func (w *World) Sky() Sky { return w.weather.Sky() }

// Weather exposes the weather state.
func (w *World) Weather() *Weather { return w.weather }

// Viewport returns the visible area in world units.
func (w *World) Viewport() core.Vector { return w.viewport }

// DespawnDistance is the configured despawn radius, widened on large
// viewports so that fresh spawns always lie inside it.
func (w *World) DespawnDistance() float64 {
	return max(w.cfg.World.DespawnDistance, w.spawner.SpawnRadius(w.viewport)+despawnMargin)
}

// SetViewport changes the visible area, which moves the spawn circle.
func (w *World) SetViewport(v core.Vector) {
	if !v.IsZero() {
		w.viewport = v
	}
}

// SetLoadout swaps cosmetics mid-run. Boosts are not re-applied.
func (w *World) SetLoadout(l Loadout) { w.Player.Loadout = l }

// Cosmetics returns the catalog resolver used by the run.
func (w *World) Cosmetics() *catalog.Resolver { return w.cosmetics }

// ActiveEffects lists running effects for HUDs.
func (w *World) ActiveEffects() []Effect { return w.powerups.ActiveEffects(w) }

// LiveAllies counts escorts still flying.
func (w *World) LiveAllies() int {
	n := 0
	for _, a := range w.Allies {
		if a.Alive {
			n++
		}
	}
	return n
}
