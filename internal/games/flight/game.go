// Package flight implements Paper Flight, an endless paper-plane flyer.
// The player steers a glider by dragging, dodges homing missiles, collects
// coins and power-ups while the sky cycles from day to night.
package flight

import (
	"github.com/vovakirdan/paper-flight/internal/catalog"
	"github.com/vovakirdan/paper-flight/internal/config"
	"github.com/vovakirdan/paper-flight/internal/core"
	"github.com/vovakirdan/paper-flight/internal/registry"
)

// Game states
const (
	StateReady    = "ready"    // waiting for the first drag or confirm
	StatePlaying  = "playing"  // simulation running
	StatePaused   = "paused"   // game paused
	StateGameOver = "gameover" // player crashed
)

// configPath stores the custom config path set via CLI
var configPath string

// Defaults applied to games created after the call.
var (
	defaultSky     = SkyAuto
	defaultLoadout = DefaultLoadout()
	defaultCatalog catalog.Catalog
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSkyMode sets the sky of new games by name. Unknown names are ignored.
func SetSkyMode(name string) bool {
	m, ok := ParseSkyMode(name)
	if ok {
		defaultSky = m
	}
	return ok
}

// SetLoadout sets the loadout of new games.
func SetLoadout(l Loadout) {
	defaultLoadout = l
}

// SetCatalog sets the cosmetic catalog of new games. nil means built-in.
func SetCatalog(c catalog.Catalog) {
	defaultCatalog = c
}

// Game adapts a World to the arcade registry: run states, modes, revives
// and rendering.
type Game struct {
	mode    config.Mode
	cfg     config.FlightConfig
	runtime core.RuntimeConfig
	world   *World
	state   string
	revives int

	sinks   core.Sinks
	catalog catalog.Catalog
	loadout Loadout
	sky     SkyMode
}

// New creates a game in the given mode.
func New(mode config.Mode) *Game {
	return &Game{
		mode:    mode,
		catalog: defaultCatalog,
		loadout: defaultLoadout,
		sky:     defaultSky,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == config.ModeNormal {
		return "flight"
	}
	return "flight_" + string(g.mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == config.ModeNormal {
		return "Paper Flight"
	}
	return "Paper Flight (" + g.mode.Title() + ")"
}

// Mode returns the game mode.
func (g *Game) Mode() config.Mode { return g.mode }

// SetSinks routes progression events. Takes effect immediately.
func (g *Game) SetSinks(s core.Sinks) {
	g.sinks = s
	if g.world != nil {
		g.world.sinks = s.WithDefaults()
	}
}

// SetLoadout changes cosmetics and the boosts of the next run.
func (g *Game) SetLoadout(l Loadout) {
	g.loadout = l
	if g.world != nil {
		g.world.SetLoadout(l)
	}
}

// SetSkyMode switches the sky, including mid-run.
func (g *Game) SetSkyMode(m SkyMode) {
	g.sky = m
	if g.world != nil {
		g.world.weather.SetMode(m)
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadFlight(configPath)
	if err != nil {
		cfg = config.DefaultFlightConfig()
	}
	config.ApplyModePreset(&cfg, g.mode)
	g.cfg = cfg

	g.world = NewWorld(cfg, WorldOptions{
		RNG:         core.NewRNG(runtime.Seed),
		CosmeticRNG: core.NewRNG(runtime.Seed + 1),
		Sinks:       g.sinks,
		Catalog:     g.catalog,
		Viewport:    g.viewportFor(runtime.ScreenW, runtime.ScreenH),
		Loadout:     g.loadout,
		Sky:         g.sky,
	})
	g.state = StateReady
	g.revives = 0
}

// Resize adapts the visible area to a new terminal size.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.world != nil {
		g.world.SetViewport(g.viewportFor(w, h))
	}
}

// CellSize returns the world units covered by one terminal cell.
func (g *Game) CellSize() (float64, float64) {
	return g.cfg.World.CellWidth, g.cfg.World.CellHeight
}

func (g *Game) viewportFor(w, h int) core.Vector {
	return core.Vec(float64(w)*g.cfg.World.CellWidth, float64(h)*g.cfg.World.CellHeight)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateReady:
		if !in.Has(core.ActionConfirm) && !in.Steer.Active {
			g.world.CosmeticTick()
			return core.StepResult{State: g.State()}
		}
		g.state = StatePlaying

	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}
		g.world.CosmeticTick()
		return core.StepResult{State: g.State()}

	case StateGameOver:
		switch {
		case in.Has(core.ActionRestart):
			g.Reset(g.runtime)
		case in.Has(core.ActionRevive) && g.CanRevive():
			g.revives++
			g.world.Revive()
			g.state = StatePlaying
		default:
			g.world.CosmeticTick()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return core.StepResult{State: g.State()}
	}

	g.world.Tick(in.Steer)

	if g.world.Dead() {
		g.state = StateGameOver
		return core.StepResult{State: g.State(), Ended: true}
	}
	return core.StepResult{State: g.State()}
}

// CanRevive reports whether the crashed run may continue.
func (g *Game) CanRevive() bool {
	if g.state != StateGameOver {
		return false
	}
	limit := g.cfg.Revive.MaxRevives
	return limit <= 0 || g.revives < limit
}

// ReviveCost returns the wallet price of one revive.
func (g *Game) ReviveCost() int {
	return g.cfg.Revive.CostCoins
}

// RunState returns the state name.
func (g *Game) RunState() string { return g.state }

// World exposes the simulation, mainly for tests and headless runs.
func (g *Game) World() *World { return g.world }

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Coins:    g.world.RunCoins(),
		Ticks:    uint64(g.world.Frame()),
		Revives:  g.revives,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game modes with the registry
func init() {
	for _, m := range config.Modes {
		registry.Register(New(m).ID(), func() registry.Game {
			return New(m)
		})
	}
}
