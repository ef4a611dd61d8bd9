// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the front-ends can list
// and start game modes without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/paper-flight/internal/core"
)

// Game is the interface every playable mode implements.
// Games are pure logic with no terminal dependencies; the platform maps
// input, drives the clock and draws the screen buffer.
type Game interface {
	// ID returns a unique identifier (e.g. "flight", "flight_chill").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh run for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Progressive is implemented by games that report progression events.
type Progressive interface {
	SetSinks(s core.Sinks)
}

// Revivable is implemented by games that can continue a crashed run.
type Revivable interface {
	CanRevive() bool
	// ReviveCost is the wallet price of one revive.
	ReviveCost() int
}

// Resizable is implemented by games whose world depends on the screen size.
type Resizable interface {
	Resize(w, h int)
}

// Scaled is implemented by games that measure input in pixels. CellSize is
// the pixel size of one terminal cell, zero until the first Reset.
type Scaled interface {
	CellSize() (w, h float64)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
