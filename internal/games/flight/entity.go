package flight

import (
	"github.com/vovakirdan/paper-flight/internal/catalog"
	"github.com/vovakirdan/paper-flight/internal/core"
)

// Entity is the shape shared by everything that flies.
// Entities stay in their slice until the end-of-tick filter, so a dead
// entity must be skipped by every later stage of the same tick.
type Entity struct {
	ID      int
	Pos     core.Vector
	Vel     core.Vector
	Heading float64 // radians, not wrapped
	Radius  float64
	Alive   bool
	Trail   *Trail
}

// tail returns the point offset behind the entity along its heading.
func (e *Entity) tail(offset float64) core.Vector {
	return e.Pos.Sub(core.FromAngle(e.Heading, offset))
}

// Trail is a fixed-capacity ring buffer of past positions, oldest first.
// It is visual only; nothing in the simulation reads it.
type Trail struct {
	points []core.Vector
	start  int
	n      int
}

// NewTrail creates a trail holding at most capacity points.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]core.Vector, capacity)}
}

// Push appends p, evicting the oldest point when full.
func (t *Trail) Push(p core.Vector) {
	if t.n < len(t.points) {
		t.points[(t.start+t.n)%len(t.points)] = p
		t.n++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

// Len returns the number of stored points.
func (t *Trail) Len() int { return t.n }

// Cap returns the capacity.
func (t *Trail) Cap() int { return len(t.points) }

// Points returns a copy of the stored points, oldest first.
func (t *Trail) Points() []core.Vector {
	out := make([]core.Vector, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}

// Boost is a pre-run perk bought before takeoff.
type Boost uint8

const (
	BoostShield Boost = 1 << iota
	BoostMagnet
	BoostSpeed
)

// Has reports whether b includes x.
func (b Boost) Has(x Boost) bool { return b&x != 0 }

// Loadout is what the player takes into a run: cosmetic ids and boosts.
// Ids are opaque keys into the catalog.
type Loadout struct {
	ModelID       string
	SkinID        string
	TrailID       string
	DeathEffectID string
	Boosts        Boost
}

// DefaultLoadout flies the stock plane with no boosts.
func DefaultLoadout() Loadout {
	return Loadout{
		ModelID:       catalog.DefaultID,
		SkinID:        catalog.DefaultID,
		TrailID:       catalog.DefaultID,
		DeathEffectID: catalog.DefaultID,
	}
}

// Player is the glider. Each timed effect pairs a flag with a tick countdown.
type Player struct {
	Entity
	ShieldActive bool
	ShieldTicks  int
	SpeedActive  bool
	SpeedTicks   int
	MagnetActive bool
	MagnetTicks  int
	Loadout      Loadout
}

// Missile homes in on the player.
type Missile struct {
	Entity
	TurnRate float64
	Speed    float64
	Grazed   bool // set once, never cleared
}

// Coin is currency floating in the sky.
type Coin struct {
	Entity
	Value      int
	Magnetized bool // set once, never cleared
}

// PowerUpKind enumerates pickups.
type PowerUpKind int

const (
	PowerShield PowerUpKind = iota
	PowerSpeed
	PowerMagnet
	PowerShockwave
	PowerAllies
	powerKindCount
)

// String returns the pickup name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerShield:
		return "Shield"
	case PowerSpeed:
		return "Speed"
	case PowerMagnet:
		return "Magnet"
	case PowerShockwave:
		return "Shockwave"
	case PowerAllies:
		return "Allies"
	default:
		return "?"
	}
}

// Glyph returns the display character for a pickup.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerShield:
		return 'S'
	case PowerSpeed:
		return '>'
	case PowerMagnet:
		return 'U'
	case PowerShockwave:
		return '*'
	case PowerAllies:
		return 'A'
	default:
		return '?'
	}
}

// Color returns the pickup colour.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerShield:
		return colorShield
	case PowerSpeed:
		return colorGold
	case PowerMagnet:
		return colorMagnet
	case PowerShockwave:
		return colorRed
	case PowerAllies:
		return colorAlly
	default:
		return colorWhite
	}
}

// PowerUp is a floating pickup.
type PowerUp struct {
	Entity
	Kind PowerUpKind
}

// Ally is an escort plane. It orbits the player or chases a missile.
type Ally struct {
	Entity
	LifeTicks   int
	OrbitOffset float64
	TargetID    int // missile being chased, 0 when orbiting
}

// Particle is visual feedback only and never collides.
type Particle struct {
	Pos   core.Vector
	Vel   core.Vector
	Life  float64 // 1 = fresh, removed at <= 0
	Color core.Color
	Size  float64
}

// Shared palette.
var (
	colorWhite   = core.Hex("#ffffff")
	colorRed     = core.Hex("#ef4444")
	colorGold    = core.Hex("#facc15")
	colorShield  = core.Hex("#60a5fa")
	colorMagnet  = core.Hex("#c084fc")
	colorAlly    = core.Hex("#22d3ee")
	colorMissile = core.Hex("#f87171")
)
