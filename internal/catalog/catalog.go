// Package catalog holds the cosmetic items a run can be flown with: plane
// models (which also scale handling), skins, trails and death effects.
//
// The simulation reads the catalog through the Catalog interface only, so
// the shop/inventory can live anywhere.
package catalog

import "github.com/vovakirdan/paper-flight/internal/core"

// DefaultID is the id of the always-available fallback entry of each kind.
const DefaultID = "default"

// Rarity grades an item for display.
type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Model is a plane shape with handling multipliers.
type Model struct {
	ID     string
	Name   string
	Price  int
	Rarity Rarity
	// Path is the outline in SVG path syntax, nose pointing up.
	Path  string
	Speed float64 // multiplier on base and boost speed
	Turn  float64 // multiplier on the player turn rate
}

// Skin colours the plane.
type Skin struct {
	ID        string
	Name      string
	Price     int
	Rarity    Rarity
	Primary   core.Color
	Secondary core.Color
}

// TrailStyle selects how the trail is drawn.
type TrailStyle string

const (
	TrailLine     TrailStyle = "line"
	TrailBubbles  TrailStyle = "bubbles"
	TrailSparkle  TrailStyle = "sparkle"
	TrailPixel    TrailStyle = "pixel"
	TrailElectric TrailStyle = "electric"
)

// Trail is the look of the player's wake.
type Trail struct {
	ID         string
	Name       string
	Price      int
	Rarity     Rarity
	Color      core.Color
	Opacity    float64
	Rainbow    bool // hue cycles along the trail, Color is ignored
	WidthScale float64
	Glow       bool
	Style      TrailStyle
}

// DeathEffect is the particle burst shown when the player is destroyed.
type DeathEffect struct {
	ID     string
	Name   string
	Price  int
	Rarity Rarity
	Color  core.Color
	// RandomHue gives every particle its own random hue instead of Color.
	RandomHue bool
	Count     int
	Sound     string
}

// Catalog looks cosmetic items up by id.
type Catalog interface {
	Model(id string) (Model, bool)
	Skin(id string) (Skin, bool)
	Trail(id string) (Trail, bool)
	DeathEffect(id string) (DeathEffect, bool)
}
