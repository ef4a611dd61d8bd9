package catalog

import "github.com/vovakirdan/paper-flight/internal/core"

// Builtin is the catalog shipped with the game.
type Builtin struct {
	models  []Model
	skins   []Skin
	trails  []Trail
	effects []DeathEffect
}

// NewBuiltin returns the stock catalog.
func NewBuiltin() *Builtin {
	return &Builtin{
		models:  builtinModels(),
		skins:   builtinSkins(),
		trails:  builtinTrails(),
		effects: builtinDeathEffects(),
	}
}

// Models lists every model in shop order.
func (b *Builtin) Models() []Model { return append([]Model(nil), b.models...) }

// Skins lists every skin in shop order.
func (b *Builtin) Skins() []Skin { return append([]Skin(nil), b.skins...) }

// Trails lists every trail in shop order.
func (b *Builtin) Trails() []Trail { return append([]Trail(nil), b.trails...) }

// DeathEffects lists every death effect in shop order.
func (b *Builtin) DeathEffects() []DeathEffect {
	return append([]DeathEffect(nil), b.effects...)
}

func (b *Builtin) Model(id string) (Model, bool) {
	for _, m := range b.models {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

func (b *Builtin) Skin(id string) (Skin, bool) {
	for _, s := range b.skins {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}

func (b *Builtin) Trail(id string) (Trail, bool) {
	for _, t := range b.trails {
		if t.ID == id {
			return t, true
		}
	}
	return Trail{}, false
}

func (b *Builtin) DeathEffect(id string) (DeathEffect, bool) {
	for _, e := range b.effects {
		if e.ID == id {
			return e, true
		}
	}
	return DeathEffect{}, false
}

func builtinModels() []Model {
	return []Model{
		{ID: DefaultID, Name: "Classic", Price: 0, Rarity: Common,
			Path: "M0 -20 L15 20 L0 15 L-15 20 Z", Speed: 1.0, Turn: 1.0},
		{ID: "interceptor", Name: "Interceptor", Price: 2500, Rarity: Rare,
			Path: "M0 -30 L10 20 L0 15 L-10 20 Z", Speed: 1.3, Turn: 0.8},
		{ID: "glider", Name: "Glider", Price: 3000, Rarity: Epic,
			Path: "M0 -15 L25 10 L0 12 L-25 10 Z", Speed: 0.8, Turn: 1.4},
		{ID: "stunt", Name: "Stunt", Price: 8000, Rarity: Epic,
			Path: "M0 -25 L20 10 L5 20 L0 15 L-5 20 L-20 10 Z", Speed: 1.1, Turn: 1.3},
		{ID: "valkyrie", Name: "Delta", Price: 11000, Rarity: Legendary,
			Path: "M0 -25 L22 20 L0 10 L-22 20 Z", Speed: 1.35, Turn: 1.1},
	}
}

func builtinSkins() []Skin {
	skin := func(id, name string, price int, r Rarity, primary, secondary string) Skin {
		return Skin{ID: id, Name: name, Price: price, Rarity: r,
			Primary: core.Hex(primary), Secondary: core.Hex(secondary)}
	}
	return []Skin{
		skin(DefaultID, "White Paper", 0, Common, "#f8fafc", "#94a3b8"),
		skin("notebook", "Notebook", 500, Common, "#f1f5f9", "#3b82f6"),
		skin("cardboard", "Cardboard", 800, Rare, "#d4a373", "#a98467"),
		skin("blueprint", "Blueprint", 1200, Rare, "#1e3a8a", "#93c5fd"),
		skin("origami_red", "Red Origami", 1500, Rare, "#ef4444", "#b91c1c"),
		skin("midnight", "Midnight", 2200, Epic, "#0f172a", "#64748b"),
		skin("magma", "Magma", 2500, Epic, "#ef4444", "#facc15"),
		skin("ice", "Ice", 2500, Epic, "#ecfeff", "#06b6d4"),
		skin("forest_camo", "Forest Camo", 2800, Epic, "#166534", "#14532d"),
		skin("arctic_camo", "Arctic Camo", 2800, Epic, "#e0f2fe", "#94a3b8"),
		skin("vaporwave", "Vaporwave", 3500, Legendary, "#f472b6", "#22d3ee"),
		skin("matrix", "Matrix", 4000, Legendary, "#000000", "#22c55e"),
		skin("golden", "Gold Leaf", 5000, Legendary, "#fbbf24", "#b45309"),
	}
}

func builtinTrails() []Trail {
	return []Trail{
		{ID: DefaultID, Name: "White Smoke", Rarity: Common, Color: core.Hex("#ffffff"), Opacity: 0.4, WidthScale: 1, Style: TrailLine},
		{ID: "smoke", Name: "Black Smoke", Price: 300, Rarity: Common, Color: core.Hex("#000000"), Opacity: 0.4, WidthScale: 1.2, Style: TrailBubbles},
		{ID: "ink", Name: "Ink", Price: 400, Rarity: Rare, Color: core.Hex("#1e293b"), Opacity: 1, WidthScale: 1, Style: TrailBubbles},
		{ID: "fire", Name: "Fire", Price: 800, Rarity: Epic, Color: core.Hex("#f59e0b"), Opacity: 1, WidthScale: 1.2, Glow: true, Style: TrailLine},
		{ID: "bubbles", Name: "Bubbles", Price: 700, Rarity: Rare, Color: core.Hex("#60a5fa"), Opacity: 1, WidthScale: 1.5, Style: TrailBubbles},
		{ID: "sparkle", Name: "Stardust", Price: 1000, Rarity: Epic, Color: core.Hex("#f472b6"), Opacity: 1, WidthScale: 1, Glow: true, Style: TrailSparkle},
		{ID: "pixel", Name: "Pixel", Price: 1200, Rarity: Epic, Color: core.Hex("#4ade80"), Opacity: 1, WidthScale: 1.5, Style: TrailPixel},
		{ID: "electric", Name: "High Voltage", Price: 1500, Rarity: Legendary, Color: core.Hex("#22d3ee"), Opacity: 1, WidthScale: 0.8, Glow: true, Style: TrailElectric},
		{ID: "rainbow", Name: "Rainbow", Price: 2000, Rarity: Legendary, Rainbow: true, Opacity: 1, WidthScale: 1.5, Style: TrailLine},
		{ID: "matrix", Name: "Matrix", Price: 1800, Rarity: Legendary, Color: core.Hex("#22c55e"), Opacity: 1, WidthScale: 1, Glow: true, Style: TrailPixel},
	}
}

func builtinDeathEffects() []DeathEffect {
	effect := func(id, name string, price int, r Rarity, color string, count int, sound string) DeathEffect {
		return DeathEffect{ID: id, Name: name, Price: price, Rarity: r,
			Color: core.Hex(color), Count: count, Sound: sound}
	}
	confetti := effect("confetti", "Party", 1200, Legendary, "", 100, "digital")
	confetti.RandomHue = true

	return []DeathEffect{
		effect(DefaultID, "Explosion", 0, Common, "#ef4444", 40, "standard"),
		effect("paper_shreds", "Shredder", 500, Rare, "#ffffff", 60, "standard"),
		effect("ink_splash", "Ink Splash", 800, Epic, "#1e293b", 80, "heavy"),
		effect("glitch", "Glitch", 1000, Epic, "#22c55e", 50, "digital"),
		confetti,
		effect("nuclear", "Nuclear", 1500, Legendary, "#84cc16", 150, "heavy"),
		effect("black_hole", "Black Hole", 1800, Legendary, "#000000", 20, "heavy"),
		effect("electric_boom", "Thunder", 1600, Legendary, "#facc15", 70, "heavy"),
	}
}
