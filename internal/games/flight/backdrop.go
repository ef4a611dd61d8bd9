package flight

import (
	"math"

	"github.com/vovakirdan/paper-flight/internal/core"
)

// Backdrop layers tile a square of this many world units.
const backdropTile = 2000

const (
	cloudCount = 20
	starCount  = 100
	rainCount  = 150
	snowCount  = 200
)

// Cloud drifts with parallax Speed relative to the camera.
type Cloud struct {
	Pos     core.Vector
	Scale   float64
	Speed   float64
	Opacity float64
}

// Star twinkles with parallax Speed relative to the camera.
type Star struct {
	Pos         core.Vector
	Size        float64
	Speed       float64
	BlinkOffset float64
}

// Drop is a rain streak.
type Drop struct {
	Pos    core.Vector
	Length float64
	Speed  float64
}

// Flake is a swaying snowflake.
type Flake struct {
	Pos   core.Vector
	Size  float64
	Speed float64
	Drift float64
}

// Backdrop holds purely cosmetic sky state. It draws from its own RNG so
// that time spent in menus never shifts the gameplay random sequence.
type Backdrop struct {
	rng      core.RNG
	GameTime float64 // seconds, drives twinkle and sway
	Clouds   []Cloud
	Stars    []Star
	Drops    []Drop
	Flakes   []Flake
}

// NewBackdrop scatters backdrop elements over one tile.
func NewBackdrop(rng core.RNG) *Backdrop {
	b := &Backdrop{rng: rng}
	scatter := func() core.Vector {
		return core.Vec(rng.Float64()*backdropTile, rng.Float64()*backdropTile)
	}
	for i := 0; i < cloudCount; i++ {
		b.Clouds = append(b.Clouds, Cloud{
			Pos:     scatter(),
			Scale:   1 + rng.Float64()*2,
			Speed:   0.1 + rng.Float64()*0.3,
			Opacity: 0.3 + rng.Float64()*0.4,
		})
	}
	for i := 0; i < starCount; i++ {
		b.Stars = append(b.Stars, Star{
			Pos:         scatter(),
			Size:        1 + rng.Float64()*2,
			Speed:       0.05 + rng.Float64()*0.1,
			BlinkOffset: rng.Float64() * 10,
		})
	}
	for i := 0; i < rainCount; i++ {
		b.Drops = append(b.Drops, Drop{
			Pos:    scatter(),
			Length: 10 + rng.Float64()*20,
			Speed:  15 + rng.Float64()*10,
		})
	}
	for i := 0; i < snowCount; i++ {
		b.Flakes = append(b.Flakes, Flake{
			Pos:   scatter(),
			Size:  1 + rng.Float64()*3,
			Speed: 1 + rng.Float64()*2,
			Drift: rng.Float64() * 2 * math.Pi,
		})
	}
	return b
}

// Update advances one tick. Precipitation only moves while its intensity
// is non-zero; elements falling far below the camera wrap back above it.
func (b *Backdrop) Update(camera, viewport core.Vector, storm, snow float64) {
	b.GameTime += 1.0 / core.DefaultTickRate

	for i := range b.Clouds {
		b.Clouds[i].Pos.X -= b.Clouds[i].Speed * 0.5
	}

	if storm > 0 {
		for i := range b.Drops {
			d := &b.Drops[i]
			d.Pos.Y += d.Speed
			d.Pos.X -= d.Speed * 0.2 // wind
			if d.Pos.Y-camera.Y > viewport.Y/2+1000 {
				d.Pos.Y -= backdropTile
				d.Pos.X = camera.X + b.rng.Float64()*backdropTile - backdropTile/2
			}
		}
	}

	if snow > 0 {
		for i := range b.Flakes {
			f := &b.Flakes[i]
			f.Pos.Y += f.Speed * 0.5
			f.Pos.X += math.Sin(b.GameTime+f.Drift) * 0.5
			if f.Pos.Y-camera.Y > viewport.Y/2+500 {
				f.Pos.Y -= 1500
				f.Pos.X = camera.X + b.rng.Float64()*backdropTile - backdropTile/2
			}
		}
	}
}

// Twinkle returns the blink factor of a star in [0, 1].
func (b *Backdrop) Twinkle(s Star) float64 {
	return 0.5 + math.Sin(b.GameTime*5+s.BlinkOffset)*0.5
}

// TileOffset maps a backdrop point to viewport coordinates with parallax,
// wrapping into [0, backdropTile).
func TileOffset(p, camera core.Vector, parallax float64) core.Vector {
	wrap := func(v float64) float64 {
		v = math.Mod(v, backdropTile)
		if v < 0 {
			v += backdropTile
		}
		return v
	}
	return core.Vec(wrap(p.X-camera.X*parallax), wrap(p.Y-camera.Y*parallax))
}
