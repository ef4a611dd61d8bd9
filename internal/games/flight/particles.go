package flight

import (
	"math"

	"github.com/vovakirdan/paper-flight/internal/catalog"
	"github.com/vovakirdan/paper-flight/internal/core"
)

// Shockwave ring shape.
const (
	shockwaveRing      = 36
	shockwaveRingSpeed = 15
	shockwaveRingLife  = 0.8
	shockwaveRingSize  = 5
)

// burst scatters count particles of one colour from pos.
func (w *World) burst(pos core.Vector, color core.Color, count int) {
	for i := 0; i < count; i++ {
		w.Particles = append(w.Particles, w.newParticle(pos, color))
	}
}

// deathBurst scatters the player's configured death effect.
func (w *World) deathBurst(pos core.Vector, effect catalog.DeathEffect) {
	for i := 0; i < effect.Count; i++ {
		color := effect.Color
		if effect.RandomHue {
			color = core.HSV(w.rng.Float64()*360, 1, 1)
		}
		w.Particles = append(w.Particles, w.newParticle(pos, color))
	}
}

// ring emits the evenly spaced shockwave ring.
func (w *World) ring(pos core.Vector) {
	for i := 0; i < shockwaveRing; i++ {
		angle := float64(i) / shockwaveRing * 2 * math.Pi
		w.Particles = append(w.Particles, &Particle{
			Pos:   pos,
			Vel:   core.FromAngle(angle, shockwaveRingSpeed),
			Life:  shockwaveRingLife,
			Color: colorShield,
			Size:  shockwaveRingSize,
		})
	}
}

func (w *World) newParticle(pos core.Vector, color core.Color) *Particle {
	pc := w.cfg.Particles
	angle := w.rng.Float64() * 2 * math.Pi
	speed := core.RandRange(w.rng, pc.MinSpeed, pc.MaxSpeed)
	return &Particle{
		Pos:   pos,
		Vel:   core.FromAngle(angle, speed),
		Life:  1,
		Color: color,
		Size:  core.RandRange(w.rng, pc.MinSize, pc.MaxSize),
	}
}

// updateParticles integrates, damps and ages particles, dropping dead ones.
func (w *World) updateParticles() {
	pc := w.cfg.Particles
	live := w.Particles[:0]
	for _, p := range w.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(pc.Friction)
		p.Life -= pc.Decay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(w.Particles[len(live):])
	w.Particles = live
}
