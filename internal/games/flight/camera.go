package flight

import "github.com/vovakirdan/paper-flight/internal/core"

// Camera follows the player with exponential smoothing, lagging slightly
// behind sharp turns.
type Camera struct {
	Pos    core.Vector
	Follow float64
}

// NewCamera creates a camera centred on pos.
func NewCamera(pos core.Vector, follow float64) *Camera {
	return &Camera{Pos: pos, Follow: follow}
}

// Update moves the camera a fraction of the way toward target.
func (c *Camera) Update(target core.Vector) {
	c.Pos = core.LerpVec(c.Pos, target, c.Follow)
}

// WorldToScreen converts a world point to viewport coordinates
// (origin top-left, same units as the world).
func (c *Camera) WorldToScreen(p, viewport core.Vector) core.Vector {
	return p.Sub(c.Pos).Add(viewport.Scale(0.5))
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(p, viewport core.Vector) core.Vector {
	return p.Sub(viewport.Scale(0.5)).Add(c.Pos)
}
