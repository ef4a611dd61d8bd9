package config

import "math"

// DifficultyManager computes the spawn/speed multiplier from the score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.ScoreScale > 0
}

// Multiplier returns 1 + min(score/score_scale, max_bonus).
// A disabled manager always returns 1.
func (d *DifficultyManager) Multiplier(score int) float64 {
	if !d.IsEnabled() || score <= 0 {
		return 1
	}
	bonus := float64(score) / d.cfg.ScoreScale
	return 1 + clampF(bonus, 0, math.Max(0, d.cfg.MaxBonus))
}

// SpawnInterval divides a base interval by the multiplier, never below 1 tick.
func (d *DifficultyManager) SpawnInterval(base int, score int) int {
	n := int(math.Floor(float64(base) / d.Multiplier(score)))
	if n < 1 {
		n = 1
	}
	return n
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
