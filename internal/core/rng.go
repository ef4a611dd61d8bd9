package core

import "math/rand"

// RNG is the randomness source consumed by the simulation.
// Injecting it keeps runs reproducible for a given seed.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRNG returns a seeded pseudo-random source.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// ScriptedRNG replays a fixed list of values, cycling when exhausted.
// Float64 returns the values as-is; Intn maps them onto [0, n).
// An empty script always yields 0.
type ScriptedRNG struct {
	Values []float64
	pos    int
}

// NewScriptedRNG creates a scripted source over values.
func NewScriptedRNG(values ...float64) *ScriptedRNG {
	return &ScriptedRNG{Values: values}
}

// Float64 returns the next scripted value.
func (s *ScriptedRNG) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// Intn maps the next scripted value onto [0, n).
func (s *ScriptedRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	return Clamp(i, 0, n-1)
}

// RandRange returns a value in [min, max) drawn from r.
func RandRange(r RNG, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
