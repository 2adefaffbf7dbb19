// Package rng provides the injected random source the synthesis pipeline
// needs for unvoiced-band noise and phase perturbation, so callers can
// substitute a deterministic source in tests.
package rng

import (
	"math"
	"math/rand"
)

// Source draws the three primitive distributions the pipeline consumes.
// It is not required to be safe for concurrent use; callers own one Source
// per goroutine (spec.md §5: "The random-number generator is not shared").
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Uniform returns a uniform value in [a, b).
	Uniform(a, b float64) float64
	// Gaussian returns a value drawn from N(mean, stddev^2).
	Gaussian(mean, stddev float64) float64
}

// Default wraps a math/rand source to satisfy Source.
type Default struct {
	r *rand.Rand
}

// NewDefault builds a Default seeded deterministically from seed. Callers
// that want nondeterministic output should seed from a time- or
// entropy-derived value themselves; this package never reads the clock.
func NewDefault(seed int64) *Default {
	return &Default{r: rand.New(rand.NewSource(seed))}
}

func (d *Default) Float64() float64 {
	return d.r.Float64()
}

func (d *Default) Uniform(a, b float64) float64 {
	return a + (b-a)*d.r.Float64()
}

func (d *Default) Gaussian(mean, stddev float64) float64 {
	return mean + stddev*d.r.NormFloat64()
}

// Phase returns a value uniformly drawn from [-pi, pi), matching the phase
// perturbation range in spec.md §4.9.
func Phase(s Source) float64 {
	return s.Uniform(-math.Pi, math.Pi)
}
