package imbe

import (
	"github.com/charmbracelet/log"

	"github.com/go-imbe/imbe/internal/rng"
)

// Config configures a Decoder. The zero value is not usable directly; use
// NewDecoder, which fills in defaults for any zero field.
type Config struct {
	// Workers is the number of goroutines the WOLA combiner fans out
	// across; it must evenly divide FrameSamples. Zero selects the
	// default of 4 (spec.md §5, matching the reference decoder's four
	// 40-sample worker scope). A count that does not evenly divide
	// FrameSamples runs the combiner on a single goroutine.
	Workers int

	// RNG is the random source for unvoiced-band noise and phase
	// perturbation. Nil selects a default math/rand-backed source seeded
	// from Seed.
	RNG rng.Source

	// Seed seeds the default RNG when RNG is nil. Ignored otherwise.
	Seed int64

	// Logger receives structured diagnostic events (frame status
	// transitions, mute triggers). A nil Logger discards all output.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Workers == 0 {
		c.Workers = 4
	}
	if c.RNG == nil {
		c.RNG = rng.NewDefault(c.Seed)
	}
	if c.Logger == nil {
		c.Logger = log.New(discardWriter{})
	}
	return c
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
