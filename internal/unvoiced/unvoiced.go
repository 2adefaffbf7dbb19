// Package unvoiced synthesizes the current frame's unvoiced spectrum as
// banded Gaussian noise in the frequency domain and its half-spectrum
// inverse DFT (spec.md §4.8).
package unvoiced

import (
	"math"

	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/rng"
	"github.com/go-imbe/imbe/internal/tables"
)

// DFTSize is N, the conceptual full DFT length; only the 128 non-negative
// frequency bins are materialized since the time-domain signal is real.
const DFTSize = 256

// Bins is the number of stored complex bins (indices 0..127).
const Bins = 128

// BandEdges returns the lower (inclusive) and upper (exclusive) bin edges
// for harmonic l, given the fundamental frequency (spec.md §4.8 Band edges).
func BandEdges(l int, fundamental float32) (lower, upper int) {
	c := 256 * float64(fundamental) / (2 * math.Pi)
	lower = int(math.Ceil(c * (float64(l) - 0.5)))
	upper = int(math.Ceil(c * (float64(l) + 0.5)))
	return lower, upper
}

// Spectrum holds U_0..U_127.
type Spectrum struct {
	bins [Bins]complex128
}

// EnhancedSource is satisfied by anything exposing M-bar_l.
type EnhancedSource interface {
	Get(l int) float32
}

// New builds the unvoiced spectrum: every unvoiced harmonic's band is
// filled with Gaussian noise, power-normalized, and scaled by gamma and the
// harmonic's enhanced amplitude.
func New(harmonics int, fundamental float32, voice bitparse.VoiceDecisions, enhanced EnhancedSource, windowEnergy float32, src rng.Source) Spectrum {
	var spec Spectrum

	for l := 1; l <= harmonics; l++ {
		if voice.IsVoiced(l) {
			continue
		}

		lower, upper := BandEdges(l, fundamental)
		if lower < 0 {
			lower = 0
		}
		if upper > Bins {
			upper = Bins
		}
		if upper <= lower {
			continue
		}

		width := upper - lower
		band := make([]complex128, width)

		var power float64
		stddev := math.Sqrt(float64(windowEnergy) / 2)
		for i := range band {
			re := src.Gaussian(0, stddev)
			im := src.Gaussian(0, stddev)
			band[i] = complex(re, im)
			power += re*re + im*im
		}
		power /= float64(width)

		scale := tables.Gamma * float64(enhanced.Get(l)) / math.Sqrt(power)
		for i, b := range band {
			spec.bins[lower+i] = complex(real(b)*scale, imag(b)*scale)
		}
	}

	return spec
}

// IDFT evaluates the real half-spectrum inverse DFT u_w(n) for integer n
// with |n| < 128, returning 0 outside that support (spec.md §4.8 Inverse
// DFT).
func (s Spectrum) IDFT(n int) float32 {
	if n <= -Bins || n >= Bins {
		return 0
	}

	var sum float64
	for m := 0; m < Bins; m++ {
		angle := 2 * math.Pi * float64(m) * float64(n) / DFTSize
		sum += real(s.bins[m])*math.Cos(angle) - imag(s.bins[m])*math.Sin(angle)
	}

	return float32(2.0 / DFTSize * sum)
}
