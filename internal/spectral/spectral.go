// Package spectral reconstructs the current frame's spectral amplitudes
// M-tilde_l from the DCT coefficients and the previous frame's amplitudes
// (spec.md §4.3).
package spectral

import (
	"math"

	"github.com/go-imbe/imbe/internal/coef"
)

// Spectrals holds M-tilde_1..M-tilde_L.
type Spectrals struct {
	values []float32
}

// New predicts the current frame's spectral amplitudes from its DCT
// coefficients and the previous frame's amplitudes.
func New(c coef.Coefficients, prevHarmonics int, prevAt func(l int) float32, harmonics int) Spectrals {
	l := harmonics
	scale := float32(prevHarmonics) / float32(l)
	rho := clamp(0.03*float32(l)-0.05, 0.4, 0.7)

	logPrev := make([]float32, l+1) // logPrev[i] = (1-delta)*log2(M~-_k) + delta*log2(M~-_{k+1}), i is 1-based l
	for li := 1; li <= l; li++ {
		sl := scale * float32(li)
		k := int(math.Floor(float64(sl)))
		delta := sl - float32(k)

		lo := float32(math.Log2(float64(prevAt(k))))
		hi := float32(math.Log2(float64(prevAt(k + 1))))
		logPrev[li] = (1-delta)*lo + delta*hi
	}

	var mu float32
	for li := 1; li <= l; li++ {
		mu += logPrev[li]
	}
	mu /= float32(l)

	values := make([]float32, l)
	for li := 1; li <= l; li++ {
		t := c.Get(li)
		values[li-1] = float32(math.Exp2(float64(t + rho*(logPrev[li]-mu))))
	}

	return Spectrals{values: values}
}

// Get returns M-tilde_l for 1-based harmonic index l.
func (s Spectrals) Get(l int) float32 {
	return s.values[l-1]
}

// Len returns L.
func (s Spectrals) Len() int {
	return len(s.values)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
