// Package coef reconstructs the length-L coefficient sequence T_l from the
// frame's gains and quantized amplitudes via a blockwise inverse DCT-II-like
// sum (spec.md §4.2).
package coef

import (
	"math"

	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/gain"
	"github.com/go-imbe/imbe/internal/tables"
)

// Coefficients holds T_1..T_L.
type Coefficients struct {
	values []float32
}

// New reconstructs Coefficients for the given harmonic count L.
func New(g gain.Gains, amps bitparse.QuantizedAmplitudes, harmonics int) Coefficients {
	amount := tables.AmpsUsed(harmonics)
	_, alloc := tables.Allocation(harmonics)

	values := make([]float32, 0, harmonics)

	mStart := 8
	for block := 1; block <= 6; block++ {
		size := amount[block-1]
		b := newBlock(block, g, amps, alloc, mStart, size)
		for j := 1; j <= b.len(); j++ {
			values = append(values, b.idct(j))
		}
		mStart += size - 1
	}

	return Coefficients{values: values}
}

// Get returns T_l for 1-based harmonic index l.
func (c Coefficients) Get(l int) float32 {
	return c.values[l-1]
}

// Len returns L.
func (c Coefficients) Len() int {
	return len(c.values)
}

type block struct {
	coefs []float32
}

// newBlock reconstructs the coefficients of one DCT block: the block gain,
// followed by size-1 amplitude-derived coefficients starting at amplitude
// index mStart.
func newBlock(i int, g gain.Gains, amps bitparse.QuantizedAmplitudes, alloc []int, mStart, size int) block {
	coefs := make([]float32, 0, size)
	coefs = append(coefs, g.Get(i))

	for k := 0; k < size-1; k++ {
		m := mStart + k
		bits := alloc[m-3]

		var c float32
		if bits != 0 {
			c = tables.DCTStepSize[bits-1] * tables.DCTStdDev[k] *
				(float32(amps.Get(m)) - float32(math.Exp2(float64(bits-1))) + 0.5)
		}
		coefs = append(coefs, c)
	}

	return block{coefs: coefs}
}

func (b block) len() int {
	return len(b.coefs)
}

// idct reconstructs the j-th (1-based) time-domain value of the block via
// the inverse DCT-II-like sum (spec.md §4.2).
func (b block) idct(j int) float32 {
	n := b.len()
	sum := b.coefs[0]

	for k := 2; k <= n; k++ {
		angle := math.Pi * float64(k-1) * (float64(j) - 0.5) / float64(n)
		sum += 2 * b.coefs[k-1] * float32(math.Cos(angle))
	}

	return sum
}
