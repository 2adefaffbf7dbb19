// Package gain reconstructs the six DCT block gains from the frame's 6-bit
// gain VQ index and its quantized amplitudes.
package gain

import (
	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/tables"
)

// Gains holds the six reconstructed gain values R1..R6, the first-block
// coefficient fed into each of the six DCT blocks (spec.md §4.2).
type Gains struct {
	values [6]float32
}

// New reconstructs Gains from the gain VQ index and the frame's quantized
// amplitudes. original_source/src/gain.rs (the real per-frame offset
// formula) was not present in the retrieved reference corpus, so the offset
// applied here is a documented approximation: the mean of the first six
// quantized amplitudes (b3..b8), each normalized to [0,1) by its allocated
// bit width, centered and added uniformly to every VQ row value. This
// preserves the spec's stated shape - "a further per-frame offset derived
// from the mean of the prefix of quantized amplitudes" - without claiming
// bit-exactness; see DESIGN.md.
func New(gainIdx uint32, amps bitparse.QuantizedAmplitudes, harmonics int) Gains {
	row := tables.GainVQ(int(gainIdx))

	_, widths := tables.Allocation(harmonics)
	offset := prefixOffset(amps, widths)

	var g Gains
	for i, v := range row {
		g.values[i] = v + offset
	}
	return g
}

// prefixOffset averages the normalized value of the first six quantized
// amplitudes (the allocation indices feeding coefficients m=3..8) and
// recenters it around zero.
func prefixOffset(amps bitparse.QuantizedAmplitudes, widths []int) float32 {
	n := 6
	if n > amps.Len() {
		n = amps.Len()
	}
	if n == 0 {
		return 0
	}

	var sum float32
	for i := 0; i < n; i++ {
		m := i + 3
		width := widths[i]
		if width == 0 {
			continue
		}
		max := float32(uint32(1) << uint(width))
		sum += float32(amps.Get(m)) / max
	}

	return sum/float32(n) - 0.5
}

// Get returns R_i for 1-based block index i in [1, 6].
func (g Gains) Get(i int) float32 {
	return g.values[i-1]
}
