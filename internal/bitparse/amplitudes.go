package bitparse

import "github.com/go-imbe/imbe/internal/tables"

// QuantizedAmplitudes holds the reconstructed unsigned integers bm for
// m = 3..L+1 (spec.md §4.1 Quantized-amplitude reconstruction).
type QuantizedAmplitudes struct {
	amps []uint32 // index 0 corresponds to m=3
}

// NewQuantizedAmplitudes drains the scan bit-by-bit according to the
// allocation table for harmonics, building each bm with an LSB-first shift
// as widening bit-levels become active. The scan must be exactly consumed.
func NewQuantizedAmplitudes(c Chunks, scanned uint32, harmonics, bands int) QuantizedAmplitudes {
	scan := newScanBits(c, scanned, bands)

	amps := make([]uint32, harmonics-1)
	max, widths := tables.Allocation(harmonics)

	for level := max - 1; level >= 0; level-- {
		for i := range amps {
			if widths[i] <= level {
				continue
			}
			bit, ok := scan.next()
			if !ok {
				panic("bitparse: scan exhausted before allocation satisfied")
			}
			amps[i] = amps[i]<<1 | bit
		}
	}

	if _, ok := scan.next(); ok {
		panic("bitparse: scan not fully consumed by allocation")
	}

	return QuantizedAmplitudes{amps: amps}
}

// Get returns bm for the 1-based coefficient index m, m in [3, L+1].
func (q QuantizedAmplitudes) Get(m int) uint32 {
	return q.amps[m-3]
}

// Len returns L-1, the number of quantized amplitudes.
func (q QuantizedAmplitudes) Len() int {
	return len(q.amps)
}
