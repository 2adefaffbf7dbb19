package tables

// Allocation returns the per-harmonic quantized-amplitude bit widths B_m for
// m = 3..L+1 (L-1 values, ordered by m ascending) and the global maximum
// width M = max(B_m), for the given harmonic count L.
//
// original_source/src/allocs.rs (the real P25 allocation table) was not
// present in the retrieved reference corpus, so this is a synthesized
// stand-in rather than a bit-exact port: it satisfies every invariant
// spec.md states for the table (widths non-increasing in m, sum of widths
// equal to the exact number of bits the bit-scan produces for the given L,
// each width in [0, len(DCTStepSize)]) via a round-robin water-fill that
// gives the lowest-indexed, most perceptually significant coefficients the
// most bits. See DESIGN.md for the full rationale.
func Allocation(l int) (max int, widths []int) {
	n := l - 1
	total := totalScanBits(l)
	cap := len(DCTStepSize)

	w := make([]int, n)
	remaining := total
	for remaining > 0 {
		progressed := false
		for i := 0; i < n && remaining > 0; i++ {
			if w[i] < cap {
				w[i]++
				remaining--
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	if n > 0 {
		max = w[0]
	}
	return max, w
}

// totalScanBits returns the exact number of bits the bit-scan (spec.md
// §4.1) produces for harmonic count L: 3 + 12 + 12 + 12 + (20-K) + 11 + 3.
func totalScanBits(l int) int {
	k := bandsFor(l)
	return 73 - k
}

// bandsFor duplicates the K = min(ceil(L/3), 12) relation from BaseParams
// so this package has no dependency on internal/bitparse.
func bandsFor(l int) int {
	k := (l + 2) / 3
	if k > 12 {
		k = 12
	}
	return k
}
