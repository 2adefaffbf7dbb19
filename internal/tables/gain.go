package tables

import "math"

// GainRows is the number of entries in the gain vector quantizer (6 bits
// of index, b_2 in [0, 64)).
const GainRows = 64

// GainDims is the number of gain values per row (one per DCT block).
const GainDims = 6

// GainVQ returns the six quantized gain values R_1..R_6 for the given
// 6-bit gain index b_2.
//
// original_source/src/gain.rs (the real 64x6 VQ codebook) was not present
// in the retrieved reference corpus. This table is synthesized rather than
// a bit-exact port: each row's mean level follows a monotonically
// increasing, perceptually-log-spaced energy ladder (mirroring how speech
// codec gain codebooks are actually trained — larger codewords for louder
// frames), and each of the 6 per-block dimensions carries a small fixed
// deviation from that row mean so later DCT blocks (which by construction
// carry less energy, see AmpsUsed) get slightly smaller gains. See
// DESIGN.md for the full rationale.
func GainVQ(idx int) [GainDims]float32 {
	return gainTable[idx]
}

var gainTable = buildGainTable()

func buildGainTable() [GainRows][GainDims]float32 {
	var t [GainRows][GainDims]float32

	// Per-block deviation from the row's mean level; block 1 (index 0)
	// carries the most energy, tapering toward block 6.
	shape := [GainDims]float32{0.35, 0.15, 0.00, -0.10, -0.20, -0.30}

	for row := 0; row < GainRows; row++ {
		// Mean level spanning roughly [-2, 6] in natural units, with a
		// square-root warp: rows are spaced widest at low energy and
		// grow denser toward high energy, matching the dynamic
		// range the spectral-energy floor (S_E >= 10000) implies for
		// Coefficients feeding 2^T_l.
		frac := float64(row) / float64(GainRows-1)
		mean := float32(-2.0 + 8.0*math.Sqrt(frac))

		for d := 0; d < GainDims; d++ {
			t[row][d] = mean + shape[d]
		}
	}

	return t
}
