// Package window provides the IMBE synthesis window w_S and its
// precomputed energy, shared by the unvoiced and voiced synthesis stages
// and the WOLA combiner.
package window

// Table holds a symmetric window indexed about its center, returning zero
// outside its support. n=0 addresses the center element.
type Table struct {
	coefs  []float32
	offset int
}

// New wraps a precomputed coefficient slice as a centered window table.
func New(coefs []float32) *Table {
	return &Table{coefs: coefs, offset: len(coefs) / 2}
}

// Get returns w(n), or 0 when n falls outside the table's support.
func (t *Table) Get(n int) float32 {
	idx := n + t.offset
	if idx < 0 || idx >= len(t.coefs) {
		return 0
	}
	return t.coefs[idx]
}

// Synthesis returns the shared w_S synthesis window, supported on
// [-105, 105]: a 50-sample linear ramp up, a 111-sample plateau at 1.0,
// and a 50-sample linear ramp down.
func Synthesis() *Table {
	return synthesisTable
}

// Energy returns E_w, the precomputed sum of w_S(n)^2 over its support,
// consumed by the unvoiced-band noise scaling in internal/unvoiced.
func Energy() float32 {
	return synthesisEnergy
}

var synthesisTable = New(synthesisCoefs[:])

var synthesisEnergy = computeEnergy(synthesisCoefs[:])

func computeEnergy(coefs []float32) float32 {
	var sum float32
	for _, c := range coefs {
		sum += c * c
	}
	return sum
}

// synthesisCoefs is w_S(n) for n = -105..105, 211 values total.
var synthesisCoefs = [211]float32{
	0.000000, 0.020000, 0.040000, 0.060000, 0.080000, 0.100000, 0.120000, 0.140000,
	0.160000, 0.180000, 0.200000, 0.220000, 0.240000, 0.260000, 0.280000, 0.300000,
	0.320000, 0.340000, 0.360000, 0.380000, 0.400000, 0.420000, 0.440000, 0.460000,
	0.480000, 0.500000, 0.520000, 0.540000, 0.560000, 0.580000, 0.600000, 0.620000,
	0.640000, 0.660000, 0.680000, 0.700000, 0.720000, 0.740000, 0.760000, 0.780000,
	0.800000, 0.820000, 0.840000, 0.860000, 0.880000, 0.900000, 0.920000, 0.940000,
	0.960000, 0.980000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000,
	1.000000, 0.980000, 0.960000, 0.940000, 0.920000, 0.900000, 0.880000, 0.860000,
	0.840000, 0.820000, 0.800000, 0.780000, 0.760000, 0.740000, 0.720000, 0.700000,
	0.680000, 0.660000, 0.640000, 0.620000, 0.600000, 0.580000, 0.560000, 0.540000,
	0.520000, 0.500000, 0.480000, 0.460000, 0.440000, 0.420000, 0.400000, 0.380000,
	0.360000, 0.340000, 0.320000, 0.300000, 0.280000, 0.260000, 0.240000, 0.220000,
	0.200000, 0.180000, 0.160000, 0.140000, 0.120000, 0.100000, 0.080000, 0.060000,
	0.040000, 0.020000, 0.000000,
}
