// Package enhance implements error characterization, frame energy tracking,
// spectral enhancement, and adaptive smoothing (spec.md §4.4-4.7).
package enhance

// ErrorCounts is the 7-tuple of per-chunk error counts from the outer FEC.
type ErrorCounts [7]uint32

// Errors holds the derived error-tracking values for the current frame.
type Errors struct {
	Total   uint32  // epsilon_T
	Rate    float64 // epsilon_R
	E0      uint32  // epsilon_0
	E4      uint32  // epsilon_4
}

// NewErrors computes the error tracker from this frame's counts and the
// previous frame's rate (spec.md §4.5).
func NewErrors(counts ErrorCounts, prevRate float64) Errors {
	var total uint32
	for _, e := range counts {
		total += e
	}

	rate := 0.95*prevRate + 0.000365*float64(total)

	return Errors{
		Total: total,
		Rate:  rate,
		E0:    counts[0],
		E4:    counts[4],
	}
}

// ShouldRepeat reports whether the frame should be treated as a repeat
// (spec.md §4.5): epsilon_0 >= 2 and epsilon_T >= 10 + 40*epsilon_R.
func (e Errors) ShouldRepeat() bool {
	return e.E0 >= 2 && float64(e.Total) >= 10+40*e.Rate
}

// ShouldMute reports whether the frame should be muted to silence
// (spec.md §4.5): epsilon_R > 0.0875.
func (e Errors) ShouldMute() bool {
	return e.Rate > 0.0875
}
