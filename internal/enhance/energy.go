package enhance

import "math"

// FrameEnergy holds R_M0, R_M1, and the smoothed energy tracker S_E
// (spec.md §4.4).
type FrameEnergy struct {
	RM0 float32
	RM1 float32
	SE  float64
}

// SpectralSource is satisfied by anything exposing M-tilde_l.
type SpectralSource interface {
	Get(l int) float32
	Len() int
}

// NewFrameEnergy computes the current frame's energy from its spectral
// amplitudes, the fundamental frequency, and the previous frame's S_E.
func NewFrameEnergy(spectrals SpectralSource, fundamental float32, prevSE float64) FrameEnergy {
	var rm0, rm1 float32
	for l := 1; l <= spectrals.Len(); l++ {
		m := spectrals.Get(l)
		m2 := m * m
		rm0 += m2
		rm1 += m2 * float32(math.Cos(float64(fundamental)*float64(l)))
	}

	se := math.Max(0.95*prevSE+0.05*float64(rm0), 10000)

	return FrameEnergy{RM0: rm0, RM1: rm1, SE: se}
}
