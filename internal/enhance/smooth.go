package enhance

import (
	"math"

	"github.com/go-imbe/imbe/internal/bitparse"
)

// Smooth computes the adaptive-smoothing threshold and force-voiced
// threshold, forces harmonics above the latter voiced, and rescales the
// enhanced spectrum so its sum does not exceed the threshold (spec.md §4.7).
// It returns the new amp_thresh (tau) to carry into the next frame.
func Smooth(enhanced EnhancedSpectrals, voice *bitparse.VoiceDecisions, errs Errors, energy FrameEnergy, prevAmpThresh float64) float64 {
	var tau float64
	if errs.Rate <= 0.005 && errs.Total <= 6 {
		tau = 20480
	} else {
		tau = 6000 - 300*float64(errs.Total) + prevAmpThresh
	}

	var lambda float64
	switch {
	case errs.Rate <= 0.005 && errs.Total <= 4:
		lambda = math.Inf(1)
	case errs.Rate <= 0.0125 && errs.E4 == 0:
		lambda = 45.255 * math.Pow(energy.SE, 0.375) / math.Exp(277.26*errs.Rate)
	default:
		lambda = 1.414 * math.Pow(energy.SE, 0.375)
	}

	for l := 1; l <= enhanced.Len(); l++ {
		if float64(enhanced.Get(l)) > lambda {
			voice.ForceVoiced(l)
		}
	}

	var sum float32
	for l := 1; l <= enhanced.Len(); l++ {
		sum += enhanced.Get(l)
	}

	scale := float32(math.Min(tau/float64(sum), 1.0))
	if scale != 1.0 {
		for l := 1; l <= enhanced.Len(); l++ {
			enhanced.Set(l, enhanced.Get(l)*scale)
		}
	}

	return tau
}
