// Package prevstate holds the single mutable state carried across frame
// boundaries: the previous frame's parameters, spectral amplitudes, voicing,
// error tracking, energy, and phase.
package prevstate

import (
	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/unvoiced"
	"github.com/go-imbe/imbe/internal/voiced"
)

// MaxHarmonics is the largest harmonic count a frame can carry (L <= 56).
const MaxHarmonics = 56

// Frame is the cross-frame state snapshot (spec.md §3 PrevFrame).
type Frame struct {
	Params bitparse.BaseParams

	// Spectrals[l-1] is M-tilde_l; Enhanced[l-1] is M-bar_l. Only the
	// first Params.Harmonics entries are meaningful.
	Spectrals [MaxHarmonics]float32
	Enhanced  [MaxHarmonics]float32

	Voice bitparse.VoiceDecisions

	ErrRate   float64 // epsilon_R
	Energy    float64 // S_E
	AmpThresh float64 // tau, the smoothing threshold

	UnvoicedDFT unvoiced.Spectrum

	PhaseBase voiced.PhaseBase
	Phase     voiced.Phase
}

// Cold returns the hard-coded bootstrap default state (spec.md §4.11):
// omega_0 = 0.02985*pi, L=30, K=10, S_E=75000, err_rate=0, all spectrals=1,
// all phase/enhanced=0, unvoiced DFT=0.
func Cold() *Frame {
	f := &Frame{
		Params:    bitparse.DefaultBaseParams(),
		ErrRate:   0,
		Energy:    75000,
		AmpThresh: 0,
		Voice:     bitparse.DefaultVoiceDecisions(30, 10),
	}
	for i := range f.Spectrals {
		f.Spectrals[i] = 1.0
	}
	return f
}

// SpectralAt returns M-tilde_l for 1-based harmonic index l, saturating at
// the boundary per spec.md §4.3: l=0 reads as 1, l>Harmonics saturates at
// the last value.
func (f *Frame) SpectralAt(l int) float32 {
	if l <= 0 {
		return 1.0
	}
	if l > f.Params.Harmonics {
		l = f.Params.Harmonics
	}
	return f.Spectrals[l-1]
}

// EnhancedView wraps a Frame to satisfy voiced.EnhancedSource and
// unvoiced.EnhancedSource Get(l) queries against its enhanced amplitudes,
// returning 0 beyond the frame's harmonic count (spec.md §4.9).
type EnhancedView struct {
	F *Frame
}

// Get returns M-bar_l for 1-based harmonic index l.
func (e EnhancedView) Get(l int) float32 {
	if l <= 0 || l > e.F.Params.Harmonics {
		return 0
	}
	return e.F.Enhanced[l-1]
}
