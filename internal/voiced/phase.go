// Package voiced synthesizes the current frame's voiced spectrum: phase
// continuity tracking and per-harmonic sinusoidal reconstruction
// (spec.md §4.9).
package voiced

import (
	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/rng"
)

// Samples is N, the 20ms frame length in PCM samples.
const Samples = 160

// MaxHarmonics is the largest harmonic count a frame can carry.
const MaxHarmonics = 56

// PhaseBase holds Psi_1..Psi_56, advanced once per frame regardless of
// voicing (spec.md §4.9 Phase base).
type PhaseBase [MaxHarmonics]float32

// NewPhaseBase advances the previous frame's phase base by the average
// fundamental times the frame length (Samples) times the harmonic index.
func NewPhaseBase(prevFundamental, fundamental float32, prev PhaseBase) PhaseBase {
	common := (prevFundamental + fundamental) * Samples / 2.0

	var pb PhaseBase
	for l := 1; l <= MaxHarmonics; l++ {
		pb[l-1] = prev[l-1] + common*float32(l)
	}
	return pb
}

// Get returns Psi_l for 1-based harmonic index l.
func (p PhaseBase) Get(l int) float32 {
	return p[l-1]
}

// Phase holds Phi_1..Phi_56, the perturbed phase used by voiced synthesis
// (spec.md §4.9 Phase perturbation).
type Phase [MaxHarmonics]float32

// NewPhase perturbs the phase base for harmonics in (L/4, max(L, L-prev)]
// by an independent random offset scaled by the unvoiced-harmonic fraction;
// harmonics outside that range keep the base phase unchanged.
func NewPhase(harmonics, prevHarmonics int, voice bitparse.VoiceDecisions, base PhaseBase, src rng.Source) Phase {
	trans := harmonics / 4
	end := harmonics
	if prevHarmonics > end {
		end = prevHarmonics
	}

	var p Phase
	for l := 1; l <= MaxHarmonics; l++ {
		p[l-1] = base.Get(l)
	}
	for l := trans + 1; l <= end; l++ {
		offset := float32(voice.UnvoicedCount) * float32(rng.Phase(src)) / float32(harmonics)
		p[l-1] = base.Get(l) + offset
	}
	return p
}

// Get returns Phi_l for 1-based harmonic index l.
func (p Phase) Get(l int) float32 {
	return p[l-1]
}
