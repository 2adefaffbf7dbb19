package voiced

import (
	"math"

	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/window"
)

// EnhancedSource is satisfied by anything exposing M-bar_l.
type EnhancedSource interface {
	Get(l int) float32
}

// Synthesizer reconstructs the voiced time-domain contribution s_v(n)
// (spec.md §4.9 Per-harmonic signal, Voiced sample).
type Synthesizer struct {
	fundamental     float32
	prevFundamental float32
	end             int // max(L, L-prev)

	voice     bitparse.VoiceDecisions
	prevVoice bitparse.VoiceDecisions

	enhanced     EnhancedSource
	prevEnhanced EnhancedSource

	phase     Phase
	prevPhase Phase
}

// NewSynthesizer builds a Synthesizer from the current and previous frame
// state needed for per-harmonic phase-continuous synthesis.
func NewSynthesizer(
	fundamental, prevFundamental float32,
	harmonics, prevHarmonics int,
	voice, prevVoice bitparse.VoiceDecisions,
	enhanced, prevEnhanced EnhancedSource,
	phase, prevPhase Phase,
) Synthesizer {
	end := harmonics
	if prevHarmonics > end {
		end = prevHarmonics
	}

	return Synthesizer{
		fundamental:     fundamental,
		prevFundamental: prevFundamental,
		end:             end,
		voice:           voice,
		prevVoice:       prevVoice,
		enhanced:        enhanced,
		prevEnhanced:    prevEnhanced,
		phase:           phase,
		prevPhase:       prevPhase,
	}
}

// Sample returns s_v(n), the combined voiced contribution at sample n.
func (s Synthesizer) Sample(n int) float32 {
	var sum float32
	for l := 1; l <= s.end; l++ {
		sum += s.pair(l, n)
	}
	return 2 * sum
}

func (s Synthesizer) pair(l, n int) float32 {
	cur := s.voice.IsVoiced(l)
	prev := s.prevVoice.IsVoiced(l)

	switch {
	case !cur && !prev:
		return 0
	case !cur && prev:
		return s.sigPrev(l, n)
	case cur && !prev:
		return s.sigCur(l, n)
	default:
		return s.sigPrev(l, n) + s.sigCur(l, n)
	}
}

func (s Synthesizer) sigCur(l, n int) float32 {
	w := window.Synthesis().Get(n - Samples)
	amp := s.enhanced.Get(l)
	angle := s.fundamental*float32(n-Samples)*float32(l) + s.phase.Get(l)
	return w * amp * float32(math.Cos(float64(angle)))
}

func (s Synthesizer) sigPrev(l, n int) float32 {
	w := window.Synthesis().Get(n)
	amp := s.prevEnhanced.Get(l)
	angle := s.prevFundamental*float32(n)*float32(l) + s.prevPhase.Get(l)
	return w * amp * float32(math.Cos(float64(angle)))
}
