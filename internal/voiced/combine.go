package voiced

import "github.com/go-imbe/imbe/internal/window"

// UnvoicedIDFT is satisfied by anything exposing the real half-spectrum
// inverse DFT u_w(n) (internal/unvoiced.Spectrum.IDFT).
type UnvoicedIDFT interface {
	IDFT(n int) float32
}

// Combine computes one output sample y(n) by weighted-overlap-adding the
// previous and current frame's unvoiced IDFTs and adding the voiced
// contribution (spec.md §4.10).
func Combine(n int, prevIDFT, curIDFT UnvoicedIDFT, voiced Synthesizer) float32 {
	ws0 := window.Synthesis().Get(n)
	ws1 := window.Synthesis().Get(n - Samples)

	denom := ws0*ws0 + ws1*ws1
	var u float32
	if denom != 0 {
		u = (ws0*prevIDFT.IDFT(n) + ws1*curIDFT.IDFT(n-Samples)) / denom
	}

	return u + voiced.Sample(n)
}
