package coef

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/gain"
)

// TestNewProducesFiniteCoefficientsForEveryHarmonicCount checks spec.md §8's
// invariant that coefficient reconstruction never produces NaN/Inf and
// always yields exactly L values, for any valid harmonic count and any
// quantized amplitude/gain-index combination the bit-scan can produce.
func TestNewProducesFiniteCoefficientsForEveryHarmonicCount(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b0 := rapid.IntRange(0, 207).Draw(rt, "b0")
		params := bitparse.NewBaseParams(b0)

		var chunks bitparse.Chunks
		chunks[0] = rapid.Uint32Range(0, 1<<12-1).Draw(rt, "u0")
		chunks[1] = rapid.Uint32Range(0, 1<<12-1).Draw(rt, "u1")
		chunks[2] = rapid.Uint32Range(0, 1<<12-1).Draw(rt, "u2")
		chunks[3] = rapid.Uint32Range(0, 1<<12-1).Draw(rt, "u3")
		chunks[4] = rapid.Uint32Range(0, 1<<11-1).Draw(rt, "u4")
		chunks[5] = rapid.Uint32Range(0, 1<<11-1).Draw(rt, "u5")
		chunks[6] = rapid.Uint32Range(0, 1<<11-1).Draw(rt, "u6")
		chunks[7] = rapid.Uint32Range(0, 1<<7-1).Draw(rt, "u7")

		d := bitparse.Descramble(chunks, params)
		g := gain.New(d.GainIndex, d.Amps, params.Harmonics)

		c := New(g, d.Amps, params.Harmonics)
		require.Equal(t, params.Harmonics, c.Len())

		for l := 1; l <= params.Harmonics; l++ {
			v := c.Get(l)
			require.False(t, math.IsNaN(float64(v)), "l=%d", l)
			require.False(t, math.IsInf(float64(v), 0), "l=%d", l)
		}
	})
}
