package bitparse

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestDescrambleNeverPanicsOnValidChunks checks spec.md §8's general
// robustness invariant: any Chunks value within its prioritized bit widths
// descrambles into a QuantizedAmplitudes whose length matches Harmonics-1,
// for every voiced bootstrap period in the valid [0, 207] range.
func TestDescrambleNeverPanicsOnValidChunks(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b0 := rapid.IntRange(0, 207).Draw(rt, "b0")
		params := NewBaseParams(b0)

		var chunks Chunks
		chunks[0] = rapid.Uint32Range(0, 1<<12-1).Draw(rt, "u0")
		chunks[1] = rapid.Uint32Range(0, 1<<12-1).Draw(rt, "u1")
		chunks[2] = rapid.Uint32Range(0, 1<<12-1).Draw(rt, "u2")
		chunks[3] = rapid.Uint32Range(0, 1<<12-1).Draw(rt, "u3")
		chunks[4] = rapid.Uint32Range(0, 1<<11-1).Draw(rt, "u4")
		chunks[5] = rapid.Uint32Range(0, 1<<11-1).Draw(rt, "u5")
		chunks[6] = rapid.Uint32Range(0, 1<<11-1).Draw(rt, "u6")
		chunks[7] = rapid.Uint32Range(0, 1<<7-1).Draw(rt, "u7")

		d := Descramble(chunks, params)

		require.Equal(t, params.Harmonics-1, d.Amps.Len())
		require.True(t, d.GainIndex < 64)

		for l := 1; l <= params.Harmonics; l++ {
			_ = d.Voice.IsVoiced(l)
		}
		require.False(t, d.Voice.IsVoiced(params.Harmonics+1))
	})
}
