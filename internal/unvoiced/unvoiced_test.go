package unvoiced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/rng"
)

type constEnhanced struct{ v float32 }

func (c constEnhanced) Get(l int) float32 { return c.v }

func TestBandEdgesGuarantees(t *testing.T) {
	fundamental := float32(0.02985 * math.Pi)
	lower, _ := BandEdges(1, fundamental)
	require.GreaterOrEqual(t, lower, 2)

	_, upper := BandEdges(30, fundamental)
	require.LessOrEqual(t, upper, 125)
}

func TestNewSpectrumZeroOutsideUnvoicedBands(t *testing.T) {
	voice := bitparse.DefaultVoiceDecisions(16, 6) // all unvoiced
	src := rng.NewDefault(1)

	spec := New(16, float32(0.2), voice, constEnhanced{v: 1.0}, 100.0, src)

	nonZero := false
	for _, b := range spec.bins {
		if b != 0 {
			nonZero = true
			break
		}
	}
	require.True(t, nonZero)

	// Bins below the first harmonic's lower band edge belong to no band.
	lower, _ := BandEdges(1, float32(0.2))
	for m := 0; m < lower; m++ {
		require.Equal(t, complex128(0), spec.bins[m], "m=%d", m)
	}
}

func TestIDFTZeroOutsideSupport(t *testing.T) {
	var spec Spectrum
	require.Equal(t, float32(0), spec.IDFT(128))
	require.Equal(t, float32(0), spec.IDFT(-128))
}
