package enhance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-imbe/imbe/internal/bitparse"
)

type constSpectrals struct {
	v []float32
}

func (c constSpectrals) Get(l int) float32 { return c.v[l-1] }
func (c constSpectrals) Len() int          { return len(c.v) }

func TestNewErrorsRepeatAndMute(t *testing.T) {
	e := NewErrors(ErrorCounts{2, 0, 0, 0, 0, 0, 0}, 0)
	require.Equal(t, uint32(2), e.Total)
	require.False(t, e.ShouldRepeat()) // 2 < 10

	e2 := NewErrors(ErrorCounts{5, 5, 5, 0, 0, 0, 0}, 0)
	require.True(t, e2.ShouldRepeat())

	e3 := NewErrors(ErrorCounts{20, 20, 20, 20, 0, 0, 0}, 2.0)
	require.True(t, e3.ShouldMute())
}

func TestFrameEnergyFloor(t *testing.T) {
	s := constSpectrals{v: make([]float32, 16)}
	fe := NewFrameEnergy(s, 0.1, 0)
	require.Equal(t, 10000.0, fe.SE) // all-zero spectrals -> floor applies
}

func TestEnhancedSpectralsPreservesLowBandEnergy(t *testing.T) {
	l := 16
	v := make([]float32, l)
	for i := range v {
		v[i] = 1.0
	}
	s := constSpectrals{v: v}
	fe := NewFrameEnergy(s, 0.2, 75000)

	e := NewEnhancedSpectrals(s, 0.2, fe)
	require.Equal(t, l, e.Len())

	// low bands (8*l <= L) are untouched by the weighting step, only by
	// the final energy-preserving rescale.
	for li := 1; 8*li <= l; li++ {
		require.Greater(t, e.Get(li), float32(0))
	}

	// The final rescale preserves total energy: sum of M-bar_l^2 == R_M0.
	var sumSq float32
	for li := 1; li <= l; li++ {
		sumSq += e.Get(li) * e.Get(li)
	}
	require.InDelta(t, fe.RM0, sumSq, 1e-3)
}

func TestSmoothForcesVoicedAboveLambda(t *testing.T) {
	l := 8
	v := make([]float32, l)
	for i := range v {
		v[i] = 1.0
	}
	s := constSpectrals{v: v}
	fe := NewFrameEnergy(s, 0.2, 75000)
	e := NewEnhancedSpectrals(s, 0.2, fe)
	e.Set(1, 1e9) // force well above any lambda

	voice := bitparse.DefaultVoiceDecisions(l, 3)
	// epsilon_T = 5 > 4 keeps lambda finite; with epsilon_R <= 0.005 and
	// epsilon_T <= 4 lambda is +Inf and nothing can be forced voiced.
	errs := NewErrors(ErrorCounts{5, 0, 0, 0, 0, 0, 0}, 0)

	Smooth(e, &voice, errs, fe, 0)

	require.True(t, voice.IsVoiced(1))
}
