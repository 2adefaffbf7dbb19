package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/coef"
	"github.com/go-imbe/imbe/internal/gain"
)

func TestFirstFrameReducesToPowerOfCoefficients(t *testing.T) {
	chunks := bitparse.Chunks{
		0b001000010010,
		0b110011001100,
		0b111000111000,
		0b111111111111,
		0b10100110101,
		0b00101111010,
		0b01110111011,
		0b00001000,
	}

	p := bitparse.NewBaseParams(0x21)
	d := bitparse.Descramble(chunks, p)
	g := gain.New(d.GainIndex, d.Amps, p.Harmonics)
	c := coef.New(g, d.Amps, p.Harmonics)

	// Default previous spectrals are all 1.0 and previous harmonics equals
	// current, so the prediction term collapses to zero and M~_l = 2^T_l.
	prevAt := func(l int) float32 { return 1.0 }
	s := New(c, p.Harmonics, prevAt, p.Harmonics)

	for l := 1; l <= p.Harmonics; l++ {
		want := float32(math.Exp2(float64(c.Get(l))))
		require.InDelta(t, want, s.Get(l), 1e-3, "l=%d", l)
	}
}
