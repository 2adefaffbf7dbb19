package voiced

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-imbe/imbe/internal/bitparse"
)

func TestPhaseBaseGoldenVector(t *testing.T) {
	chunks := bitparse.Chunks{
		0b001000010010,
		0b110011001100,
		0b111000111000,
		0b111111111111,
		0b10101110101,
		0b00101111010,
		0b01110111011,
		0b00001000,
	}

	b := bitparse.ClassifyBootstrap(chunks)
	require.Equal(t, bitparse.BootstrapVoiced, b.Kind)

	p := bitparse.NewBaseParams(b.Period)
	require.InDelta(t, 0.17575344, float64(p.Fundamental), 0.000001)

	prev := bitparse.DefaultBaseParams()
	require.InDelta(t, 0.0937765407, float64(prev.Fundamental), 0.0001)

	var prevPB PhaseBase
	pb := NewPhaseBase(prev.Fundamental, p.Fundamental, prevPB)

	require.InDelta(t, 21.56239846, float64(pb.Get(1)), 0.0001)
	require.InDelta(t, 43.12479691, float64(pb.Get(2)), 0.0001)
	require.InDelta(t, 64.68719537, float64(pb.Get(3)), 0.0001)
	require.InDelta(t, 86.24959382, float64(pb.Get(4)), 0.0001)
	require.InDelta(t, 107.8119923, float64(pb.Get(5)), 0.0001)
	require.InDelta(t, 129.3743907, float64(pb.Get(6)), 0.0001)
	require.InDelta(t, 431.2479691, float64(pb.Get(20)), 0.0001)
	require.InDelta(t, 1207.494314, float64(pb.Get(56)), 0.001)
}
