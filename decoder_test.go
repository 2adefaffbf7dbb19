package imbe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeNormalFrameProducesFrameSamples(t *testing.T) {
	dec := NewDecoder(Config{Seed: 1})
	require.False(t, dec.Warm())

	chunks := Chunks{
		0b001000010010,
		0b110011001100,
		0b111000111000,
		0b111111111111,
		0b10100110101,
		0b00101111010,
		0b01110111011,
		0b00001000,
	}

	samples, status, err := dec.Decode(chunks, ErrorCounts{})
	require.NoError(t, err)
	require.Equal(t, StatusNormal, status)
	require.Len(t, samples, FrameSamples)
	require.True(t, dec.Warm())

	for _, s := range samples {
		require.False(t, s != s, "sample is NaN")
	}
}

func TestDecodeSilenceFrame(t *testing.T) {
	dec := NewDecoder(Config{Seed: 1})

	// b0 in [216,219]: top6(u0)<<2 | low2(u7) = 217 = 0b11011001 -> top6=0b110110, low2=0b01
	chunks := Chunks{
		0b110110 << 6,
		0, 0, 0, 0, 0, 0,
		0b01 << 1,
	}

	samples, status, err := dec.Decode(chunks, ErrorCounts{})
	require.NoError(t, err)
	require.Equal(t, StatusSilence, status)
	require.Len(t, samples, FrameSamples)
	for _, s := range samples {
		require.Equal(t, float32(0), s)
	}
}

func TestDecodeInvalidChunkWidth(t *testing.T) {
	dec := NewDecoder(Config{})
	chunks := Chunks{1 << 12, 0, 0, 0, 0, 0, 0, 0}

	_, _, err := dec.Decode(chunks, ErrorCounts{})
	require.ErrorIs(t, err, ErrInvalidChunkWidth)
}

func TestDecodeRepeatOnInvalidBootstrap(t *testing.T) {
	dec := NewDecoder(Config{Seed: 1})

	// b0 = 255 (out of [0,207] and [216,219]) -> Invalid
	chunks := Chunks{
		0b111111 << 6,
		0, 0, 0, 0, 0, 0,
		0b11 << 1,
	}

	samples, status, err := dec.Decode(chunks, ErrorCounts{})
	require.NoError(t, err)
	require.Equal(t, StatusRepeat, status)
	require.Len(t, samples, FrameSamples)
	require.False(t, dec.Warm()) // repeat never warms a cold decoder
}
