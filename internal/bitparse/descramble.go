package bitparse

// Descrambled is the result of fully descrambling one frame's bit chunks
// once the bootstrap period is known to be valid.
type Descrambled struct {
	Params    BaseParams
	Amps      QuantizedAmplitudes
	Voice     VoiceDecisions
	GainIndex uint32
}

// Descramble runs the middle-chunk split, gain-index assembly, bit scan,
// and amplitude/voicing reconstruction for a frame whose bootstrap
// classified as a valid period (spec.md §4.1).
func Descramble(c Chunks, params BaseParams) Descrambled {
	parts := NewChunkParts(c, params.Bands)

	return Descrambled{
		Params:    params,
		Amps:      NewQuantizedAmplitudes(c, parts.Scanned, params.Harmonics, params.Bands),
		Voice:     NewVoiceDecisions(parts.Voiced, params.Harmonics, params.Bands),
		GainIndex: GainIndex(c, parts),
	}
}
