// Package imbe implements a decoder for the IMBE (Improved Multi-Band
// Excitation) half-rate vocoder used in the APCO Project 25 digital radio
// standard.
//
// The decoder consumes a stream of 144-bit frames, presented after outer
// Golay/Hamming FEC decoding as eight prioritized bit vectors plus
// per-vector error counts, and produces a stream of 20ms audio frames of
// 160 linear PCM samples at 8kHz. Outer FEC decoding, I/O, and packetization
// are out of scope; callers own those concerns and hand this package
// Chunks and ErrorCounts directly.
//
// # Pipeline
//
// Each frame passes through bit-field descrambling (recovering voice-model
// parameters and quantized amplitudes), spectral-amplitude reconstruction
// (inverse DCT, inter-frame prediction, enhancement, adaptive smoothing),
// unvoiced spectrum synthesis (banded noise in the frequency domain),
// voiced spectrum synthesis (per-harmonic sinusoids with phase continuity),
// and a weighted-overlap-add combiner that produces the 160 output samples.
//
// # State
//
// A Decoder owns the only mutable state that crosses frame boundaries: the
// previous frame's parameters, spectral amplitudes, voicing, and phase.
// Use NewDecoder to construct one; it starts Cold and becomes Warm after
// its first successful synthesis. Silence and repeat frames never
// downgrade a Warm decoder back to Cold.
package imbe
