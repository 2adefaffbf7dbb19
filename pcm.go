package imbe

import "math"

// FrameSamples is the number of PCM samples a decoded frame carries: 20ms
// at 8kHz.
const FrameSamples = 160

func float32ToInt16(sample float32) int16 {
	scaled := float64(sample) * 32768.0
	if scaled > 32767.0 {
		return 32767
	}
	if scaled < -32768.0 {
		return -32768
	}
	return int16(math.RoundToEven(scaled))
}
