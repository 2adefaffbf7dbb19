// stream.go implements a streaming io.Reader wrapper around Decoder.

package imbe

import (
	"encoding/binary"
	"io"
	"math"
)

// Streaming API
//
// Reader implements io.Reader over a FrameSource, decoding one 160-sample
// frame at a time and serving byte-oriented reads in the requested sample
// format.
//
// Example:
//
//	reader := imbe.NewReader(source, imbe.FormatFloat32LE, imbe.Config{})
//	io.Copy(audioOutput, reader)

// SampleFormat specifies the PCM sample format for streaming output.
type SampleFormat int

const (
	// FormatFloat32LE is 32-bit float, little-endian (4 bytes per sample).
	FormatFloat32LE SampleFormat = iota
	// FormatInt16LE is 16-bit signed integer, little-endian (2 bytes per sample).
	FormatInt16LE
)

// BytesPerSample returns the number of bytes per sample for the format.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case FormatFloat32LE:
		return 4
	case FormatInt16LE:
		return 2
	default:
		return 4
	}
}

// FrameSource provides successive IMBE frames for streaming decode.
// Implementations return io.EOF when no more frames are available.
type FrameSource interface {
	// NextFrame returns the next frame's chunks and FEC error counts.
	NextFrame() (Chunks, ErrorCounts, error)
}

// Reader decodes a stream of IMBE frames, implementing io.Reader. Output is
// PCM samples in the configured format.
type Reader struct {
	dec    *Decoder
	source FrameSource
	format SampleFormat

	byteBuf []byte // current frame, as bytes
	offset  int    // read position within byteBuf

	eof bool
}

// NewReader creates a streaming decoder reading frames from source.
func NewReader(source FrameSource, format SampleFormat, cfg Config) *Reader {
	return &Reader{
		dec:    NewDecoder(cfg),
		source: source,
		format: format,
	}
}

// Read implements io.Reader, decoding frames as needed to fill p.
func (r *Reader) Read(p []byte) (int, error) {
	if r.offset >= len(r.byteBuf) {
		if r.eof {
			return 0, io.EOF
		}

		chunks, errs, err := r.source.NextFrame()
		if err == io.EOF {
			r.eof = true
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}

		samples, _, decErr := r.dec.Decode(chunks, errs)
		if decErr != nil {
			return 0, decErr
		}

		r.byteBuf = r.pcmToBytes(samples)
		r.offset = 0
	}

	n := copy(p, r.byteBuf[r.offset:])
	r.offset += n

	return n, nil
}

func (r *Reader) pcmToBytes(samples []float32) []byte {
	switch r.format {
	case FormatInt16LE:
		buf := make([]byte, len(samples)*2)
		for i, s := range samples {
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(float32ToInt16(s)))
		}
		return buf
	default:
		buf := make([]byte, len(samples)*4)
		for i, s := range samples {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(s))
		}
		return buf
	}
}

// Reset returns the Reader's decoder to the Cold state for a new stream.
func (r *Reader) Reset(cfg Config) {
	r.dec = NewDecoder(cfg)
	r.byteBuf = nil
	r.offset = 0
	r.eof = false
}
