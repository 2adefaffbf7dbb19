// errors.go defines public error types for the imbe package.

package imbe

import "errors"

// Public error types for decoding operations.
var (
	// ErrInvalidChunkWidth indicates a Chunks value has bits set above its
	// prioritized width (12,12,12,12,11,11,11,7 for u0..u7).
	ErrInvalidChunkWidth = errors.New("imbe: chunk exceeds its prioritized bit width")

	// ErrInvalidWorkers indicates a requested combiner worker count that
	// does not evenly divide the 160-sample frame.
	ErrInvalidWorkers = errors.New("imbe: worker count must evenly divide 160")
)

// chunkWidths are the bit widths of u0..u7 (spec.md §6 External interfaces).
var chunkWidths = [8]uint{12, 12, 12, 12, 11, 11, 11, 7}

// validChunks reports whether every chunk fits within its prioritized width.
func validChunks(c Chunks) bool {
	for i, width := range chunkWidths {
		if c[i]>>width != 0 {
			return false
		}
	}
	return true
}
