package bitparse

// ChunkParts is the result of splitting the middle bit chunks (u4, u5) into
// the voiced band-bitmap, the gain-index fragment, and the scanned
// remainder that feeds the bit scan (spec.md §4.1 Middle-chunk split).
type ChunkParts struct {
	Voiced  uint32 // top K bits: voiced band-bitmap b1
	IdxPart uint32 // next 2 bits: gain-index fragment
	Scanned uint32 // low 20-K bits: scan remainder
}

// NewChunkParts concatenates u4 (11 bits) and u5 (11 bits) into a 22-bit
// word and splits it according to the band count K.
func NewChunkParts(c Chunks, bands int) ChunkParts {
	parts := c[4]<<11 | c[5]

	return ChunkParts{
		Voiced:  parts >> uint(22-bands),
		IdxPart: parts >> uint(20-bands) & 0b11,
		Scanned: parts & (^uint32(0) >> uint(12+bands)),
	}
}

// GainIndex assembles the 6-bit gain VQ index b2 from u0 bits 5..3, the
// chunk-parts gain fragment, and u7 bit 3 (spec.md §4.1 Gain index).
func GainIndex(c Chunks, parts ChunkParts) uint32 {
	u0 := (c[0] >> 3) & 0b111
	u7 := (c[7] >> 3) & 0b1

	return u0<<3 | parts.IdxPart<<1 | u7
}
