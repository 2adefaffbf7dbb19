package bitparse

// scanSegments returns the fixed-order sequence of (value, width) pairs the
// bit scan draws from, MSB-first within each segment (spec.md §4.1 Bit
// scan).
func scanSegments(c Chunks, scanned uint32, bands int) [7]struct {
	value uint32
	width uint8
} {
	scannedLen := uint8(20 - bands)

	return [7]struct {
		value uint32
		width uint8
	}{
		{c[0] & 0b111, 3},
		{c[1], 12},
		{c[2], 12},
		{c[3], 12},
		{scanned, scannedLen},
		{c[6], 11},
		{c[7] >> 4, 3},
	}
}

// scanBits flattens scanSegments into a single MSB-first bit sequence.
type scanBits struct {
	segments [7]struct {
		value uint32
		width uint8
	}
	seg    int
	chunk  uint32
	remain uint8
}

func newScanBits(c Chunks, scanned uint32, bands int) *scanBits {
	return &scanBits{segments: scanSegments(c, scanned, bands)}
}

// next returns the next bit (0 or 1) and whether one was available.
func (s *scanBits) next() (uint32, bool) {
	for s.remain == 0 {
		if s.seg >= len(s.segments) {
			return 0, false
		}
		seg := s.segments[s.seg]
		s.seg++

		s.chunk = seg.value << (32 - seg.width)
		s.remain = seg.width
	}

	bit := s.chunk >> 31
	s.chunk <<= 1
	s.remain--

	return bit, true
}
