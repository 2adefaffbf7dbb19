package tables

import "testing"

func TestAllocationSumsToScanLength(t *testing.T) {
	for l := 9; l <= 56; l++ {
		max, widths := Allocation(l)
		if len(widths) != l-1 {
			t.Fatalf("L=%d: got %d widths, want %d", l, len(widths), l-1)
		}

		sum := 0
		for i, w := range widths {
			if w > max {
				t.Fatalf("L=%d: widths[%d]=%d exceeds max=%d", l, i, w, max)
			}
			if i > 0 && widths[i] > widths[i-1] {
				t.Fatalf("L=%d: widths not non-increasing at %d", l, i)
			}
			sum += w
		}

		if want := totalScanBits(l); sum != want {
			t.Fatalf("L=%d: widths sum to %d, want %d", l, sum, want)
		}
	}
}

func TestAmpsUsedSumsToHarmonics(t *testing.T) {
	for l := 9; l <= 56; l++ {
		j := AmpsUsed(l)
		sum := 0
		for _, v := range j {
			sum += v
		}
		if sum != l {
			t.Fatalf("L=%d: AmpsUsed sums to %d, want %d", l, sum, l)
		}
	}
}

func TestGainVQAllRowsDistinctMean(t *testing.T) {
	prev := float32(-1e9)
	for row := 0; row < GainRows; row++ {
		g := GainVQ(row)
		var mean float32
		for _, v := range g {
			mean += v
		}
		mean /= GainDims
		if mean <= prev {
			t.Fatalf("row %d: mean %v not increasing from previous %v", row, mean, prev)
		}
		prev = mean
	}
}
