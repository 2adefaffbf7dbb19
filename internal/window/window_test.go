package window

import "testing"

func TestSynthesisSupport(t *testing.T) {
	w := Synthesis()

	cases := []struct {
		n    int
		want float32
	}{
		{-200, 0.0},
		{-106, 0.0},
		{-105, 0.0},
		{-104, 0.02},
		{-68, 0.74},
		{0, 1.0},
		{77, 0.56},
		{104, 0.02},
		{105, 0.0},
		{106, 0.0},
		{200, 0.0},
	}

	for _, c := range cases {
		if got := w.Get(c.n); !almostEqual(got, c.want, 1e-6) {
			t.Errorf("Get(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestEnergyIsPositive(t *testing.T) {
	if e := Energy(); e <= 0 {
		t.Fatalf("Energy() = %v, want > 0", e)
	}
}

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}
