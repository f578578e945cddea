package blockfall

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// newTestRand returns a deterministic source so failures reproduce.
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRGB(t *testing.T) {
	c := RGB(255, 0, 51)
	assertNear(t, "R", c.R, 1)
	assertNear(t, "G", c.G, 0)
	assertNear(t, "B", c.B, 0.2)
	assertNear(t, "A", c.A, 1)
}

func TestColorWithAlphaClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{3, 1},
	}
	for _, tt := range tests {
		got := ColorWhite.WithAlpha(tt.in)
		assertNear(t, "A", got.A, tt.want)
		assertNear(t, "R", got.R, 1)
	}
}

func TestColorPremultiplied(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.Premultiplied()
	if got.R != 128 || got.G != 64 || got.B != 0 || got.A != 128 {
		t.Errorf("Premultiplied = %+v, want {128 64 0 128}", got)
	}
	if w := ColorWhite.Premultiplied(); w.R != 255 || w.A != 255 {
		t.Errorf("white = %+v", w)
	}
}

func TestRangeRandom(t *testing.T) {
	rng := newTestRand()
	r := Range{150, 400}
	for i := 0; i < 1000; i++ {
		v := r.Random(rng)
		if v < r.Min || v >= r.Max {
			t.Fatalf("Random() = %v, outside [%v, %v)", v, r.Min, r.Max)
		}
	}
	if v := (Range{3, 3}).Random(rng); v != 3 {
		t.Errorf("degenerate range = %v, want 3", v)
	}
}

func TestRandIntInclusive(t *testing.T) {
	rng := newTestRand()
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := randInt(rng, 2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("randInt = %d, outside [2, 5]", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("saw %d distinct values, want 4", len(seen))
	}
	if v := randInt(rng, 7, 3); v != 7 {
		t.Errorf("randInt(7, 3) = %d, want 7", v)
	}
}
