package blockfall

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGB builds an opaque Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// WithAlpha returns c with its alpha replaced by a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Premultiplied returns the premultiplied 8-bit representation of c, suitable
// for ebiten.Image.Fill.
func (c Color) Premultiplied() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R*c.A) * 255)),
		G: uint8(math.Round(clamp01(c.G*c.A) * 255)),
		B: uint8(math.Round(clamp01(c.B*c.A) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Range is a general-purpose min/max range sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max).
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// randInt returns a random int in [lo, hi], both ends inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
