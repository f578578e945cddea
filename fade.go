package blockfall

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade animates a single float64 from one value to another over a fixed
// duration. There is no global animation manager; the owner calls Update
// each frame.
type fade struct {
	tween *gween.Tween
	value float64
	done  bool
}

// newFade creates a fade from → to lasting seconds, shaped by fn. A
// non-positive duration starts already finished at to.
func newFade(from, to, seconds float64, fn ease.TweenFunc) *fade {
	if seconds <= 0 {
		return &fade{value: to, done: true}
	}
	return &fade{
		tween: gween.New(float32(from), float32(to), float32(seconds), fn),
		value: from,
	}
}

// Update advances the fade by dt seconds and returns the current value.
func (f *fade) Update(dt float64) float64 {
	if f.done {
		return f.value
	}
	v, finished := f.tween.Update(float32(dt))
	f.value = float64(v)
	f.done = finished
	return f.value
}

// Value returns the current value without advancing.
func (f *fade) Value() float64 {
	return f.value
}

// Done reports whether the fade has reached its end value.
func (f *fade) Done() bool {
	return f.done
}
