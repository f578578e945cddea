package blockfall

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cloud is one drifting cloud. Puffs holds the ellipse rectangles the
// sprite is composed of, in sprite-local coordinates.
type Cloud struct {
	X, Y          float64
	Width, Height int
	Speed         float64 // px/s, always rightward
	Puffs         []Rect

	sprite *ebiten.Image // built on first draw
}

// Bounds returns the cloud's undistorted rectangle.
func (c *Cloud) Bounds() Rect {
	return Rect{c.X, c.Y, float64(c.Width), float64(c.Height)}
}

// Jitter returns the cosmetic draw position for elapsed time t and the
// current block bob. It never feeds back into the cloud's state.
func (c *Cloud) Jitter(t, bob float64) (x, y float64) {
	x = c.X + math.Sin((c.Y+t)*0.2)*20
	y = c.Y + math.Sin(t+c.X*0.001)*6 + bob*0.1
	return x, y
}

// CloudField is a fixed set of clouds drifting right and wrapping back past
// the left edge with freshly drawn height and speed.
type CloudField struct {
	clouds  []Cloud
	width   float64
	height  float64
	speed   float64
	rng     *rand.Rand
	wrapped []int
}

// NewCloudField creates count clouds scattered across a screen of the given
// size.
func NewCloudField(count, width, height int, speed float64, rng *rand.Rand) *CloudField {
	cf := &CloudField{
		clouds: make([]Cloud, count),
		width:  float64(width),
		height: float64(height),
		speed:  speed,
		rng:    rng,
	}
	for i := range cf.clouds {
		c := &cf.clouds[i]
		c.Width = randInt(rng, width/6, width/3)
		c.Height = max(40, c.Width/6)
		c.Puffs = cloudPuffs(c.Width, c.Height, CloudPuffCount, rng)
		c.X = Range{-float64(c.Width), cf.width}.Random(rng)
		c.Y = cf.randomY()
		c.Speed = cf.randomSpeed()
	}
	return cf
}

// Clouds returns the clouds. Callers may read but MUST NOT resize the slice.
func (cf *CloudField) Clouds() []Cloud {
	return cf.clouds
}

// Len returns the number of clouds, which never changes.
func (cf *CloudField) Len() int {
	return len(cf.clouds)
}

// Update moves every cloud by its speed and wraps the ones that have fully
// left the right edge. It returns the indices of the clouds wrapped this
// frame; the slice is reused by the next call.
func (cf *CloudField) Update(dt float64) []int {
	cf.wrapped = cf.wrapped[:0]
	for i := range cf.clouds {
		c := &cf.clouds[i]
		c.X += c.Speed * dt
		if c.X > cf.width+float64(c.Width) {
			c.X = -float64(c.Width) - Range{0, cf.width * 0.2}.Random(cf.rng)
			c.Y = cf.randomY()
			c.Speed = cf.randomSpeed()
			cf.wrapped = append(cf.wrapped, i)
		}
	}
	return cf.wrapped
}

func (cf *CloudField) randomY() float64 {
	return Range{20, cf.height * 0.35}.Random(cf.rng)
}

func (cf *CloudField) randomSpeed() float64 {
	return Range{cf.speed * 0.5, cf.speed * 1.5}.Random(cf.rng)
}

// cloudPuffs lays out n ellipses in the upper half of a w×h sprite. Each
// ellipse is twice as wide as it is tall.
func cloudPuffs(w, h, n int, rng *rand.Rand) []Rect {
	puffs := make([]Rect, n)
	for i := range puffs {
		cx := float64(randInt(rng, 0, w))
		cy := float64(randInt(rng, 0, h/2))
		r := float64(randInt(rng, h/6, h/3))
		puffs[i] = Rect{X: cx - r/1.5, Y: cy - r/1.2, Width: r * 2, Height: r}
	}
	return puffs
}
