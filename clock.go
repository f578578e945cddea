package blockfall

// FrameClock tracks time for a fixed-timestep loop. ebiten caps the loop at
// the configured TPS, so every tick advances by exactly 1/TPS seconds.
type FrameClock struct {
	tps     int
	delta   float64
	elapsed float64
	frames  int
}

// NewFrameClock creates a clock for a loop running tps ticks per second.
func NewFrameClock(tps int) *FrameClock {
	if tps <= 0 {
		tps = FPS
	}
	return &FrameClock{tps: tps}
}

// Tick advances the clock by one frame and returns the frame delta in
// seconds.
func (c *FrameClock) Tick() float64 {
	c.delta = 1.0 / float64(c.tps)
	c.elapsed += c.delta
	c.frames++
	return c.delta
}

// Delta returns the duration of the last tick in seconds.
func (c *FrameClock) Delta() float64 { return c.delta }

// Elapsed returns the seconds since the first tick.
func (c *FrameClock) Elapsed() float64 { return c.elapsed }

// Frames returns the number of ticks so far.
func (c *FrameClock) Frames() int { return c.frames }

// TPS returns the ticks per second the clock assumes.
func (c *FrameClock) TPS() int { return c.tps }
