package blockfall

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime/debug"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrFault is wrapped by the error returned when a panic escapes the frame
// loop.
var ErrFault = errors.New("blockfall: fault in frame loop")

// Screensaver is the top-level object. It implements ebiten.Game: Update
// ticks the clock, polls input and advances particles and clouds; Draw
// renders the frame.
type Screensaver struct {
	cfg   Config
	rng   *rand.Rand
	input InputSource
	sink  EventSink

	clock     *FrameClock
	exit      *ExitMonitor
	particles *ParticleSystem
	clouds    *CloudField
	renderer  *Renderer

	width, height int

	runner          *TestRunner
	screenshotQueue []string
	fault           error
	stats           debugStats
}

// New creates a screensaver from cfg. The simulation is sized on the first
// Layout call, when the display resolution is known.
func New(cfg Config) (*Screensaver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := uint64(time.Now().UnixNano())
	return &Screensaver{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(seed, seed>>32|1)),
		input: NewEbitenInput(),
		clock: NewFrameClock(cfg.FPS),
		exit:  NewExitMonitor(cfg.MotionSettleFrames),
	}, nil
}

// SetRand replaces the random source. Must be called before the first
// Layout to affect cloud placement.
func (s *Screensaver) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// SetInput replaces the input source.
func (s *Screensaver) SetInput(in InputSource) {
	s.input = in
}

// SetEventSink sets the optional receiver for exit and cloud-wrap events.
func (s *Screensaver) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetTestRunner attaches a scripted run. The runner's input replaces the
// current input source.
func (s *Screensaver) SetTestRunner(runner *TestRunner) {
	s.runner = runner
	s.input = runner.Input()
}

// Config returns the configuration the screensaver was created with.
func (s *Screensaver) Config() Config { return s.cfg }

// Clock returns the frame clock.
func (s *Screensaver) Clock() *FrameClock { return s.clock }

// Exit returns the exit state machine.
func (s *Screensaver) Exit() *ExitMonitor { return s.exit }

// Particles returns the particle system, or nil before the first Layout.
func (s *Screensaver) Particles() *ParticleSystem { return s.particles }

// Clouds returns the cloud field, or nil before the first Layout.
func (s *Screensaver) Clouds() *CloudField { return s.clouds }

// Layout implements ebiten.Game. The first call with a non-empty size builds
// the simulation at that size; later calls keep it. A panic while building
// is recorded as a fault and surfaces from the next Update.
func (s *Screensaver) Layout(outsideWidth, outsideHeight int) (w, h int) {
	defer func() {
		if w <= 0 || h <= 0 {
			w, h = max(outsideWidth, 1), max(outsideHeight, 1)
		}
	}()
	defer s.recoverFault(&s.fault)

	if s.clouds == nil && s.fault == nil {
		if outsideWidth <= 0 || outsideHeight <= 0 {
			return max(outsideWidth, 1), max(outsideHeight, 1)
		}
		s.init(outsideWidth, outsideHeight)
	}
	return s.width, s.height
}

func (s *Screensaver) init(w, h int) {
	s.width, s.height = w, h
	s.renderer = NewRenderer(s.cfg, w, h, s.rng)
	s.particles = NewParticleSystem(s.cfg, w, h, s.renderer.PixelSize(), s.rng)
	s.clouds = NewCloudField(s.cfg.CloudCount, w, h, s.cfg.CloudSpeed, s.rng)
}

// Update implements ebiten.Game. It returns ebiten.Termination once the
// exit state machine reaches EXITING, and an error wrapping ErrFault if a
// panic occurred in this Update or an earlier Layout or Draw.
func (s *Screensaver) Update() (err error) {
	defer s.recoverFault(&err)

	if s.fault != nil {
		return s.fault
	}
	if s.exit.State() == StateExiting {
		return ebiten.Termination
	}
	if s.clouds == nil {
		return nil
	}

	var t0 time.Time
	if s.cfg.Debug {
		t0 = time.Now()
	}

	dt := s.clock.Tick()
	if s.runner != nil {
		s.runner.step(s)
	}
	if s.exit.Poll(s.input.Snapshot()) == StateExiting {
		s.emit(Event{Type: EventExit, Trigger: s.exit.Trigger()})
		if s.cfg.ExitScreenshot {
			// Draw this frame once more so the capture sees it.
			s.Screenshot("exit-" + s.exit.Trigger().String())
			return nil
		}
		return ebiten.Termination
	}

	s.particles.Update(dt)
	wrapped := s.clouds.Update(dt)
	for _, i := range wrapped {
		s.emit(Event{Type: EventCloudWrap, Cloud: i})
	}
	s.renderer.Update(dt)

	if s.cfg.Debug && s.stats.record(dt, time.Since(t0), len(wrapped)) {
		s.debugLog()
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *Screensaver) Draw(screen *ebiten.Image) {
	defer s.recoverFault(&s.fault)

	if s.clouds == nil {
		return
	}

	var t0 time.Time
	if s.cfg.Debug {
		t0 = time.Now()
	}

	s.renderer.Draw(screen, Frame{
		Particles: s.particles.Particles(),
		Clouds:    s.clouds.Clouds(),
		Elapsed:   s.clock.Elapsed(),
	})
	s.flushScreenshots(screen)

	if s.cfg.Debug {
		s.stats.drawTime += time.Since(t0)
	}
}

// recoverFault converts a panic into an error wrapping ErrFault and moves
// the exit state machine to EXITING.
func (s *Screensaver) recoverFault(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	logf("fault: %v\n%s", r, debug.Stack())
	s.exit.Fail()
	*errp = fmt.Errorf("%w: %v", ErrFault, r)
	s.emit(Event{Type: EventExit, Trigger: TriggerFault})
}

func (s *Screensaver) emit(e Event) {
	if s.sink == nil {
		return
	}
	e.Frame = s.clock.Frames()
	e.Elapsed = s.clock.Elapsed()
	s.sink.EmitEvent(e)
}

// Run shows the screensaver fullscreen until it exits. The cursor is hidden
// and grabbed for the duration and restored on every return path, including
// panics.
func Run(s *Screensaver) error {
	ebiten.SetWindowTitle(s.cfg.Title)
	ebiten.SetFullscreen(true)
	ebiten.SetTPS(s.cfg.FPS)
	ebiten.SetWindowClosingHandled(true)
	return run(s, NewEbitenCursor(), ebiten.RunGame)
}

func run(s *Screensaver, c Cursor, runGame func(ebiten.Game) error) error {
	session := AcquireSession(c)
	defer session.Release()

	if err := runGame(s); err != nil {
		return fmt.Errorf("run screensaver: %w", err)
	}
	return nil
}
