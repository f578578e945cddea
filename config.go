package blockfall

import (
	"errors"
	"fmt"
)

// ---- frame ----------------------------------------------------------------

const (
	FPS   = 60
	Title = "Block Screensaver"
)

// ---- falling blocks -------------------------------------------------------

const (
	FallSpeedMin     = 150.0 // px/s
	FallSpeedMax     = 400.0 // px/s
	SpawnInterval    = 0.08  // mean seconds between spawns
	SpawnJitter      = 0.4   // stddev as a fraction of SpawnInterval
	MinSpawnInterval = 0.02
	LifeBase         = 2.5 // seconds
	LifeSpread       = 2.0 // seconds added on top of LifeBase, uniform
	RemovalMargin    = 200.0
	SpawnHeadroom    = 0.1 // fraction of screen height above the top edge
)

// ---- block ----------------------------------------------------------------

const (
	BlockTargetFraction = 5   // block spans at most 1/5 of the screen width
	BlockMaxWidth       = 450 // px
	MinPixelSize        = 2
	BobAmplitude        = 8.0 // px
	BobSpeed            = 0.8 // cycles per second
	SparkleChance       = 0.04
)

// ---- clouds ---------------------------------------------------------------

const (
	CloudCount     = 5
	CloudSpeed     = 10.0 // px/s
	CloudPuffCount = 8
)

// ---- caption --------------------------------------------------------------

const (
	Caption      = "Block Screensaver: press any key or move the mouse to exit"
	CaptionAlpha = 90.0 / 255.0
	CaptionFade  = 1.5 // seconds
	CaptionSize  = 16
)

// ---- colors ---------------------------------------------------------------

var (
	BGColor   = RGB(10, 20, 35)
	GrassTop  = RGB(106, 190, 48)
	GrassEdge = RGB(86, 160, 36)
	Dirt      = RGB(121, 85, 58)
	Stone     = RGB(100, 100, 100)
	Wood      = RGB(93, 57, 24)

	CaptionColor = RGB(200, 200, 200)
)

// Config gathers every tunable of the screensaver. All values are compiled
// in; DefaultConfig is the only supported source.
type Config struct {
	Title string
	FPS   int

	FallSpeed        Range
	SpawnInterval    float64
	SpawnJitter      float64
	MinSpawnInterval float64
	LifeBase         float64
	LifeSpread       float64
	// RemovalMargin is how far below the bottom edge a particle may fall
	// before it is culled, independent of screen height.
	RemovalMargin float64
	SpawnHeadroom float64

	BobAmplitude  float64
	BobSpeed      float64
	SparkleChance float64

	CloudCount int
	CloudSpeed float64

	BGColor      Color
	Caption      string
	CaptionColor Color
	CaptionAlpha float64
	CaptionFade  float64
	CaptionSize  float64

	// MotionSettleFrames is the number of polls after the first during which
	// cursor motion only re-records the start position instead of exiting.
	// Capturing the cursor can warp the pointer as the fullscreen window
	// appears; zero makes every motion after the first poll exit.
	MotionSettleFrames int

	ShowFPS bool
	Debug   bool

	// ScreenshotDir receives scripted captures. Empty disables them.
	ScreenshotDir string
	// ExitScreenshot captures the final frame, named after the exit
	// trigger, before the loop ends.
	ExitScreenshot bool
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		Title: Title,
		FPS:   FPS,

		FallSpeed:        Range{FallSpeedMin, FallSpeedMax},
		SpawnInterval:    SpawnInterval,
		SpawnJitter:      SpawnJitter,
		MinSpawnInterval: MinSpawnInterval,
		LifeBase:         LifeBase,
		LifeSpread:       LifeSpread,
		RemovalMargin:    RemovalMargin,
		SpawnHeadroom:    SpawnHeadroom,

		BobAmplitude:  BobAmplitude,
		BobSpeed:      BobSpeed,
		SparkleChance: SparkleChance,

		CloudCount: CloudCount,
		CloudSpeed: CloudSpeed,

		BGColor:      BGColor,
		Caption:      Caption,
		CaptionColor: CaptionColor,
		CaptionAlpha: CaptionAlpha,
		CaptionFade:  CaptionFade,
		CaptionSize:  CaptionSize,

		MotionSettleFrames: 1,

		ScreenshotDir: "screenshots",
	}
}

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("blockfall: invalid config")

// Validate reports the first field that would break the frame loop.
func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: FPS must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: SpawnInterval must be positive, got %v", ErrInvalidConfig, c.SpawnInterval)
	case c.MinSpawnInterval <= 0:
		return fmt.Errorf("%w: MinSpawnInterval must be positive, got %v", ErrInvalidConfig, c.MinSpawnInterval)
	case c.FallSpeed.Min < 0 || c.FallSpeed.Max < c.FallSpeed.Min:
		return fmt.Errorf("%w: FallSpeed %v is not a non-negative range", ErrInvalidConfig, c.FallSpeed)
	case c.LifeBase <= 0:
		return fmt.Errorf("%w: LifeBase must be positive, got %v", ErrInvalidConfig, c.LifeBase)
	case c.CloudCount < 0:
		return fmt.Errorf("%w: CloudCount must not be negative, got %d", ErrInvalidConfig, c.CloudCount)
	case c.BobSpeed <= 0:
		return fmt.Errorf("%w: BobSpeed must be positive, got %v", ErrInvalidConfig, c.BobSpeed)
	case c.RemovalMargin < 0:
		return fmt.Errorf("%w: RemovalMargin must not be negative, got %v", ErrInvalidConfig, c.RemovalMargin)
	}
	return nil
}
