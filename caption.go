package blockfall

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"
)

// Caption offsets from the bottom-left corner of the screen.
const (
	captionX      = 20
	captionBottom = 30
)

// caption is the semi-transparent status line. Its alpha fades in from zero
// to Config.CaptionAlpha.
type caption struct {
	content string
	color   Color
	face    *text.GoTextFace // nil when the font failed to load
	alpha   *fade
	showFPS bool
}

// loadTTFFace parses TrueType data into a face of the given pixel size.
func loadTTFFace(ttfData []byte, size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("load caption font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

func newCaption(cfg Config) *caption {
	c := &caption{
		content: cfg.Caption,
		color:   cfg.CaptionColor,
		alpha:   newFade(0, cfg.CaptionAlpha, cfg.CaptionFade, ease.OutQuad),
		showFPS: cfg.ShowFPS,
	}
	face, err := loadTTFFace(fonts.MPlus1pRegular_ttf, cfg.CaptionSize)
	if err != nil {
		// Non-fatal: the caption falls back to the debug font.
		logf("%v", err)
		return c
	}
	c.face = face
	return c
}

func (c *caption) update(dt float64) {
	c.alpha.Update(dt)
}

// origin returns where the caption's top-left corner sits on a screen of
// the given height.
func (c *caption) origin(screenHeight int) (x, y float64) {
	return captionX, float64(screenHeight - captionBottom)
}

func (c *caption) draw(screen *ebiten.Image) {
	x, y := c.origin(screen.Bounds().Dy())

	if c.face == nil {
		ebitenutil.DebugPrintAt(screen, c.content, int(x), int(y))
	} else {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(c.color.Premultiplied())
		op.ColorScale.ScaleAlpha(float32(c.alpha.Value()))
		text.Draw(screen, c.content, c.face, op)
	}

	if c.showFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			int(x), int(y)-captionBottom)
	}
}
