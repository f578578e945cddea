package blockfall

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Fixed compositing parameters.
var (
	cloudPuffColor = Color{1, 1, 1, 60.0 / 255.0}
	shadowColor    = Color{0, 0, 0, 80.0 / 255.0}
	sparkleColor   = color.NRGBA{255, 255, 255, 120}
)

const (
	shadowOverhang = 20 // px the shadow extends past each side of the block
	shadowHeight   = 20
	shadowDrop     = 2 // px below the block's bottom edge
	sparkleRadius  = 1
)

// ParticleAlpha returns the 8-bit alpha for a particle at lifetime fraction
// f: round(255×f) clamped to [0, 255].
func ParticleAlpha(f float64) uint8 {
	return uint8(math.Round(255 * clamp01(f)))
}

// BlockOrigin returns the top-left corner of a w×h block centered on a
// screenW×screenH screen, lifted by bob.
func BlockOrigin(screenW, screenH, w, h int, bob float64) (x, y int) {
	x = (screenW - w) / 2
	y = int(float64(screenH)*0.5 - float64(h/2) + bob)
	return x, y
}

// ShadowRect returns the ground shadow ellipse's bounds for a block whose
// top-left corner is (x, y).
func ShadowRect(x, y, w, h int) Rect {
	return Rect{
		X:      float64(x - shadowOverhang),
		Y:      float64(y + h + shadowDrop),
		Width:  float64(w + 2*shadowOverhang),
		Height: shadowHeight,
	}
}

// Frame is everything the renderer reads to produce one frame.
type Frame struct {
	Particles []FallingBlock
	Clouds    []Cloud
	Elapsed   float64
}

// Renderer composites background, clouds, particles, the bobbing block with
// its shadow, sparkles and the caption.
type Renderer struct {
	cfg       Config
	rng       *rand.Rand
	width     int
	height    int
	block     BlockMap
	pixelSize int
	caption   *caption

	blockSprite *ebiten.Image // built on first draw
	verts       []ebiten.Vertex
	inds        []uint32
}

// NewRenderer creates a renderer for a screen of the given size. No images
// are allocated until the first Draw.
func NewRenderer(cfg Config, width, height int, rng *rand.Rand) *Renderer {
	return &Renderer{
		cfg:       cfg,
		rng:       rng,
		width:     width,
		height:    height,
		block:     GrassBlock(),
		pixelSize: BlockPixelSize(width),
		caption:   newCaption(cfg),
	}
}

// PixelSize returns the block's cell size in pixels.
func (r *Renderer) PixelSize() int {
	return r.pixelSize
}

// BlockSize returns the block sprite's size in pixels.
func (r *Renderer) BlockSize() (w, h int) {
	return BlockCols * r.pixelSize, BlockRows * r.pixelSize
}

// Update advances time-based render state such as the caption fade.
func (r *Renderer) Update(dt float64) {
	r.caption.update(dt)
}

// Draw renders f onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, f Frame) {
	bob := Bob(f.Elapsed, r.cfg.BobAmplitude, r.cfg.BobSpeed)

	screen.Fill(r.cfg.BGColor.Premultiplied())
	r.drawClouds(screen, f.Clouds, f.Elapsed, bob)
	r.drawParticles(screen, f.Particles)
	bx, by := r.drawBlock(screen, bob)
	r.drawSparkle(screen, bx, by)
	r.caption.draw(screen)
}

func (r *Renderer) drawClouds(screen *ebiten.Image, clouds []Cloud, t, bob float64) {
	for i := range clouds {
		c := &clouds[i]
		if c.sprite == nil {
			c.sprite = newCloudSprite(c)
		}
		x, y := c.Jitter(t, bob)
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(math.Trunc(x), math.Trunc(y))
		screen.DrawImage(c.sprite, &op)
	}
}

// drawParticles submits every particle in a single DrawTriangles32 call.
func (r *Renderer) drawParticles(screen *ebiten.Image, particles []FallingBlock) {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	for _, p := range particles {
		a := float64(ParticleAlpha(p.LifeFraction())) / 255
		size := float64(p.Size)
		r.verts, r.inds = appendQuad(r.verts, r.inds,
			Rect{p.X, p.Y, size, size}, p.Color.WithAlpha(a))
	}
	fillTriangles(screen, r.verts, r.inds, ebiten.BlendSourceOver)
}

// drawBlock draws the shadow and the block and returns the block's origin.
func (r *Renderer) drawBlock(screen *ebiten.Image, bob float64) (x, y int) {
	if r.blockSprite == nil {
		r.blockSprite = newBlockSprite(&r.block, r.pixelSize)
	}
	w, h := r.BlockSize()
	x, y = BlockOrigin(r.width, r.height, w, h, bob)

	r.verts, r.inds = appendEllipse(r.verts[:0], r.inds[:0], ShadowRect(x, y, w, h), shadowColor, ellipseSegments)
	fillTriangles(screen, r.verts, r.inds, ebiten.BlendSourceOver)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(r.blockSprite, &op)
	return x, y
}

// drawSparkle occasionally places a one-pixel glint inside the block.
func (r *Renderer) drawSparkle(screen *ebiten.Image, bx, by int) {
	if r.rng.Float64() >= r.cfg.SparkleChance {
		return
	}
	w, h := r.BlockSize()
	x := randInt(r.rng, bx, bx+w)
	y := randInt(r.rng, by, by+h)
	vector.DrawFilledCircle(screen, float32(x), float32(y), sparkleRadius, sparkleColor, true)
}

// newCloudSprite composites the cloud's puffs into a translucent image.
// Puffs overwrite rather than blend, so overlaps keep a uniform alpha.
func newCloudSprite(c *Cloud) *ebiten.Image {
	img := ebiten.NewImage(c.Width, c.Height)
	var verts []ebiten.Vertex
	var inds []uint32
	for _, p := range c.Puffs {
		verts, inds = appendEllipse(verts, inds, p, cloudPuffColor, ellipseSegments)
	}
	fillTriangles(img, verts, inds, ebiten.BlendCopy)
	return img
}
