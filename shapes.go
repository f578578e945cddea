package blockfall

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ellipseSegments is the number of rim vertices used for an ellipse fan.
const ellipseSegments = 32

var whitePixel *ebiten.Image

// ensureWhitePixel returns the shared 1x1 white source image for untextured
// geometry, creating it on first use.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.Premultiplied())
	}
	return whitePixel
}

// vertexColor converts c into premultiplied vertex color components.
func vertexColor(c Color) (r, g, b, a float32) {
	a = float32(clamp01(c.A))
	return float32(clamp01(c.R)) * a, float32(clamp01(c.G)) * a, float32(clamp01(c.B)) * a, a
}

// appendEllipse appends a fan-triangulated ellipse inscribed in r. The hub
// vertex sits at the center; segments rim vertices close the loop.
func appendEllipse(verts []ebiten.Vertex, inds []uint32, r Rect, c Color, segments int) ([]ebiten.Vertex, []uint32) {
	if segments < 3 {
		segments = 3
	}
	cr, cg, cb, ca := vertexColor(c)
	rx, ry := r.Width/2, r.Height/2
	cx, cy := r.X+rx, r.Y+ry

	base := uint32(len(verts))
	verts = append(verts, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	})
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		verts = append(verts, ebiten.Vertex{
			DstX: float32(cx + rx*math.Cos(theta)),
			DstY: float32(cy + ry*math.Sin(theta)),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		inds = append(inds, base, base+uint32(i+1), base+uint32(next))
	}
	return verts, inds
}

// appendQuad appends an axis-aligned solid rectangle as two triangles.
func appendQuad(verts []ebiten.Vertex, inds []uint32, r Rect, c Color) ([]ebiten.Vertex, []uint32) {
	cr, cg, cb, ca := vertexColor(c)
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.Width), float32(r.Y+r.Height)

	base := uint32(len(verts))
	for _, p := range [4][2]float32{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		verts = append(verts, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	inds = append(inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
	return verts, inds
}

// fillTriangles submits verts with the shared white pixel as the source.
func fillTriangles(dst *ebiten.Image, verts []ebiten.Vertex, inds []uint32, blend ebiten.Blend) {
	if len(inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = blend
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles32(verts, inds, ensureWhitePixel(), &op)
}
