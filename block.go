package blockfall

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// BlockRows and BlockCols are the dimensions of the pixel-art block.
const (
	BlockRows = 11
	BlockCols = 11
)

// Cell is one optional pixel of the block. Filled is false for transparent
// cells.
type Cell struct {
	Color  Color
	Filled bool
}

// BlockMap is the block's color-per-cell grid indexed by [row][col].
type BlockMap [BlockRows][BlockCols]Cell

// grassBlockRows draws the grass block. '.' is transparent; the other
// letters map through blockLegend.
var grassBlockRows = [BlockRows]string{
	"..eggggge..",
	".eggggggge.",
	"eggggggggge",
	"eggggggggee",
	"ddddddddddd",
	"ddddddddddd",
	"sssssssssss",
	"sssssssssss",
	".wwwwwwwww.",
	"..wwwwwww..",
	"...wwww....",
}

var blockLegend = map[byte]Color{
	'g': GrassTop,
	'e': GrassEdge,
	'd': Dirt,
	's': Stone,
	'w': Wood,
}

var grassBlock = mustParseBlockMap(grassBlockRows)

// GrassBlock returns the grass block map. The map is a value; callers get
// their own copy.
func GrassBlock() BlockMap {
	return grassBlock
}

// ParseBlockMap converts rows of legend letters into a BlockMap. A nil
// legend selects the grass block palette.
func ParseBlockMap(rows [BlockRows]string, legend map[byte]Color) (BlockMap, error) {
	if legend == nil {
		legend = blockLegend
	}
	var m BlockMap
	for r, row := range rows {
		if len(row) != BlockCols {
			return m, fmt.Errorf("block row %d: got %d cells, want %d", r, len(row), BlockCols)
		}
		for c := 0; c < BlockCols; c++ {
			ch := row[c]
			if ch == '.' {
				continue
			}
			col, ok := legend[ch]
			if !ok {
				return m, fmt.Errorf("block row %d col %d: unknown cell %q", r, c, ch)
			}
			m[r][c] = Cell{Color: col, Filled: true}
		}
	}
	return m, nil
}

func mustParseBlockMap(rows [BlockRows]string) BlockMap {
	m, err := ParseBlockMap(rows, nil)
	if err != nil {
		panic(err)
	}
	return m
}

// FilledCount returns the number of opaque cells.
func (m *BlockMap) FilledCount() int {
	n := 0
	for r := range m {
		for c := range m[r] {
			if m[r][c].Filled {
				n++
			}
		}
	}
	return n
}

// BlockPixelSize returns the cell size for a screen of the given width: the
// block spans a fifth of the screen, capped at BlockMaxWidth.
func BlockPixelSize(screenWidth int) int {
	target := min(screenWidth/BlockTargetFraction, BlockMaxWidth)
	return max(MinPixelSize, target/BlockCols)
}

// newBlockSprite renders m at pixelSize pixels per cell.
func newBlockSprite(m *BlockMap, pixelSize int) *ebiten.Image {
	img := ebiten.NewImage(BlockCols*pixelSize, BlockRows*pixelSize)
	for r := range m {
		for c := range m[r] {
			cell := m[r][c]
			if !cell.Filled {
				continue
			}
			x, y := c*pixelSize, r*pixelSize
			sub := img.SubImage(image.Rect(x, y, x+pixelSize, y+pixelSize)).(*ebiten.Image)
			sub.Fill(cell.Color.Premultiplied())
		}
	}
	return img
}

// Bob returns the block's vertical offset at elapsed time t. The offset is
// periodic with period 1/speed.
func Bob(t, amplitude, speed float64) float64 {
	return math.Sin(2*math.Pi*speed*t) * amplitude
}
