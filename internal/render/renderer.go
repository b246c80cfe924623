//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image from board cells and draws it
// scaled, with grid lines on top.
type GridPainter struct {
	dim int
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for a dim x dim board.
func NewGridPainter(dim int) *GridPainter {
	gp := &GridPainter{dim: dim, buf: make([]byte, 4*dim*dim)}
	gp.img = ebiten.NewImage(dim, dim)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, on, off color.Color, cellSize int) {
	if len(cells) != gp.dim*gp.dim {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)

	if cellSize < 3 {
		return
	}
	size := float32(gp.dim * cellSize)
	for i := 0; i <= gp.dim; i++ {
		p := float32(i*cellSize) + 0.5
		vector.StrokeLine(dst, p, 0, p, size, 1, LineColor, false)
		vector.StrokeLine(dst, 0, p, size, p, 1, LineColor, false)
	}
}

// Dim returns the side length of the painted board.
func (gp *GridPainter) Dim() int { return gp.dim }
