//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifeboard/internal/core"
)

// GridPainter updates a single RGBA image from binary cell data.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the board into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	if g.Rows != gp.rows || g.Cols != gp.cols {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines outlines every cell of the board.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, col color.Color, scale int) {
	w := float32(gp.cols * scale)
	h := float32(gp.rows * scale)
	for i := 0; i <= gp.rows; i++ {
		y := float32(i * scale)
		vector.StrokeLine(dst, 0, y, w, y, 1, col, false)
	}
	for k := 0; k <= gp.cols; k++ {
		x := float32(k * scale)
		vector.StrokeLine(dst, x, 0, x, h, 1, col, false)
	}
}
