//go:build ebiten

package ui

import (
	"image/color"

	"lifeboard/internal/core"
	"lifeboard/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var hoverColor = color.RGBA{R: 196, G: 209, B: 238, A: 160}

// Overlay draws grid lines and the hovered cell on top of the board.
type Overlay struct {
	painter  *render.GridPainter
	size     core.Size
	scale    int
	showGrid bool

	hoverI, hoverK int
	hovering       bool
}

// NewOverlay constructs an overlay for a board drawn by painter. Grid lines
// start visible.
func NewOverlay(painter *render.GridPainter, size core.Size, scale int) *Overlay {
	return &Overlay{painter: painter, size: size, scale: scale, showGrid: true}
}

// ToggleGrid shows or hides the cell borders.
func (o *Overlay) ToggleGrid() { o.showGrid = !o.showGrid }

// Update tracks the cell under the cursor.
func (o *Overlay) Update() {
	mx, my := ebiten.CursorPosition()
	o.hoverI, o.hoverK, o.hovering = render.CellAt(mx, my, o.scale, o.size.Rows, o.size.Cols)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showGrid && o.scale >= 4 {
		o.painter.DrawGridLines(screen, render.BorderColor, o.scale)
	}
	if o.hovering {
		x := float32(o.hoverK * o.scale)
		y := float32(o.hoverI * o.scale)
		s := float32(o.scale)
		vector.StrokeRect(screen, x, y, s, s, 1, hoverColor, false)
	}
}
