//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay outlines the tile under the cursor so clicks land predictably.
type Overlay struct {
	scale int
	pixel *ebiten.Image

	cellX, cellY int
	visible      bool
}

// NewOverlay constructs an overlay for scale-pixel tiles.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update records the hovered cell; ok is false when the cursor is off the board.
func (o *Overlay) Update(x, y int, ok bool) {
	o.cellX, o.cellY, o.visible = x, y, ok
}

// Draw renders the hover outline.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.scale <= 0 {
		return
	}
	const thickness = 2
	col := color.RGBA{R: 64, G: 164, B: 223, A: 200}
	s := float64(o.scale)
	x := float64(o.cellX) * s
	y := float64(o.cellY) * s
	o.drawRect(screen, x, y, s, thickness, col)
	o.drawRect(screen, x, y+s-thickness, s, thickness, col)
	o.drawRect(screen, x, y, thickness, s, col)
	o.drawRect(screen, x+s-thickness, y, thickness, s, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
