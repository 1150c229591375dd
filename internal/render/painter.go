//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"life-tiles/pkg/core"
)

// GridPainter keeps one image of the board and refreshes it from grids.
type GridPainter struct {
	n, tile int
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for an n×n board of tile-pixel cells.
func NewGridPainter(n, tile int, palette Palette) *GridPainter {
	side := n * tile
	gp := &GridPainter{n: n, tile: tile, palette: palette, buf: make([]byte, 4*side*side)}
	gp.img = ebiten.NewImage(side, side)
	return gp
}

// Update redraws the cached image from g.
func (gp *GridPainter) Update(g *core.Grid) {
	if g == nil || g.N() != gp.n {
		return
	}
	fillTilesRGBA(gp.buf, g.Cells(), gp.n, gp.tile, gp.palette)
	gp.img.WritePixels(gp.buf)
}

// Draw paints the cached image at the origin of dst.
func (gp *GridPainter) Draw(dst *ebiten.Image) {
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the pixel dimensions of the board image.
func (gp *GridPainter) Size() (int, int) { return gp.n * gp.tile, gp.n * gp.tile }
