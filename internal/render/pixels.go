package render

import "image/color"

// Palette holds the board colors. Line is blended over tile borders.
type Palette struct {
	On, Off, Line color.Color
}

// DefaultPalette draws black live cells on white with faint tile borders.
var DefaultPalette = Palette{
	On:   color.Black,
	Off:  color.White,
	Line: color.NRGBA{A: 51},
}

// fillTilesRGBA converts an n×n board of 0/1 cells into an RGBA image of
// n*tile pixels per side, outlining every tile with the line color.
func fillTilesRGBA(buf []byte, cells []uint8, n, tile int, p Palette) {
	on := toRGBA(p.On)
	off := toRGBA(p.Off)
	lineOn := blend(on, p.Line)
	lineOff := blend(off, p.Line)

	side := n * tile
	for py := 0; py < side; py++ {
		cy := py / tile
		edgeY := py%tile == 0 || py%tile == tile-1
		for px := 0; px < side; px++ {
			cx := px / tile
			edge := edgeY || px%tile == 0 || px%tile == tile-1
			col := off
			if cells[cy*n+cx] != 0 {
				col = on
				if edge {
					col = lineOn
				}
			} else if edge {
				col = lineOff
			}
			base := (py*side + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// blend paints the non-premultiplied overlay over an opaque base.
func blend(base color.RGBA, overlay color.Color) color.RGBA {
	o := color.NRGBAModel.Convert(overlay).(color.NRGBA)
	alpha := float64(o.A) / 255
	mix := func(b, t uint8) uint8 {
		return uint8(float64(b)*(1-alpha) + float64(t)*alpha + 0.5)
	}
	return color.RGBA{R: mix(base.R, o.R), G: mix(base.G, o.G), B: mix(base.B, o.B), A: base.A}
}
