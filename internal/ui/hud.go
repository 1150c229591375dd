//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 13

// Status is the session state shown on the panel.
type Status struct {
	Running    bool
	Interval   string
	Cursor     int
	Length     int
	Population int
	Pattern    string
}

// HUD renders the control panel to the right of the board.
type HUD struct {
	originX int
	buttons []Button
	bottom  int
	hover   Action

	pixel *ebiten.Image
}

// NewHUD lays out a panel whose left edge is at originX.
func NewHUD(originX int) *HUD {
	h := &HUD{originX: originX}
	h.buttons, h.bottom = LayoutButtons(originX)
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Height returns the pixel height the panel needs for a pattern of n rows.
func (h *HUD) Height(n int) int {
	return h.bottom + (n+1)*lineHeight + padding
}

// Update tracks the hovered button and reports a click, if any.
func (h *HUD) Update(x, y int, clicked bool) (Action, bool) {
	a, ok := HitTest(h.buttons, x, y)
	h.hover = ""
	if ok {
		h.hover = a
	}
	if !ok || !clicked {
		return "", false
	}
	return a, true
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	bounds := screen.Bounds()
	h.fillRect(screen, float64(h.originX), 0, float64(bounds.Dx()-h.originX), float64(bounds.Dy()), color.RGBA{R: 16, G: 16, B: 20, A: 255})

	x := h.originX + padding
	state := "stopped"
	if st.Running {
		state = "running"
	}
	text.Draw(screen, fmt.Sprintf("Life  %s  %s", state, st.Interval), face, x, padding+lineHeight, color.White)
	text.Draw(screen, fmt.Sprintf("history %d/%d  alive %d", st.Cursor+1, st.Length, st.Population), face, x, padding+2*lineHeight+4, color.RGBA{R: 180, G: 180, B: 190, A: 255})

	for _, b := range h.buttons {
		fill := color.RGBA{R: 48, G: 48, B: 60, A: 255}
		if b.Action == h.hover {
			fill = color.RGBA{R: 72, G: 72, B: 96, A: 255}
		}
		r := b.Rect
		h.fillRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), fill)
		label := Label(b.Action, st.Running)
		tx := r.Min.X + (r.Dx()-len(label)*7)/2
		text.Draw(screen, label, face, tx, r.Min.Y+r.Dy()/2+4, color.White)
	}

	y := h.bottom + lineHeight
	for _, line := range strings.Split(st.Pattern, "\n") {
		text.Draw(screen, line, face, x, y, color.RGBA{R: 150, G: 220, B: 150, A: 255})
		y += lineHeight
	}
}

func (h *HUD) fillRect(screen *ebiten.Image, x, y, w, hgt float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, hgt)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(h.pixel, op)
}
