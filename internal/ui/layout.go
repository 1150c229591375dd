package ui

import "image"

const (
	// PanelWidth is the width of the control panel right of the board.
	PanelWidth = 240

	buttonH   = 22
	buttonGap = 6
	padding   = 10
	columns   = 2
)

// Button is a clickable control on the panel.
type Button struct {
	Action Action
	Rect   image.Rectangle
}

// LayoutButtons places the controls and then the presets in a two column
// grid starting at originX. The returned y is the first free row below them.
func LayoutButtons(originX int) (buttons []Button, bottom int) {
	colW := (PanelWidth - 2*padding - (columns-1)*buttonGap) / columns
	y := padding + 2*buttonH
	place := func(actions []Action) {
		for i, a := range actions {
			col := i % columns
			if i > 0 && col == 0 {
				y += buttonH + buttonGap
			}
			x := originX + padding + col*(colW+buttonGap)
			buttons = append(buttons, Button{Action: a, Rect: image.Rect(x, y, x+colW, y+buttonH)})
		}
		y += buttonH + 2*buttonGap
	}
	place(Controls)
	y += buttonH
	place(PresetActions())
	return buttons, y
}

// HitTest returns the action of the button containing (x, y).
func HitTest(buttons []Button, x, y int) (Action, bool) {
	pt := image.Pt(x, y)
	for _, b := range buttons {
		if pt.In(b.Rect) {
			return b.Action, true
		}
	}
	return "", false
}
