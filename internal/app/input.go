package app

// CellAt translates a pixel position on the board into cell coordinates.
// Positions outside the n×n board of scale-pixel tiles report false.
func CellAt(px, py, scale, n int) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= n || y >= n {
		return 0, 0, false
	}
	return x, y, true
}
