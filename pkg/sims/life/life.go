package life

import (
	"life-tiles/pkg/core"
)

// Rule applies Conway's B3/S23 transition to a single cell.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Neighbors counts live cells in the Moore neighbourhood of (x, y). Cells
// beyond the edge count as dead.
func Neighbors(g *core.Grid, x, y int) int {
	n := g.N()
	cells := g.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= n || ny >= n {
				continue
			}
			count += int(cells[ny*n+nx])
		}
	}
	return count
}

// Step computes the next generation into a fresh grid. The input is not
// modified.
func Step(g *core.Grid) *core.Grid {
	n := g.N()
	cur := g.Cells()
	next := core.NewGrid(n)
	nxt := next.Cells()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := y*n + x
			if Rule(cur[idx] == 1, Neighbors(g, x, y)) {
				nxt[idx] = 1
			}
		}
	}
	return next
}
