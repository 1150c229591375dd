package core

import (
	"math/rand/v2"
	"strings"
)

// DefaultSize is the edge length of the board.
const DefaultSize = 16

// Grid stores an N×N board of 0/1 cells in row-major order.
type Grid struct {
	n    int
	data []uint8
}

// NewGrid allocates a zero-filled grid with the given edge length.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, data: make([]uint8, n*n)}
}

// FromRows builds a square grid sized to the number of rows and copies the
// pattern into it.
func FromRows(rows [][]uint8) *Grid {
	g := NewGrid(len(rows))
	g.Set(rows)
	return g
}

// N returns the edge length.
func (g *Grid) N() int { return g.n }

// Cells exposes the backing slice for renderers. Callers must not mutate it.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.n + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.n && y < g.n
}

// At returns the cell value at (x, y), or 0 outside the board.
func (g *Grid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Alive reports whether the cell at (x, y) is live.
func (g *Grid) Alive(x, y int) bool { return g.At(x, y) == 1 }

// Toggle flips the cell at (x, y). Out of range coordinates are ignored.
func (g *Grid) Toggle(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	idx := g.Index(x, y)
	g.data[idx] ^= 1
}

// Set replaces the grid content with pattern. Cells outside the pattern are
// cleared and pattern cells beyond the board are dropped.
func (g *Grid) Set(pattern [][]uint8) {
	g.Clear()
	for y, row := range pattern {
		if y >= g.n {
			break
		}
		for x, v := range row {
			if x >= g.n {
				break
			}
			if v != 0 {
				g.data[g.Index(x, y)] = 1
			}
		}
	}
}

// Snapshot returns a deep copy that shares no memory with g.
func (g *Grid) Snapshot() *Grid {
	return &Grid{n: g.n, data: append([]uint8(nil), g.data...)}
}

// Rows returns the board as freshly allocated nested rows.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.n)
	for y := range rows {
		rows[y] = append([]uint8(nil), g.data[y*g.n:(y+1)*g.n]...)
	}
	return rows
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (g *Grid) Population() int {
	count := 0
	for _, v := range g.data {
		count += int(v)
	}
	return count
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() { g.Fill(0) }

// Fill sets every cell to v (any non-zero value means alive).
func (g *Grid) Fill(v uint8) {
	if v != 0 {
		v = 1
	}
	for i := range g.data {
		g.data[i] = v
	}
}

// Invert flips every cell.
func (g *Grid) Invert() {
	for i := range g.data {
		g.data[i] ^= 1
	}
}

// FillRandom marks each cell alive with probability p.
func (g *Grid) FillRandom(r *rand.Rand, p float64) {
	for i := range g.data {
		g.data[i] = 0
		if r.Float64() < p {
			g.data[i] = 1
		}
	}
}

// String renders the pattern text: one line of 0/1 digits per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.n*g.n + g.n)
	for y := 0; y < g.n; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, v := range g.data[y*g.n : (y+1)*g.n] {
			b.WriteByte('0' + v)
		}
	}
	return b.String()
}
