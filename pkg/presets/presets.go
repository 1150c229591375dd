package presets

import "life-tiles/pkg/core"

// Pattern is a rectangular 0/1 block, row-major.
type Pattern [][]uint8

// Rows returns the pattern height.
func (p Pattern) Rows() int { return len(p) }

// Cols returns the pattern width.
func (p Pattern) Cols() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

var names = []string{"glider", "blinker", "toad", "pulsar", "lwss"}

var library = map[string]Pattern{
	"glider": {
		{1, 0, 0},
		{0, 1, 1},
		{1, 1, 0},
	},
	"blinker": {
		{1, 1, 1},
	},
	"toad": {
		{0, 1, 1, 1},
		{1, 1, 1, 0},
	},
	"pulsar": {
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
	},
	"lwss": {
		{0, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{0, 0, 0, 0, 1},
		{1, 0, 0, 1, 0},
	},
}

// Names lists the available presets in menu order.
func Names() []string {
	return append([]string(nil), names...)
}

// Lookup returns a copy of the named pattern.
func Lookup(name string) (Pattern, bool) {
	p, ok := library[name]
	if !ok {
		return nil, false
	}
	out := make(Pattern, len(p))
	for i, row := range p {
		out[i] = append([]uint8(nil), row...)
	}
	return out, true
}

// Offset returns the top-left placement that centers a rows×cols pattern on
// an n×n board.
func Offset(n, rows, cols int) (top, left int) {
	return floorDiv(n-rows, 2), floorDiv(n-cols, 2)
}

// Place builds a fresh n×n grid with the named pattern centered on it.
// Unknown names report false.
func Place(name string, n int) (*core.Grid, bool) {
	p, ok := library[name]
	if !ok {
		return nil, false
	}
	g := core.NewGrid(n)
	top, left := Offset(n, p.Rows(), p.Cols())
	cells := g.Cells()
	for y, row := range p {
		for x, v := range row {
			gx, gy := left+x, top+y
			if v == 0 || !g.InBounds(gx, gy) {
				continue
			}
			cells[g.Index(gx, gy)] = 1
		}
	}
	return g, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
