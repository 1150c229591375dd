package presets

import (
	"testing"

	"life-tiles/pkg/core"
	"life-tiles/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceGliderCentered(t *testing.T) {
	g, ok := Place("glider", core.DefaultSize)
	require.True(t, ok)
	require.Equal(t, 5, g.Population())

	top, left := Offset(core.DefaultSize, 3, 3)
	require.Equal(t, 6, top)
	require.Equal(t, 6, left)

	for _, c := range [][2]int{{6, 6}, {7, 7}, {8, 7}, {6, 8}, {7, 8}} {
		assert.True(t, g.Alive(c[0], c[1]), "expected live cell at %v", c)
	}
}

func TestPlaceEveryPresetKeepsPopulation(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, ok := Lookup(name)
			require.True(t, ok)

			want := 0
			for _, row := range p {
				require.Len(t, row, p.Cols(), "pattern must be rectangular")
				for _, v := range row {
					want += int(v)
				}
			}

			g, ok := Place(name, core.DefaultSize)
			require.True(t, ok)
			assert.Equal(t, want, g.Population())

			top, left := Offset(core.DefaultSize, p.Rows(), p.Cols())
			for y, row := range p {
				for x, v := range row {
					assert.Equal(t, v, g.At(left+x, top+y))
				}
			}
		})
	}
}

func TestPlaceUnknownName(t *testing.T) {
	g, ok := Place("gosper", core.DefaultSize)
	assert.False(t, ok)
	assert.Nil(t, g)
}

func TestOscillatorPeriods(t *testing.T) {
	periods := map[string]int{"blinker": 2, "toad": 2, "pulsar": 3}
	for name, period := range periods {
		start, ok := Place(name, core.DefaultSize)
		require.True(t, ok)

		g := start
		for i := 0; i < period; i++ {
			g = life.Step(g)
		}
		assert.True(t, g.Equal(start), "%s should repeat after %d steps", name, period)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	p, _ := Lookup("blinker")
	p[0][0] = 0

	again, _ := Lookup("blinker")
	assert.Equal(t, uint8(1), again[0][0])
}

func TestOffsetFloorsNegative(t *testing.T) {
	top, left := Offset(2, 5, 3)
	assert.Equal(t, -2, top)
	assert.Equal(t, -1, left)
}
