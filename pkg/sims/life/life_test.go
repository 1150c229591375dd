package life

import (
	"testing"

	"life-tiles/pkg/core"

	"github.com/stretchr/testify/require"
)

func gridWith(n int, alive ...[2]int) *core.Grid {
	g := core.NewGrid(n)
	for _, c := range alive {
		g.Toggle(c[0], c[1])
	}
	return g
}

func TestBlinkerOscillation(t *testing.T) {
	start := gridWith(5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	next := Step(start)

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := next.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	back := Step(next)
	if !back.Equal(start) {
		t.Fatalf("after second step got\n%s\nexpected\n%s", back, start)
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	g := core.NewGrid(core.DefaultSize)
	require.Equal(t, 0, Step(g).Population())
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := gridWith(core.DefaultSize, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	before := g.Snapshot()

	Step(g)

	require.True(t, g.Equal(before))
}

func TestGliderAdvancesOneGeneration(t *testing.T) {
	g := gridWith(core.DefaultSize, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})

	next := Step(g)

	want := gridWith(core.DefaultSize, [2]int{0, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2}, [2]int{1, 3})
	require.True(t, next.Equal(want), "got\n%s", next)
}

func TestGliderReturnsShiftedAfterFourGenerations(t *testing.T) {
	g := gridWith(core.DefaultSize, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	for i := 0; i < 4; i++ {
		g = Step(g)
	}

	want := gridWith(core.DefaultSize, [2]int{2, 1}, [2]int{3, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3})
	require.True(t, g.Equal(want), "got\n%s", g)
}

func TestEdgesDoNotWrap(t *testing.T) {
	n := core.DefaultSize
	g := gridWith(n, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})

	next := Step(g)

	want := gridWith(n, [2]int{1, 0}, [2]int{1, 1})
	require.True(t, next.Equal(want), "got\n%s", next)
	require.False(t, next.Alive(1, n-1), "bottom row must not see the top row")
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		require.Equal(t, n == 2 || n == 3, Rule(true, n), "live cell with %d neighbours", n)
		require.Equal(t, n == 3, Rule(false, n), "dead cell with %d neighbours", n)
	}
}
