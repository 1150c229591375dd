package session

import (
	"context"
	"testing"
	"time"

	"life-tiles/pkg/core"
	"life-tiles/pkg/history"
	"life-tiles/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduler struct {
	armed    bool
	interval time.Duration
	tick     func()
	starts   int
	stops    int
}

func (f *fakeScheduler) Start(interval time.Duration, tick func()) {
	f.armed = true
	f.interval = interval
	f.tick = tick
	f.starts++
}

func (f *fakeScheduler) Stop() {
	f.armed = false
	f.stops++
}

func (f *fakeScheduler) fire() { f.tick() }

type recordingPresenter struct {
	renders  int
	pattern  string
	running  bool
	lastGrid *core.Grid
}

func (p *recordingPresenter) Render(g *core.Grid)       { p.renders++; p.lastGrid = g }
func (p *recordingPresenter) RenderPattern(text string) { p.pattern = text }
func (p *recordingPresenter) SetRunning(running bool)   { p.running = running }

type fixture struct {
	s     *Session
	sched *fakeScheduler
	view  *recordingPresenter
	hist  *history.Manager
	store *storage.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Init(context.Background()))
	return newFixtureWithStore(t, store)
}

func newFixtureWithStore(t *testing.T, store *storage.MemoryStore) *fixture {
	t.Helper()
	f := &fixture{
		sched: &fakeScheduler{},
		view:  &recordingPresenter{},
		hist:  history.New(store, core.DefaultSize),
		store: store,
	}
	f.s = New(context.Background(), Config{
		History:   f.hist,
		Scheduler: f.sched,
		Presenter: f.view,
	})
	return f
}

func TestNewRecordsBaseline(t *testing.T) {
	f := newFixture(t)

	cursor, length := f.s.HistoryState()
	assert.Equal(t, 0, cursor)
	assert.Equal(t, 1, length)
	assert.Equal(t, 1, f.view.renders)
	assert.Equal(t, core.NewGrid(core.DefaultSize).String(), f.view.pattern)
	assert.False(t, f.s.Running())
	assert.Equal(t, DefaultInterval, f.s.Interval())
}

func TestToggleUndoRedo(t *testing.T) {
	f := newFixture(t)

	f.s.ToggleCell(0, 0)
	g := f.s.Grid()
	require.True(t, g.Alive(0, 0))
	require.Equal(t, 1, g.Population())

	require.True(t, f.s.Undo())
	require.Equal(t, 0, f.s.Grid().Population())
	require.Equal(t, 0, f.view.lastGrid.Population())

	require.True(t, f.s.Redo())
	g = f.s.Grid()
	require.True(t, g.Alive(0, 0))
	require.Equal(t, 1, g.Population())

	assert.False(t, f.s.Redo())
}

func TestToggleOutOfBoundsIgnored(t *testing.T) {
	f := newFixture(t)
	renders := f.view.renders

	f.s.ToggleCell(core.DefaultSize, 0)
	f.s.ToggleCell(-1, 3)

	_, length := f.s.HistoryState()
	assert.Equal(t, 1, length)
	assert.Equal(t, renders, f.view.renders)
}

func TestGridIsACopy(t *testing.T) {
	f := newFixture(t)
	g := f.s.Grid()
	g.Toggle(1, 1)

	assert.Equal(t, 0, f.s.Grid().Population())
}

func TestStartStopTransitions(t *testing.T) {
	f := newFixture(t)

	f.s.Start()
	f.s.Start()
	require.True(t, f.s.Running())
	require.True(t, f.view.running)
	require.Equal(t, 1, f.sched.starts)
	require.Equal(t, DefaultInterval, f.sched.interval)

	f.s.Stop()
	f.s.Stop()
	require.False(t, f.s.Running())
	require.False(t, f.view.running)
	require.False(t, f.sched.armed)
	require.Equal(t, 1, f.sched.stops)

	f.s.ToggleRunning()
	assert.True(t, f.s.Running())
	f.s.ToggleRunning()
	assert.False(t, f.s.Running())
}

func TestTickAdvancesAndRecords(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.s.PlacePreset("blinker"))
	start := f.s.Grid()

	f.s.Start()
	f.sched.fire()
	f.sched.fire()

	assert.True(t, f.s.Grid().Equal(start), "blinker has period 2")
	cursor, length := f.s.HistoryState()
	assert.Equal(t, 3, length)
	assert.Equal(t, 2, cursor)
}

func TestStaleTickDropped(t *testing.T) {
	f := newFixture(t)
	f.s.ToggleCell(5, 5)

	f.s.Start()
	stale := f.sched.tick
	f.s.Stop()
	stale()

	assert.True(t, f.s.Grid().Alive(5, 5), "tick after Stop must not step")

	f.s.Start()
	stale()
	assert.True(t, f.s.Grid().Alive(5, 5), "tick from an earlier run must not step")

	f.sched.fire()
	assert.Equal(t, 0, f.s.Grid().Population())
}

func TestStepStopsAndAdvancesOnce(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.s.PlacePreset("blinker"))
	start := f.s.Grid()
	f.s.Start()

	f.s.Step()

	assert.False(t, f.s.Running())
	assert.False(t, f.sched.armed)
	assert.False(t, f.s.Grid().Equal(start))
	assert.Equal(t, 3, f.s.Grid().Population())

	f.s.Step()
	assert.True(t, f.s.Grid().Equal(start))
}

func TestSetIntervalWhileRunningRearms(t *testing.T) {
	f := newFixture(t)
	f.s.Start()

	f.s.SetInterval(50 * time.Millisecond)

	assert.True(t, f.s.Running())
	assert.Equal(t, 2, f.sched.starts)
	assert.Equal(t, 1, f.sched.stops)
	assert.Equal(t, 50*time.Millisecond, f.sched.interval)
}

func TestSetIntervalWhileStoppedDoesNotStart(t *testing.T) {
	f := newFixture(t)

	f.s.SetInterval(time.Millisecond)
	assert.Equal(t, MinInterval, f.s.Interval())
	f.s.SetInterval(time.Hour)
	assert.Equal(t, MaxInterval, f.s.Interval())

	assert.False(t, f.s.Running())
	assert.Zero(t, f.sched.starts)
}

func TestPlacePresetResetsHistory(t *testing.T) {
	f := newFixture(t)
	f.s.ToggleCell(0, 0)
	f.s.ToggleCell(1, 0)
	f.s.Start()

	require.True(t, f.s.PlacePreset("glider"))

	assert.False(t, f.s.Running())
	g := f.s.Grid()
	assert.Equal(t, 5, g.Population())
	assert.False(t, g.Alive(0, 0))
	cursor, length := f.s.HistoryState()
	assert.Equal(t, 0, cursor)
	assert.Equal(t, 1, length)
	assert.False(t, f.s.Undo())
}

func TestPlaceUnknownPresetIsNoop(t *testing.T) {
	f := newFixture(t)
	f.s.ToggleCell(3, 3)

	assert.False(t, f.s.PlacePreset("spaceship"))
	assert.True(t, f.s.Grid().Alive(3, 3))
	_, length := f.s.HistoryState()
	assert.Equal(t, 2, length)
}

func TestResetVariants(t *testing.T) {
	f := newFixture(t)
	n := core.DefaultSize

	f.s.Fill()
	assert.Equal(t, n*n, f.s.Grid().Population())

	f.s.ToggleCell(0, 0)
	f.s.Invert()
	g := f.s.Grid()
	assert.Equal(t, 1, g.Population())
	assert.True(t, g.Alive(0, 0))

	f.s.Randomize(99)
	random := f.s.Grid()
	assert.True(t, random.Equal(core.NewRNG(99).RandomGrid(n)))

	f.s.Clear()
	assert.Equal(t, 0, f.s.Grid().Population())
	_, length := f.s.HistoryState()
	assert.Equal(t, 1, length)
}

func TestRestartRestoresCursorGrid(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Init(context.Background()))

	first := newFixtureWithStore(t, store)
	first.s.ToggleCell(2, 2)
	first.s.ToggleCell(3, 3)
	require.True(t, first.s.Undo())

	second := newFixtureWithStore(t, store)

	g := second.s.Grid()
	assert.True(t, g.Alive(2, 2))
	assert.False(t, g.Alive(3, 3))
	cursor, length := second.s.HistoryState()
	assert.Equal(t, 1, cursor)
	assert.Equal(t, 3, length)
	assert.True(t, second.s.Redo())
	assert.True(t, second.s.Grid().Alive(3, 3))
}

func TestSessionWithoutHistory(t *testing.T) {
	sched := &fakeScheduler{}
	s := New(context.Background(), Config{Scheduler: sched})

	s.ToggleCell(1, 1)
	assert.True(t, s.Grid().Alive(1, 1))
	assert.False(t, s.Undo())
	assert.False(t, s.Redo())
	assert.False(t, s.Goto(0))

	cursor, length := s.HistoryState()
	assert.Equal(t, -1, cursor)
	assert.Equal(t, 0, length)

	s.Start()
	sched.fire()
	assert.Equal(t, 0, s.Grid().Population())
}

func TestGotoJumpsWithoutRecording(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 4; i++ {
		f.s.ToggleCell(i, 0)
	}

	require.True(t, f.s.Goto(2))
	assert.Equal(t, 2, f.s.Grid().Population())
	cursor, length := f.s.HistoryState()
	assert.Equal(t, 2, cursor)
	assert.Equal(t, 5, length)

	assert.False(t, f.s.Goto(9))
	cursor, _ = f.s.HistoryState()
	assert.Equal(t, 2, cursor)
}
