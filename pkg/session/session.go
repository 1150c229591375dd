package session

import (
	"context"
	"log"
	"sync"
	"time"

	"life-tiles/pkg/core"
	"life-tiles/pkg/history"
	"life-tiles/pkg/presets"
	"life-tiles/pkg/sims/life"
)

const (
	// DefaultInterval is the delay between generations while running.
	DefaultInterval = 200 * time.Millisecond
	// MinInterval and MaxInterval bound SetInterval.
	MinInterval = 10 * time.Millisecond
	MaxInterval = 2 * time.Second
)

// Config wires a Session to its collaborators. Zero values get defaults:
// a DefaultSize board, DefaultInterval, no history, a no-op presenter and a
// scheduler that never fires.
type Config struct {
	Size      int
	Interval  time.Duration
	History   *history.Manager
	Scheduler Scheduler
	Presenter Presenter
	Logger    *log.Logger
}

// Session owns the live grid, the optional history and the run state. All
// methods are serialized, so scheduler ticks never interleave with input.
type Session struct {
	mu sync.Mutex

	// ctx is the session's lifetime context, used by scheduler ticks and
	// input handlers that have no caller context of their own.
	ctx      context.Context
	size     int
	grid     *core.Grid
	hist     *history.Manager
	sched    Scheduler
	view     Presenter
	logger   *log.Logger
	interval time.Duration

	running bool
	token   uint64
}

// New builds a session. With a history manager attached the persisted log is
// loaded and the grid at its cursor adopted; otherwise the board starts empty
// and that empty board becomes the first history entry.
func New(ctx context.Context, cfg Config) *Session {
	if cfg.Size <= 0 {
		cfg.Size = core.DefaultSize
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = nopScheduler{}
	}
	if cfg.Presenter == nil {
		cfg.Presenter = NopPresenter{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	s := &Session{
		ctx:      ctx,
		size:     cfg.Size,
		grid:     core.NewGrid(cfg.Size),
		hist:     cfg.History,
		sched:    cfg.Scheduler,
		view:     cfg.Presenter,
		logger:   cfg.Logger,
		interval: clampInterval(cfg.Interval),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	restored := false
	if s.hist != nil {
		s.hist.Load(ctx)
		if g, ok := s.hist.Current(); ok && g.N() == s.size {
			s.grid = g
			restored = true
		}
	}
	s.refresh()
	s.view.SetRunning(false)
	if !restored {
		s.record()
	}
	return s
}

// Grid returns a copy of the live board.
func (s *Session) Grid() *core.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Snapshot()
}

// Size returns the board edge length.
func (s *Session) Size() int { return s.size }

// Running reports whether the scheduler is driving generations.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Interval returns the delay between generations.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// HistoryState returns the cursor and length of the history log, or (-1, 0)
// when no history is attached.
func (s *Session) HistoryState() (cursor, length int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hist == nil {
		return -1, 0
	}
	return s.hist.Cursor(), s.hist.Len()
}

// ToggleCell flips one cell. Coordinates outside the board are ignored.
func (s *Session) ToggleCell(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.grid.InBounds(x, y) {
		return
	}
	next := s.grid.Snapshot()
	next.Toggle(x, y)
	s.commit(next)
}

// Start begins stepping on the scheduler. No-op while running.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start()
}

// Stop cancels the scheduler. No-op while stopped.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop()
}

// ToggleRunning starts a stopped session and stops a running one.
func (s *Session) ToggleRunning() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.stop()
		return
	}
	s.start()
}

// Step stops the simulation and advances exactly one generation.
func (s *Session) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop()
	s.advance()
}

// SetInterval changes the tick delay, clamped to [MinInterval, MaxInterval].
// A running session is restarted so the new delay applies immediately.
func (s *Session) SetInterval(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interval = clampInterval(d)
	if s.running {
		s.stop()
		s.start()
	}
}

// Reset stops the simulation, installs g (nil for an empty board), clears
// history and records g as the new baseline.
func (s *Session) Reset(g *core.Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(g)
}

// Clear resets to an empty board.
func (s *Session) Clear() { s.Reset(nil) }

// Fill resets to a board with every cell alive.
func (s *Session) Fill() {
	g := core.NewGrid(s.size)
	g.Fill(1)
	s.Reset(g)
}

// Invert resets to the complement of the current board.
func (s *Session) Invert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.grid.Snapshot()
	g.Invert()
	s.reset(g)
}

// Randomize resets to a random board derived from seed.
func (s *Session) Randomize(seed int64) {
	s.Reset(core.NewRNG(seed).RandomGrid(s.size))
}

// PlacePreset resets to the named preset centered on the board. Unknown names
// are ignored and report false.
func (s *Session) PlacePreset(name string) bool {
	g, ok := presets.Place(name, s.size)
	if !ok {
		return false
	}
	s.Reset(g)
	return true
}

// Undo adopts the previous history entry.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hist == nil {
		return false
	}
	return s.adopt(s.hist.Undo(s.ctx))
}

// Redo adopts the next history entry.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hist == nil {
		return false
	}
	return s.adopt(s.hist.Redo(s.ctx))
}

// Goto adopts the history entry at index.
func (s *Session) Goto(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hist == nil {
		return false
	}
	return s.adopt(s.hist.Goto(s.ctx, index))
}

func (s *Session) start() {
	if s.running {
		return
	}
	s.running = true
	s.token++
	token := s.token
	s.sched.Start(s.interval, func() { s.tick(token) })
	s.view.SetRunning(true)
}

func (s *Session) stop() {
	if !s.running {
		return
	}
	s.running = false
	s.token++
	s.sched.Stop()
	s.view.SetRunning(false)
}

// tick runs one scheduled generation. Ticks from a cancelled schedule carry
// an old token and are dropped.
func (s *Session) tick(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || token != s.token {
		return
	}
	s.advance()
}

func (s *Session) advance() {
	s.commit(life.Step(s.grid))
}

func (s *Session) reset(g *core.Grid) {
	s.stop()
	next := core.NewGrid(s.size)
	if g != nil {
		next.Set(g.Rows())
	}
	s.grid = next
	s.refresh()
	if s.hist != nil {
		if err := s.hist.Clear(s.ctx); err != nil {
			s.logger.Printf("warning: %v", err)
		}
	}
	s.record()
}

// commit installs a new grid and runs the shared mutation path: refresh the
// presenter, then record.
func (s *Session) commit(g *core.Grid) {
	s.grid = g
	s.refresh()
	s.record()
}

func (s *Session) adopt(g *core.Grid, ok bool) bool {
	if !ok {
		return false
	}
	s.grid = g
	s.refresh()
	return true
}

func (s *Session) refresh() {
	s.view.Render(s.grid.Snapshot())
	s.view.RenderPattern(s.grid.String())
}

func (s *Session) record() {
	if s.hist == nil {
		return
	}
	if err := s.hist.Record(s.ctx, s.grid); err != nil {
		s.logger.Printf("warning: %v", err)
	}
}

func clampInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultInterval
	}
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}
