//go:build ebiten

package app

import (
	"life-tiles/internal/core"
	"life-tiles/internal/render"
	"life-tiles/internal/ui"
	"life-tiles/pkg/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = map[ebiten.Key]ui.Action{
	ebiten.KeySpace:  ui.ActionToggleRun,
	ebiten.KeyN:      ui.ActionStep,
	ebiten.KeyZ:      ui.ActionUndo,
	ebiten.KeyY:      ui.ActionRedo,
	ebiten.KeyC:      ui.ActionClear,
	ebiten.KeyF:      ui.ActionFill,
	ebiten.KeyI:      ui.ActionInvert,
	ebiten.KeyR:      ui.ActionRandom,
	ebiten.KeyEqual:  ui.ActionFaster,
	ebiten.KeyMinus:  ui.ActionSlower,
	ebiten.KeyDigit1: ui.PresetAction("glider"),
	ebiten.KeyDigit2: ui.PresetAction("blinker"),
	ebiten.KeyDigit3: ui.PresetAction("toad"),
	ebiten.KeyDigit4: ui.PresetAction("pulsar"),
	ebiten.KeyDigit5: ui.PresetAction("lwss"),
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	view    *View
	clock   *core.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
	seed  func() int64
}

// New constructs a Game. The session must have been built with view as its
// presenter and clock as its scheduler.
func New(s *session.Session, view *View, clock *core.FixedStep, cfg *Config) *Game {
	n := s.Size()
	return &Game{
		session: s,
		view:    view,
		clock:   clock,
		painter: render.NewGridPainter(n, cfg.Scale, render.DefaultPalette),
		overlay: ui.NewOverlay(cfg.Scale),
		hud:     ui.NewHUD(n * cfg.Scale),
		scale:   cfg.Scale,
		seed:    cfg.SeedFunc(),
	}
}

// Update handles per-frame input and fires due generations.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			ui.Apply(g.session, action, g.seed)
		}
	}

	mx, my := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	cx, cy, onBoard := CellAt(mx, my, g.scale, g.session.Size())
	g.overlay.Update(cx, cy, onBoard)
	if onBoard && clicked {
		g.session.ToggleCell(cx, cy)
	}
	if action, ok := g.hud.Update(mx, my, clicked); ok {
		ui.Apply(g.session, action, g.seed)
	}

	g.clock.Poll()
	return nil
}

// Draw renders the board, hover outline and control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	grid, pattern, running, changed := g.view.Snapshot()
	if changed {
		g.painter.Update(grid)
	}
	g.painter.Draw(screen)
	g.overlay.Draw(screen)

	cursor, length := g.session.HistoryState()
	population := 0
	if grid != nil {
		population = grid.Population()
	}
	g.hud.Draw(screen, ui.Status{
		Running:    running,
		Interval:   core.FormatInterval(g.session.Interval()),
		Cursor:     cursor,
		Length:     length,
		Population: population,
		Pattern:    pattern,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}

// Size returns the window size: the board plus the control panel.
func (g *Game) Size() (int, int) {
	n := g.session.Size()
	w, h := g.painter.Size()
	if panel := g.hud.Height(n); panel > h {
		h = panel
	}
	return w + ui.PanelWidth, h
}
