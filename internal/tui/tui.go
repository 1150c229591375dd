package tui

import (
	"fmt"
	"strings"

	"life-tiles/internal/core"
	"life-tiles/internal/ui"
	grid "life-tiles/pkg/core"
	"life-tiles/pkg/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var keyActions = map[string]ui.Action{
	" ": ui.ActionToggleRun,
	"n": ui.ActionStep,
	"u": ui.ActionUndo,
	"z": ui.ActionUndo,
	"y": ui.ActionRedo,
	"c": ui.ActionClear,
	"f": ui.ActionFill,
	"i": ui.ActionInvert,
	"x": ui.ActionRandom,
	"+": ui.ActionFaster,
	"=": ui.ActionFaster,
	"-": ui.ActionSlower,
	"1": ui.PresetAction("glider"),
	"2": ui.PresetAction("blinker"),
	"3": ui.PresetAction("toad"),
	"4": ui.PresetAction("pulsar"),
	"5": ui.PresetAction("lwss"),
}

// Notifier is the session presenter for the terminal UI. It only signals that
// something changed; the model reads the session when it redraws.
type Notifier struct {
	changes chan struct{}
}

// NewNotifier returns a Notifier with a one-slot signal buffer.
func NewNotifier() *Notifier {
	return &Notifier{changes: make(chan struct{}, 1)}
}

func (n *Notifier) Render(*grid.Grid)    { n.signal() }
func (n *Notifier) RenderPattern(string) { n.signal() }
func (n *Notifier) SetRunning(bool)      { n.signal() }

func (n *Notifier) signal() {
	select {
	case n.changes <- struct{}{}:
	default:
	}
}

type changedMsg struct{}

type styles struct {
	title   lipgloss.Style
	live    lipgloss.Style
	dead    lipgloss.Style
	cursor  lipgloss.Style
	panel   lipgloss.Style
	help    lipgloss.Style
	running lipgloss.Style
	stopped lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		live:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		dead:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		cursor:  lipgloss.NewStyle().Background(lipgloss.Color("33")),
		panel:   lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		running: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		stopped: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	}
}

// Model is the bubbletea model driving a session from the keyboard.
type Model struct {
	session *session.Session
	changes <-chan struct{}
	seed    func() int64
	styles  styles

	cx, cy int
}

// NewModel builds a model for s. notifier must be the session's presenter.
func NewModel(s *session.Session, notifier *Notifier, seed func() int64) Model {
	return Model{
		session: s,
		changes: notifier.changes,
		seed:    seed,
		styles:  newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	changes := m.changes
	return func() tea.Msg {
		<-changes
		return changedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changedMsg:
		return m, m.waitForChange()
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	n := m.session.Size()
	switch key {
	case "ctrl+c", "q", "esc":
		m.session.Stop()
		return m, tea.Quit
	case "up", "k":
		m.cy = max(m.cy-1, 0)
	case "down", "j":
		m.cy = min(m.cy+1, n-1)
	case "left", "h":
		m.cx = max(m.cx-1, 0)
	case "right", "l":
		m.cx = min(m.cx+1, n-1)
	case "enter", "t":
		m.session.ToggleCell(m.cx, m.cy)
	default:
		if action, ok := keyActions[key]; ok {
			ui.Apply(m.session, action, m.seed)
		}
	}
	return m, nil
}

func (m Model) View() string {
	g := m.session.Grid()
	board := m.renderBoard(g)
	pattern := m.styles.panel.Render(g.String())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.styles.panel.Render(board), " ", pattern)

	state := m.styles.stopped.Render(ui.Label(ui.ActionToggleRun, false) + " [space]")
	if m.session.Running() {
		state = m.styles.running.Render(ui.Label(ui.ActionToggleRun, true) + " [space]")
	}
	cursor, length := m.session.HistoryState()
	status := fmt.Sprintf("%s  interval %s  history %d/%d  alive %d",
		state, core.FormatInterval(m.session.Interval()), cursor+1, length, g.Population())

	help := m.styles.help.Render(strings.Join([]string{
		"arrows/hjkl move  enter toggle  n step  z/u back  y forward",
		"c clear  f fill  i invert  x random  +/- speed  1-5 presets  q quit",
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, m.styles.title.Render("life-tiles"), body, status, help)
}

func (m Model) renderBoard(g *grid.Grid) string {
	var b strings.Builder
	n := g.N()
	for y := 0; y < n; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < n; x++ {
			cell := m.styles.dead.Render("··")
			if g.Alive(x, y) {
				cell = m.styles.live.Render("██")
			}
			if x == m.cx && y == m.cy {
				cell = m.styles.cursor.Render(cell)
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}
