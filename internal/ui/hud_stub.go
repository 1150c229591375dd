//go:build !ebiten

package ui

// Status is the session state shown on the panel.
type Status struct {
	Running    bool
	Interval   string
	Cursor     int
	Length     int
	Population int
	Pattern    string
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Height is zero in the headless build.
func (h *HUD) Height(int) int { return 0 }

// Update never reports a click in the headless build.
func (h *HUD) Update(int, int, bool) (Action, bool) { return "", false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Status) {}
