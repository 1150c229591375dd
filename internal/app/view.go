package app

import (
	"sync"

	"life-tiles/pkg/core"
)

// View caches what the session last presented so a frame loop can draw it.
type View struct {
	mu      sync.Mutex
	grid    *core.Grid
	pattern string
	running bool
	dirty   bool
}

// NewView returns an empty View.
func NewView() *View { return &View{} }

// Render stores the latest grid.
func (v *View) Render(g *core.Grid) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.grid = g
	v.dirty = true
}

// RenderPattern stores the latest pattern text.
func (v *View) RenderPattern(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pattern = text
}

// SetRunning stores the run state shown on the start/stop control.
func (v *View) SetRunning(running bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.running = running
}

// Snapshot returns the cached state and whether the grid changed since the
// previous call.
func (v *View) Snapshot() (g *core.Grid, pattern string, running, changed bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed = v.dirty
	v.dirty = false
	return v.grid, v.pattern, v.running, changed
}
