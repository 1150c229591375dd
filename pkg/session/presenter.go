package session

import (
	"time"

	"life-tiles/pkg/core"
)

// Presenter receives every state change. Calls arrive while the session is
// locked, so implementations must not call back into the Session.
type Presenter interface {
	Render(g *core.Grid)
	RenderPattern(text string)
	SetRunning(running bool)
}

// NopPresenter discards all updates.
type NopPresenter struct{}

func (NopPresenter) Render(*core.Grid)    {}
func (NopPresenter) RenderPattern(string) {}
func (NopPresenter) SetRunning(bool)      {}

// Scheduler runs tick repeatedly every interval until stopped. Start on an
// armed scheduler replaces the previous schedule.
type Scheduler interface {
	Start(interval time.Duration, tick func())
	Stop()
}

type nopScheduler struct{}

func (nopScheduler) Start(time.Duration, func()) {}
func (nopScheduler) Stop()                       {}
