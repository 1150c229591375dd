package core

import (
	"sync"
	"time"
)

// Repeater runs a tick on its own goroutine every interval until stopped.
type Repeater struct {
	mu   sync.Mutex
	done chan struct{}
	gen  uint64
}

// NewRepeater returns an idle Repeater.
func NewRepeater() *Repeater { return &Repeater{} }

// Start cancels any running schedule and begins a new one.
func (r *Repeater) Start(interval time.Duration, tick func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if interval <= 0 {
		interval = time.Second / 60
	}
	r.cancel()
	r.gen++
	gen := r.gen
	done := make(chan struct{})
	r.done = done

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if !r.current(gen) {
					return
				}
				tick()
			}
		}
	}()
}

// Stop cancels the running schedule. It does not wait for an in-flight tick.
func (r *Repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancel()
}

func (r *Repeater) cancel() {
	if r.done == nil {
		return
	}
	close(r.done)
	r.done = nil
	r.gen++
}

func (r *Repeater) current(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen == gen && r.done != nil
}
