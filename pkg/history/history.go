package history

import (
	"context"
	"fmt"
	"log"

	"life-tiles/pkg/core"
)

// MaxEntries bounds the number of retained snapshots.
const MaxEntries = 100

// Log is a detached copy of the history state.
type Log struct {
	Entries []*core.Grid
	Cursor  int
}

// Manager keeps a bounded linear undo/redo log of grid snapshots and mirrors
// it into a Store after every change. A nil Store keeps history in memory only.
type Manager struct {
	store  Store
	key    string
	size   int
	max    int
	logger *log.Logger

	entries []*core.Grid
	cursor  int
}

// New returns an empty Manager for grids of edge length size.
func New(store Store, size int) *Manager {
	return &Manager{
		store:  store,
		key:    Key,
		size:   size,
		max:    MaxEntries,
		logger: log.Default(),
		cursor: -1,
	}
}

// SetLogger replaces the logger used for warnings.
func (m *Manager) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// Len returns the number of retained entries.
func (m *Manager) Len() int { return len(m.entries) }

// Cursor returns the current index, or -1 when the log is empty.
func (m *Manager) Cursor() int { return m.cursor }

// CanUndo reports whether an older entry exists.
func (m *Manager) CanUndo() bool { return m.cursor > 0 }

// CanRedo reports whether a newer entry exists.
func (m *Manager) CanRedo() bool { return m.cursor >= 0 && m.cursor < len(m.entries)-1 }

// Current returns a copy of the entry under the cursor.
func (m *Manager) Current() (*core.Grid, bool) {
	if m.cursor < 0 {
		return nil, false
	}
	return m.entries[m.cursor].Snapshot(), true
}

// Log returns a deep copy of the entries and the cursor.
func (m *Manager) Log() Log {
	out := Log{Entries: make([]*core.Grid, len(m.entries)), Cursor: m.cursor}
	for i, g := range m.entries {
		out.Entries[i] = g.Snapshot()
	}
	return out
}

// Load restores the log from the store. Missing or malformed records leave
// the log empty; the problem is logged and never returned.
func (m *Manager) Load(ctx context.Context) {
	m.entries = nil
	m.cursor = -1
	if m.store == nil {
		return
	}

	payload, ok, err := m.store.Load(ctx, m.key)
	if err != nil {
		m.logger.Printf("warning: load history: %v", err)
		return
	}
	if !ok {
		return
	}

	entries, cursor, err := Decode(payload, m.size)
	if err != nil {
		m.logger.Printf("warning: discarding persisted history: %v", err)
		return
	}
	if len(entries) == 0 {
		return
	}
	if len(entries) > m.max {
		drop := len(entries) - m.max
		entries = entries[drop:]
		cursor -= drop
	}
	if cursor < 0 || cursor >= len(entries) {
		m.logger.Printf("warning: history cursor %d out of range, using %d", cursor, len(entries)-1)
		cursor = len(entries) - 1
	}
	m.entries = entries
	m.cursor = cursor
}

// Record discards any redo entries, appends a copy of g and persists the log.
// The in-memory log is updated even when persisting fails.
func (m *Manager) Record(ctx context.Context, g *core.Grid) error {
	m.entries = m.entries[:m.cursor+1]
	m.entries = append(m.entries, g.Snapshot())
	m.cursor = len(m.entries) - 1

	if len(m.entries) > m.max {
		drop := len(m.entries) - m.max
		m.entries = append([]*core.Grid(nil), m.entries[drop:]...)
		m.cursor -= drop
	}
	return m.persist(ctx)
}

// Goto moves the cursor to index and returns a copy of that entry. Indexes
// outside the log are ignored.
func (m *Manager) Goto(ctx context.Context, index int) (*core.Grid, bool) {
	if index < 0 || index >= len(m.entries) {
		return nil, false
	}
	m.cursor = index
	if err := m.persist(ctx); err != nil {
		m.logger.Printf("warning: %v", err)
	}
	return m.entries[index].Snapshot(), true
}

// Undo steps back one entry.
func (m *Manager) Undo(ctx context.Context) (*core.Grid, bool) {
	return m.Goto(ctx, m.cursor-1)
}

// Redo steps forward one entry.
func (m *Manager) Redo(ctx context.Context) (*core.Grid, bool) {
	return m.Goto(ctx, m.cursor+1)
}

// Clear empties the log and removes the persisted record.
func (m *Manager) Clear(ctx context.Context) error {
	m.entries = nil
	m.cursor = -1
	if m.store == nil {
		return nil
	}
	if err := m.store.Delete(ctx, m.key); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

func (m *Manager) persist(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	payload, err := Encode(m.entries, m.cursor)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := m.store.Save(ctx, m.key, payload); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
