package storage

import (
	"errors"
	"fmt"

	"life-tiles/pkg/history"
)

var ErrNotInitialized = errors.New("store is not initialized")

var _ history.Store = (*MemoryStore)(nil)
var _ history.Store = (*FileStore)(nil)

// NewStore builds the backend named by kind. path is the state file for the
// file backend and the database path for sqlite.
func NewStore(kind, path string) (history.Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(path), nil
	case "sqlite":
		return newSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

func CloseIfSupported(store history.Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
