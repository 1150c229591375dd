//go:build !sqlite

package storage

import (
	"fmt"

	"life-tiles/pkg/history"
)

func newSQLiteStore(_ string) (history.Store, error) {
	return nil, fmt.Errorf("sqlite backend unavailable in this build; rebuild with -tags sqlite")
}
