package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"life-tiles/pkg/core"
)

// ErrMalformed reports a persisted record that fails the shape check.
var ErrMalformed = errors.New("malformed history record")

// record is the persisted form: every entry as nested 0/1 rows plus the cursor.
// Cells are ints because encoding/json writes []uint8 as base64.
type record struct {
	History [][][]int `json:"history"`
	Index   int       `json:"index"`
}

// rawRecord keeps fields untyped so shape violations can be told apart from
// syntax errors.
type rawRecord struct {
	History json.RawMessage `json:"history"`
	Index   json.RawMessage `json:"index"`
}

// Encode serializes a log and cursor.
func Encode(entries []*core.Grid, cursor int) ([]byte, error) {
	rec := record{History: make([][][]int, len(entries)), Index: cursor}
	for i, g := range entries {
		rows := g.Rows()
		rec.History[i] = make([][]int, len(rows))
		for y, row := range rows {
			cells := make([]int, len(row))
			for x, v := range row {
				cells[x] = int(v)
			}
			rec.History[i][y] = cells
		}
	}
	return json.Marshal(rec)
}

// Decode parses a persisted record and validates that every entry is an n×n
// grid of 0/1 cells and that the index is an integer.
func Decode(data []byte, n int) ([]*core.Grid, int, error) {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// Cells decode through pointers so a null cell is caught rather than read as 0.
	var rows [][][]*int
	if len(raw.History) == 0 || json.Unmarshal(raw.History, &rows) != nil || rows == nil {
		return nil, 0, fmt.Errorf("%w: history is not a list of grids", ErrMalformed)
	}
	var index float64
	if len(raw.Index) == 0 || isNull(raw.Index) || json.Unmarshal(raw.Index, &index) != nil {
		return nil, 0, fmt.Errorf("%w: index is not a number", ErrMalformed)
	}
	if index != math.Trunc(index) {
		return nil, 0, fmt.Errorf("%w: index %v is not an integer", ErrMalformed, index)
	}

	entries := make([]*core.Grid, len(rows))
	for i, grid := range rows {
		if len(grid) != n {
			return nil, 0, fmt.Errorf("%w: entry %d has %d rows, want %d", ErrMalformed, i, len(grid), n)
		}
		g := core.NewGrid(n)
		cells := g.Cells()
		for y, row := range grid {
			if len(row) != n {
				return nil, 0, fmt.Errorf("%w: entry %d row %d has %d cells, want %d", ErrMalformed, i, y, len(row), n)
			}
			for x, v := range row {
				if v == nil {
					return nil, 0, fmt.Errorf("%w: entry %d cell (%d,%d) is null", ErrMalformed, i, x, y)
				}
				if *v != 0 && *v != 1 {
					return nil, 0, fmt.Errorf("%w: entry %d cell (%d,%d) = %d", ErrMalformed, i, x, y, *v)
				}
				cells[g.Index(x, y)] = uint8(*v)
			}
		}
		entries[i] = g
	}
	return entries, int(index), nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
