package core

import "fmt"

// LevelSpec is the immutable description of one level: its dimensions and
// the initial kind of every cell.
type LevelSpec struct {
	ID     int
	Name   string
	Rows   int
	Cols   int
	Cells  [][]int // Rows x Cols kind ids
	Moves  int     // Move budget, 0 = use the game default
	Target int     // Target score, 0 = use the game default
}

// Cell returns the kind id at (row, col).
func (l LevelSpec) Cell(row, col int) int {
	return l.Cells[row][col]
}

// Clone returns a deep copy of the level.
func (l LevelSpec) Clone() LevelSpec {
	cp := l
	cp.Cells = make([][]int, len(l.Cells))
	for i, row := range l.Cells {
		cp.Cells[i] = append([]int(nil), row...)
	}
	return cp
}

// Validate checks the level shape and that every kind exists in catalog.
func (l LevelSpec) Validate(catalog Catalog) error {
	if l.Rows <= 0 || l.Cols <= 0 {
		return &LevelError{Level: l.ID, Msg: fmt.Sprintf("size %dx%d", l.Rows, l.Cols), Err: ErrMalformedLevel}
	}
	if len(l.Cells) != l.Rows {
		return &LevelError{Level: l.ID, Msg: fmt.Sprintf("%d rows declared, %d present", l.Rows, len(l.Cells)), Err: ErrMalformedLevel}
	}
	for r, row := range l.Cells {
		if len(row) != l.Cols {
			return &LevelError{Level: l.ID, Line: r + 1, Msg: fmt.Sprintf("%d columns, want %d", len(row), l.Cols), Err: ErrMalformedLevel}
		}
		for c, id := range row {
			if _, err := catalog.KindForID(Kind(id)); err != nil {
				return &LevelError{Level: l.ID, Line: r + 1, Col: c + 1, Msg: fmt.Sprintf("kind %d", id), Err: ErrUnknownTileKind}
			}
		}
	}
	return nil
}

// RandomLevel builds a level of the given size with kinds drawn from catalog.
func RandomLevel(rows, cols int, catalog Catalog) (LevelSpec, error) {
	if rows <= 0 || cols <= 0 {
		return LevelSpec{}, ErrInvalidDimensions
	}
	level := LevelSpec{
		Name:  "Endless",
		Rows:  rows,
		Cols:  cols,
		Cells: make([][]int, rows),
	}
	for r := range rows {
		level.Cells[r] = make([]int, cols)
		for c := range cols {
			kind, err := catalog.RandomKind()
			if err != nil {
				return LevelSpec{}, err
			}
			level.Cells[r][c] = int(kind.ID)
		}
	}
	return level, nil
}
