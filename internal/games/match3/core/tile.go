package core

import "fmt"

// Tile is a piece on the board. Its position always equals the coordinates of
// the cell holding it; only Grid mutates it.
type Tile struct {
	id   uint64
	kind Kind
	pos  Coord
}

// ID returns the instance identity, unique within the grid that spawned it.
func (t *Tile) ID() uint64 {
	return t.id
}

// Kind returns the matching type of the tile.
func (t *Tile) Kind() Kind {
	return t.kind
}

// Pos returns the current cell of the tile.
func (t *Tile) Pos() Coord {
	return t.pos
}

// Row returns the current row of the tile.
func (t *Tile) Row() int {
	return t.pos.Row
}

// Col returns the current column of the tile.
func (t *Tile) Col() int {
	return t.pos.Col
}

// String returns a string representation of the tile.
func (t *Tile) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("#%d[k%d]%v", t.id, t.kind, t.pos)
}
