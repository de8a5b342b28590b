package core

import "strings"

// Grid is the fixed-size board of optional tiles.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows   int
	cols   int
	cells  []*Tile
	nextID uint64
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]*Tile, rows*cols),
	}, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the tile at c, or nil if the cell is empty.
func (g *Grid) Get(c Coord) (*Tile, error) {
	if !g.InBounds(c) {
		return nil, outOfBounds(c, g.rows, g.cols)
	}
	return g.cells[g.index(c)], nil
}

// Set places t at c, or empties the cell when t is nil.
// A tile still owned by another cell of this grid is moved out of it, and the
// tile previously held at c is detached.
func (g *Grid) Set(c Coord, t *Tile) error {
	if !g.InBounds(c) {
		return outOfBounds(c, g.rows, g.cols)
	}
	if t != nil && t.pos != c && g.InBounds(t.pos) && g.cells[g.index(t.pos)] == t {
		g.cells[g.index(t.pos)] = nil
	}
	g.cells[g.index(c)] = t
	if t != nil {
		t.pos = c
	}
	return nil
}

// Spawn creates a new tile of the given kind at c, replacing whatever was there.
func (g *Grid) Spawn(c Coord, k Kind) (*Tile, error) {
	if !g.InBounds(c) {
		return nil, outOfBounds(c, g.rows, g.cols)
	}
	g.nextID++
	t := &Tile{id: g.nextID, kind: k, pos: c}
	g.cells[g.index(c)] = t
	return t, nil
}

// Swap exchanges the contents of two cells. Either cell may be empty.
func (g *Grid) Swap(a, b Coord) error {
	if !g.InBounds(a) {
		return outOfBounds(a, g.rows, g.cols)
	}
	if !g.InBounds(b) {
		return outOfBounds(b, g.rows, g.cols)
	}
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
	if t := g.cells[ia]; t != nil {
		t.pos = a
	}
	if t := g.cells[ib]; t != nil {
		t.pos = b
	}
	return nil
}

// Move relocates the tile at from into to, leaving from empty.
// Whatever was held at to is detached.
func (g *Grid) Move(from, to Coord) error {
	t, err := g.Get(from)
	if err != nil {
		return err
	}
	if err := g.Set(to, t); err != nil {
		return err
	}
	if t == nil {
		return g.Set(from, nil)
	}
	return nil
}

// KindAt returns the kind at c. The second result is false when the cell is
// empty or outside the grid.
func (g *Grid) KindAt(c Coord) (Kind, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	t := g.cells[g.index(c)]
	if t == nil {
		return 0, false
	}
	return t.kind, true
}

// IsEmpty returns true if the cell at c holds no tile. Out-of-range cells are
// reported as not empty.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == nil
}

// Tiles returns all tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(g.cells))
	for _, t := range g.cells {
		if t != nil {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, t := range g.cells {
		if t == nil {
			count++
		}
	}
	return count
}

// KindCounts returns the number of tiles per kind.
func (g *Grid) KindCounts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, t := range g.cells {
		if t != nil {
			counts[t.kind]++
		}
	}
	return counts
}

// Kinds returns the kind matrix; empty cells are reported as -1.
func (g *Grid) Kinds() [][]int {
	out := make([][]int, g.rows)
	for r := range g.rows {
		out[r] = make([]int, g.cols)
		for c := range g.cols {
			if k, ok := g.KindAt(At(r, c)); ok {
				out[r][c] = int(k)
			} else {
				out[r][c] = -1
			}
		}
	}
	return out
}

// Clone returns a deep copy of the grid. Tile ids are preserved.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		rows:   g.rows,
		cols:   g.cols,
		cells:  make([]*Tile, len(g.cells)),
		nextID: g.nextID,
	}
	for i, t := range g.cells {
		if t != nil {
			cp := *t
			clone.cells[i] = &cp
		}
	}
	return clone
}

// Equal returns true if two grids have the same dimensions and kinds per cell.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, t := range g.cells {
		o := other.cells[i]
		if (t == nil) != (o == nil) {
			return false
		}
		if t != nil && t.kind != o.kind {
			return false
		}
	}
	return true
}

// String renders one character per cell: the kind digit (letters above 9),
// or '.' for an empty cell. Rows are separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows*g.cols + g.rows)
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			k, ok := g.KindAt(At(r, c))
			sb.WriteRune(kindRune(k, ok))
		}
	}
	return sb.String()
}

func kindRune(k Kind, ok bool) rune {
	switch {
	case !ok:
		return '.'
	case k >= 0 && k <= 9:
		return rune('0' + k)
	case k >= 10 && k < 36:
		return rune('a' + k - 10)
	default:
		return '?'
	}
}
