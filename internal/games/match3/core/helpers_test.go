package core

import (
	"math/rand"
	"testing"
)

// gridFrom builds a grid from rows of kind characters: digits are kinds 0-9,
// lowercase letters are kinds 10 and up, '.' is an empty cell.
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for r, row := range rows {
		if len(row) != g.Cols() {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), g.Cols())
		}
		for c, ch := range row {
			if ch == '.' {
				continue
			}
			if _, err := g.Spawn(At(r, c), kindOf(ch)); err != nil {
				t.Fatalf("Spawn failed: %v", err)
			}
		}
	}
	return g
}

func kindOf(ch rune) Kind {
	if ch >= 'a' && ch <= 'z' {
		return Kind(ch-'a') + 10
	}
	return Kind(ch - '0')
}

// levelFrom builds a level from digit rows.
func levelFrom(rows ...string) LevelSpec {
	level := LevelSpec{ID: 1, Rows: len(rows), Cols: len(rows[0])}
	for _, row := range rows {
		cells := make([]int, len(row))
		for c, ch := range row {
			cells[c] = int(kindOf(ch))
		}
		level.Cells = append(level.Cells, cells)
	}
	return level
}

// scriptedRand replays vals in a loop, reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// testCatalog returns a catalog of n kinds with ids 0..n-1.
func testCatalog(t *testing.T, n int, rng Rand) *StaticCatalog {
	t.Helper()
	kinds := make([]TileKind, n)
	for i := range n {
		kinds[i] = TileKind{ID: Kind(i), Name: string(kindRune(Kind(i), true)), Symbol: kindRune(Kind(i), true)}
	}
	c, err := NewCatalog(kinds, rng)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	return c
}

// randomGrid fills a rows x cols grid from catalog.
func randomGrid(t *testing.T, rows, cols int, catalog Catalog) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if _, err := Refill(g, catalog); err != nil {
		t.Fatalf("Refill failed: %v", err)
	}
	return g
}

// noMoveGrid returns an 8x8 grid of five kinds where no pattern guard ever
// matches: kind = (col + 2*row) mod 5.
func noMoveGrid(t *testing.T) *Grid {
	t.Helper()
	g, _ := NewGrid(8, 8)
	for r := range 8 {
		for c := range 8 {
			g.Spawn(At(r, c), Kind((c+2*r)%5)) //nolint:errcheck
		}
	}
	return g
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
