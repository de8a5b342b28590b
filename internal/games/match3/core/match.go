package core

// MatchSet is an insertion-ordered set of tiles keyed by identity.
// It is transient: built for one resolution pass and then dropped.
type MatchSet struct {
	tiles []*Tile
	seen  map[*Tile]struct{}
}

// Add inserts t if it is not already present. Nil tiles are ignored.
// Returns true if t was added.
func (m *MatchSet) Add(t *Tile) bool {
	if t == nil {
		return false
	}
	if m.seen == nil {
		m.seen = make(map[*Tile]struct{})
	}
	if _, ok := m.seen[t]; ok {
		return false
	}
	m.seen[t] = struct{}{}
	m.tiles = append(m.tiles, t)
	return true
}

// Contains returns true if t is in the set.
func (m MatchSet) Contains(t *Tile) bool {
	_, ok := m.seen[t]
	return ok
}

// Len returns the number of tiles in the set.
func (m MatchSet) Len() int {
	return len(m.tiles)
}

// Empty returns true if the set holds no tiles.
func (m MatchSet) Empty() bool {
	return len(m.tiles) == 0
}

// Tiles returns the tiles in insertion order.
func (m MatchSet) Tiles() []*Tile {
	out := make([]*Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}

// Coords returns the positions of the tiles in insertion order.
func (m MatchSet) Coords() []Coord {
	out := make([]Coord, len(m.tiles))
	for i, t := range m.tiles {
		out[i] = t.pos
	}
	return out
}

// Union adds every tile of other into m.
func (m *MatchSet) Union(other MatchSet) {
	for _, t := range other.tiles {
		m.Add(t)
	}
}

// Matcher detects runs through a cell.
// The zero value applies the standard rules.
type Matcher struct {
	// ClearLineOnFour makes a run of exactly four absorb every tile in its
	// row or column regardless of kind, instead of only same-kind tiles.
	ClearLineOnFour bool
}

// FindMatches returns the match through origin using the standard rules.
func FindMatches(g *Grid, origin Coord) MatchSet {
	return Matcher{}.FindMatches(g, origin)
}

// FindAllMatches unions the matches of every cell using the standard rules.
func FindAllMatches(g *Grid) (MatchSet, bool) {
	return Matcher{}.FindAllMatches(g)
}

// FindMatches returns every tile forming a match that includes the tile at
// origin. The set is empty if origin is empty, out of range, or not part of a
// run of three or more.
func (m Matcher) FindMatches(g *Grid, origin Coord) MatchSet {
	var result MatchSet
	tile, err := g.Get(origin)
	if err != nil || tile == nil {
		return result
	}

	horizontal := m.axis(g, tile, 0, 1)
	vertical := m.axis(g, tile, 1, 0)

	// The origin belongs to both axes; it is counted once here.
	if 1+len(horizontal)+len(vertical) < 3 {
		return result
	}

	result.Add(tile)
	for _, t := range horizontal {
		result.Add(t)
	}
	for _, t := range vertical {
		result.Add(t)
	}
	return result
}

// FindAllMatches visits every cell in row-major order and unions the results.
// The second result reports whether any match was found.
func (m Matcher) FindAllMatches(g *Grid) (MatchSet, bool) {
	var all MatchSet
	found := false
	for r := range g.rows {
		for c := range g.cols {
			matches := m.FindMatches(g, At(r, c))
			if !matches.Empty() {
				all.Union(matches)
				found = true
			}
		}
	}
	return all, found
}

// axis collects the run through tile along (dr, dc), applies the extension
// rules and returns the run without the origin. A run shorter than three
// yields nil.
func (m Matcher) axis(g *Grid, tile *Tile, dr, dc int) []*Tile {
	run := lineSet{tiles: []*Tile{tile}}
	origin := tile.pos
	kind := tile.kind

	// Backward scan (left or up), then forward scan (right or down).
	for _, sign := range [2]int{-1, 1} {
		for p := origin.Add(sign*dr, sign*dc); ; p = p.Add(sign*dr, sign*dc) {
			t := g.tileAt(p)
			if t == nil || t.kind != kind {
				break
			}
			run.add(t)
		}
	}

	switch {
	case len(run.tiles) < 3:
		return nil
	case len(run.tiles) == 4:
		// Rescan the whole line both ways without stopping at gaps.
		for _, sign := range [2]int{-1, 1} {
			for p := origin.Add(sign*dr, sign*dc); g.InBounds(p); p = p.Add(sign*dr, sign*dc) {
				t := g.tileAt(p)
				if t == nil || run.contains(t) {
					continue
				}
				if m.ClearLineOnFour || t.kind == kind {
					run.add(t)
				}
			}
		}
	case len(run.tiles) == 5:
		// Whole-board bonus: every tile of the kind joins this axis.
		for _, t := range g.cells {
			if t != nil && t.kind == kind && !run.contains(t) {
				run.add(t)
			}
		}
	}

	return run.tiles[1:]
}

// tileAt returns the tile at p, or nil for empty or out-of-range cells.
func (g *Grid) tileAt(p Coord) *Tile {
	if !g.InBounds(p) {
		return nil
	}
	return g.cells[g.index(p)]
}

// lineSet is the small ordered list used while scanning one axis.
type lineSet struct {
	tiles []*Tile
}

func (l *lineSet) add(t *Tile) {
	l.tiles = append(l.tiles, t)
}

func (l *lineSet) contains(t *Tile) bool {
	for _, x := range l.tiles {
		if x == t {
			return true
		}
	}
	return false
}
