package core

// offset is a relative cell position (dRow, dCol).
type offset struct {
	dr, dc int
}

// alternative is one swap-creating shape: if the tile at at shares the
// origin's kind, moving the origin in dir creates a run.
type alternative struct {
	at  offset
	dir Direction
}

// patternGroup guards a set of alternatives. When every guard offset shares
// the origin's kind the group is taken, and no later group is tried for that
// cell. A group without alternatives is satisfied by its guard alone.
type patternGroup struct {
	guard []offset
	alts  []alternative
	dir   Direction // Swap for guard-only groups
}

// movePatterns is the ordered table of single-swap shapes around an origin
// tile "#". In the diagrams "$" marks the alternative cell.
var movePatterns = []patternGroup{
	// Diagonal up-right neighbour.
	{
		guard: []offset{{-1, 1}},
		alts: []alternative{
			{at: offset{-1, 2}, dir: DirUp},    // . # $ / # . .
			{at: offset{-2, 1}, dir: DirRight}, // . $ / . # / # .
			{at: offset{1, 1}, dir: DirRight},  // . # / # . / . $
		},
	},
	// Diagonal down-right neighbour.
	{
		guard: []offset{{1, 1}},
		alts: []alternative{
			{at: offset{1, 2}, dir: DirDown},   // # . . / . # $
			{at: offset{2, 1}, dir: DirRight},  // # . / . # / . $
			{at: offset{-1, 1}, dir: DirRight}, // . $ / # . / . #
		},
	},
	// Diagonal down-left neighbour.
	{
		guard: []offset{{1, -1}},
		alts: []alternative{
			{at: offset{1, -2}, dir: DirDown},  // . . # / $ # .
			{at: offset{2, -1}, dir: DirLeft},  // . # / # . / $ .
			{at: offset{-1, -1}, dir: DirLeft}, // $ . / . # / # .
		},
	},
	// Diagonal up-left neighbour.
	{
		guard: []offset{{-1, -1}},
		alts: []alternative{
			{at: offset{-1, -2}, dir: DirUp},   // $ # . / . . #
			{at: offset{-2, -1}, dir: DirLeft}, // $ . / # . / . #
			{at: offset{-1, 1}, dir: DirUp},    // # . $ / . # .
		},
	},
	// Straight skips: # . # #
	{guard: []offset{{0, 2}, {0, 3}}, dir: DirRight},
	{guard: []offset{{0, -2}, {0, -3}}, dir: DirLeft},
	{guard: []offset{{2, 0}, {3, 0}}, dir: DirDown},
	{guard: []offset{{-2, 0}, {-3, 0}}, dir: DirUp},
}

// HasMove returns true if some single adjacent swap would create a match.
func HasMove(g *Grid) bool {
	_, ok := FindMove(g)
	return ok
}

// FindMove returns the first swap-creating move found in row-major order.
// This is a pattern heuristic covering the known single-swap shapes, not a
// search.
func FindMove(g *Grid) (Move, bool) {
	for r := range g.rows {
		for c := range g.cols {
			origin := At(r, c)
			if dir, ok := matchPattern(g, origin); ok {
				return Move{From: origin, Dir: dir}, true
			}
		}
	}
	return Move{}, false
}

// FindMoves returns one move per cell that satisfies the pattern table, in
// row-major order.
func FindMoves(g *Grid) []Move {
	var moves []Move
	for r := range g.rows {
		for c := range g.cols {
			origin := At(r, c)
			if dir, ok := matchPattern(g, origin); ok {
				moves = append(moves, Move{From: origin, Dir: dir})
			}
		}
	}
	return moves
}

// matchPattern evaluates the pattern table for one origin cell.
func matchPattern(g *Grid, origin Coord) (Direction, bool) {
	kind, ok := g.KindAt(origin)
	if !ok {
		return DirNone, false
	}
	same := func(o offset) bool {
		k, ok := g.KindAt(origin.Add(o.dr, o.dc))
		return ok && k == kind
	}

	for _, group := range movePatterns {
		taken := true
		for _, o := range group.guard {
			if !same(o) {
				taken = false
				break
			}
		}
		if !taken {
			continue
		}
		if len(group.alts) == 0 {
			return group.dir, true
		}
		for _, alt := range group.alts {
			if same(alt.at) {
				return alt.dir, true
			}
		}
		return DirNone, false
	}
	return DirNone, false
}
