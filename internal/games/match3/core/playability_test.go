package core

import "testing"

func TestFindMove(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected Move
		found    bool
	}{
		{
			name: "diagonal with neighbour above right",
			rows: []string{
				"a00d",
				"0fgh",
				"ijkl",
			},
			expected: Move{From: At(1, 0), Dir: DirUp},
			found:    true,
		},
		{
			name: "column completed by a sideways swap",
			rows: []string{
				"0bcd",
				"e0gh",
				"i0kl",
			},
			expected: Move{From: At(0, 0), Dir: DirRight},
			found:    true,
		},
		{
			name:     "horizontal skip",
			rows:     []string{"0a00"},
			expected: Move{From: At(0, 0), Dir: DirRight},
			found:    true,
		},
		{
			name:     "horizontal skip leftward",
			rows:     []string{"11a1"},
			expected: Move{From: At(0, 3), Dir: DirLeft},
			found:    true,
		},
		{
			name:     "vertical skip",
			rows:     []string{"0", "a", "0", "0"},
			expected: Move{From: At(0, 0), Dir: DirDown},
			found:    true,
		},
		{
			name: "first matching group shadows later groups",
			rows: []string{
				"ab0d",
				"e0gh",
				"0jkl",
				"0nop",
			},
			found: false,
		},
		{
			name:  "empty cells never match",
			rows:  []string{".a..", "bcde"},
			found: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFrom(t, tc.rows...)
			move, ok := FindMove(g)
			if ok != tc.found {
				t.Fatalf("FindMove() found = %v, expected %v (move %v)", ok, tc.found, move)
			}
			if ok && move != tc.expected {
				t.Errorf("FindMove() = %v, expected %v", move, tc.expected)
			}
			if HasMove(g) != tc.found {
				t.Errorf("HasMove() = %v, expected %v", HasMove(g), tc.found)
			}
		})
	}
}

func TestFindMoveCreatesMatch(t *testing.T) {
	for seed := range int64(30) {
		catalog := testCatalog(t, 5, newRand(seed))
		g := randomGrid(t, 7, 7, catalog)
		if _, err := NewResolver(catalog).Resolve(g); err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		move, ok := FindMove(g)
		if !ok {
			continue
		}
		g.Swap(move.From, move.Target()) //nolint:errcheck
		if FindMatches(g, move.From).Empty() && FindMatches(g, move.Target()).Empty() {
			t.Errorf("seed %d: hint %v does not create a match", seed, move)
		}
	}
}

func TestNoMoveGridThenShuffle(t *testing.T) {
	g := noMoveGrid(t)
	if HasMove(g) {
		t.Fatal("grid should have no move")
	}

	rng := newRand(11)
	catalog := testCatalog(t, 5, rng)
	resolver := NewResolver(catalog)

	for attempt := 1; attempt <= 1000; attempt++ {
		Shuffle(g, rng)
		if _, err := resolver.Resolve(g); err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if HasMove(g) {
			return
		}
	}
	t.Error("no playable grid after 1000 shuffles")
}

func TestFindMoves(t *testing.T) {
	if moves := FindMoves(noMoveGrid(t)); len(moves) != 0 {
		t.Errorf("expected no moves, got %v", moves)
	}

	g := gridFrom(t, "0a00")
	moves := FindMoves(g)
	if len(moves) != 1 || moves[0] != (Move{From: At(0, 0), Dir: DirRight}) {
		t.Errorf("FindMoves() = %v", moves)
	}

	for seed := range int64(10) {
		catalog := testCatalog(t, 4, newRand(seed))
		g := randomGrid(t, 6, 6, catalog)
		moves := FindMoves(g)
		first, ok := FindMove(g)
		if ok != (len(moves) > 0) {
			t.Fatalf("seed %d: FindMove found = %v with %d moves", seed, ok, len(moves))
		}
		if ok && moves[0] != first {
			t.Errorf("seed %d: first move %v, FindMove %v", seed, moves[0], first)
		}
	}
}
