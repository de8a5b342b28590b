package core

import (
	"errors"
	"testing"
)

// scenarioBoard creates the 3x3 board whose only move is (1,2) up, with
// refills that leave a playable, match-free grid.
func scenarioBoard(t *testing.T, opts ...Option) *Board {
	t.Helper()
	catalog := testCatalog(t, 9, &scriptedRand{vals: []int{1, 1, 7}})
	b, err := NewBoard(catalog, newRand(1), opts...)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	if err := b.Create(levelFrom("001", "230", "456")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return b
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func TestNewBoardRequiresKinds(t *testing.T) {
	if _, err := NewBoard(nil, newRand(1)); !errors.Is(err, ErrNoTileKinds) {
		t.Errorf("NewBoard(nil) error = %v, expected ErrNoTileKinds", err)
	}
}

func TestBoardCreate(t *testing.T) {
	var log EventLog
	b := scenarioBoard(t, WithListener(log.Listener()))

	if b.State() != StateReady {
		t.Errorf("State() = %v, expected ready", b.State())
	}
	if got := b.Grid().String(); got != "001\n230\n456" {
		t.Errorf("grid = %q", got)
	}
	if len(log.Events()) != 0 {
		t.Errorf("creation forwarded %d events", len(log.Events()))
	}
	if hint, ok := b.Hint(); !ok || hint != (Move{From: At(1, 2), Dir: DirUp}) {
		t.Errorf("Hint() = %v, %v", hint, ok)
	}
}

func TestBoardCreateResolvesInitialMatches(t *testing.T) {
	var log EventLog
	catalog := testCatalog(t, 5, newRand(2))
	b, _ := NewBoard(catalog, newRand(2), WithListener(log.Listener()))

	if err := b.Create(levelFrom("0001", "1234", "2340", "3401")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, found := FindAllMatches(b.Grid()); found {
		t.Error("created board has matches")
	}
	if !HasMove(b.Grid()) {
		t.Error("created board has no move")
	}
	if countEvents[TilesDestroyed](log.Events()) != 0 {
		t.Error("initial cascade was forwarded")
	}
}

func TestBoardCreateFailureKeepsPreviousBoard(t *testing.T) {
	b := scenarioBoard(t)
	prev := b.Grid()

	tests := []struct {
		name  string
		level LevelSpec
		err   error
	}{
		{"zero size", LevelSpec{ID: 2}, ErrMalformedLevel},
		{"row count mismatch", LevelSpec{ID: 2, Rows: 2, Cols: 1, Cells: [][]int{{0}}}, ErrMalformedLevel},
		{"ragged rows", LevelSpec{ID: 2, Rows: 2, Cols: 2, Cells: [][]int{{0, 1}, {2}}}, ErrMalformedLevel},
		{"unknown kind", LevelSpec{ID: 2, Rows: 1, Cols: 2, Cells: [][]int{{0, 42}}}, ErrUnknownTileKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := b.Create(tc.level)
			if !errors.Is(err, tc.err) {
				t.Errorf("Create error = %v, expected %v", err, tc.err)
			}
			var le *LevelError
			if !errors.As(err, &le) {
				t.Errorf("Create error %v is not a *LevelError", err)
			}
			if b.Grid() != prev || b.State() != StateReady || b.Level().ID != 1 {
				t.Error("failed Create changed the board")
			}
		})
	}
}

func TestBoardCreateUnplayable(t *testing.T) {
	catalog := testCatalog(t, 3, newRand(1))
	b, _ := NewBoard(catalog, newRand(1), WithMaxShuffles(5))

	// Three distinct kinds in one row can never form a move.
	err := b.Create(levelFrom("012"))
	if !errors.Is(err, ErrUnplayable) {
		t.Fatalf("Create error = %v, expected ErrUnplayable", err)
	}
	if b.State() != StateEmpty || b.Grid() != nil {
		t.Errorf("state = %v after failed creation, expected empty", b.State())
	}
}

func TestBoardMoveBeforeCreate(t *testing.T) {
	b, _ := NewBoard(testCatalog(t, 3, newRand(1)), newRand(1))
	if _, err := b.Move(At(0, 0), DirRight); !errors.Is(err, ErrNotReady) {
		t.Errorf("Move error = %v, expected ErrNotReady", err)
	}
}

func TestBoardMoveNoOps(t *testing.T) {
	b := scenarioBoard(t)

	tests := []struct {
		name   string
		origin Coord
		dir    Direction
	}{
		{"no direction", At(1, 1), DirNone},
		{"target above the grid", At(0, 0), DirUp},
		{"target right of the grid", At(1, 2), DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			started, err := b.BeginMove(tc.origin, tc.dir)
			if err != nil || started {
				t.Errorf("BeginMove = %v, %v, expected no-op", started, err)
			}
			if b.State() != StateReady {
				t.Errorf("State() = %v after no-op", b.State())
			}
		})
	}

	if _, err := b.BeginMove(At(3, 0), DirUp); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of range origin error = %v, expected ErrOutOfBounds", err)
	}
}

func TestBoardMoveReverts(t *testing.T) {
	var log EventLog
	b := scenarioBoard(t, WithListener(log.Listener()))
	before := b.Grid().Clone()

	result, err := b.Move(At(1, 0), DirRight)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if !result.Swapped || result.Valid {
		t.Errorf("result = %+v, expected a reverted swap", result)
	}
	if !b.Grid().Equal(before) {
		t.Errorf("grid = %q, expected it restored", b.Grid().String())
	}
	if b.State() != StateReady {
		t.Errorf("State() = %v, expected ready", b.State())
	}
	events := log.Events()
	if countEvents[TilesDestroyed](events) != 0 {
		t.Errorf("reverted move destroyed tiles: %v", events)
	}
	var finished []CascadeFinished
	for _, e := range events {
		if f, ok := e.(CascadeFinished); ok {
			finished = append(finished, f)
		}
	}
	if len(finished) != 1 || finished[0] != (CascadeFinished{}) {
		t.Errorf("expected one empty CascadeFinished, got %v", finished)
	}
}

func TestBoardMoveValid(t *testing.T) {
	var log EventLog
	scorer := NewScorer(0)
	b := scenarioBoard(t, WithListener(Fanout(log.Listener(), scorer.Listener())))

	result, err := b.Move(At(1, 2), DirUp)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if !result.Valid || result.Destroyed != 3 || len(result.Waves) != 1 {
		t.Errorf("result = %+v, expected one wave of 3", result)
	}
	if got := b.Grid().String(); got != "117\n231\n456" {
		t.Errorf("grid = %q", got)
	}
	if b.State() != StateReady || b.Phase() != PhaseSettled {
		t.Errorf("state %v phase %v, expected ready and settled", b.State(), b.Phase())
	}
	if countEvents[CascadeFinished](log.Events()) != 1 {
		t.Error("expected exactly one CascadeFinished")
	}
	if scorer.Total() != 300 || scorer.Combo() != 0 {
		t.Errorf("score %d combo %d, expected 300 and 0", scorer.Total(), scorer.Combo())
	}
}

func TestBoardPendingDuringRemoval(t *testing.T) {
	b := scenarioBoard(t)
	if !b.Pending().Empty() {
		t.Fatal("a ready board has nothing pending")
	}

	if started, err := b.BeginMove(At(1, 2), DirUp); err != nil || !started {
		t.Fatalf("BeginMove = %v, %v", started, err)
	}
	for steps := 0; b.Phase() != PhaseRemoving; steps++ {
		if steps > 10 || !b.Busy() {
			t.Fatalf("never reached removal, phase %v", b.Phase())
		}
		if _, err := b.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	pending := b.Pending()
	want := []Coord{At(0, 0), At(0, 1), At(0, 2)}
	if pending.Len() != 3 {
		t.Fatalf("Pending() = %v, expected %v", pending.Coords(), want)
	}
	for _, c := range want {
		tile, _ := b.Grid().Get(c)
		if !pending.Contains(tile) {
			t.Errorf("tile at %v not pending", c)
		}
	}

	if _, err := b.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !b.Pending().Empty() {
		t.Error("nothing is pending after removal")
	}
}

func TestBoardPacedPhases(t *testing.T) {
	var log EventLog
	b := scenarioBoard(t, WithListener(log.Listener()))

	started, err := b.BeginMove(At(1, 2), DirUp)
	if err != nil || !started {
		t.Fatalf("BeginMove = %v, %v", started, err)
	}
	if !b.Busy() {
		t.Error("board should be busy")
	}
	if _, err := b.BeginMove(At(0, 0), DirRight); !errors.Is(err, ErrBusy) {
		t.Errorf("second BeginMove error = %v, expected ErrBusy", err)
	}
	if err := b.Create(levelFrom("001", "230", "456")); !errors.Is(err, ErrBusy) {
		t.Errorf("Create while busy error = %v, expected ErrBusy", err)
	}

	for steps := 0; b.Busy(); steps++ {
		if steps > 20 {
			t.Fatal("move did not settle")
		}
		if _, err := b.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	var phases []Phase
	for _, e := range log.Events() {
		if pc, ok := e.(PhaseChanged); ok {
			phases = append(phases, pc.To)
		}
	}
	expected := []Phase{
		PhaseSwapping, PhaseDetecting, PhaseRemoving, PhaseGravity,
		PhaseRefilling, PhaseDetecting, PhaseChecking, PhaseSettled,
	}
	if len(phases) != len(expected) {
		t.Fatalf("phases = %v, expected %v", phases, expected)
	}
	for i := range expected {
		if phases[i] != expected[i] {
			t.Errorf("phase %d = %v, expected %v", i, phases[i], expected[i])
		}
	}

	// Stepping an idle board does nothing.
	if p, err := b.Step(); err != nil || p != PhaseSettled {
		t.Errorf("idle Step = %v, %v", p, err)
	}
}

func TestBoardMoveBecomesUnplayable(t *testing.T) {
	// Refills of 7 8 7 leave only two tiles of any kind.
	catalog := testCatalog(t, 9, &scriptedRand{vals: []int{7, 8, 7}})
	var log EventLog
	b, _ := NewBoard(catalog, newRand(1), WithMaxShuffles(3), WithListener(log.Listener()))
	if err := b.Create(levelFrom("001", "230", "456")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	result, err := b.Move(At(1, 2), DirUp)
	if !errors.Is(err, ErrUnplayable) {
		t.Fatalf("Move error = %v, expected ErrUnplayable", err)
	}
	if result.Shuffles != 3 {
		t.Errorf("Shuffles = %d, expected 3", result.Shuffles)
	}
	if countEvents[Shuffled](log.Events()) != 3 {
		t.Errorf("expected 3 Shuffled events")
	}
	if b.State() != StateUnplayable {
		t.Errorf("State() = %v, expected unplayable", b.State())
	}
	if _, err := b.Move(At(0, 0), DirRight); !errors.Is(err, ErrUnplayable) {
		t.Errorf("Move on unplayable board error = %v", err)
	}

	// A new level recovers the board.
	if err := b.Create(levelFrom("001", "230", "456")); err != nil {
		t.Fatalf("Create after unplayable failed: %v", err)
	}
	if b.State() != StateReady {
		t.Errorf("State() = %v, expected ready", b.State())
	}
}
