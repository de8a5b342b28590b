package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, e ScoreEntry) {
	t.Helper()
	if _, err := store.SaveScore(e); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", e, err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreEntry{GameID: "match3", Level: 1, Score: 1200, BestCombo: 2, Moves: 20})
	mustSave(t, store, ScoreEntry{GameID: "match3", Level: 1, Score: 300, BestCombo: 1, Moves: 20})
	mustSave(t, store, ScoreEntry{GameID: "match3", Level: 2, Score: 4500, BestCombo: 4, Moves: 18})
	mustSave(t, store, ScoreEntry{GameID: "match3_endless", Score: 9000, BestCombo: 5, Moves: 60})

	scores, err := store.TopScores("match3", 1, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 level 1 scores, got %d", len(scores))
	}
	if scores[0].Score != 1200 || scores[1].Score != 300 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}
	first := scores[0]
	if first.GameID != "match3" || first.Level != 1 || first.BestCombo != 2 || first.Moves != 20 {
		t.Errorf("Unexpected entry fields: %+v", first)
	}
	if first.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	all, err := store.TopScores("match3", AnyLevel, 10)
	if err != nil {
		t.Fatalf("TopScores(AnyLevel) failed: %v", err)
	}
	if len(all) != 3 || all[0].Score != 4500 {
		t.Errorf("Expected 3 scores led by 4500, got %+v", all)
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("Expected error for missing game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, ScoreEntry{GameID: "match3", Level: 1, Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("match3", 1, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	// Non-positive limits fall back to 10.
	scores, err = store.TopScores("match3", 1, 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScoreAndLevelBests(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3", AnyLevel)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, ScoreEntry{GameID: "match3", Level: 1, Score: 100})
	mustSave(t, store, ScoreEntry{GameID: "match3", Level: 1, Score: 700})
	mustSave(t, store, ScoreEntry{GameID: "match3", Level: 3, Score: 500})

	tests := []struct {
		level    int
		expected int
	}{
		{AnyLevel, 700},
		{1, 700},
		{3, 500},
		{2, 0},
	}
	for _, tt := range tests {
		high, err := store.HighScore("match3", tt.level)
		if err != nil {
			t.Fatalf("HighScore(%d) failed: %v", tt.level, err)
		}
		if high != tt.expected {
			t.Errorf("HighScore(%d) = %d, expected %d", tt.level, high, tt.expected)
		}
	}

	bests, err := store.LevelBests("match3")
	if err != nil {
		t.Fatalf("LevelBests() failed: %v", err)
	}
	if len(bests) != 2 || bests[1] != 700 || bests[3] != 500 {
		t.Errorf("Unexpected level bests: %v", bests)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("match3")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, ScoreEntry{GameID: "match3", Level: 1, Score: 100, BestCombo: 3})
	mustSave(t, store, ScoreEntry{GameID: "match3", Level: 2, Score: 300, BestCombo: 1})

	stats, err := store.Stats("match3")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.BestCombo != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreEntry{GameID: "match3", Level: 1, Score: 100})
	mustSave(t, store, ScoreEntry{GameID: "match3_endless", Score: 300})

	if err := store.ClearScores("match3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("match3", AnyLevel, 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	endless, _ := store.TopScores("match3_endless", AnyLevel, 10)
	if len(endless) != 1 {
		t.Error("Endless scores should not be affected by clearing campaign scores")
	}
}
