package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("sum", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("sum_timed", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("sum", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	timedScores, err := store.TopScores("sum_timed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(timedScores) != 1 {
		t.Errorf("Expected 1 timed score, got %d", len(timedScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("sum", (i+1)*100)
	}

	scores, err := store.TopScores("sum", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("sum")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("sum", 100)
	store.SaveScore("sum", 300)
	store.SaveScore("sum", 200)

	high, err = store.HighScore("sum")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSubmitCandidate(t *testing.T) {
	store := openTestStore(t)

	// First candidate always wins
	isHigh, err := store.SubmitCandidate("sum", 100)
	if err != nil {
		t.Fatalf("SubmitCandidate() failed: %v", err)
	}
	if !isHigh {
		t.Error("First candidate should be a new high score")
	}

	// Lower or equal candidates are not recorded
	for _, score := range []int{50, 100} {
		isHigh, err = store.SubmitCandidate("sum", score)
		if err != nil {
			t.Fatalf("SubmitCandidate() failed: %v", err)
		}
		if isHigh {
			t.Errorf("Candidate %d should not beat the stored 100", score)
		}
	}

	// Strictly higher candidate is recorded
	isHigh, err = store.SubmitCandidate("sum", 150)
	if err != nil {
		t.Fatalf("SubmitCandidate() failed: %v", err)
	}
	if !isHigh {
		t.Error("Candidate 150 should beat the stored 100")
	}

	high, _ := store.HighScore("sum")
	if high != 150 {
		t.Errorf("HighScore = %d, expected 150", high)
	}

	// Candidates never pollute the per-game history
	scores, _ := store.AllScores("sum")
	if len(scores) != 0 {
		t.Errorf("Expected 0 history records from candidates, got %d", len(scores))
	}
}

func TestStoreCandidateBelowHistory(t *testing.T) {
	store := openTestStore(t)

	// A finished game already recorded a better score
	store.SaveScore("sum", 500)

	isHigh, err := store.SubmitCandidate("sum", 200)
	if err != nil {
		t.Fatalf("SubmitCandidate() failed: %v", err)
	}
	if isHigh {
		t.Error("Candidate 200 should not beat the recorded 500")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sum", 100)
	store.SaveScore("sum", 200)
	store.SaveScore("sum_timed", 300)

	if err := store.ClearScores("sum"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	sumScores, _ := store.TopScores("sum", 10)
	if len(sumScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(sumScores))
	}

	timedScores, _ := store.TopScores("sum_timed", 10)
	if len(timedScores) != 1 {
		t.Errorf("Timed scores should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sum", 100)
	store.SaveScore("sum", 300)
	store.SaveScore("sum", 200)

	stats, err := store.GetGameStats("sum")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, expected 600", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
