package storage

import (
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

func TestOpenCreatesDatabase(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() on fresh database failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d on fresh database, expected 0", high)
	}
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct{ score, level int }{
		{100, 2},
		{250, 4},
		{50, 1},
	} {
		if _, err := store.SaveScore(run.score, run.level); err != nil {
			t.Fatalf("SaveScore(%d, %d) failed: %v", run.score, run.level, err)
		}
	}

	entries, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(entries))
	}

	wantScores := []int{250, 100, 50}
	for i, want := range wantScores {
		if entries[i].Score != want {
			t.Errorf("entries[%d].Score = %d, expected %d", i, entries[i].Score, want)
		}
	}
	if entries[0].Level != 4 {
		t.Errorf("top entry Level = %d, expected 4", entries[0].Level)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveScore(i*10, 1); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.TopScores(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("TopScores(3) returned %d entries", len(entries))
	}
	if entries[0].Score != 50 {
		t.Errorf("top score = %d, expected 50", entries[0].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(120, 3); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore(340, 5); err != nil {
		t.Fatal(err)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 340 {
		t.Errorf("HighScore() = %d, expected 340", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(90, 2); err != nil {
		t.Fatal(err)
	}

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	entries, err := store.TopScores(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("TopScores() returned %d entries after clear, expected 0", len(entries))
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatal(err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d after clear, expected 0", high)
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v, expected zero values", stats)
	}

	for _, run := range []struct{ score, level int }{
		{100, 2},
		{300, 6},
	} {
		if _, err := store.SaveScore(run.score, run.level); err != nil {
			t.Fatal(err)
		}
	}

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.BestLevel != 6 {
		t.Errorf("BestLevel = %d, expected 6", stats.BestLevel)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
}
