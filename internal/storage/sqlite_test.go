package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/skydive/internal/systems"
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

func saveRun(t *testing.T, store *Store, level string, score int) string {
	t.Helper()
	id, err := store.SaveRun(RunRecord{Level: level, Score: score})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "open-sky", 100)
	saveRun(t, store, "open-sky", 50)
	saveRun(t, store, "open-sky", 200)
	// Different level
	saveRun(t, store, "storm-front", 500)

	runs, err := store.TopRuns("open-sky", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	for _, r := range runs {
		if r.Level != "open-sky" {
			t.Errorf("TopRuns(open-sky) returned a %s run", r.Level)
		}
		if r.CreatedAt.IsZero() {
			t.Error("CreatedAt was not parsed")
		}
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("Expected 4 runs led by 500 across levels, got %v", all)
	}
}

func TestStoreSaveRunFields(t *testing.T) {
	store := openTestStore(t)

	summary := systems.RunSummary{Score: 321, MaxStreak: 7, CoinsCollected: 12, MultipliersCollected: 3, ObstaclesHit: 2}
	rec := NewRunRecord("sunset-drop", summary, 42.5)

	id, err := store.SaveRun(rec)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("Expected a UUID id, got %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}

	rec.ID = id
	rec.CreatedAt = got.CreatedAt
	if *got != rec {
		t.Errorf("RunByID() = %+v, want %+v", *got, rec)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; want nil, nil", missing, err)
	}

	if _, err := store.SaveRun(rec); err == nil {
		t.Error("Expected duplicate id to fail")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 runs
	for i := 0; i < 5; i++ {
		saveRun(t, store, "test", (i+1)*100)
	}

	// Request only top 3
	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	first := saveRun(t, store, "a", 10)
	last := saveRun(t, store, "b", 5)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != last || runs[1].ID != first {
		t.Errorf("Expected newest run first, got %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("open-sky")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty level, got %d", high)
	}

	saveRun(t, store, "open-sky", 100)
	saveRun(t, store, "open-sky", 300)
	saveRun(t, store, "storm-front", 900)

	high, err = store.HighScore("open-sky")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if high, _ := store.HighScore(""); high != 900 {
		t.Errorf("Expected overall high score of 900, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "open-sky", 100)
	saveRun(t, store, "open-sky", 200)
	saveRun(t, store, "storm-front", 300)

	// Clear only open-sky runs
	if err := store.ClearRuns("open-sky"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("open-sky", 10); len(runs) != 0 {
		t.Errorf("Expected 0 open-sky runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("storm-front", 10); len(runs) != 1 {
		t.Error("storm-front runs should not be affected by clearing open-sky")
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.TopRuns("", 10); len(runs) != 0 {
		t.Errorf("Expected no runs after clearing all, got %d", len(runs))
	}
}

func TestStoreAllLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Level: "open-sky", Score: 100, MaxStreak: 4})
	store.SaveRun(RunRecord{Level: "open-sky", Score: 300, MaxStreak: 2})
	store.SaveRun(RunRecord{Level: "storm-front", Score: 50})

	stats, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(stats))
	}

	sky := stats["open-sky"]
	if sky.RunsCount != 2 || sky.HighScore != 300 || sky.AvgScore != 200 || sky.TotalScore != 400 || sky.BestStreak != 4 {
		t.Errorf("Unexpected open-sky stats: %+v", *sky)
	}
	if sky.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}
}

func TestStoreKeyValue(t *testing.T) {
	testKeyValueStorage(t, openTestStore(t))
}

func TestStoreKeepsRunsOnKVClear(t *testing.T) {
	store := openTestStore(t)
	saveRun(t, store, "open-sky", 10)
	store.PutInt("x", 1)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if runs, _ := store.TopRuns("", 10); len(runs) != 1 {
		t.Error("Clear() should only remove key-value data")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}

	t.Setenv("HOME", tmpDir)
	got, err := expandHome("~/x/stats.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(tmpDir, "x", "stats.db"); got != want {
		t.Errorf("expandHome() = %q, want %q", got, want)
	}
}
