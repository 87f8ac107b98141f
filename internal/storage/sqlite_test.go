package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func save(t *testing.T, store *Store, pack string, level int, name string, ms int64) {
	t.Helper()
	_, err := store.SaveCompletion(Completion{
		PackID:    pack,
		Level:     level,
		LevelName: name,
		Elapsed:   time.Duration(ms) * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveCompletion() failed: %v", err)
	}
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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "classic", 0, "Square", 1500)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	entries, err := store.RecentCompletions("classic", 10)
	if err != nil {
		t.Fatalf("RecentCompletions() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 completion after reopen, got %d", len(entries))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "classic", 0, "Square", 3000)
	save(t, store, "classic", 1, "Corner", 4200)
	save(t, store, "classic", 0, "Square", 2100)
	save(t, store, "other", 0, "First", 900)

	entries, err := store.RecentCompletions("classic", 10)
	if err != nil {
		t.Fatalf("RecentCompletions() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 completions, got %d", len(entries))
	}

	// Newest first
	if entries[0].Elapsed != 2100*time.Millisecond {
		t.Errorf("Expected newest elapsed 2.1s, got %v", entries[0].Elapsed)
	}
	if entries[0].LevelName != "Square" || entries[0].PackID != "classic" {
		t.Errorf("Unexpected newest entry: %+v", entries[0])
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		save(t, store, "classic", i%10, "", int64(1000+i))
	}

	entries, err := store.RecentCompletions("classic", 5)
	if err != nil {
		t.Fatalf("RecentCompletions() failed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("Expected 5 entries, got %d", len(entries))
	}

	// Default limit
	entries, err = store.RecentCompletions("classic", 0)
	if err != nil {
		t.Fatalf("RecentCompletions() failed: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(entries))
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "classic", 2, "Frame", 5000)
	save(t, store, "classic", 0, "Square", 3000)
	save(t, store, "classic", 0, "Square", 2500)
	save(t, store, "classic", 0, "Square", 4000)

	stats, err := store.LevelStats("classic")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(stats))
	}

	if stats[0].Level != 0 || stats[0].Count != 3 || stats[0].Best != 2500*time.Millisecond {
		t.Errorf("Unexpected level 0 stats: %+v", stats[0])
	}
	if stats[0].LevelName != "Square" {
		t.Errorf("Expected level name Square, got %q", stats[0].LevelName)
	}
	if stats[1].Level != 2 || stats[1].Count != 1 {
		t.Errorf("Unexpected level 2 stats: %+v", stats[1])
	}
	if stats[1].LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.BestTime("classic", 0); err != nil || ok {
		t.Fatalf("Expected no best time for empty store, got ok=%v err=%v", ok, err)
	}

	save(t, store, "classic", 0, "Square", 3000)
	save(t, store, "classic", 0, "Square", 1800)

	best, ok, err := store.BestTime("classic", 0)
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if !ok || best != 1800*time.Millisecond {
		t.Errorf("Expected best 1.8s, got %v (ok=%v)", best, ok)
	}
}

func TestStorePackStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetPackStats("classic")
	if err != nil {
		t.Fatalf("GetPackStats() failed: %v", err)
	}
	if empty.Completions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	save(t, store, "classic", 0, "Square", 1000)
	save(t, store, "classic", 0, "Square", 2000)
	save(t, store, "classic", 3, "Full house", 3000)
	save(t, store, "other", 0, "First", 500)

	stats, err := store.GetPackStats("classic")
	if err != nil {
		t.Fatalf("GetPackStats() failed: %v", err)
	}
	if stats.Completions != 3 || stats.LevelsPlayed != 2 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.TotalTime != 6*time.Second {
		t.Errorf("Expected total 6s, got %v", stats.TotalTime)
	}

	all, err := store.GetAllPacksStats()
	if err != nil {
		t.Fatalf("GetAllPacksStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 packs, got %d", len(all))
	}
	if all["other"].Completions != 1 || all["other"].TotalTime != 500*time.Millisecond {
		t.Errorf("Unexpected stats for other: %+v", all["other"])
	}
}

func TestStoreProgress(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Progress("classic"); err != nil || ok {
		t.Fatalf("Expected no progress, got ok=%v err=%v", ok, err)
	}

	if err := store.SaveProgress("classic", 3); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	if err := store.SaveProgress("classic", 4); err != nil {
		t.Fatalf("SaveProgress() overwrite failed: %v", err)
	}

	level, ok, err := store.Progress("classic")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if !ok || level != 4 {
		t.Errorf("Expected level 4, got %d (ok=%v)", level, ok)
	}
}

func TestStoreClearPack(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "classic", 0, "Square", 1000)
	save(t, store, "other", 0, "First", 1000)
	if err := store.SaveProgress("classic", 1); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	if err := store.ClearPack("classic"); err != nil {
		t.Fatalf("ClearPack() failed: %v", err)
	}

	entries, _ := store.RecentCompletions("classic", 10)
	if len(entries) != 0 {
		t.Errorf("Expected 0 completions after clear, got %d", len(entries))
	}
	if _, ok, _ := store.Progress("classic"); ok {
		t.Error("Expected progress to be cleared")
	}

	others, _ := store.RecentCompletions("other", 10)
	if len(others) != 1 {
		t.Errorf("Expected other pack untouched, got %d", len(others))
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tilefit/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tilefit", "test.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
