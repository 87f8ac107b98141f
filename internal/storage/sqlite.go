// Package storage provides SQLite-based persistence for level completions
// and per-pack progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Completion is one cleared level.
type Completion struct {
	ID        int64
	PackID    string
	Level     int // zero-based index in the pack
	LevelName string
	Elapsed   time.Duration
	CreatedAt time.Time
}

// LevelStats aggregates the completions of one level.
type LevelStats struct {
	Level      int
	LevelName  string
	Count      int
	Best       time.Duration
	LastPlayed time.Time
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	PackID       string
	Completions  int
	LevelsPlayed int
	TotalTime    time.Duration
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			level_name TEXT NOT NULL DEFAULT '',
			elapsed_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_pack ON completions(pack_id, level);

		CREATE TABLE IF NOT EXISTS progress (
			pack_id TEXT PRIMARY KEY,
			level INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCompletion records a cleared level.
// Returns the ID of the inserted record.
func (s *Store) SaveCompletion(c Completion) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO completions (pack_id, level, level_name, elapsed_ms) VALUES (?, ?, ?, ?)",
		c.PackID, c.Level, c.LevelName, c.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentCompletions retrieves the latest completions for a pack, newest first.
func (s *Store) RecentCompletions(packID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, level, level_name, elapsed_ms, created_at
		 FROM completions
		 WHERE pack_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var (
			c         Completion
			elapsed   int64
			createdAt any
		)
		if err := rows.Scan(&c.ID, &c.PackID, &c.Level, &c.LevelName, &elapsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Elapsed = time.Duration(elapsed) * time.Millisecond
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LevelStats returns per-level aggregates for a pack, ordered by level.
// Levels never cleared are absent.
func (s *Store) LevelStats(packID string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, MAX(level_name), COUNT(*), MIN(elapsed_ms), MAX(created_at)
		 FROM completions
		 WHERE pack_id = ?
		 GROUP BY level
		 ORDER BY level`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var (
			ls         LevelStats
			best       int64
			lastPlayed any
		)
		if err := rows.Scan(&ls.Level, &ls.LevelName, &ls.Count, &best, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.Best = time.Duration(best) * time.Millisecond
		ls.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// BestTime returns the fastest completion of a level.
// The bool is false if the level was never cleared.
func (s *Store) BestTime(packID string, level int) (time.Duration, bool, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(elapsed_ms) FROM completions WHERE pack_id = ? AND level = ?",
		packID, level,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}

	return time.Duration(best.Int64) * time.Millisecond, true, nil
}

// GetPackStats retrieves aggregated statistics for a specific pack.
func (s *Store) GetPackStats(packID string) (*PackStats, error) {
	stats := &PackStats{PackID: packID}

	var (
		total      int64
		lastPlayed any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT level), COALESCE(SUM(elapsed_ms), 0), MAX(created_at)
		 FROM completions WHERE pack_id = ?`,
		packID,
	).Scan(&stats.Completions, &stats.LevelsPlayed, &total, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	stats.TotalTime = time.Duration(total) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllPacksStats retrieves statistics for all packs that have been played.
func (s *Store) GetAllPacksStats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(
		`SELECT pack_id, COUNT(*), COUNT(DISTINCT level), SUM(elapsed_ms), MAX(created_at)
		 FROM completions
		 GROUP BY pack_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all packs stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PackStats)
	for rows.Next() {
		var (
			ps         PackStats
			total      int64
			lastPlayed any
		)
		if err := rows.Scan(&ps.PackID, &ps.Completions, &ps.LevelsPlayed, &total, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.TotalTime = time.Duration(total) * time.Millisecond
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.PackID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// SaveProgress stores the level a pack should resume from.
func (s *Store) SaveProgress(packID string, level int) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (pack_id, level) VALUES (?, ?)
		 ON CONFLICT(pack_id) DO UPDATE SET level = excluded.level, updated_at = CURRENT_TIMESTAMP`,
		packID, level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// Progress returns the saved resume level of a pack.
// The bool is false if nothing was saved.
func (s *Store) Progress(packID string) (int, bool, error) {
	var level int
	err := s.db.QueryRow("SELECT level FROM progress WHERE pack_id = ?", packID).Scan(&level)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return level, true, nil
}

// ClearPack deletes all completions and progress of a pack.
func (s *Store) ClearPack(packID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear pack: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM progress WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear pack: %w", err)
	}
	return nil
}

// parseTime converts a DATETIME column, which the driver returns either as
// time.Time or as text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
