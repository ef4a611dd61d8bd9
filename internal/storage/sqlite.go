// Package storage provides SQLite-based persistence for runs, the coin
// wallet and lifetime statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/paper-flight/internal/core"
)

// ErrInsufficientCoins is returned when the wallet cannot cover a purchase.
var ErrInsufficientCoins = errors.New("storage: insufficient coins")

// Store manages the SQLite database connection.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// Run is one finished flight.
type Run struct {
	ID        string
	GameID    string
	Player    string
	Score     int
	Coins     int
	Missiles  int
	Duration  int // seconds of active play
	Revives   int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game mode.
type GameStats struct {
	GameID     string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalCoins int64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			missiles INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			revives INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS wallet (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			balance INTEGER NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO wallet (id, balance) VALUES (1, 0);

		CREATE TABLE IF NOT EXISTS stats (
			kind TEXT PRIMARY KEY,
			total INTEGER NOT NULL DEFAULT 0
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

// SaveRun records a finished run and returns its generated id.
func (s *Store) SaveRun(r Run) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, player, score, coins, missiles, duration_secs, revives)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.GameID, r.Player, r.Score, r.Coins, r.Missiles, r.Duration, r.Revives,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs for the given game mode.
// Results are ordered by score descending.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, coins, missiles, duration_secs, revives, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Score, &r.Coins,
			&r.Missiles, &r.Duration, &r.Revives, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest score for the given game mode.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes the run history of the given game mode.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GetAllGamesStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(coins), MAX(created_at)
		 FROM runs
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.RunsCount, &gs.HighScore, &gs.AvgScore, &gs.TotalCoins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Balance returns the wallet balance.
func (s *Store) Balance() (int, error) {
	var balance int
	if err := s.db.QueryRow("SELECT balance FROM wallet WHERE id = 1").Scan(&balance); err != nil {
		return 0, fmt.Errorf("storage: cannot read wallet: %w", err)
	}
	return balance, nil
}

// AddCoins credits the wallet.
func (s *Store) AddCoins(amount int) error {
	if amount <= 0 {
		return nil
	}
	if _, err := s.db.Exec("UPDATE wallet SET balance = balance + ? WHERE id = 1", amount); err != nil {
		return fmt.Errorf("storage: cannot credit wallet: %w", err)
	}
	return nil
}

// SpendCoins debits the wallet atomically. It returns ErrInsufficientCoins
// and leaves the balance untouched when it cannot cover amount.
func (s *Store) SpendCoins(amount int) error {
	if amount <= 0 {
		return nil
	}
	res, err := s.db.Exec(
		"UPDATE wallet SET balance = balance - ? WHERE id = 1 AND balance >= ?",
		amount, amount,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot debit wallet: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot debit wallet: %w", err)
	}
	if n == 0 {
		return ErrInsufficientCoins
	}
	return nil
}

// AddStats adds the given amounts to the lifetime totals in one transaction.
func (s *Store) AddStats(deltas map[core.EventKind]int) error {
	if len(deltas) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin stats update: %w", err)
	}
	defer tx.Rollback()

	for kind, amount := range deltas {
		if amount == 0 {
			continue
		}
		if _, err := tx.Exec(
			`INSERT INTO stats (kind, total) VALUES (?, ?)
			 ON CONFLICT(kind) DO UPDATE SET total = total + excluded.total`,
			string(kind), amount,
		); err != nil {
			return fmt.Errorf("storage: cannot update stat %s: %w", kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit stats: %w", err)
	}
	return nil
}

// Stats returns the lifetime totals. Kinds never reported are absent.
func (s *Store) Stats() (map[core.EventKind]int, error) {
	rows, err := s.db.Query("SELECT kind, total FROM stats")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	totals := make(map[core.EventKind]int)
	for rows.Next() {
		var kind string
		var total int
		if err := rows.Scan(&kind, &total); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stat: %w", err)
		}
		totals[core.EventKind(kind)] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return totals, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
