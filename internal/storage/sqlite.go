// Package storage provides SQLite-based persistence for batch history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/randwalk/internal/walk"
)

// Store manages the SQLite database connection for batch persistence.
type Store struct {
	db *sql.DB
}

// BatchRecord summarizes one completed simulation batch.
type BatchRecord struct {
	ID             int64
	WalkerType     int
	NumSimulations int
	NumSteps       int
	Seed           int64
	MeanFinalDist  float64
	MeanExitStep   float64
	ExitedRuns     int
	CreatedAt      time.Time
}

// RunRecord holds the scalar metrics of one run within a batch.
// Path traces are not persisted; they are cheap to regenerate from the
// batch seed and run index.
type RunRecord struct {
	ID        int64
	BatchID   int64
	RunIndex  int
	FinalX    int
	FinalY    int
	FinalDist float64
	ExitStep  int
	Crossings int
	Restarts  int
	Rejected  int
}

// NewRunRecord converts an engine result into its storage row.
func NewRunRecord(batchID int64, r walk.RunResult) RunRecord {
	return RunRecord{
		BatchID:   batchID,
		RunIndex:  r.Index,
		FinalX:    r.Final.X,
		FinalY:    r.Final.Y,
		FinalDist: r.FinalDist,
		ExitStep:  r.ExitStep,
		Crossings: r.XAxisCrossings,
		Restarts:  r.Restarts,
		Rejected:  r.RejectedSteps,
	}
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS batches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			walker_type INTEGER NOT NULL,
			num_simulations INTEGER NOT NULL,
			num_steps INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			mean_final_dist REAL NOT NULL,
			mean_exit_step REAL NOT NULL,
			exited_runs INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_batches_created ON batches(created_at DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id INTEGER NOT NULL REFERENCES batches(id),
			run_index INTEGER NOT NULL,
			final_x INTEGER NOT NULL,
			final_y INTEGER NOT NULL,
			final_dist REAL NOT NULL,
			exit_step INTEGER NOT NULL,
			crossings INTEGER NOT NULL,
			restarts INTEGER NOT NULL,
			rejected INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_batch ON runs(batch_id, run_index);
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

// SaveBatch records a batch summary and returns its ID.
func (s *Store) SaveBatch(rec BatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO batches
		 (walker_type, num_simulations, num_steps, seed, mean_final_dist, mean_exit_step, exited_runs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.WalkerType,
		rec.NumSimulations,
		rec.NumSteps,
		rec.Seed,
		rec.MeanFinalDist,
		rec.MeanExitStep,
		rec.ExitedRuns,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save batch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveRuns records the per-run metrics of a batch in one transaction.
func (s *Store) SaveRuns(batchID int64, runs []RunRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO runs
		 (batch_id, run_index, final_x, final_y, final_dist, exit_step, crossings, restarts, rejected)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range runs {
		if _, err := stmt.Exec(
			batchID, r.RunIndex, r.FinalX, r.FinalY, r.FinalDist,
			r.ExitStep, r.Crossings, r.Restarts, r.Rejected,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot save run %d: %w", r.RunIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit runs: %w", err)
	}
	return nil
}

// RecentBatches retrieves the most recent batch summaries.
func (s *Store) RecentBatches(limit int) ([]BatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, walker_type, num_simulations, num_steps, seed,
		        mean_final_dist, mean_exit_step, exited_runs, created_at
		 FROM batches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query batches: %w", err)
	}
	defer rows.Close()

	var entries []BatchRecord
	for rows.Next() {
		var b BatchRecord
		var createdAt any
		if err := rows.Scan(
			&b.ID, &b.WalkerType, &b.NumSimulations, &b.NumSteps, &b.Seed,
			&b.MeanFinalDist, &b.MeanExitStep, &b.ExitedRuns, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.CreatedAt = parseTime(createdAt)
		entries = append(entries, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BatchRuns retrieves the per-run metrics of a batch, in run order.
func (s *Store) BatchRuns(batchID int64) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, batch_id, run_index, final_x, final_y, final_dist,
		        exit_step, crossings, restarts, rejected
		 FROM runs
		 WHERE batch_id = ?
		 ORDER BY run_index`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(
			&r.ID, &r.BatchID, &r.RunIndex, &r.FinalX, &r.FinalY, &r.FinalDist,
			&r.ExitStep, &r.Crossings, &r.Restarts, &r.Rejected,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearHistory deletes all recorded batches and runs.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM batches"); err != nil {
		return fmt.Errorf("storage: cannot clear batches: %w", err)
	}
	return nil
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
