package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve request: the scramble it was asked to solve,
// the solution the orchestrator found, and timing.
type Solve struct {
	SolveID    string
	StartedAt  time.Time
	EndedAt    time.Time
	DurationMs int64
	Scramble   string
	Solution   string
	MoveCount  int
	Algorithm  string
}

// SolveRepository provides CRUD access to the solves table.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a repository bound to db.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Record inserts a completed solve and returns its generated ID.
func (r *SolveRepository) Record(startedAt, endedAt time.Time, scramble, solution string, moveCount int, algorithm string) (string, error) {
	id := uuid.New().String()
	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, started_at, ended_at, duration_ms, scramble, solution, move_count, algorithm)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, startedAt.UTC().Format(time.RFC3339), endedAt.UTC().Format(time.RFC3339), durationMs, scramble, solution, moveCount, algorithm)
	if err != nil {
		return "", fmt.Errorf("history: failed to record solve: %w", err)
	}
	return id, nil
}

// Get retrieves a solve by ID, returning nil if not found.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var startedAtStr, endedAtStr string
	err := r.db.QueryRow(`
		SELECT solve_id, started_at, ended_at, duration_ms, scramble, solution, move_count, algorithm
		FROM solves WHERE solve_id = ?
	`, solveID).Scan(&s.SolveID, &startedAtStr, &endedAtStr, &s.DurationMs, &s.Scramble, &s.Solution, &s.MoveCount, &s.Algorithm)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: failed to get solve %s: %w", solveID, err)
	}
	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	s.EndedAt, _ = time.Parse(time.RFC3339, endedAtStr)
	return &s, nil
}

// List retrieves the most recent solves, newest first, bounded by limit.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, started_at, ended_at, duration_ms, scramble, solution, move_count, algorithm
		FROM solves
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var startedAtStr, endedAtStr string
		if err := rows.Scan(&s.SolveID, &startedAtStr, &endedAtStr, &s.DurationMs, &s.Scramble, &s.Solution, &s.MoveCount, &s.Algorithm); err != nil {
			return nil, fmt.Errorf("history: failed to scan solve: %w", err)
		}
		s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
		s.EndedAt, _ = time.Parse(time.RFC3339, endedAtStr)
		solves = append(solves, s)
	}
	return solves, nil
}
