package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned when no run exists for the requested ID.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns the run with the given ID, including its elements.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, size, seed, mean, elements, created_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns all runs ordered by creation time, newest first.
// Ties break on id for deterministic output. Elements are not loaded.
//
// Returns an empty slice (not nil) if the store has no runs.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, size, seed, mean, created_at
		FROM runs
		ORDER BY created_at DESC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Name, &run.Size, &run.Seed, &run.Mean, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// scanRun reads a full run row, elements included.
func scanRun(row *sql.Row) (Run, error) {
	var run Run
	var elementsJSON string
	var createdAt string

	if err := row.Scan(&run.ID, &run.Name, &run.Size, &run.Seed, &run.Mean, &elementsJSON, &createdAt); err != nil {
		return Run{}, err
	}

	if err := json.Unmarshal([]byte(elementsJSON), &run.Elements); err != nil {
		return Run{}, fmt.Errorf("unmarshal elements: %w", err)
	}

	var err error
	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at: %w", err)
	}

	return run, nil
}
