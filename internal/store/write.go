package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// WriteRun inserts a run record into the store.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored. Other constraint violations still return errors.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	elementsJSON, err := marshalElements(run.Elements)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, name, size, seed, mean, elements, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Name,
		run.Size,
		run.Seed,
		run.Mean,
		elementsJSON,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}

// marshalElements serializes elements as a JSON array of integers.
// nil serializes as the empty array so reads never see SQL NULL.
func marshalElements(elements []int64) (string, error) {
	if elements == nil {
		elements = []int64{}
	}
	data, err := json.Marshal(elements)
	if err != nil {
		return "", fmt.Errorf("marshal elements: %w", err)
	}
	return string(data), nil
}
