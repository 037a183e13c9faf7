package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

// ActiveOperations returns up to limit operations still being watched, least recently updated first.
func (r *Repository) ActiveOperations(ctx context.Context, limit int) ([]model.TrackedOperation, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("active_operations", err, start)
	}()

	query := `
SELECT` + trackedOperationColumns + `
FROM tracked_operations FINAL
WHERE tracking = ?
ORDER BY updated_at ASC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, string(model.TrackingActive), uint64(max(limit, 0)))
	if err != nil {
		return nil, fmt.Errorf("query active operations: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var ops []model.TrackedOperation
	for rows.Next() {
		var op model.TrackedOperation
		if err = scanTrackedOperation(rows, &op); err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active operations: %w", err)
	}

	return ops, nil
}
