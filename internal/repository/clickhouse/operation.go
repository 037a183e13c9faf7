package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

// Operation returns the tracked operation registered for key.
func (r *Repository) Operation(ctx context.Context, key model.CorrelationKey) (model.TrackedOperation, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("operation", err, start)
	}()

	query := `
SELECT` + trackedOperationColumns + `
FROM tracked_operations FINAL
WHERE caller = ? AND shards_key = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, key.Caller, key.ShardsKey)
	if err != nil {
		return model.TrackedOperation{}, false, fmt.Errorf("query operation: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.TrackedOperation{}, false, fmt.Errorf("iterate operation: %w", err)
		}
		return model.TrackedOperation{}, false, nil
	}

	var op model.TrackedOperation
	if err = scanTrackedOperation(rows, &op); err != nil {
		return model.TrackedOperation{}, false, err
	}
	return op, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrackedOperation(rows rowScanner, op *model.TrackedOperation) error {
	var (
		operationID, stage, status, operationType, tracking string
	)
	if err := rows.Scan(
		&op.Handle.Caller,
		&op.Handle.ShardsKey,
		&op.Handle.ShardCount,
		&operationID,
		&stage,
		&status,
		&operationType,
		&op.ErrorName,
		&tracking,
		&op.CreatedAt,
		&op.UpdatedAt,
	); err != nil {
		return fmt.Errorf("scan tracked operation: %w", err)
	}

	op.OperationID = model.OperationID(operationID)
	op.Stage = model.StageName(stage)
	op.Status = model.SimplifiedStatus(status)
	op.OperationType = model.OperationType(operationType)
	op.Tracking = model.TrackingState(tracking)
	op.CreatedAt = op.CreatedAt.UTC()
	op.UpdatedAt = op.UpdatedAt.UTC()
	return nil
}
