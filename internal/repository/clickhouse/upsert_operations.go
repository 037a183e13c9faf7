package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

// UpsertOperations writes tracked operation rows. The newest updated_at wins on merge.
func (r *Repository) UpsertOperations(ctx context.Context, ops []model.TrackedOperation) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_operations", err, start)
	}()

	if len(ops) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, "INSERT INTO tracked_operations ("+trackedOperationColumns+"\n) VALUES")
	if err != nil {
		return fmt.Errorf("prepare tracked operations batch: %w", err)
	}

	now := time.Now().UTC()
	for _, op := range ops {
		createdAt, updatedAt := op.CreatedAt, op.UpdatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		if updatedAt.IsZero() {
			updatedAt = now
		}
		if err = batch.Append(
			op.Handle.Caller,
			op.Handle.ShardsKey,
			op.Handle.ShardCount,
			string(op.OperationID),
			string(op.Stage),
			string(op.Status),
			string(op.OperationType),
			op.ErrorName,
			string(op.Tracking),
			createdAt,
			updatedAt,
		); err != nil {
			return fmt.Errorf("append tracked operation: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert tracked operations: %w", err)
	}
	return nil
}
