package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

// InsertStages stores stage history entries. Re-inserting a known entry is collapsed on merge.
func (r *Repository) InsertStages(ctx context.Context, records []model.StageRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_stages", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	const query = `
INSERT INTO operation_stages (
	operation_id,
	stage,
	timestamp,
	error_name,
	message
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare stages batch: %w", err)
	}

	for _, rec := range records {
		var errorName, message string
		if rec.Stage.Note != nil {
			errorName, message = rec.Stage.Note.ErrorName, rec.Stage.Note.Message
		}
		if err = batch.Append(
			string(rec.OperationID),
			string(rec.Stage.Name),
			rec.Stage.Timestamp.UTC(),
			errorName,
			message,
		); err != nil {
			return fmt.Errorf("append stage: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert stages: %w", err)
	}
	return nil
}
