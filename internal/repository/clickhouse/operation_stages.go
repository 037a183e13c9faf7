package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

// OperationStages returns the persisted stage history of id, oldest first.
func (r *Repository) OperationStages(ctx context.Context, id model.OperationID) ([]model.ExecutionStage, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("operation_stages", err, start)
	}()

	const query = `
SELECT
	stage,
	timestamp,
	error_name,
	message
FROM operation_stages FINAL
WHERE operation_id = ?
ORDER BY timestamp ASC`

	rows, err := r.conn.Query(ctx, query, string(id))
	if err != nil {
		return nil, fmt.Errorf("query operation stages: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	stages := make([]model.ExecutionStage, 0)
	for rows.Next() {
		var (
			name, errorName, message string
			ts                       time.Time
		)
		if err = rows.Scan(&name, &ts, &errorName, &message); err != nil {
			return nil, fmt.Errorf("scan operation stage: %w", err)
		}
		stages = append(stages, model.ExecutionStage{
			Name:      model.StageName(name),
			Timestamp: ts.UTC(),
			Note:      note(errorName, message),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operation stages: %w", err)
	}

	return stages, nil
}

func note(errorName, message string) *model.StageNote {
	if errorName == "" && message == "" {
		return nil
	}
	return &model.StageNote{ErrorName: errorName, Message: message}
}
