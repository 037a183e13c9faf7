package watcher

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/tracker"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PendingFetcher interface {
		Fetch(ctx context.Context) ([]model.TrackedOperation, error)
	}
	OperationProcessor interface {
		Process(ctx context.Context, ops []model.TrackedOperation) error
	}
	StatusWriter interface {
		Start(ctx context.Context)
		Stop()
		Write(ctx context.Context, u Update) error
	}
	Tracker interface {
		ResolveBatch(ctx context.Context, handles []model.CorrelationHandle) map[model.CorrelationHandle]tracker.ResolveResult
		StatusBatch(ctx context.Context, ids []model.OperationID) map[model.OperationID]tracker.StatusResult
		Forget(handle model.CorrelationHandle, id model.OperationID)
	}
	Repository interface {
		ActiveOperations(ctx context.Context, limit int) ([]model.TrackedOperation, error)
		UpsertOperations(ctx context.Context, ops []model.TrackedOperation) error
		InsertStages(ctx context.Context, records []model.StageRecord) error
	}
	Metrics interface {
		ObserveFetchPending(err error, started time.Time)
		ObserveProcessBatch(err error, operations int, started time.Time)
		ObserveOutcome(outcome string)
	}
)

// Update is one persisted change of a tracked operation.
type Update struct {
	Operation model.TrackedOperation
	Stages    []model.StageRecord
}
