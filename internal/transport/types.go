// Package transport exposes the operation tracker over REST.
package transport

import (
	"context"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/tracker"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Tracker answers live status queries against the sequencer.
	Tracker interface {
		ResolveOnce(ctx context.Context, handle model.CorrelationHandle) (model.OperationID, bool, error)
		GetStatus(ctx context.Context, id model.OperationID) (model.OperationStatus, error)
		GetStageHistory(ctx context.Context, id model.OperationID) ([]model.ExecutionStage, error)
		GetOperationType(ctx context.Context, id model.OperationID) (model.OperationType, error)
		ResolveBatch(ctx context.Context, handles []model.CorrelationHandle) map[model.CorrelationHandle]tracker.ResolveResult
		StatusBatch(ctx context.Context, ids []model.OperationID) map[model.OperationID]tracker.StatusResult
	}
	// Registry stores the handles the watcher follows.
	Registry interface {
		Operation(ctx context.Context, key model.CorrelationKey) (model.TrackedOperation, bool, error)
		OperationStages(ctx context.Context, id model.OperationID) ([]model.ExecutionStage, error)
		UpsertOperations(ctx context.Context, ops []model.TrackedOperation) error
	}
)
