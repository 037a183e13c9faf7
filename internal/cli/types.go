// Package cli implements the opctl command line.
package cli

import (
	"context"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/retry"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/tracker"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Tracker is the part of the tracker facade the commands use.
type Tracker interface {
	Link(caller string, shardCount int) (model.CorrelationHandle, error)
	ResolveOnce(ctx context.Context, handle model.CorrelationHandle) (model.OperationID, bool, error)
	ResolveOperationID(ctx context.Context, handle model.CorrelationHandle, policy retry.Policy) (model.OperationID, error)
	GetStatus(ctx context.Context, id model.OperationID) (model.OperationStatus, error)
	GetStageHistory(ctx context.Context, id model.OperationID) ([]model.ExecutionStage, error)
	GetOperationType(ctx context.Context, id model.OperationID) (model.OperationType, error)
	WaitForTerminal(ctx context.Context, id model.OperationID, policy retry.Policy) (model.OperationStatus, error)
	StatusBatch(ctx context.Context, ids []model.OperationID) map[model.OperationID]tracker.StatusResult
	Close() error
}

// TrackerFactory builds the tracker a command talks to.
type TrackerFactory func(opts *RootOptions) (Tracker, error)
