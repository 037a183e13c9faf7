package tracker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StatusClient is the remote status service. found=false and absent map entries mean "not yet available".
	StatusClient interface {
		OperationID(ctx context.Context, handle model.CorrelationHandle) (model.OperationID, bool, error)
		OperationIDs(ctx context.Context, handles []model.CorrelationHandle) (map[model.CorrelationKey]model.OperationID, error)
		StageHistory(ctx context.Context, id model.OperationID) ([]model.ExecutionStage, bool, error)
		StageHistories(ctx context.Context, ids []model.OperationID) (map[model.OperationID][]model.ExecutionStage, error)
	}
	// Metrics records polling outcomes.
	Metrics interface {
		ObserveResolve(err error, attempts int, started time.Time)
		ObserveWait(err error, attempts int, started time.Time)
	}
)

// ResolveResult is the per-handle outcome of a batch resolution.
// Available=false with a nil Err means the sequencer has not assigned an id yet.
type ResolveResult struct {
	OperationID model.OperationID
	Available   bool
	Err         error
}

// StatusResult is the per-id outcome of a batch status query.
// Available=false with a nil Err means the status service omitted the id.
type StatusResult struct {
	Status    model.OperationStatus
	Stages    []model.ExecutionStage
	Available bool
	Err       error
}

type nopMetrics struct{}

func (nopMetrics) ObserveResolve(error, int, time.Time) {}
func (nopMetrics) ObserveWait(error, int, time.Time)    {}
