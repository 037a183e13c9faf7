package sequencer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
)

// ObservedClient records metrics for every status service call.
type ObservedClient struct {
	api     API
	metrics Metrics
}

var _ API = (*ObservedClient)(nil)

// NewObservedClient wraps api with metrics instrumentation.
func NewObservedClient(api API, metrics Metrics) *ObservedClient {
	return &ObservedClient{
		api:     api,
		metrics: metrics,
	}
}

func (c *ObservedClient) OperationID(ctx context.Context, handle model.CorrelationHandle) (id model.OperationID, found bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("operation_id", err, started)
	}()
	return c.api.OperationID(ctx, handle)
}

func (c *ObservedClient) OperationIDs(ctx context.Context, handles []model.CorrelationHandle) (ids map[model.CorrelationKey]model.OperationID, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("operation_ids", err, started)
	}()
	return c.api.OperationIDs(ctx, handles)
}

func (c *ObservedClient) StageHistory(ctx context.Context, id model.OperationID) (stages []model.ExecutionStage, found bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("stage_history", err, started)
	}()
	return c.api.StageHistory(ctx, id)
}

func (c *ObservedClient) StageHistories(ctx context.Context, ids []model.OperationID) (stages map[model.OperationID][]model.ExecutionStage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("stage_histories", err, started)
	}()
	return c.api.StageHistories(ctx, ids)
}

func (c *ObservedClient) Close() error {
	return c.api.Close()
}
