package tracker

import (
	"context"
	"io"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/linker"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/retry"
	"go.uber.org/zap"
)

// Tracker is the caller-facing surface of the correlation and status tracking subsystem.
type Tracker struct {
	client   StatusClient
	linker   *linker.Linker
	resolver *Resolver
	stages   *StageTracker
	batch    *BatchCoordinator
	metrics  Metrics
	logger   *zap.Logger
}

// Option customizes a Tracker.
type Option func(*options)

type options struct {
	batch  BatchConfig
	linker *linker.Linker
}

// WithBatchConfig overrides batch chunking.
func WithBatchConfig(c BatchConfig) Option {
	return func(o *options) {
		o.batch = c
	}
}

// WithLinker overrides the shard linker.
func WithLinker(l *linker.Linker) Option {
	return func(o *options) {
		o.linker = l
	}
}

// New builds a Tracker over client. Close releases the client if it implements io.Closer.
func New(client StatusClient, metrics Metrics, logger *zap.Logger, opts ...Option) *Tracker {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.linker == nil {
		o.linker = linker.New()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	resolver := NewResolver(client, metrics, logger.Named("resolver"))
	stages := NewStageTracker(client, logger.Named("stages"))
	return &Tracker{
		client:   client,
		linker:   o.linker,
		resolver: resolver,
		stages:   stages,
		batch:    NewBatchCoordinator(client, resolver, stages, o.batch, logger.Named("batch")),
		metrics:  metrics,
		logger:   logger,
	}
}

// Link creates a handle for a request split into shardCount shards.
func (t *Tracker) Link(caller string, shardCount int) (model.CorrelationHandle, error) {
	return t.linker.Link(caller, shardCount)
}

// ResolveOnce makes a single, non-blocking resolution attempt.
func (t *Tracker) ResolveOnce(ctx context.Context, handle model.CorrelationHandle) (model.OperationID, bool, error) {
	return t.resolver.ResolveOnce(ctx, handle)
}

// ResolveOperationID polls until the sequencer assigns an id to handle.
func (t *Tracker) ResolveOperationID(ctx context.Context, handle model.CorrelationHandle, policy retry.Policy) (model.OperationID, error) {
	return t.resolver.Resolve(ctx, handle, policy)
}

// GetStatus returns the current status of id. Terminal statuses never change once seen.
func (t *Tracker) GetStatus(ctx context.Context, id model.OperationID) (model.OperationStatus, error) {
	return t.stages.Status(ctx, id)
}

// GetStageHistory returns the stages of id, oldest first.
func (t *Tracker) GetStageHistory(ctx context.Context, id model.OperationID) ([]model.ExecutionStage, error) {
	return t.stages.StageHistory(ctx, id)
}

// GetOperationType classifies id from its current stage history.
func (t *Tracker) GetOperationType(ctx context.Context, id model.OperationID) (model.OperationType, error) {
	return t.stages.OperationType(ctx, id)
}

// ResolveBatch makes one resolution attempt per distinct handle. A failing chunk only fails its own handles.
func (t *Tracker) ResolveBatch(ctx context.Context, handles []model.CorrelationHandle) map[model.CorrelationHandle]ResolveResult {
	return t.batch.ResolveBatch(ctx, handles)
}

// StatusBatch fetches the status of every distinct id. A failing chunk only fails its own ids.
func (t *Tracker) StatusBatch(ctx context.Context, ids []model.OperationID) map[model.OperationID]StatusResult {
	return t.batch.StatusBatch(ctx, ids)
}

// Track resolves handle and waits until its operation is terminal.
func (t *Tracker) Track(
	ctx context.Context,
	handle model.CorrelationHandle,
	resolvePolicy, waitPolicy retry.Policy,
) (model.OperationID, model.OperationStatus, error) {
	id, err := t.ResolveOperationID(ctx, handle, resolvePolicy)
	if err != nil {
		return "", model.OperationStatus{}, err
	}
	status, err := t.WaitForTerminal(ctx, id, waitPolicy)
	return id, status, err
}

// Forget drops memoised state of a finished operation.
func (t *Tracker) Forget(handle model.CorrelationHandle, id model.OperationID) {
	t.resolver.Forget(handle.Key())
	if id != "" {
		t.stages.Forget(id)
	}
}

// Close releases the status client.
func (t *Tracker) Close() error {
	if c, ok := t.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *Tracker) observeWait(err error, attempts int, started time.Time) {
	t.metrics.ObserveWait(err, attempts, started)
}
