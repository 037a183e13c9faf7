package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/tracker"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
	"github.com/goodnatureofminers/tac-operation-tracker/pkg/workerpool"
	"go.uber.org/zap"
)

type operationProcessor struct {
	tracker         Tracker
	writer          StatusWriter
	metrics         Metrics
	logger          *zap.Logger
	now             func() time.Time
	workerCount     int
	chunkSize       int
	resolveDeadline time.Duration
}

// candidate is an operation with an id whose status is about to be refreshed.
type candidate struct {
	op      model.TrackedOperation
	changed bool
}

func (p *operationProcessor) Process(ctx context.Context, ops []model.TrackedOperation) error {
	return workerpool.Process(ctx, p.workerCount, chunk(ops, p.chunkSize), p.processChunk, nil)
}

func (p *operationProcessor) processChunk(ctx context.Context, ops []model.TrackedOperation) error {
	now := p.now().UTC()

	candidates, updates := p.resolve(ctx, ops, now)
	updates = append(updates, p.refresh(ctx, candidates, now)...)

	for _, u := range updates {
		if err := p.writer.Write(ctx, u); err != nil {
			return fmt.Errorf("write tracked operation %s/%s: %w", u.Operation.Handle.Caller, u.Operation.Handle.ShardsKey, err)
		}
	}
	return nil
}

// resolve looks up ids of unresolved handles and abandons the ones that can never resolve.
func (p *operationProcessor) resolve(ctx context.Context, ops []model.TrackedOperation, now time.Time) ([]candidate, []Update) {
	handles := make([]model.CorrelationHandle, 0, len(ops))
	for _, op := range ops {
		if !op.Resolved() {
			handles = append(handles, op.Handle)
		}
	}

	var results map[model.CorrelationHandle]tracker.ResolveResult
	if len(handles) > 0 {
		results = p.tracker.ResolveBatch(ctx, handles)
	}

	candidates := make([]candidate, 0, len(ops))
	var updates []Update
	for _, op := range ops {
		if op.Resolved() {
			candidates = append(candidates, candidate{op: op})
			continue
		}

		res := results[op.Handle]
		switch {
		case res.Available:
			op.OperationID = res.OperationID
			candidates = append(candidates, candidate{op: op, changed: true})
			p.observe(outcomeResolved)
		case errors.Is(res.Err, trackerr.ErrValidation), now.Sub(op.CreatedAt) >= p.resolveDeadline:
			p.logger.Warn("abandoning unresolved handle",
				zap.String("caller", op.Handle.Caller),
				zap.String("shards_key", op.Handle.ShardsKey),
				zap.Time("created_at", op.CreatedAt),
				zap.Error(res.Err))
			op.Tracking = model.TrackingAbandoned
			op.UpdatedAt = now
			updates = append(updates, Update{Operation: op})
			p.tracker.Forget(op.Handle, "")
			p.observe(outcomeAbandoned)
		case res.Err != nil:
			p.logger.Warn("resolve failed", zap.String("shards_key", op.Handle.ShardsKey), zap.Error(res.Err))
			p.observe(outcomeError)
		default:
			p.observe(outcomeUnresolved)
		}
	}
	return candidates, updates
}

// refresh reads the current status of resolved operations and returns the ones that moved.
func (p *operationProcessor) refresh(ctx context.Context, candidates []candidate, now time.Time) []Update {
	if len(candidates) == 0 {
		return nil
	}

	ids := make([]model.OperationID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.op.OperationID)
	}
	statuses := p.tracker.StatusBatch(ctx, ids)

	updates := make([]Update, 0, len(candidates))
	for _, c := range candidates {
		res := statuses[c.op.OperationID]
		next := c.op
		var stages []model.StageRecord

		switch {
		case res.Err != nil:
			p.logger.Warn("status refresh failed", zap.String("operation_id", string(c.op.OperationID)), zap.Error(res.Err))
			p.observe(outcomeError)
		case res.Available:
			next = apply(c.op, res)
			stages = records(next.OperationID, res.Stages)
		}

		if !c.changed && !moved(c.op, next) {
			if res.Err == nil {
				p.observe(outcomeUnchanged)
			}
			continue
		}

		next.UpdatedAt = now
		updates = append(updates, Update{Operation: next, Stages: stages})
		if next.Tracking == model.TrackingDone {
			p.logger.Info("operation reached terminal stage",
				zap.String("operation_id", string(next.OperationID)),
				zap.String("stage", string(next.Stage)),
				zap.String("status", string(next.Status)),
				zap.String("operation_type", string(next.OperationType)))
			p.tracker.Forget(next.Handle, next.OperationID)
			p.observe(outcomeTerminal)
		} else if res.Available {
			p.observe(outcomeProgressed)
		}
	}
	return updates
}

func (p *operationProcessor) observe(outcome string) {
	if p.metrics == nil {
		return
	}
	p.metrics.ObserveOutcome(outcome)
}

func apply(op model.TrackedOperation, res tracker.StatusResult) model.TrackedOperation {
	op.Stage = res.Status.Stage.Name
	op.Status = res.Status.Simplified
	op.OperationType = tracker.Classify(res.Stages)
	op.ErrorName = res.Status.FailureReason()
	if res.Status.Terminal() {
		op.Tracking = model.TrackingDone
	}
	return op
}

func moved(prev, next model.TrackedOperation) bool {
	return prev.Stage != next.Stage ||
		prev.Status != next.Status ||
		prev.OperationType != next.OperationType ||
		prev.ErrorName != next.ErrorName ||
		prev.Tracking != next.Tracking
}

func records(id model.OperationID, stages []model.ExecutionStage) []model.StageRecord {
	out := make([]model.StageRecord, 0, len(stages))
	for _, s := range stages {
		out = append(out, model.StageRecord{OperationID: id, Stage: s})
	}
	return out
}

func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = max(len(items), 1)
	}
	chunks := make([][]T, 0, len(items)/size+1)
	for from := 0; from < len(items); from += size {
		chunks = append(chunks, items[from:min(from+size, len(items))])
	}
	return chunks
}
