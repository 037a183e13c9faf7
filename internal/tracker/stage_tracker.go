package tracker

import (
	"context"
	"sort"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
	"go.uber.org/zap"
)

// history wraps a stage slice so it can be swapped atomically in a sync.Map.
type history struct {
	stages []model.ExecutionStage
}

// StageTracker reads stage histories and projects them into statuses.
// Views only move forward: histories never shrink and terminal statuses are latched.
type StageTracker struct {
	client    StatusClient
	logger    *zap.Logger
	histories syncMap[model.OperationID, *history]
	latched   syncMap[model.OperationID, model.OperationStatus]
}

// NewStageTracker builds a StageTracker.
func NewStageTracker(client StatusClient, logger *zap.Logger) *StageTracker {
	return &StageTracker{
		client: client,
		logger: logger,
	}
}

// StageHistory returns the stages of id, oldest first. An unknown id yields an empty history.
func (t *StageTracker) StageHistory(ctx context.Context, id model.OperationID) ([]model.ExecutionStage, error) {
	if id == "" {
		return nil, trackerr.Validationf("stage history", "operation id is empty")
	}
	stages, _, err := t.client.StageHistory(ctx, id)
	if err != nil {
		return nil, classify(ctx, "stage history", err)
	}
	return t.observe(id, stages), nil
}

// Status projects the latest stage of id. Once terminal, the status is served from memory.
func (t *StageTracker) Status(ctx context.Context, id model.OperationID) (model.OperationStatus, error) {
	if status, ok := t.latched.Load(id); ok {
		return status, nil
	}
	stages, err := t.StageHistory(ctx, id)
	if err != nil {
		return model.OperationStatus{}, err
	}
	return t.project(id, stages), nil
}

// OperationType classifies the traffic pattern of id from its current history.
func (t *StageTracker) OperationType(ctx context.Context, id model.OperationID) (model.OperationType, error) {
	stages, err := t.StageHistory(ctx, id)
	if err != nil {
		return model.OperationTypeUndetermined, err
	}
	return Classify(stages), nil
}

// Forget drops everything remembered about id.
func (t *StageTracker) Forget(id model.OperationID) {
	t.histories.Delete(id)
	t.latched.Delete(id)
}

// observe merges a fresh remote history into the one returned so far and returns a copy.
// Entries already returned are kept as they are; only unseen stages are appended.
func (t *StageTracker) observe(id model.OperationID, stages []model.ExecutionStage) []model.ExecutionStage {
	fresh := ordered(stages)
	for {
		prev, loaded := t.histories.LoadOrStore(id, &history{stages: fresh})
		if !loaded {
			return clone(fresh)
		}

		merged, extends := appendUnseen(prev.stages, fresh)
		if !extends {
			t.logger.Debug("stage history does not extend the known one",
				zap.String("operation_id", string(id)),
				zap.Int("known", len(prev.stages)),
				zap.Int("received", len(fresh)),
				zap.Int("appended", len(merged)-len(prev.stages)))
		}
		if len(merged) == len(prev.stages) {
			return clone(prev.stages)
		}
		if t.histories.CompareAndSwap(id, prev, &history{stages: merged}) {
			return clone(merged)
		}
	}
}

// appendUnseen returns known followed by the stages of fresh that known lacks, in fresh order.
// extends reports whether known is a prefix of fresh.
func appendUnseen(known, fresh []model.ExecutionStage) (merged []model.ExecutionStage, extends bool) {
	extends = len(fresh) >= len(known)
	for i := 0; extends && i < len(known); i++ {
		extends = sameStage(known[i], fresh[i])
	}
	if extends {
		return append(clone(known), fresh[len(known):]...), true
	}

	merged = clone(known)
	for _, s := range fresh {
		if !containsStage(known, s) {
			merged = append(merged, s)
		}
	}
	return merged, false
}

func containsStage(stages []model.ExecutionStage, s model.ExecutionStage) bool {
	for _, known := range stages {
		if sameStage(known, s) {
			return true
		}
	}
	return false
}

// sameStage identifies an entry by its name and time; notes do not take part.
func sameStage(a, b model.ExecutionStage) bool {
	return a.Name == b.Name && a.Timestamp.Equal(b.Timestamp)
}

func (t *StageTracker) cachedHistory(id model.OperationID) []model.ExecutionStage {
	h, ok := t.histories.Load(id)
	if !ok {
		return []model.ExecutionStage{}
	}
	return clone(h.stages)
}

// project maps stages to a status and latches it when terminal.
func (t *StageTracker) project(id model.OperationID, stages []model.ExecutionStage) model.OperationStatus {
	status := statusOf(id, stages)
	if status.Terminal() {
		actual, _ := t.latched.LoadOrStore(id, status)
		return actual
	}
	if latched, ok := t.latched.Load(id); ok {
		return latched
	}
	return status
}

func statusOf(id model.OperationID, stages []model.ExecutionStage) model.OperationStatus {
	latest := model.ExecutionStage{Name: model.StageCollectingShards}
	if len(stages) > 0 {
		latest = stages[len(stages)-1]
	}

	status := model.OperationStatus{
		OperationID: id,
		Stage:       latest,
		Simplified:  model.StatusPending,
	}
	switch latest.Name {
	case model.StageTerminalSuccess, model.StageReturnedToOrigin:
		status.Success = true
		status.Simplified = model.StatusSuccessful
	case model.StageRolledBack:
		status.Simplified = model.StatusFailed
	}
	return status
}

func ordered(stages []model.ExecutionStage) []model.ExecutionStage {
	out := clone(stages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func clone(stages []model.ExecutionStage) []model.ExecutionStage {
	out := make([]model.ExecutionStage, len(stages))
	copy(out, stages)
	return out
}
