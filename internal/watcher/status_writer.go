package watcher

import (
	"context"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/pkg/batcher"
	"go.uber.org/zap"
)

type statusWriter struct {
	repo    Repository
	logger  *zap.Logger
	batcher *batcher.Batcher[Update]
}

func newStatusWriter(repo Repository, config Config, logger *zap.Logger) *statusWriter {
	w := &statusWriter{
		repo:   repo,
		logger: logger,
	}

	w.batcher = batcher.New[Update](
		logger.Named("updateBatcher"),
		w.flush,
		batcher.Config{
			FlushSize:     config.FlushSize,
			FlushInterval: config.FlushInterval,
			RPS:           config.FlushRPS,
		},
	)
	return w
}

func (w *statusWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *statusWriter) Stop() {
	w.batcher.Stop()
}

func (w *statusWriter) Write(ctx context.Context, u Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.batcher.Add(ctx, u)
}

// flush writes stages before operation rows so a record marked done always has its history stored.
func (w *statusWriter) flush(ctx context.Context, updates []Update) error {
	ops := make([]model.TrackedOperation, 0, len(updates))
	var stages []model.StageRecord
	for _, u := range updates {
		ops = append(ops, u.Operation)
		stages = append(stages, u.Stages...)
	}

	if err := w.repo.InsertStages(ctx, stages); err != nil {
		return err
	}
	w.logger.Debug("stages written", zap.Int("count", len(stages)))

	return w.repo.UpsertOperations(ctx, ops)
}
