package tracker

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/model"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchConfig bounds batch round trips.
type BatchConfig struct {
	// MaxBatchSize caps the number of keys per remote call. Defaults to 100.
	MaxBatchSize int
	// Concurrency caps the number of chunks in flight. Defaults to 4.
	Concurrency int
}

func (c BatchConfig) withDefaults() BatchConfig {
	if c.MaxBatchSize <= 0 {
		c.MaxBatchSize = defaultMaxBatchSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaultBatchConcurrency
	}
	return c
}

// BatchCoordinator fans batch queries out in bounded chunks and reports one result per key.
// A failing chunk never affects keys outside it.
type BatchCoordinator struct {
	client   StatusClient
	resolver *Resolver
	stages   *StageTracker
	config   BatchConfig
	logger   *zap.Logger
}

// NewBatchCoordinator builds a BatchCoordinator sharing the memo of resolver and the latch of stages.
func NewBatchCoordinator(
	client StatusClient,
	resolver *Resolver,
	stages *StageTracker,
	config BatchConfig,
	logger *zap.Logger,
) *BatchCoordinator {
	return &BatchCoordinator{
		client:   client,
		resolver: resolver,
		stages:   stages,
		config:   config.withDefaults(),
		logger:   logger,
	}
}

// ResolveBatch resolves many handles with one remote call per chunk.
func (b *BatchCoordinator) ResolveBatch(ctx context.Context, handles []model.CorrelationHandle) map[model.CorrelationHandle]ResolveResult {
	results := make(map[model.CorrelationHandle]ResolveResult, len(handles))
	pending := make([]model.CorrelationHandle, 0, len(handles))
	seen := make(map[model.CorrelationHandle]struct{}, len(handles))
	for _, h := range handles {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}

		if err := h.Validate(); err != nil {
			results[h] = ResolveResult{Err: err}
			continue
		}
		if id, ok := b.resolver.cached(h.Key()); ok {
			results[h] = ResolveResult{OperationID: id, Available: true}
			continue
		}
		pending = append(pending, h)
	}

	var mu sync.Mutex
	b.fanOut(len(pending), func(from, to int) {
		chunk := pending[from:to]
		ids, err := b.client.OperationIDs(ctx, chunk)
		if err != nil {
			err = classify(ctx, "resolve batch", err)
			b.logger.Warn("resolve batch chunk failed", zap.Int("size", len(chunk)), zap.Error(err))
		}

		mu.Lock()
		defer mu.Unlock()
		for _, h := range chunk {
			if err != nil {
				results[h] = ResolveResult{Err: err}
				continue
			}
			id, ok := ids[h.Key()]
			if !ok || id == "" {
				results[h] = ResolveResult{}
				continue
			}
			results[h] = ResolveResult{OperationID: b.resolver.remember(h.Key(), id), Available: true}
		}
	})

	return results
}

// StatusBatch reads the stage histories of many operations and projects their statuses.
func (b *BatchCoordinator) StatusBatch(ctx context.Context, ids []model.OperationID) map[model.OperationID]StatusResult {
	results := make(map[model.OperationID]StatusResult, len(ids))
	pending := make([]model.OperationID, 0, len(ids))
	for _, id := range ids {
		if _, ok := results[id]; ok {
			continue
		}
		if id == "" {
			results[id] = StatusResult{Err: trackerr.Validationf("status batch", "operation id is empty")}
			continue
		}
		if status, ok := b.stages.latched.Load(id); ok {
			results[id] = StatusResult{Status: status, Stages: b.stages.cachedHistory(id), Available: true}
			continue
		}
		// placeholder so duplicates are skipped; overwritten below
		results[id] = StatusResult{}
		pending = append(pending, id)
	}

	var mu sync.Mutex
	b.fanOut(len(pending), func(from, to int) {
		chunk := pending[from:to]
		histories, err := b.client.StageHistories(ctx, chunk)
		if err != nil {
			err = classify(ctx, "status batch", err)
			b.logger.Warn("status batch chunk failed", zap.Int("size", len(chunk)), zap.Error(err))
		}

		mu.Lock()
		defer mu.Unlock()
		for _, id := range chunk {
			if err != nil {
				results[id] = StatusResult{Err: err}
				continue
			}
			stages, ok := histories[id]
			if !ok {
				results[id] = StatusResult{}
				continue
			}
			stages = b.stages.observe(id, stages)
			results[id] = StatusResult{
				Status:    b.stages.project(id, stages),
				Stages:    stages,
				Available: true,
			}
		}
	})

	return results
}

// fanOut runs fn over [0,n) in chunks of at most MaxBatchSize with bounded concurrency.
func (b *BatchCoordinator) fanOut(n int, fn func(from, to int)) {
	var g errgroup.Group
	g.SetLimit(b.config.Concurrency)
	for from := 0; from < n; from += b.config.MaxBatchSize {
		to := min(from+b.config.MaxBatchSize, n)
		g.Go(func() error {
			fn(from, to)
			return nil
		})
	}
	_ = g.Wait()
}
