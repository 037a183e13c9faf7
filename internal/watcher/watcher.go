// Package watcher keeps registered correlation handles tracked until their operations finish.
package watcher

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/clock"
	"go.uber.org/zap"
)

// Service polls active tracked operations and persists their progress.
type Service struct {
	logger                 *zap.Logger
	metrics                Metrics
	sleep                  func(context.Context, time.Duration) error
	idleSleepDuration      time.Duration
	postBatchSleepDuration time.Duration
	pendingFetcher         PendingFetcher
	operationProcessor     OperationProcessor
	statusWriter           StatusWriter
}

// NewService builds a Service with dependencies.
func NewService(
	repo Repository,
	tr Tracker,
	metrics Metrics,
	config Config,
	logger *zap.Logger,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("watcher metrics is required")
	}
	config = config.withDefaults()

	sw := newStatusWriter(repo, config, logger)

	return &Service{
		logger:                 logger,
		metrics:                metrics,
		sleep:                  clock.SleepWithContext,
		idleSleepDuration:      config.IdleSleep,
		postBatchSleepDuration: config.PostBatchSleep,
		pendingFetcher: &pendingFetcher{
			repository: repo,
			limit:      config.FetchLimit,
		},
		statusWriter: sw,
		operationProcessor: &operationProcessor{
			tracker:         tr,
			writer:          sw,
			metrics:         metrics,
			logger:          logger.Named("operationProcessor"),
			now:             time.Now,
			workerCount:     config.WorkerCount,
			chunkSize:       config.ChunkSize,
			resolveDeadline: config.ResolveDeadline,
		},
	}, nil
}

// Run starts the watch loop until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	s.statusWriter.Start(ctx)
	defer s.statusWriter.Stop()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.idleSleepDuration))
			if sleepErr := s.sleep(ctx, s.idleSleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	ops, err := s.pendingFetcher.Fetch(ctx)
	s.metrics.ObserveFetchPending(err, started)
	if err != nil {
		s.logger.Error("fetch active operations failed", zap.Error(err))
		return err
	}

	if len(ops) == 0 {
		s.logger.Debug("no active operations; going idle", zap.Duration("sleep", s.idleSleepDuration))
		return s.sleep(ctx, s.idleSleepDuration)
	}

	s.logger.Info("processing batch", zap.Int("operation_count", len(ops)))
	started = time.Now()
	if err := s.operationProcessor.Process(ctx, ops); err != nil {
		s.metrics.ObserveProcessBatch(err, len(ops), started)
		s.logger.Error("process batch failed", zap.Int("operation_count", len(ops)), zap.Error(err))
		return err
	}
	s.metrics.ObserveProcessBatch(nil, len(ops), started)

	return s.sleep(ctx, s.postBatchSleepDuration)
}
