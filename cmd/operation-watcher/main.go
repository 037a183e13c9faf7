// Package main runs the daemon that follows registered correlation handles until their operations finish.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/metrics"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/repository/clickhouse"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/sequencer"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/tracker"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/watcher"
)

type config struct {
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"OPTRACKER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	SequencerURL     string        `long:"sequencer-url" env:"OPTRACKER_SEQUENCER_URL" description:"status service base url" required:"true"`
	SequencerTimeout time.Duration `long:"sequencer-timeout" env:"OPTRACKER_SEQUENCER_TIMEOUT" description:"timeout of a single status service request" default:"30s"`
	SequencerRPS     int           `long:"sequencer-rps" env:"OPTRACKER_SEQUENCER_RPS" description:"status service requests per second, 0 disables the cap" default:"10"`
	MaxBatchSize     int           `long:"max-batch-size" env:"OPTRACKER_MAX_BATCH_SIZE" description:"ids or handles per status service batch call" default:"100"`
	BatchConcurrency int           `long:"batch-concurrency" env:"OPTRACKER_BATCH_CONCURRENCY" description:"concurrent status service batch calls" default:"4"`
	Workers          int           `long:"workers" env:"OPTRACKER_WATCHER_WORKERS" description:"concurrently processed chunks" default:"4"`
	ChunkSize        int           `long:"chunk-size" env:"OPTRACKER_WATCHER_CHUNK_SIZE" description:"tracked operations per chunk" default:"100"`
	FetchLimit       int           `long:"fetch-limit" env:"OPTRACKER_WATCHER_FETCH_LIMIT" description:"active operations loaded per iteration" default:"5000"`
	ResolveDeadline  time.Duration `long:"resolve-deadline" env:"OPTRACKER_WATCHER_RESOLVE_DEADLINE" description:"abandon handles unresolved for longer than this" default:"1h"`
	IdleSleep        time.Duration `long:"idle-sleep" env:"OPTRACKER_WATCHER_IDLE_SLEEP" description:"pause when nothing is tracked" default:"10s"`
	PostBatchSleep   time.Duration `long:"post-batch-sleep" env:"OPTRACKER_WATCHER_POST_BATCH_SLEEP" description:"pause between iterations" default:"5s"`
	MetricsAddr      string        `long:"metrics-addr" env:"OPTRACKER_METRICS_ADDR" description:"prometheus metrics listen address" default:":9100"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("operation watcher failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	client, err := sequencer.NewClient(sequencer.Config{
		BaseURL: cfg.SequencerURL,
		Timeout: cfg.SequencerTimeout,
		RPS:     cfg.SequencerRPS,
	})
	if err != nil {
		return fmt.Errorf("init sequencer client: %w", err)
	}

	tr := tracker.New(
		sequencer.NewObservedClient(client, metrics.NewSequencerClient()),
		metrics.NewTracker(),
		logger.Named("tracker"),
		tracker.WithBatchConfig(tracker.BatchConfig{
			MaxBatchSize: cfg.MaxBatchSize,
			Concurrency:  cfg.BatchConcurrency,
		}),
	)
	defer func() {
		if err := tr.Close(); err != nil {
			logger.Error("close tracker", zap.Error(err))
		}
	}()

	svc, err := watcher.NewService(repo, tr, metrics.NewWatcher(), watcher.Config{
		WorkerCount:     cfg.Workers,
		ChunkSize:       cfg.ChunkSize,
		FetchLimit:      cfg.FetchLimit,
		ResolveDeadline: cfg.ResolveDeadline,
		IdleSleep:       cfg.IdleSleep,
		PostBatchSleep:  cfg.PostBatchSleep,
	}, logger.Named("watcher"))
	if err != nil {
		return err
	}

	go serveMetrics(ctx, cfg.MetricsAddr, logger)

	logger.Info("starting operation watcher",
		zap.String("sequencer_url", cfg.SequencerURL),
		zap.Duration("resolve_deadline", cfg.ResolveDeadline))
	return svc.Run(ctx)
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to serve metrics", zap.Error(err))
	}
}
