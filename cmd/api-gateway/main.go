package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/metrics"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/repository/clickhouse"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/sequencer"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/tracker"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/transport"
)

var config struct {
	Addr             string        `long:"addr" env:"OPTRACKER_API_GATEWAY_ADDR" description:"grpc addr" default:":8000"`
	RestAddr         string        `long:"rest-addr" env:"OPTRACKER_API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"OPTRACKER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	SequencerURL     string        `long:"sequencer-url" env:"OPTRACKER_SEQUENCER_URL" description:"status service base url" required:"true"`
	SequencerTimeout time.Duration `long:"sequencer-timeout" env:"OPTRACKER_SEQUENCER_TIMEOUT" description:"timeout of a single status service request" default:"30s"`
	SequencerRPS     int           `long:"sequencer-rps" env:"OPTRACKER_SEQUENCER_RPS" description:"status service requests per second, 0 disables the cap" default:"10"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Init repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close repository", zap.Error(err))
		}
	}()

	client, err := sequencer.NewClient(sequencer.Config{
		BaseURL: config.SequencerURL,
		Timeout: config.SequencerTimeout,
		RPS:     config.SequencerRPS,
	})
	if err != nil {
		logger.Fatal("Init sequencer client", zap.Error(err))
	}
	tr := tracker.New(
		sequencer.NewObservedClient(client, metrics.NewSequencerClient()),
		metrics.NewTracker(),
		logger.Named("tracker"),
	)
	defer func() {
		if err := tr.Close(); err != nil {
			logger.Error("Failed to close tracker", zap.Error(err))
		}
	}()

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Dial gRPC server", zap.Error(err))
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux(
		gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)),
	)
	if err := transport.NewOperationHandler(tr, repo, logger.Named("transport")).Register(gw); err != nil {
		logger.Fatal("Register operation handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
