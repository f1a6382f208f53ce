package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_ratelimit "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/ratelimit"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	raidplannerv1alpha1 "github.com/KirkDiggler/raid-planner/gen/go/raidplanner/v1alpha1"
	"github.com/KirkDiggler/raid-planner/internal/config"
	"github.com/KirkDiggler/raid-planner/internal/handlers/interceptors"
	"github.com/KirkDiggler/raid-planner/internal/logger"
)

var (
	configPath string
	grpcPort   int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the raid planner gRPC server backed by redis and the gear catalog database.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port, overrides the config file")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.Server.GRPCPort = grpcPort
	}

	log, err := logger.New(logger.Config{Mode: cfg.Log.Mode, Level: cfg.Log.Level})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		_ = log.Sync() // nolint:errcheck // stderr sync fails on some platforms
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	limiter := interceptors.NewLimiter(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryMetrics(),
			grpc_logging.UnaryServerInterceptor(logger.InterceptorLogger(log),
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_ratelimit.UnaryServerInterceptor(limiter),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic(log))),
		),
	)

	raidplannerv1alpha1.RegisterPlannerServiceServer(srv, app.Handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(
		raidplannerv1alpha1.PlannerService_ServiceDesc.ServiceName,
		grpc_health_v1.HealthCheckResponse_SERVING,
	)

	reflection.Register(srv)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		log.Info("metrics server starting", zap.Int("port", cfg.Server.MetricsPort))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("metrics server failed: %w", err)
		}
	}()
	go func() {
		log.Info("gRPC server starting", zap.Int("port", cfg.Server.GRPCPort))
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		_ = metricsSrv.Shutdown(shutdownCtx) // nolint:errcheck // best effort on exit

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		srv.Stop()
		return err
	}
}

func recoverPanic(log *zap.Logger) grpc_recovery.RecoveryHandlerFunc {
	return func(p any) error {
		log.Error("recovered from panic", zap.Any("panic", p), zap.Stack("stack"))
		return status.Error(codes.Internal, "internal error")
	}
}
