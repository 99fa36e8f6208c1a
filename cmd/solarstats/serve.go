package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/tofu702/solarstats/internal/config"
	"github.com/tofu702/solarstats/internal/energy"
	"github.com/tofu702/solarstats/internal/health"
	"github.com/tofu702/solarstats/internal/server"
	"github.com/tofu702/solarstats/internal/sun"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serves the JSON API, static files and Prometheus metrics until SIGINT or SIGTERM.
When server.health_port is set, the gRPC health service listens there as well.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checker := health.NewHealthChecker(health.DataDirProbe(cfg.Data.Dir))
	svc := server.NewSolarService(
		sun.NewCalculator(logger),
		energy.NewParser(cfg.Data.Dir, logger),
		checker,
		serverConfig(cfg),
		logger,
	)

	handler, err := server.SetupServer(svc)
	if err != nil {
		return fmt.Errorf("setting up server: %w", err)
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	var grpcSrv *grpc.Server
	if cfg.Server.HealthPort > 0 {
		healthAddr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.HealthPort))
		healthLis, err := net.Listen("tcp", healthAddr)
		if err != nil {
			lis.Close()
			return fmt.Errorf("listening on %s: %w", healthAddr, err)
		}
		grpcSrv = health.NewGRPCServer(checker)
		logger.WithField("addr", healthAddr).Info("Starting gRPC health server")
		go serveHealth(grpcSrv, healthLis, logger)
	}

	go handleShutdown(ctx, grpcSrv, checker, logger)

	logger.WithFields(logrus.Fields{
		"addr":     addr,
		"data_dir": cfg.Data.Dir,
		"site":     cfg.Site.Timezone,
	}).Info("Starting server")

	return server.Run(ctx, server.NewHTTPServer(addr, handler), lis, cfg.Server.ShutdownTimeout, logger)
}

func serverConfig(cfg *config.Config) server.ServerConfig {
	sc := server.DefaultServerConfig()
	sc.RateLimit = cfg.Server.RateLimit
	sc.RateLimitBurst = cfg.Server.RateLimitBurst
	sc.MaxRangeDays = cfg.Server.MaxRangeDays
	sc.StaticDir = cfg.Server.StaticDir
	sc.ExampleFile = cfg.Data.ExamplePath()
	sc.DefaultLocation = cfg.Site.Location()
	return sc
}

// serveHealth blocks until grpcSrv stops. A signal that arrives before Serve
// runs stops the server first, which Serve reports as ErrServerStopped.
func serveHealth(grpcSrv *grpc.Server, lis net.Listener, logger logrus.FieldLogger) {
	if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		logger.WithError(err).Error("gRPC health server failed")
	}
}

// handleShutdown marks the service NOT_SERVING and stops the gRPC health
// server once ctx is done. The HTTP server is stopped by server.Run.
func handleShutdown(ctx context.Context, grpcSrv *grpc.Server, checker *health.HealthChecker, logger *logrus.Logger) {
	<-ctx.Done()
	logger.Info("Received shutdown signal")

	checker.Shutdown()
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
		logger.Info("gRPC health server stopped")
	}
}
