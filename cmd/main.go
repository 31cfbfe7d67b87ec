package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zonekeeper/adapters/etcd"
	"zonekeeper/handlers"
	"zonekeeper/observability"
	"zonekeeper/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting zonekeeper service")
	observability.RegisterMetrics()

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	source, err := BuildSource(context.Background(), config, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load properties", "err", err)
		os.Exit(1)
	}
	settings, err := LoadSettings(source)
	if err != nil {
		level.Error(logger).Log("msg", "Invalid ensemble properties", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"ensemble_host", settings.Endpoint,
		"ensemble_timeout", settings.Timeout,
		"root_node", settings.RootNode,
	)

	// Acquire the ensemble connection, falling back to an embedded server
	launcher := etcd.NewLauncher(logger)
	var handle *service.ConnectionHandle
	{
		var opts []service.BootstrapperOption
		if settings.Embedded.ReadyWait > 0 {
			opts = append(opts, service.WithReadyWait(settings.Embedded.ReadyWait))
		}
		bootstrapper := service.NewBootstrapper(
			etcd.NewConnector(logger),
			launcher,
			etcd.DescriptorFactory(settings.Embedded.DataRoot, settings.Embedded.ClientPort, settings.Embedded.PeerPort),
			logger,
			opts...,
		)
		handle, err = bootstrapper.AcquireConnection(context.Background(), settings.Endpoint, settings.Timeout)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to ensemble", "state", handle.State(), "err", err)
			if closeErr := launcher.Close(); closeErr != nil {
				level.Error(logger).Log("msg", "Failed to stop embedded ensemble", "err", closeErr)
			}
			os.Exit(1)
		}
	}

	// Load zones
	zoneLoader := service.NewZoneLoader(source, logger)
	zones, bindErrs := zoneLoader.LoadZones(settings.ZoneDefinition)
	if err := service.ValidateZones(zones); err != nil {
		level.Warn(logger).Log("msg", "Zone definition is ambiguous", "err", err)
	}
	level.Info(logger).Log("msg", "Zones loaded", "count", len(zones), "binding_errors", len(bindErrs))

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(zones, handle, settings.RootNode, logger))
		handlers.RegisterMetricsHandler(e, prometheus.DefaultGatherer)
	}

	// Create gRPC server with health check
	var grpcServer *grpc.Server
	var healthServer *health.Server
	{
		grpcServer = grpc.NewServer()
		healthServer = handlers.NewHealthServer(handle)
		grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
		reflection.Register(grpcServer)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
	if err != nil {
		level.Error(logger).Log("msg", "Failed to listen", "err", err)
		shutdownEnsemble(handle, launcher, logger)
		os.Exit(1)
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()
	go func() {
		level.Info(logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			level.Error(logger).Log("msg", "gRPC server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	healthServer.Shutdown()
	grpcServer.GracefulStop()
	shutdownEnsemble(handle, launcher, logger)

	level.Info(logger).Log("msg", "Server stopped")
}

// shutdownEnsemble closes the session first, then stops any embedded server and removes its data.
func shutdownEnsemble(handle *service.ConnectionHandle, launcher *etcd.Launcher, logger log.Logger) {
	if err := handle.Close(); err != nil {
		level.Error(logger).Log("msg", "Error closing ensemble session", "err", err)
	}
	if err := launcher.Close(); err != nil {
		level.Error(logger).Log("msg", "Error stopping embedded ensemble", "err", err)
	}
}
