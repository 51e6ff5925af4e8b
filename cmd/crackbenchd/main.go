// cmd/crackbenchd/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"crackbench/internal/bootstrap"
	"crackbench/internal/platform/config"
	"crackbench/internal/platform/logx"
	"crackbench/internal/platform/metrics"
	"crackbench/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(version, commit, date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		return 2
	}

	logger := logx.NewWithLevel(logx.ParseLevel(cfg.Core.LogLevel))
	logger.Info("crackbenchd starting", "version", version, "commit", commit, "addr", cfg.Server.Addr)

	// Métricas en un registry propio, más los collectors de proceso y runtime
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsNotifier := metrics.New(reg)

	ctx := context.Background()
	components, err := bootstrap.Build(ctx, cfg, logger, metricsNotifier)
	if err != nil {
		logger.Err(err, "phase", "build")
		return 2
	}
	defer func() {
		if err := components.Close(); err != nil {
			logger.Warn("failed to release resources", "error", err.Error())
		}
	}()

	srv := server.New(cfg.Server, logger)
	srv.RegisterRoutes(server.Deps{
		Runner:     components.Analyzer,
		Repository: components.Repository,
		Checks:     components.Checks(),
		Gatherer:   reg,
	})

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Err(err, "phase", "listen")
			return 1
		}
	case <-quit:
		logger.Info("shutting down server")
		if err := srv.Shutdown(); err != nil {
			logger.Err(err, "phase", "shutdown")
			return 1
		}
	}
	logger.Info("server exited")
	return 0
}
