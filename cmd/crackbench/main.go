// cmd/crackbench/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crackbench/internal/adapters/output"
	"crackbench/internal/bootstrap"
	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/config"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
	"crackbench/internal/platform/ui"
	"crackbench/internal/platform/validator"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load centralized config (handles help/version internally)
	cfg, err := config.Load(version, commit, date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		return 2
	}

	if cfg.Core.URL == "" || cfg.Core.Hash == "" {
		fmt.Fprintln(os.Stderr, "Error: --url and --hash are required")
		fmt.Fprintln(os.Stderr, "Usage: crackbench -u <url> -H <hash>")
		fmt.Fprintln(os.Stderr, "Try: crackbench -h for help")
		return 2
	}

	// 2. Shared logger
	logger := logx.NewWithLevel(logx.ParseLevel(cfg.Core.LogLevel))
	logger.Info("crackbench starting",
		"version", version,
		"commit", commit,
		"url", cfg.Core.URL,
		"hash_mode", cfg.Core.HashMode,
		"parallel", cfg.Core.ParallelAttacks,
		"attack_workers", cfg.Core.AttackWorkers,
	)
	if !validator.MatchesMode(cfg.Core.Hash, cfg.Core.HashMode) {
		logger.Warn("hash does not look like a digest of the selected mode",
			"hash_mode", cfg.Core.HashMode,
			"expected_hex_len", validator.DigestLength(cfg.Core.HashMode),
			"got_len", len(cfg.Core.Hash),
		)
	}

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals(cfg.Core.TimeoutS)
	defer cancel()

	// 4. Observers: presenter and optional streaming of partial results
	presenter := ui.New(ui.UIMode(cfg.Output.UIMode))
	defer presenter.Close()

	observers := []ports.Notifier{ui.NewObserver(presenter)}
	var stream *output.StreamingWriter
	if cfg.Output.Stream {
		stream = output.NewStreamingWriter(cfg.Output.Dir, logger)
		observers = append(observers, stream)
	}

	// 5. Build collaborators
	components, err := bootstrap.Build(ctx, cfg, logger, observers...)
	if err != nil {
		logger.Err(err, "phase", "build")
		presenter.Error(err.Error())
		return 2
	}
	defer func() {
		if err := components.Close(); err != nil {
			logger.Warn("failed to release resources", "error", err.Error())
		}
	}()

	// 6. Execute analysis
	start := time.Now()
	report, runErr := components.Analyzer.Run(ctx, domain.AnalysisRequest{
		URL:        cfg.Core.URL,
		TargetHash: cfg.Core.Hash,
		HashMode:   cfg.Core.HashMode,
	})
	elapsed := time.Since(start)

	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
		if errors.Is(runErr, domain.ErrInvalidInput) {
			return 2
		}
		return 1
	}

	// 7. Write outputs
	if err := writeOutputs(cfg, report); err != nil {
		logger.Err(err, "phase", "output")
		return 1
	}
	if stream != nil {
		if err := stream.Cleanup(report.ID); err != nil {
			logger.Warn("failed to remove partial results", "error", err.Error())
		}
	}

	logger.Info("crackbench finished",
		"elapsed_ms", elapsed.Milliseconds(),
		"cracked", report.CrackedCount(),
		"brute_force", report.Results.BruteForce.Time,
	)
	return 0
}

// writeOutputs decides and executes outputs based on config.
func writeOutputs(cfg config.Config, report *domain.Report) error {
	path, err := output.OutputJSON(cfg.Output.Dir, report)
	if err != nil {
		return fmt.Errorf("json output: %w", err)
	}

	if !cfg.Output.TableDisabled {
		if err := output.OutputTable(os.Stdout, report); err != nil {
			return fmt.Errorf("table output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Report written to %s\n", path)
	}
	return nil
}

// rootContextWithSignals creates a root context with optional timeout and signal cancellation.
// Returns a context and cancel function that cleans up all resources (signals, goroutines).
func rootContextWithSignals(timeoutSeconds int) (context.Context, context.CancelFunc) {
	var base context.Context
	var baseCancel context.CancelFunc

	if timeoutSeconds > 0 {
		base, baseCancel = context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	} else {
		base, baseCancel = context.WithCancel(context.Background())
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}
	return base, cleanup
}
