// Package bootstrap wires configuration into a ready-to-run analyzer. Both
// binaries share it so the CLI and the HTTP service behave the same.
package bootstrap

import (
	"context"
	"os"

	"crackbench/internal/adapters/hashcat"
	"crackbench/internal/adapters/keywords"
	"crackbench/internal/adapters/predictor"
	"crackbench/internal/adapters/storage"
	"crackbench/internal/core/ports"
	"crackbench/internal/core/usecases"
	"crackbench/internal/platform/config"
	"crackbench/internal/platform/dictionary"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
	"crackbench/internal/platform/resilience"
	"crackbench/internal/platform/workerpool"
)

// Components holds everything built from a Config. Close releases them.
type Components struct {
	Analyzer   *usecases.Analyzer
	Cracker    *hashcat.Cracker
	Keywords   ports.KeywordSource
	Dictionary *dictionary.Dictionary

	// Repository is Postgres when a database URL is configured, memory otherwise.
	Repository ports.ReportRepository

	logger logx.Logger
}

// Build loads the dictionary, connects the collaborators and returns the
// analyzer. Observers receive every analysis event.
func Build(ctx context.Context, cfg config.Config, logger logx.Logger, observers ...ports.Notifier) (*Components, error) {
	if logger == nil {
		logger = logx.New()
	}

	scheduler, err := workerpool.ParseScheduler(cfg.Core.AttackScheduler)
	if err != nil {
		return nil, errors.Mark(err, errors.ErrInvalidInput)
	}

	dict, err := dictionary.Load(cfg.Dictionary.Path, cfg.Dictionary.VocabularyLines)
	if err != nil {
		return nil, errors.Wrapf(err, "load dictionary %s", cfg.Dictionary.Path)
	}
	vocab := dict.Vocabulary()
	logger.Info("dictionary loaded", "path", dict.Path, "lines", dict.Lines, "vocabulary", vocab.Size())

	if cfg.Core.WorkDir != "" {
		if err := os.MkdirAll(cfg.Core.WorkDir, 0o700); err != nil {
			return nil, errors.Wrap(err, "create work dir")
		}
	}

	cracker := hashcat.New(hashcat.Options{
		ExecPath:  cfg.Hashcat.Path,
		Timeout:   cfg.Hashcat.Timeout,
		ExtraArgs: cfg.Hashcat.ExtraArgs,
		Logger:    logger,
	})
	if err := cracker.Available(); err != nil {
		// attacks will record the failure; the analysis still runs
		logger.Warn("hashcat not found", "path", cfg.Hashcat.Path, "error", err.Error())
	}

	model, err := predictor.NewTFServing(predictor.Options{
		Endpoint: cfg.Predictor.Endpoint,
		Model:    cfg.Predictor.Model,
		Timeout:  cfg.Predictor.Timeout,
		Logger:   logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "predictor")
	}

	source := keywords.New(keywords.Options{
		Mode:       cfg.Keywords.Mode,
		Wait:       cfg.Keywords.Wait,
		Timeout:    cfg.Keywords.Timeout,
		UserAgent:  cfg.Keywords.UserAgent,
		ChromePath: cfg.Keywords.ChromePath,
		CacheSize:  cfg.Keywords.CacheSize,
		CacheTTL:   cfg.Keywords.CacheTTL,
		Extract: keywords.ExtractOptions{
			MinLen: cfg.Keywords.MinLen,
			MaxLen: cfg.Keywords.MaxLen,
			Max:    cfg.Keywords.MaxKeywords,
		},
		Logger: logger,
	})

	var (
		crackerPort   ports.Cracker       = cracker
		predictorPort ports.Predictor     = model
		keywordPort   ports.KeywordSource = source
	)
	if cfg.Resilience.MaxRetries > 0 || cfg.Resilience.CircuitBreakerEnabled {
		crackerPort = resilience.NewRetryableCracker(cracker, retryOptions(cfg, cfg.Resilience.MaxRetries, logger))
		keywordPort = resilience.NewRetryableKeywordSource(source, retryOptions(cfg, cfg.Resilience.MaxRetries, logger))
		logger.Debug("engine wrapped with resilience",
			"max_retries", cfg.Resilience.MaxRetries,
			"circuit_breaker", cfg.Resilience.CircuitBreakerEnabled,
		)
	}
	if cfg.Predictor.MaxRetries > 0 || cfg.Resilience.CircuitBreakerEnabled {
		predictorPort = resilience.NewRetryablePredictor(model, retryOptions(cfg, cfg.Predictor.MaxRetries, logger))
	}

	var repo ports.ReportRepository
	if cfg.Store.DatabaseURL != "" {
		pg, err := storage.NewPostgres(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			_ = keywordPort.Close()
			return nil, errors.Wrap(err, "connect report store")
		}
		if err := pg.RunMigrations(cfg.Store.DatabaseURL); err != nil {
			_ = pg.Close()
			_ = keywordPort.Close()
			return nil, errors.Wrap(err, "migrate report store")
		}
		logger.Info("report store ready", "backend", "postgres")
		repo = pg
	} else {
		repo = storage.NewMemory(storage.DefaultMemoryCapacity)
		logger.Debug("report store ready", "backend", "memory")
	}

	materializer := usecases.NewMaterializer(cfg.Core.WorkDir, logger)

	analyzer := usecases.NewAnalyzer(usecases.AnalyzerOptions{
		Keywords: keywordPort,
		Assembler: usecases.NewAssembler(predictorPort, vocab, usecases.AssemblerOptions{
			WindowSize: cfg.Predictor.Window,
			Logger:     logger,
		}),
		Attacks: usecases.NewAttackRunner(crackerPort, materializer, usecases.AttackRunnerOptions{
			HashMode: cfg.Core.HashMode,
			Logger:   logger,
		}),
		Estimator: usecases.NewEstimator(usecases.EstimatorOptions{
			CharsetSize:      cfg.Estimator.CharsetSize,
			GuessesPerSecond: cfg.Estimator.GuessesPerSecond,
		}),
		Dictionary:      usecases.PersistentWordlist{Path: dict.Path, Lines: dict.Lines},
		Repository:      repo,
		Observers:       observers,
		Logger:          logger,
		Rounds:          cfg.Core.Rounds,
		MaxKeywords:     cfg.Keywords.MaxKeywords,
		ParallelAttacks: cfg.Core.ParallelAttacks,
		AttackWorkers:   cfg.Core.AttackWorkers,
		AttackScheduler: scheduler,
	})

	return &Components{
		Analyzer:   analyzer,
		Cracker:    cracker,
		Keywords:   keywordPort,
		Dictionary: dict,
		Repository: repo,
		logger:     logger,
	}, nil
}

// retryOptions builds the options of one wrapped collaborator. Each gets its
// own breaker so a dead predictor never opens the engine's circuit.
func retryOptions(cfg config.Config, maxRetries int, logger logx.Logger) resilience.RetryOptions {
	opts := resilience.RetryOptions{
		MaxRetries:        maxRetries,
		BackoffBase:       cfg.Resilience.BackoffBase,
		BackoffMultiplier: cfg.Resilience.BackoffMultiplier,
		Logger:            logger,
	}
	if cfg.Resilience.CircuitBreakerEnabled {
		opts.Breaker = resilience.NewCircuitBreaker(resilience.BreakerOptions{
			FailureThreshold: cfg.Resilience.CircuitBreakerThreshold,
			Timeout:          cfg.Resilience.CircuitBreakerTimeout,
			HalfOpenMax:      cfg.Resilience.CircuitBreakerHalfOpenMax,
		})
	}
	return opts
}

// Checks returns the dependency checks reported by GET /health.
func (c *Components) Checks() map[string]func(ctx context.Context) error {
	return map[string]func(ctx context.Context) error{
		"hashcat": func(context.Context) error { return c.Cracker.Available() },
		"dictionary": func(context.Context) error {
			if _, err := os.Stat(c.Dictionary.Path); err != nil {
				return err
			}
			return nil
		},
	}
}

// Close releases the keyword source and the report store.
func (c *Components) Close() error {
	var errs []error
	if c.Keywords != nil {
		if err := c.Keywords.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Repository != nil {
		if err := c.Repository.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
