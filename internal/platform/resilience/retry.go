// internal/platform/resilience/retry.go
package resilience

import (
	"context"
	"math"
	"time"

	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
)

// maxBackoff caps the exponential delay.
const maxBackoff = 60 * time.Second

// RetryOptions configura un Retrier.
type RetryOptions struct {
	MaxRetries        int
	BackoffBase       time.Duration
	BackoffMultiplier float64
	Breaker           *CircuitBreaker // optional
	Logger            logx.Logger
}

// Retrier re-runs failed calls with exponential backoff, optionally behind a
// circuit breaker.
type Retrier struct {
	maxRetries        int
	backoffBase       time.Duration
	backoffMultiplier float64
	breaker           *CircuitBreaker
	logger            logx.Logger
	sleep             func(ctx context.Context, d time.Duration) error
}

// NewRetrier crea un nuevo Retrier.
func NewRetrier(name string, opts RetryOptions) *Retrier {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = 1 * time.Second
	}
	if opts.BackoffMultiplier < 1.0 {
		opts.BackoffMultiplier = 2.0
	}
	if opts.Logger == nil {
		opts.Logger = logx.NewNop()
	}

	return &Retrier{
		maxRetries:        opts.MaxRetries,
		backoffBase:       opts.BackoffBase,
		backoffMultiplier: opts.BackoffMultiplier,
		breaker:           opts.Breaker,
		logger:            opts.Logger.With("component", "retrier", "target", name),
		sleep:             sleepContext,
	}
}

// Breaker returns the circuit breaker, or nil.
func (r *Retrier) Breaker() *CircuitBreaker {
	return r.breaker
}

// Do calls fn until it succeeds, a permanent error is returned, retries are
// exhausted or ctx is done.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			r.logger.Info("retrying", "attempt", attempt, "max_retries", r.maxRetries)
		}

		err := r.call(ctx, fn)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("succeeded after retry", "attempts", attempt+1)
			}
			return nil
		}

		lastErr = err
		if !Retryable(err) {
			return err
		}
		r.logger.Warn("call failed", "attempt", attempt+1, "error", err.Error())

		if attempt == r.maxRetries {
			break
		}

		backoff := r.calculateBackoff(attempt)
		r.logger.Debug("backing off before retry", "delay_ms", backoff.Milliseconds())
		if err := r.sleep(ctx, backoff); err != nil {
			return errors.Wrap(err, "context cancelled during backoff")
		}
	}

	if r.maxRetries > 0 {
		return errors.Wrapf(lastErr, "failed after %d attempts", r.maxRetries+1)
	}
	return lastErr
}

func (r *Retrier) call(ctx context.Context, fn func(ctx context.Context) error) error {
	if r.breaker == nil {
		return fn(ctx)
	}
	if err := r.breaker.allow(); err != nil {
		return err
	}
	err := fn(ctx)
	switch {
	case err == nil:
		r.breaker.RecordSuccess()
	case Retryable(err):
		r.breaker.RecordFailure()
	default:
		// caller errors say nothing about the dependency's health
		r.breaker.release()
	}
	return err
}

// calculateBackoff calcula el delay de backoff exponencial.
func (r *Retrier) calculateBackoff(attempt int) time.Duration {
	multiplier := math.Pow(r.backoffMultiplier, float64(attempt))
	backoff := time.Duration(float64(r.backoffBase) * multiplier)
	if backoff > maxBackoff || backoff <= 0 {
		backoff = maxBackoff
	}
	return backoff
}

// Retryable reports whether err is worth another attempt. Cancellation,
// missing binaries, invalid input and an open circuit are permanent.
func Retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled),
		errors.Is(err, errors.ErrBinaryNotFound),
		errors.Is(err, errors.ErrInvalidInput),
		errors.Is(err, ErrCircuitOpen),
		errors.Is(err, ErrTooManyRequests):
		return false
	default:
		var p permanent
		return !errors.As(err, &p)
	}
}

// Permanent marks err as not retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanent{err}
}

type permanent struct{ err error }

func (p permanent) Error() string { return p.err.Error() }
func (p permanent) Unwrap() error { return p.err }

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
