// internal/platform/resilience/wrappers.go
package resilience

import (
	"context"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
)

// RetryableCracker envuelve un Cracker con retry y circuit breaker.
// Only failures to run the engine are retried; a non-zero exit status is a
// result, not an error.
type RetryableCracker struct {
	cracker ports.Cracker
	retrier *Retrier
}

var _ ports.Cracker = (*RetryableCracker)(nil)

// NewRetryableCracker crea un nuevo RetryableCracker.
func NewRetryableCracker(c ports.Cracker, opts RetryOptions) *RetryableCracker {
	return &RetryableCracker{cracker: c, retrier: NewRetrier(c.Name(), opts)}
}

// Name retorna el nombre del motor subyacente.
func (r *RetryableCracker) Name() string {
	return r.cracker.Name()
}

// Crack implementa ports.Cracker.
func (r *RetryableCracker) Crack(ctx context.Context, req ports.CrackRequest) (ports.CrackOutput, error) {
	var out ports.CrackOutput
	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.cracker.Crack(ctx, req)
		return err
	})
	return out, err
}

// Retrier expone el retrier (testing/monitoring).
func (r *RetryableCracker) Retrier() *Retrier {
	return r.retrier
}

// RetryablePredictor envuelve un Predictor remoto.
type RetryablePredictor struct {
	predictor ports.Predictor
	retrier   *Retrier
}

var _ ports.Predictor = (*RetryablePredictor)(nil)

// NewRetryablePredictor crea un nuevo RetryablePredictor.
func NewRetryablePredictor(p ports.Predictor, opts RetryOptions) *RetryablePredictor {
	return &RetryablePredictor{predictor: p, retrier: NewRetrier("predictor", opts)}
}

// Predict implementa ports.Predictor.
func (r *RetryablePredictor) Predict(ctx context.Context, window []int) ([]float32, error) {
	var probs []float32
	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		probs, err = r.predictor.Predict(ctx, window)
		return err
	})
	return probs, err
}

// RetryableKeywordSource envuelve un KeywordSource.
type RetryableKeywordSource struct {
	source  ports.KeywordSource
	retrier *Retrier
}

var _ ports.KeywordSource = (*RetryableKeywordSource)(nil)

// NewRetryableKeywordSource crea un nuevo RetryableKeywordSource.
func NewRetryableKeywordSource(s ports.KeywordSource, opts RetryOptions) *RetryableKeywordSource {
	return &RetryableKeywordSource{source: s, retrier: NewRetrier(s.Name(), opts)}
}

// Name retorna el nombre del source subyacente.
func (r *RetryableKeywordSource) Name() string {
	return r.source.Name()
}

// Keywords implementa ports.KeywordSource.
func (r *RetryableKeywordSource) Keywords(ctx context.Context, url string) ([]domain.SeedKeyword, error) {
	var words []domain.SeedKeyword
	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		words, err = r.source.Keywords(ctx, url)
		return err
	})
	return words, err
}

// Close cierra el source subyacente.
func (r *RetryableKeywordSource) Close() error {
	return r.source.Close()
}
