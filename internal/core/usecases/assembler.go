// internal/core/usecases/assembler.go
package usecases

import (
	"context"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
)

const (
	// DefaultRounds is the number of prediction steps applied to every seed.
	DefaultRounds = 3

	// DefaultWindowSize is the context length the predictor was trained with.
	DefaultWindowSize = 30
)

// Assembler produces the ai_only and hybrid candidate sets from seed keywords.
type Assembler struct {
	predictor ports.Predictor
	vocab     *domain.Vocabulary
	window    int
	logger    logx.Logger
}

// AssemblerOptions configura el assembler.
type AssemblerOptions struct {
	WindowSize int
	Logger     logx.Logger
}

// NewAssembler crea un assembler sobre un predictor y un vocabulario compartidos.
func NewAssembler(predictor ports.Predictor, vocab *domain.Vocabulary, opts AssemblerOptions) *Assembler {
	if opts.WindowSize <= 0 {
		opts.WindowSize = DefaultWindowSize
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Assembler{
		predictor: predictor,
		vocab:     vocab,
		window:    opts.WindowSize,
		logger:    opts.Logger.With("component", "assembler"),
	}
}

// GenerateAI extends every seed one predicted character at a time and collects
// every intermediate string. A step whose prediction maps to no character
// leaves the string unchanged. rounds <= 0 yields an empty set.
func (a *Assembler) GenerateAI(ctx context.Context, seeds []domain.SeedKeyword, rounds int) (domain.CandidateSet, error) {
	out := domain.NewCandidateSet()
	if rounds <= 0 {
		return out, nil
	}

	for _, seed := range seeds {
		current := string(seed)
		for step := 0; step < rounds; step++ {
			if err := ctx.Err(); err != nil {
				return domain.CandidateSet{}, err
			}

			next, err := a.predictNext(ctx, current)
			if err != nil {
				a.logger.Warn("prediction failed", "seed", string(seed), "step", step, "error", err.Error())
				return domain.CandidateSet{}, errors.Mark(err, domain.ErrPredictorFailed)
			}
			current += next
			out.Add(current)
		}
	}

	a.logger.Debug("ai candidates generated", "seeds", len(seeds), "rounds", rounds, "candidates", out.Len())
	return out, nil
}

// predictNext returns the most likely next character, or "" when the winning
// index is padding or unknown to the vocabulary.
func (a *Assembler) predictNext(ctx context.Context, text string) (string, error) {
	probs, err := a.predictor.Predict(ctx, a.vocab.Window(text, a.window))
	if err != nil {
		return "", err
	}
	ch, _ := a.vocab.Char(argmax(probs))
	return ch, nil
}

// GenerateHybrid is the union of Mutate over every AI candidate.
func (a *Assembler) GenerateHybrid(ai domain.CandidateSet) domain.CandidateSet {
	out := domain.NewCandidateSet()
	for _, candidate := range ai.Sorted() {
		out.Union(Mutate(candidate))
	}
	return out
}

// argmax devuelve el primer índice con la probabilidad máxima, o 0 si no hay datos.
func argmax(probs []float32) int {
	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return best
}
