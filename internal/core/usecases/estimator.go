// internal/core/usecases/estimator.go
package usecases

import (
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"crackbench/internal/core/domain"
)

const (
	// DefaultCharsetSize is the printable ASCII alphabet.
	DefaultCharsetSize = 95

	// DefaultGuessesPerSecond approximates a high-end multi-GPU rig.
	DefaultGuessesPerSecond = 1e11

	// DefaultPasswordLength is assumed when no attack recovered the password.
	DefaultPasswordLength = 8

	secondsPerYear = 365 * 24 * 3600
	yearsCap       = 1000
)

// CappedEstimate is reported when exhaustive search exceeds yearsCap years.
const CappedEstimate = "1,000+ years"

// BruteForceEstimate is the theoretical cost of exhausting a keyspace.
type BruteForceEstimate struct {
	Time         string
	Combinations *big.Int
	Seconds      *big.Float
}

// EstimatorOptions overrides the keyspace parameters.
type EstimatorOptions struct {
	CharsetSize      int
	GuessesPerSecond float64
}

// Estimator computes brute-force estimates. It holds no mutable state.
type Estimator struct {
	charset *big.Int
	rate    *big.Float
	cap     *big.Float
	printer *message.Printer
}

// NewEstimator crea un estimador; valores no positivos usan los defaults.
func NewEstimator(opts EstimatorOptions) *Estimator {
	if opts.CharsetSize <= 0 {
		opts.CharsetSize = DefaultCharsetSize
	}
	if opts.GuessesPerSecond <= 0 {
		opts.GuessesPerSecond = DefaultGuessesPerSecond
	}
	return &Estimator{
		charset: big.NewInt(int64(opts.CharsetSize)),
		rate:    new(big.Float).SetFloat64(opts.GuessesPerSecond),
		cap:     new(big.Float).SetInt64(yearsCap * secondsPerYear),
		printer: message.NewPrinter(language.English),
	}
}

var defaultEstimator = NewEstimator(EstimatorOptions{})

// Estimate uses the default charset and guess rate.
func Estimate(length int) BruteForceEstimate {
	return defaultEstimator.Estimate(length)
}

// Estimate returns charset^length combinations and the human-readable time to
// exhaust them. Negative lengths are treated as 0.
func (e *Estimator) Estimate(length int) BruteForceEstimate {
	if length < 0 {
		length = 0
	}

	combinations := new(big.Int).Exp(e.charset, big.NewInt(int64(length)), nil)
	seconds := new(big.Float).Quo(new(big.Float).SetInt(combinations), e.rate)

	return BruteForceEstimate{
		Time:         e.format(seconds),
		Combinations: combinations,
		Seconds:      seconds,
	}
}

func (e *Estimator) format(seconds *big.Float) string {
	if seconds.Cmp(e.cap) > 0 {
		return CappedEstimate
	}
	years, _ := new(big.Float).Quo(seconds, big.NewFloat(secondsPerYear)).Float64()
	return e.printer.Sprintf("%.0f years", years)
}

// Result converts the estimate into the report entry for length.
func (b BruteForceEstimate) Result(length int) domain.BruteForceResult {
	return domain.BruteForceResult{
		Time:           b.Time,
		Combinations:   b.Combinations,
		PasswordLength: length,
	}
}

// CrackedLength folds attack results in the order given: the last cracked
// result wins. With none cracked it returns DefaultPasswordLength.
func CrackedLength(results ...domain.AttackResult) int {
	length := DefaultPasswordLength
	for _, r := range results {
		if r.IsCracked() {
			length = r.PasswordLength()
		}
	}
	return length
}
