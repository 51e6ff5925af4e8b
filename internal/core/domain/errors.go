// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Input errors
	ErrInvalidInput    = errors.New("url and target hash are required")
	ErrInvalidStrategy = errors.New("invalid strategy")

	// Keyword source errors
	ErrNoKeywords          = errors.New("could not extract keywords from url")
	ErrKeywordSourceFailed = errors.New("keyword source failed")

	// Candidate generation errors
	ErrPredictorFailed = errors.New("predictor failed")

	// Cracking engine errors (recorded per attack, never fatal)
	ErrOracleFailed = errors.New("cracking engine exited with an error")

	// Wordlist errors
	ErrWordlistUnavailable = errors.New("wordlist unavailable")

	// Report errors
	ErrReportNotFound = errors.New("report not found")
)
