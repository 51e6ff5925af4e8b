// internal/core/ports/source.go
package ports

import (
	"context"

	"crackbench/internal/core/domain"
)

// KeywordSource extrae palabras clave semilla del contenido público de una URL.
// Implementations return at most a handful of lowercase tokens ranked by
// frequency; an empty slice is a valid answer.
type KeywordSource interface {
	// Name retorna el nombre del backend (ej: "browser", "static")
	Name() string

	// Keywords obtiene las palabras clave de la URL
	Keywords(ctx context.Context, url string) ([]domain.SeedKeyword, error)

	// Close libera recursos (navegadores, conexiones)
	Close() error
}

// Predictor is the next-character oracle.
//
// Predict receives a fixed-length window of vocabulary indices (left-padded
// with zeros) and returns a probability distribution indexed by vocabulary
// index. Index 0 is padding.
type Predictor interface {
	Predict(ctx context.Context, window []int) ([]float32, error)
}
