// internal/adapters/output/streaming.go
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/logx"
)

// StreamingWriter escribe cada resultado de ataque a disco en cuanto termina,
// de modo que un análisis interrumpido conserva los ataques ya completados.
// Implementa ports.Notifier.
type StreamingWriter struct {
	baseDir   string
	timestamp string
	logger    logx.Logger
}

// NewStreamingWriter crea un nuevo writer de streaming.
func NewStreamingWriter(baseDir string, logger logx.Logger) *StreamingWriter {
	return &StreamingWriter{
		baseDir:   baseDir,
		timestamp: time.Now().Format("20060102_150405"),
		logger:    logger.With("component", "streaming-writer"),
	}
}

// Notify persiste los eventos attack.completed; el resto se ignora.
func (w *StreamingWriter) Notify(_ context.Context, event ports.Event) error {
	data, ok := event.Data.(ports.AttackCompletedEvent)
	if !ok {
		return nil
	}
	_, err := w.WritePartial(data.AnalysisID, data.Result)
	return err
}

// WritePartial escribe el resultado de un ataque.
// Formato: crackbench_{analysis}_{timestamp}_partial_{strategy}.json
func (w *StreamingWriter) WritePartial(analysisID string, result domain.AttackResult) (string, error) {
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := w.GeneratePartialFilename(analysisID, result.Strategy)
	path := filepath.Join(w.baseDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create partial file: %w", err)
	}
	defer f.Close()

	partial := PartialAttackResult{
		AnalysisID: analysisID,
		Result:     result,
		WrittenAt:  time.Now(),
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(partial); err != nil {
		return "", fmt.Errorf("failed to encode partial JSON: %w", err)
	}

	w.logger.Debug("partial result written",
		"strategy", string(result.Strategy),
		"file", filename,
	)
	return path, nil
}

// GeneratePartialFilename genera el nombre de archivo para un resultado parcial.
func (w *StreamingWriter) GeneratePartialFilename(analysisID string, strategy domain.Strategy) string {
	return fmt.Sprintf("crackbench_%s_%s_partial_%s.json", sanitizeName(analysisID), w.timestamp, strategy)
}

// GetPattern retorna el patrón glob de los parciales de un análisis.
func (w *StreamingWriter) GetPattern(analysisID string) string {
	return fmt.Sprintf("crackbench_%s_%s_partial_*.json", sanitizeName(analysisID), w.timestamp)
}

// Cleanup borra los parciales de un análisis una vez escrito el reporte final.
func (w *StreamingWriter) Cleanup(analysisID string) error {
	matches, err := filepath.Glob(filepath.Join(w.baseDir, w.GetPattern(analysisID)))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove partial %s: %w", m, err)
		}
	}
	return nil
}

// PartialAttackResult es el contenido de un archivo parcial.
type PartialAttackResult struct {
	AnalysisID string              `json:"analysis_id"`
	Result     domain.AttackResult `json:"result"`
	WrittenAt  time.Time           `json:"written_at"`
}

var _ ports.Notifier = (*StreamingWriter)(nil)
