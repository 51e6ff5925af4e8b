// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"crackbench/internal/core/domain"
)

// LogFormat define el formato de salida para el modo raw
type LogFormat string

const (
	LogFormatText LogFormat = "text" // Formato logfmt (default)
	LogFormatJSON LogFormat = "json" // Formato JSON estructurado
)

// RawPresenter implementa el Presenter para modo raw (logs sin formato visual)
type RawPresenter struct {
	format LogFormat
	out    io.Writer
	mu     sync.Mutex
	now    func() time.Time
}

// NewRawPresenter crea un nuevo RawPresenter que escribe en stdout
func NewRawPresenter(format LogFormat) *RawPresenter {
	return NewRawPresenterWithWriter(format, os.Stdout)
}

// NewRawPresenterWithWriter crea un RawPresenter sobre un writer arbitrario
func NewRawPresenterWithWriter(format LogFormat, w io.Writer) *RawPresenter {
	return &RawPresenter{
		format: format,
		out:    w,
		now:    time.Now,
	}
}

// log escribe un log en el formato configurado
func (r *RawPresenter) log(level, message string, fields map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
	} else {
		r.logText(timestamp, level, message, fields)
	}
}

// logText escribe en formato logfmt: timestamp LEVEL message key=value key2=value2
func (r *RawPresenter) logText(timestamp, level, message string, fields map[string]any) {
	parts := []string{timestamp, fmt.Sprintf("%-5s", level), message}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, formatValue(fields[k])))
	}

	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

// logJSON escribe en formato JSON estructurado
func (r *RawPresenter) logJSON(timestamp, level, message string, fields map[string]any) {
	entry := map[string]any{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}
	if len(fields) > 0 {
		entry["data"] = fields
	}

	b, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(r.out, "%s ERROR marshal failed: %v\n", timestamp, err)
		return
	}
	fmt.Fprintln(r.out, string(b))
}

// formatValue formatea valores para logfmt (entrecomilla strings con espacios)
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" || strings.ContainsAny(val, " \t\"=") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case time.Duration:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func (r *RawPresenter) Start(info AnalysisInfo) {
	r.log("INFO", "analysis started", map[string]any{
		"id":        info.ID,
		"url":       info.URL,
		"hash_mode": info.HashMode,
	})
}

func (r *RawPresenter) StartAttack(strategy domain.Strategy, wordlistSize int) {
	r.log("INFO", "attack started", map[string]any{
		"strategy":      string(strategy),
		"wordlist_size": wordlistSize,
	})
}

func (r *RawPresenter) FinishAttack(result domain.AttackResult) {
	fields := map[string]any{
		"strategy":      string(result.Strategy),
		"outcome":       outcome(result),
		"wordlist_size": result.WordlistSize,
	}
	if result.ElapsedMS != nil {
		fields["time_ms"] = *result.ElapsedMS
	}
	level := "INFO"
	if result.Failed() {
		level = "WARN"
		if result.Error != "" {
			fields["error"] = result.Error
		}
	}
	r.log(level, "attack finished", fields)
}

func (r *RawPresenter) Info(msg string)    { r.log("INFO", msg, nil) }
func (r *RawPresenter) Warning(msg string) { r.log("WARN", msg, nil) }
func (r *RawPresenter) Error(msg string)   { r.log("ERROR", msg, nil) }

func (r *RawPresenter) Finish(report *domain.Report) {
	if report == nil {
		return
	}
	r.log("INFO", "analysis completed", map[string]any{
		"id":               report.ID,
		"cracked":          report.CrackedCount(),
		"keywords":         len(report.Keywords),
		"brute_force_time": report.Results.BruteForce.Time,
		"duration":         report.Duration.Round(time.Millisecond),
	})
}

func (r *RawPresenter) Close() error { return nil }
