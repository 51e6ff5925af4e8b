// internal/core/ports/notifier.go
package ports

import (
	"context"
	"time"

	"crackbench/internal/core/domain"
)

// Notifier es el port para notificaciones de eventos del sistema.
// Implementa el patrón Observer para desacoplar el análisis de las métricas
// y la presentación.
type Notifier interface {
	// Notify envía una notificación para un evento
	Notify(ctx context.Context, event Event) error
}

// Event representa un evento del sistema.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Source    string
	Data      interface{}
}

// EventType define los tipos de eventos del sistema.
type EventType string

const (
	EventTypeAnalysisStarted   EventType = "analysis.started"
	EventTypeAnalysisCompleted EventType = "analysis.completed"
	EventTypeAnalysisFailed    EventType = "analysis.failed"

	EventTypeAttackStarted   EventType = "attack.started"
	EventTypeAttackCompleted EventType = "attack.completed"
)

// NewEvent crea un nuevo evento.
func NewEvent(eventType EventType, source string, data interface{}) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	}
}

// AnalysisStartedEvent datos para evento de inicio de análisis.
type AnalysisStartedEvent struct {
	AnalysisID string
	URL        string
	HashMode   string
}

// AnalysisCompletedEvent datos para evento de finalización.
type AnalysisCompletedEvent struct {
	AnalysisID string
	Report     *domain.Report
	Duration   time.Duration
}

// AnalysisFailedEvent datos para evento de análisis fallido.
type AnalysisFailedEvent struct {
	AnalysisID string
	Err        error
}

// AttackStartedEvent datos para evento de inicio de ataque.
type AttackStartedEvent struct {
	AnalysisID   string
	Strategy     domain.Strategy
	WordlistSize int
}

// AttackCompletedEvent datos para evento de ataque terminado.
type AttackCompletedEvent struct {
	AnalysisID string
	Result     domain.AttackResult
}
