// internal/platform/ui/presenter.go
package ui

import (
	"crackbench/internal/core/domain"
)

// UIMode define el modo de visualización
type UIMode string

const (
	UIModeInteractive UIMode = "interactive" // spinners y tablas pterm (default)
	UIModeRaw         UIMode = "raw"         // una línea de log por evento
	UIModeQuiet       UIMode = "quiet"       // sin UI visual
)

// Presenter muestra el progreso de un análisis en la terminal.
type Presenter interface {
	// Start muestra la cabecera del análisis
	Start(info AnalysisInfo)

	// StartAttack notifica el inicio de un ataque
	StartAttack(strategy domain.Strategy, wordlistSize int)

	// FinishAttack notifica el resultado de un ataque
	FinishAttack(result domain.AttackResult)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish muestra el resumen final
	Finish(report *domain.Report)

	// Close limpia recursos del presenter
	Close() error
}

// AnalysisInfo contiene la información inicial del análisis
type AnalysisInfo struct {
	ID       string
	URL      string
	HashMode string
}

// New returns the presenter for mode.
func New(mode UIMode) Presenter {
	switch mode {
	case UIModeRaw:
		return NewRawPresenter(LogFormatText)
	case UIModeQuiet:
		return NewNoopPresenter()
	default:
		return NewPTermPresenter()
	}
}

// strategyLabel is the human name shown for a strategy.
func strategyLabel(s domain.Strategy) string {
	switch s {
	case domain.StrategyDictionary:
		return "Dictionary"
	case domain.StrategyAIOnly:
		return "AI only"
	case domain.StrategyHybrid:
		return "Hybrid (AI + mutations)"
	case domain.StrategyBruteForce:
		return "Brute force"
	default:
		return string(s)
	}
}

// attackStatus maps a result to its display status.
func attackStatus(r domain.AttackResult) Status {
	switch {
	case r.IsCracked():
		return StatusCracked
	case r.Failed():
		return StatusFailed
	default:
		return StatusMissed
	}
}
