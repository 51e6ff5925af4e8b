// internal/platform/ui/noop_presenter.go
package ui

import "crackbench/internal/core/domain"

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para modo quiet o headless.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Start(info AnalysisInfo)                                {}
func (n *NoopPresenter) StartAttack(strategy domain.Strategy, wordlistSize int) {}
func (n *NoopPresenter) FinishAttack(result domain.AttackResult)                {}
func (n *NoopPresenter) Info(msg string)                                        {}
func (n *NoopPresenter) Warning(msg string)                                     {}
func (n *NoopPresenter) Error(msg string)                                       {}
func (n *NoopPresenter) Finish(report *domain.Report)                           {}
func (n *NoopPresenter) Close() error                                           { return nil }
