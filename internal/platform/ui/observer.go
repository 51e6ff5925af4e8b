// internal/platform/ui/observer.go
package ui

import (
	"context"
	"fmt"

	"crackbench/internal/core/ports"
)

// Observer traduce eventos del análisis a llamadas del Presenter.
type Observer struct {
	presenter Presenter
}

// NewObserver crea un observer sobre un presenter.
func NewObserver(p Presenter) *Observer {
	if p == nil {
		p = NewNoopPresenter()
	}
	return &Observer{presenter: p}
}

// Notify implementa ports.Notifier. Eventos desconocidos se ignoran.
func (o *Observer) Notify(_ context.Context, event ports.Event) error {
	switch data := event.Data.(type) {
	case ports.AnalysisStartedEvent:
		o.presenter.Start(AnalysisInfo{ID: data.AnalysisID, URL: data.URL, HashMode: data.HashMode})
	case ports.AttackStartedEvent:
		o.presenter.StartAttack(data.Strategy, data.WordlistSize)
	case ports.AttackCompletedEvent:
		o.presenter.FinishAttack(data.Result)
	case ports.AnalysisCompletedEvent:
		o.presenter.Finish(data.Report)
	case ports.AnalysisFailedEvent:
		o.presenter.Error(fmt.Sprintf("analysis %s failed: %v", data.AnalysisID, data.Err))
	}
	return nil
}

var _ ports.Notifier = (*Observer)(nil)
