// Package metrics exposes analysis and attack counters to Prometheus.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
)

const namespace = "crackbench"

// Outcome label values.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeCracked   = "cracked"
	OutcomeMissed    = "missed"
	OutcomeError     = "error"
)

// Notifier records analysis events as Prometheus metrics. It implements
// ports.Notifier so it can be attached to the analyzer as an observer.
type Notifier struct {
	analyses        *prometheus.CounterVec
	attacks         *prometheus.CounterVec
	analysisSeconds prometheus.Histogram
	attackSeconds   *prometheus.HistogramVec
	wordlistSize    *prometheus.HistogramVec
	inFlight        prometheus.Gauge

	mu      sync.Mutex
	started map[string]struct{}
}

// New creates the collectors and registers them with reg. A nil reg uses
// the default registerer.
func New(reg prometheus.Registerer) *Notifier {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	n := &Notifier{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total analyses by outcome",
		}, []string{"outcome"}),
		attacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attacks_total",
			Help:      "Total attacks by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		analysisSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of a complete analysis",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		attackSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attack_duration_seconds",
			Help:      "Engine time per attack, as measured by the orchestrator",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"strategy"}),
		wordlistSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wordlist_size",
			Help:      "Candidates handed to the engine per attack",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
		}, []string{"strategy"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "analyses_in_flight",
			Help:      "Analyses currently running",
		}),
		started: make(map[string]struct{}),
	}

	reg.MustRegister(n.analyses, n.attacks, n.analysisSeconds, n.attackSeconds, n.wordlistSize, n.inFlight)
	return n
}

// Notify implements ports.Notifier.
func (n *Notifier) Notify(_ context.Context, event ports.Event) error {
	switch data := event.Data.(type) {
	case ports.AnalysisStartedEvent:
		n.begin(data.AnalysisID)
	case ports.AnalysisCompletedEvent:
		n.end(data.AnalysisID)
		n.analyses.WithLabelValues(OutcomeCompleted).Inc()
		n.analysisSeconds.Observe(data.Duration.Seconds())
	case ports.AnalysisFailedEvent:
		n.end(data.AnalysisID)
		n.analyses.WithLabelValues(OutcomeFailed).Inc()
	case ports.AttackStartedEvent:
		n.wordlistSize.WithLabelValues(string(data.Strategy)).Observe(float64(data.WordlistSize))
	case ports.AttackCompletedEvent:
		n.recordAttack(data.Result)
	}
	return nil
}

func (n *Notifier) recordAttack(r domain.AttackResult) {
	strategy := string(r.Strategy)
	switch {
	case r.IsCracked():
		n.attacks.WithLabelValues(strategy, OutcomeCracked).Inc()
	case r.Failed():
		n.attacks.WithLabelValues(strategy, OutcomeError).Inc()
	default:
		n.attacks.WithLabelValues(strategy, OutcomeMissed).Inc()
	}
	if r.ElapsedMS != nil {
		n.attackSeconds.WithLabelValues(strategy).Observe((time.Duration(*r.ElapsedMS * float64(time.Millisecond))).Seconds())
	}
}

// begin and end keep the in-flight gauge balanced even if an analysis
// reports more than one terminal event.
func (n *Notifier) begin(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.started[id]; ok {
		return
	}
	n.started[id] = struct{}{}
	n.inFlight.Inc()
}

func (n *Notifier) end(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.started[id]; !ok {
		return
	}
	delete(n.started, id)
	n.inFlight.Dec()
}

var _ ports.Notifier = (*Notifier)(nil)
