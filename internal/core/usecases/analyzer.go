// internal/core/usecases/analyzer.go
package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
	"crackbench/internal/platform/workerpool"
)

// DefaultMaxKeywords caps how many seeds feed the assembler.
const DefaultMaxKeywords = 5

// Analyzer coordina un análisis completo: palabras clave, candidatos, los tres
// ataques y la estimación de fuerza bruta.
type Analyzer struct {
	keywords   ports.KeywordSource
	assembler  *Assembler
	attacks    *AttackRunner
	estimator  *Estimator
	dictionary PersistentWordlist
	repository ports.ReportRepository
	observers  []ports.Notifier
	logger     logx.Logger

	// Configuración
	rounds      int
	maxKeywords int
	parallel    bool
	pool        *workerpool.Pool
}

// AnalyzerOptions configura el analyzer.
type AnalyzerOptions struct {
	Keywords   ports.KeywordSource
	Assembler  *Assembler
	Attacks    *AttackRunner
	Estimator  *Estimator
	Dictionary PersistentWordlist

	// Repository is optional; reports are kept only when set.
	Repository ports.ReportRepository
	Observers  []ports.Notifier
	Logger     logx.Logger

	Rounds      int
	MaxKeywords int

	// ParallelAttacks runs the three attacks concurrently. Results are still
	// folded in priority order.
	ParallelAttacks bool

	// AttackWorkers bounds concurrent attacks when ParallelAttacks is set
	// (0 = one per attack). AttackScheduler picks the start order.
	AttackWorkers   int
	AttackScheduler workerpool.Scheduler
}

// NewAnalyzer crea una nueva instancia del analyzer.
func NewAnalyzer(opts AnalyzerOptions) *Analyzer {
	if opts.Rounds <= 0 {
		opts.Rounds = DefaultRounds
	}
	if opts.MaxKeywords <= 0 {
		opts.MaxKeywords = DefaultMaxKeywords
	}
	if opts.Estimator == nil {
		opts.Estimator = defaultEstimator
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	logger := opts.Logger.With("component", "analyzer")
	return &Analyzer{
		keywords:    opts.Keywords,
		assembler:   opts.Assembler,
		attacks:     opts.Attacks,
		estimator:   opts.Estimator,
		dictionary:  opts.Dictionary,
		repository:  opts.Repository,
		observers:   opts.Observers,
		logger:      logger,
		rounds:      opts.Rounds,
		maxKeywords: opts.MaxKeywords,
		parallel:    opts.ParallelAttacks,
		pool: workerpool.New(workerpool.Config{
			Workers:   opts.AttackWorkers,
			Scheduler: opts.AttackScheduler,
			Logger:    logger,
		}),
	}
}

// Run executes one analysis. Validation and keyword extraction errors abort the
// run; predictor and attack failures are recorded in the report.
func (a *Analyzer) Run(ctx context.Context, req domain.AnalysisRequest) (*domain.Report, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	report := domain.NewReport(uuid.NewString(), req)
	log := a.logger.With("analysis", report.ID)

	log.Info("starting analysis", "url", req.URL, "hash_mode", req.HashMode, "parallel", a.parallel)
	a.notify(ctx, ports.NewEvent(ports.EventTypeAnalysisStarted, "analyzer",
		ports.AnalysisStartedEvent{AnalysisID: report.ID, URL: req.URL, HashMode: req.HashMode}))

	plans, skipped, err := a.prepare(ctx, report)
	if err != nil {
		log.Warn("analysis aborted", "error", err.Error())
		a.notify(ctx, ports.NewEvent(ports.EventTypeAnalysisFailed, "analyzer",
			ports.AnalysisFailedEvent{AnalysisID: report.ID, Err: err}))
		return nil, err
	}

	results := append(a.executeAttacks(ctx, report, plans), skipped...)
	for _, res := range results {
		if err := report.Results.SetAttack(res); err != nil {
			log.Warn("discarding result", "strategy", res.Strategy.String(), "error", err.Error())
		}
	}

	length := CrackedLength(report.Results.Attacks()...)
	report.Results.BruteForce = a.estimator.Estimate(length).Result(length)
	report.Finalize()

	log.Info("analysis completed",
		"keywords", len(report.Keywords),
		"cracked", report.CrackedCount(),
		"password_length", length,
		"brute_force", report.Results.BruteForce.Time,
		"duration_ms", report.Duration.Milliseconds(),
	)

	if a.repository != nil {
		if err := a.repository.Save(ctx, report); err != nil {
			log.Warn("failed to persist report", "error", err.Error())
		}
	}

	a.notify(ctx, ports.NewEvent(ports.EventTypeAnalysisCompleted, "analyzer",
		ports.AnalysisCompletedEvent{AnalysisID: report.ID, Report: report, Duration: report.Duration}))

	return report, nil
}

// attackPlan pairs a strategy with its wordlist.
type attackPlan struct {
	strategy domain.Strategy
	source   WordlistSource
}

// prepare extrae las palabras clave y genera los conjuntos de candidatos.
// A predictor failure does not abort: ai_only and hybrid are returned as
// failed results and only the dictionary attack is planned.
func (a *Analyzer) prepare(ctx context.Context, report *domain.Report) ([]attackPlan, []domain.AttackResult, error) {
	keywords, err := a.keywords.Keywords(ctx, report.URL)
	if err != nil {
		return nil, nil, errors.Mark(err, domain.ErrKeywordSourceFailed)
	}
	if len(keywords) == 0 {
		return nil, nil, domain.ErrNoKeywords
	}
	if len(keywords) > a.maxKeywords {
		keywords = keywords[:a.maxKeywords]
	}
	report.Keywords = keywords

	plans := []attackPlan{{strategy: domain.StrategyDictionary, source: a.dictionary}}

	ai, err := a.assembler.GenerateAI(ctx, keywords, a.rounds)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrPredictorFailed):
		a.logger.Warn("skipping generated attacks", "analysis", report.ID, "error", err.Error())
		skipped := []domain.AttackResult{
			domain.NewFailedResult(domain.StrategyAIOnly, 0, err),
			domain.NewFailedResult(domain.StrategyHybrid, 0, err),
		}
		for _, res := range skipped {
			a.notify(ctx, ports.NewEvent(ports.EventTypeAttackCompleted, res.Strategy.String(),
				ports.AttackCompletedEvent{AnalysisID: report.ID, Result: res}))
		}
		return plans, skipped, nil
	default:
		return nil, nil, err
	}
	hybrid := a.assembler.GenerateHybrid(ai)

	return append(plans,
		attackPlan{strategy: domain.StrategyAIOnly, source: GeneratedWordlist{Candidates: ai.Clone()}},
		attackPlan{strategy: domain.StrategyHybrid, source: GeneratedWordlist{Candidates: hybrid.Clone()}},
	), nil, nil
}

// executeAttacks runs the plans and returns their results in plan order.
func (a *Analyzer) executeAttacks(ctx context.Context, report *domain.Report, plans []attackPlan) []domain.AttackResult {
	results := make([]domain.AttackResult, len(plans))

	if !a.parallel {
		for i, p := range plans {
			results[i] = a.executeAttack(ctx, report, p)
		}
		return results
	}

	tasks := make([]workerpool.Task, len(plans))
	for i, p := range plans {
		tasks[i] = &attackTask{analyzer: a, report: report, plan: p}
	}
	for i, tr := range a.pool.Run(ctx, tasks) {
		results[i] = tr.Task.(*attackTask).result
	}
	return results
}

// attackTask adapts one attack plan to the worker pool.
type attackTask struct {
	analyzer *Analyzer
	report   *domain.Report
	plan     attackPlan
	result   domain.AttackResult
}

func (t *attackTask) Execute(ctx context.Context) error {
	t.result = t.analyzer.executeAttack(ctx, t.report, t.plan)
	return nil
}

// Priority keeps dictionary ahead of ai_only ahead of hybrid.
func (t *attackTask) Priority() int { return -t.plan.strategy.Priority() }

func (t *attackTask) Weight() int { return t.plan.source.Size() }

func (t *attackTask) Name() string { return t.plan.strategy.String() }

func (a *Analyzer) executeAttack(ctx context.Context, report *domain.Report, p attackPlan) domain.AttackResult {
	a.notify(ctx, ports.NewEvent(ports.EventTypeAttackStarted, p.strategy.String(),
		ports.AttackStartedEvent{AnalysisID: report.ID, Strategy: p.strategy, WordlistSize: p.source.Size()}))

	res := a.attacks.RunAttack(ctx, p.strategy, p.source, report.TargetHash, report.HashMode)

	a.notify(ctx, ports.NewEvent(ports.EventTypeAttackCompleted, p.strategy.String(),
		ports.AttackCompletedEvent{AnalysisID: report.ID, Result: res}))
	return res
}

// notify entrega el evento a cada observer en orden, con timeout por observer,
// de modo que attack.started siempre precede a attack.completed.
func (a *Analyzer) notify(ctx context.Context, event ports.Event) {
	const notificationTimeout = 5 * time.Second

	for _, observer := range a.observers {
		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)

		done := make(chan error, 1)
		go func(n ports.Notifier) {
			done <- n.Notify(notifyCtx, event)
		}(observer)

		select {
		case err := <-done:
			if err != nil {
				a.logger.Warn("notification failed", "event_type", string(event.Type), "error", err.Error())
			}
		case <-notifyCtx.Done():
			a.logger.Warn("notification timeout exceeded",
				"timeout", notificationTimeout,
				"event_type", string(event.Type),
			)
		}
		cancel()
	}
}
