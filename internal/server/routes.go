package server

import (
	"context"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crackbench/internal/core/ports"
	"crackbench/internal/handlers"
)

// Deps agrupa lo que las rutas necesitan.
type Deps struct {
	Runner     handlers.Runner
	Repository ports.ReportRepository

	// Checks are reported by GET /health. The store check is added
	// automatically when a repository is set.
	Checks map[string]func(ctx context.Context) error

	// Gatherer backs GET /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	analyzeHandler := handlers.NewAnalyzeHandler(deps.Runner, s.logger)

	checks := make(map[string]handlers.CheckFunc, len(deps.Checks)+1)
	for name, fn := range deps.Checks {
		checks[name] = fn
	}
	if deps.Repository != nil {
		repo := deps.Repository
		checks["store"] = func(ctx context.Context) error { return repo.Ping(ctx) }
	}
	healthHandler := handlers.NewHealthHandler(checks)

	s.App.Post("/analyze", analyzeHandler.Analyze)
	s.App.Get("/health", healthHandler.Check)

	if deps.Repository != nil {
		reportHandler := handlers.NewReportHandler(deps.Repository, s.Cfg.ReportsLimit, s.logger)
		s.App.Get("/reports", reportHandler.List)
		s.App.Get("/reports/:id", reportHandler.Get)
	}

	if deps.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
}
