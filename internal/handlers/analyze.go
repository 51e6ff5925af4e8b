package handlers

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"crackbench/internal/core/domain"
	"crackbench/internal/platform/logx"
)

// Runner ejecuta un análisis completo.
type Runner interface {
	Run(ctx context.Context, req domain.AnalysisRequest) (*domain.Report, error)
}

// AnalyzeResponse is the body returned by POST /analyze.
type AnalyzeResponse struct {
	ID       string               `json:"id"`
	Keywords []domain.SeedKeyword `json:"keywords"`
	Results  domain.Results       `json:"results"`
}

// AnalyzeHandler handles analysis requests.
type AnalyzeHandler struct {
	runner Runner
	logger logx.Logger
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(runner Runner, logger logx.Logger) *AnalyzeHandler {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &AnalyzeHandler{runner: runner, logger: logger.With("component", "analyze-handler")}
}

// Analyze runs one analysis synchronously and returns its results.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var req domain.AnalysisRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return jsonError(c, fiber.StatusBadRequest, msgInvalidRequest)
		}
	}

	// validar antes de tocar el navegador, el modelo o el motor
	req.Normalize()
	if err := req.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, msgMissingInput)
	}

	report, err := h.runner.Run(c.Context(), req)
	if err != nil {
		status, msg := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			h.logger.Warn("analysis failed", "url", req.URL, "status", status, "error", err.Error())
		}
		return jsonError(c, status, msg)
	}

	return c.JSON(AnalyzeResponse{
		ID:       report.ID,
		Keywords: report.Keywords,
		Results:  report.Results,
	})
}
