package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"crackbench/internal/core/ports"
	"crackbench/internal/platform/logx"
)

// MaxReportsLimit caps ?limit= on GET /reports.
const MaxReportsLimit = 100

// ReportHandler exposes stored reports.
type ReportHandler struct {
	repo         ports.ReportRepository
	defaultLimit int
	logger       logx.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(repo ports.ReportRepository, defaultLimit int, logger logx.Logger) *ReportHandler {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if logger == nil {
		logger = logx.NewNop()
	}
	return &ReportHandler{repo: repo, defaultLimit: defaultLimit, logger: logger.With("component", "report-handler")}
}

// List returns the latest reports, newest first.
func (h *ReportHandler) List(c fiber.Ctx) error {
	limit := h.defaultLimit
	if raw := c.Query("limit", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return jsonError(c, fiber.StatusBadRequest, "limit must be a positive integer")
		}
		limit = min(n, MaxReportsLimit)
	}

	reports, err := h.repo.List(c.Context(), limit)
	if err != nil {
		h.logger.Warn("failed to list reports", "error", err.Error())
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch reports")
	}

	return jsonSuccess(c, reports)
}

// Get returns a single report by ID.
func (h *ReportHandler) Get(c fiber.Ctx) error {
	report, err := h.repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		status, msg := statusFor(err)
		if status == fiber.StatusInternalServerError {
			h.logger.Warn("failed to fetch report", "id", c.Params("id"), "error", err.Error())
			msg = "failed to fetch report"
		}
		return jsonError(c, status, msg)
	}

	return jsonSuccess(c, report)
}
