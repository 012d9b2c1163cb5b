// Package batchhandler exposes the batch entry points of the engine:
// weekly task generation, overdue marking, weekly aggregation, manager
// assignment and the monthly salary computation.
package batchhandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coderank/internal/domain/assignment"
	"coderank/internal/domain/compensation"
	"coderank/internal/domain/evaluation"
	"coderank/internal/domain/week"
	"coderank/internal/platform/metrics"
	"coderank/internal/transport/http/api"
	"coderank/internal/transport/http/middleware"
)

type Handler struct {
	Evaluation   *evaluation.Store
	Compensation *compensation.PGStore
	Metrics      *metrics.Collector
}

func NewHandler(db *pgxpool.Pool, collector *metrics.Collector) *Handler {
	return &Handler{
		Evaluation:   evaluation.NewStore(db),
		Compensation: compensation.NewStore(db),
		Metrics:      collector,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/batch", func(r chi.Router) {
		r.Post("/weekly-tasks", h.handleGenerateWeeklyTasks)
		r.Post("/overdue", h.handleMarkOverdue)
		r.Post("/weekly-results", h.handleAggregateWeek)
		r.Post("/assign-managers", h.handleAssignManagers)
		r.Post("/monthly-salaries", h.handleComputeMonth)
	})
}

func (h *Handler) targetWeek(w http.ResponseWriter, r *http.Request) (string, bool) {
	target := r.URL.Query().Get("week")
	if target == "" {
		target = week.Identifier(time.Now().UTC())
	}
	if !week.Valid(target) {
		api.Fail(w, http.StatusBadRequest, "invalid_week", "week must look like 2025-W07", middleware.GetRequestID(r.Context()))
		return "", false
	}
	return target, true
}

func (h *Handler) record(start time.Time, records, entityErrors int, failed bool) {
	if h.Metrics != nil {
		h.Metrics.RecordBatch(records, entityErrors, failed, time.Since(start))
	}
}

func (h *Handler) handleGenerateWeeklyTasks(w http.ResponseWriter, r *http.Request) {
	target, ok := h.targetWeek(w, r)
	if !ok {
		return
	}

	start := time.Now()
	summary, err := evaluation.GenerateWeeklyTasks(r.Context(), h.Evaluation, target, time.Now().UTC())
	if err != nil {
		h.record(start, 0, 0, true)
		api.Fail(w, http.StatusInternalServerError, "generation_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	h.record(start, summary.TasksCreated+summary.PenaltiesCreated, len(summary.Errors), false)
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMarkOverdue(w http.ResponseWriter, r *http.Request) {
	target, ok := h.targetWeek(w, r)
	if !ok {
		return
	}

	marked, err := h.Evaluation.MarkOverdue(r.Context(), target, time.Now().UTC())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "overdue_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"week": target, "tasksMarkedOverdue": marked}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAggregateWeek(w http.ResponseWriter, r *http.Request) {
	target, ok := h.targetWeek(w, r)
	if !ok {
		return
	}

	formula := evaluation.Formula(r.URL.Query().Get("formula"))
	switch formula {
	case "", evaluation.FormulaAdditive, evaluation.FormulaMultiplicative:
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_formula", "formula must be additive or multiplicative", middleware.GetRequestID(r.Context()))
		return
	}

	start := time.Now()
	summary, err := evaluation.AggregateWeek(r.Context(), h.Evaluation, target, formula)
	if err != nil {
		h.record(start, 0, 0, true)
		api.Fail(w, http.StatusInternalServerError, "aggregation_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	h.record(start, summary.ResultsCreated, len(summary.Errors), false)
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAssignManagers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	summary, err := assignment.Run(r.Context(), h.Evaluation.Directory)
	if err != nil {
		h.record(start, 0, 0, true)
		api.Fail(w, http.StatusInternalServerError, "assignment_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	h.record(start, summary.CapabilityAssigned+summary.ProjectAssigned, len(summary.Errors), false)
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleComputeMonth(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("month")
	if target == "" {
		target = time.Now().UTC().Format("2006-01")
	}
	if _, _, err := compensation.ParseMonth(target); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "month must look like 2025-03", middleware.GetRequestID(r.Context()))
		return
	}

	start := time.Now()
	summary, err := compensation.ComputeMonth(r.Context(), h.Compensation, target)
	if err != nil {
		h.record(start, 0, 0, true)
		api.Fail(w, http.StatusInternalServerError, "compensation_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	h.record(start, len(summary.Breakdowns), len(summary.Errors), false)
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}
