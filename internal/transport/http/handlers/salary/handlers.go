// Package salaryhandler exposes the append-only salary config tables and
// the monthly register/statement exports.
package salaryhandler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coderank/internal/domain/compensation"
	"coderank/internal/domain/directory"
	"coderank/internal/transport/http/api"
	"coderank/internal/transport/http/middleware"
)

type Handler struct {
	Store *compensation.PGStore
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{Store: compensation.NewStore(db)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salaries", func(r chi.Router) {
		r.Get("/configs/base", h.handleListBaseConfigs)
		r.Post("/configs/base", h.handleAppendBaseConfig)
		r.Post("/configs/incentive", h.handleAppendIncentiveConfig)
		r.Post("/configs/allowance", h.handleAppendAllowanceConfig)
		r.Get("/export", h.handleExportRegister)
		r.Get("/{employeeID}/statement", h.handleStatement)
	})
}

func (h *Handler) month(w http.ResponseWriter, r *http.Request) (string, bool) {
	target := r.URL.Query().Get("month")
	if _, _, err := compensation.ParseMonth(target); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "month must look like 2025-03", middleware.GetRequestID(r.Context()))
		return "", false
	}
	return target, true
}

func (h *Handler) handleListBaseConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.Store.ListBaseSalaryConfigs(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "configs_list_failed", "failed to list configs", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, configs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAppendBaseConfig(w http.ResponseWriter, r *http.Request) {
	var cfg compensation.BaseSalaryConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid config payload", middleware.GetRequestID(r.Context()))
		return
	}
	if !directory.KnownRole(directory.Role(cfg.Role)) {
		api.Fail(w, http.StatusBadRequest, "invalid_role", "unknown role", middleware.GetRequestID(r.Context()))
		return
	}
	if _, _, err := compensation.ParseMonth(cfg.EffectiveMonth); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "effectiveMonth must look like 2025-03", middleware.GetRequestID(r.Context()))
		return
	}
	id, err := h.Store.AppendBaseSalaryConfig(r.Context(), cfg)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "config_append_failed", "failed to append config", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAppendIncentiveConfig(w http.ResponseWriter, r *http.Request) {
	var cfg compensation.IncentiveConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid config payload", middleware.GetRequestID(r.Context()))
		return
	}
	if cfg.MaxIncentive < cfg.MinIncentive {
		api.Fail(w, http.StatusBadRequest, "invalid_bounds", "maxIncentive must be >= minIncentive", middleware.GetRequestID(r.Context()))
		return
	}
	if _, _, err := compensation.ParseMonth(cfg.EffectiveMonth); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "effectiveMonth must look like 2025-03", middleware.GetRequestID(r.Context()))
		return
	}
	id, err := h.Store.AppendIncentiveConfig(r.Context(), cfg)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "config_append_failed", "failed to append config", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAppendAllowanceConfig(w http.ResponseWriter, r *http.Request) {
	var cfg compensation.AllowanceConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid config payload", middleware.GetRequestID(r.Context()))
		return
	}
	if _, _, err := compensation.ParseMonth(cfg.EffectiveMonth); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "effectiveMonth must look like 2025-03", middleware.GetRequestID(r.Context()))
		return
	}
	id, err := h.Store.AppendAllowanceConfig(r.Context(), cfg)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "config_append_failed", "failed to append config", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportRegister(w http.ResponseWriter, r *http.Request) {
	target, ok := h.month(w, r)
	if !ok {
		return
	}
	summary, err := compensation.ComputeMonth(r.Context(), h.Store, target)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to compute register", middleware.GetRequestID(r.Context()))
		return
	}
	payload, err := compensation.RegisterCSV(summary)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render register", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=salary-register-%s.csv", target))
	_, _ = w.Write(payload)
}

func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	target, ok := h.month(w, r)
	if !ok {
		return
	}
	employeeID := chi.URLParam(r, "employeeID")

	summary, err := compensation.ComputeMonth(r.Context(), h.Store, target)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to compute salaries", middleware.GetRequestID(r.Context()))
		return
	}
	for _, breakdown := range summary.Breakdowns {
		if breakdown.EmployeeID != employeeID {
			continue
		}
		payload, err := compensation.StatementPDF(breakdown)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to render statement", middleware.GetRequestID(r.Context()))
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=statement-%s-%s.pdf", employeeID, target))
		_, _ = w.Write(payload)
		return
	}
	api.Fail(w, http.StatusNotFound, "employee_not_found", "no salary breakdown for employee", middleware.GetRequestID(r.Context()))
}
