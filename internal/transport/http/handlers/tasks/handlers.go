// Package taskshandler covers the evaluator-facing task surface: listing
// a week's tasks and submitting scores on a pending one.
package taskshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coderank/internal/domain/evaluation"
	"coderank/internal/domain/week"
	"coderank/internal/transport/http/api"
	"coderank/internal/transport/http/middleware"
)

type Handler struct {
	Store *evaluation.Store
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{Store: evaluation.NewStore(db)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.handleListTasks)
		r.Get("/{taskID}", h.handleGetTask)
		r.Post("/{taskID}/complete", h.handleCompleteTask)
	})
	r.Get("/results", h.handleListResults)
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("week")
	if !week.Valid(target) {
		api.Fail(w, http.StatusBadRequest, "invalid_week", "week must look like 2025-W07", middleware.GetRequestID(r.Context()))
		return
	}
	status := evaluation.Status(r.URL.Query().Get("status"))
	if status == "" {
		status = evaluation.StatusPending
	}
	switch status {
	case evaluation.StatusPending, evaluation.StatusCompleted, evaluation.StatusOverdue:
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_status", "status must be pending, completed or overdue", middleware.GetRequestID(r.Context()))
		return
	}

	tasks, err := h.Store.ListTasksByStatus(r.Context(), target, status)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "tasks_list_failed", "failed to list tasks", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, tasks, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.Store.GetTask(r.Context(), chi.URLParam(r, "taskID"))
	if errors.Is(err, evaluation.ErrTaskNotFound) {
		api.Fail(w, http.StatusNotFound, "task_not_found", "task not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_get_failed", "failed to load task", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, task, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	var scores evaluation.TaskScores
	if err := json.NewDecoder(r.Body).Decode(&scores); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid scores payload", middleware.GetRequestID(r.Context()))
		return
	}

	taskID := chi.URLParam(r, "taskID")
	err := h.Store.CompleteTask(r.Context(), taskID, scores, time.Now().UTC())
	if errors.Is(err, evaluation.ErrTaskNotPending) {
		api.Fail(w, http.StatusConflict, "task_not_pending", "task is not pending", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_complete_failed", "failed to complete task", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": taskID, "status": string(evaluation.StatusCompleted)}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListResults(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("week")
	if !week.Valid(target) {
		api.Fail(w, http.StatusBadRequest, "invalid_week", "week must look like 2025-W07", middleware.GetRequestID(r.Context()))
		return
	}
	results, err := h.Store.ListResults(r.Context(), target)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "results_list_failed", "failed to list results", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, results, middleware.GetRequestID(r.Context()))
}
