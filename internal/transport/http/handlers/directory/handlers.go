package directoryhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coderank/internal/domain/directory"
	"coderank/internal/transport/http/api"
	"coderank/internal/transport/http/middleware"
	"coderank/internal/transport/http/shared"
)

type Handler struct {
	Store *directory.Store
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{Store: directory.NewStore(db)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Get("/{employeeID}", h.handleGetEmployee)
	})
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	var (
		employees []directory.Employee
		err       error
	)
	if r.URL.Query().Get("include") == "retired" {
		employees, err = h.Store.ListAll(r.Context())
	} else {
		employees, err = h.Store.ListActive(r.Context())
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employees_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.Store.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, directory.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employee, middleware.GetRequestID(r.Context()))
}

type employeePayload struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	Tier           string  `json:"tier"`
	EmploymentType string  `json:"employmentType"`
	IsEvaluated    bool    `json:"isEvaluated"`
	RetiredAt      *string `json:"retiredAt,omitempty"`
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid employee payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("role", payload.Role, "role is required")
	role := directory.Role(payload.Role)
	if payload.Role != "" && !directory.KnownRole(role) {
		v.Add("role", "unknown role")
	}
	var retiredAt *time.Time
	if payload.RetiredAt != nil {
		if parsed, ok := v.Date("retiredAt", *payload.RetiredAt); ok {
			retiredAt = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	employee := directory.Employee{
		Name:           payload.Name,
		Email:          payload.Email,
		Role:           role,
		Tier:           payload.Tier,
		EmploymentType: directory.EmploymentType(payload.EmploymentType),
		IsEvaluated:    payload.IsEvaluated,
		RetiredAt:      retiredAt,
	}

	id, err := h.Store.Create(r.Context(), employee)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}
