package authhandler

import (
	"encoding/json"
	"net/http"

	"coderank/internal/auth"
	"coderank/internal/platform/config"
	"coderank/internal/transport/http/api"
	"coderank/internal/transport/http/middleware"
)

type Handler struct {
	Cfg          config.Config
	AdminKeyHash string
}

func NewHandler(cfg config.Config, adminKeyHash string) *Handler {
	return &Handler{Cfg: cfg, AdminKeyHash: adminKeyHash}
}

type tokenPayload struct {
	APIKey string `json:"apiKey"`
}

// HandleToken exchanges the configured admin API key for a bearer token
// accepted by the batch surface.
func (h *Handler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var payload tokenPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid token payload", middleware.GetRequestID(r.Context()))
		return
	}
	if h.AdminKeyHash == "" {
		api.Fail(w, http.StatusServiceUnavailable, "auth_disabled", "no admin API key configured", middleware.GetRequestID(r.Context()))
		return
	}
	if err := auth.CheckKey(h.AdminKeyHash, payload.APIKey); err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid API key", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Cfg.JWTSecret, auth.Claims{Subject: "batch-runner", Role: "admin"}, h.Cfg.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"token": token}, middleware.GetRequestID(r.Context()))
}
