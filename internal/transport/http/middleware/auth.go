package middleware

import (
	"net/http"
	"strings"

	"coderank/internal/auth"
	"coderank/internal/transport/http/api"
)

// RequireToken guards the batch surface with the HS256 service token
// issued by the auth handler. An empty secret disables the check for
// local development.
func RequireToken(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "bearer token required", GetRequestID(r.Context()))
				return
			}
			if _, err := auth.ParseToken(secret, parts[1]); err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid token", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
