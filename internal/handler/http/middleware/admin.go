package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shamil-erp/hr-backend-go/internal/handler/http/response"
)

// AdminOnly guards the payroll surface: only dashboard administrators may
// trigger a payroll run.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "invalid or missing token")
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.Forbidden(w, "admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
