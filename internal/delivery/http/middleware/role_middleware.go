package middleware

import (
	"net/http"

	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/pkg/response"
)

// RequireRole gates a route to the listed role ids. Must run after
// Authenticate.
func RequireRole(roleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleID(r.Context())
			if !ok {
				response.Unauthorized(w, "")
				return
			}

			for _, allowed := range roleIDs {
				if roleID == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "Insufficient permissions")
		})
	}
}

// RequireStaff allows admin and staff accounts.
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDStaff)(next)
}

// RequireAdmin allows admin accounts only.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}
