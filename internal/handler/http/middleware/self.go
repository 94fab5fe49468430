package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
)

// SelfOrAdmin restricts a per-employee route to admins and the employee the
// data belongs to, matched through the employee's linked user id.
func SelfOrAdmin(employees employee.EmployeeRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if role, _ := claims["role"].(string); role == string(user.RoleAdmin) {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			emp, err := employees.GetByID(r.Context(), chi.URLParam(r, "employeeID"))
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if emp.UserID == nil || *emp.UserID != userID {
				response.Forbidden(w, "Access restricted to the employee or an admin")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
