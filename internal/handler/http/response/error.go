package response

import (
	"errors"
	"net/http"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/department"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrNotAuthenticated):
		Unauthorized(w, "Not authenticated")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrInvalidRole):
		BadRequest(w, "Role must be admin or employee", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Status must be active, inactive or terminated", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has employees assigned")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Leave type must be vacation, sick or personal", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrInconsistentDayCount):
		BadRequest(w, "Days must equal the inclusive start-to-end day count", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyPaid):
		Conflict(w, "Payroll record already paid")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
