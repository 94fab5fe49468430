package employee

import (
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	UserID           *string           `json:"user_id,omitempty"`
	EmployeeCode     *string           `json:"employee_code,omitempty"` // generated when absent
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Email            string            `json:"email"`
	PhoneNumber      string            `json:"phone_number"`
	Position         string            `json:"position"`
	DepartmentID     string            `json:"department_id"`
	Salary           decimal.Decimal   `json:"salary"`
	HireDate         string            `json:"hire_date"` // YYYY-MM-DD
	Status           *string           `json:"status,omitempty"`
	ManagerName      *string           `json:"manager_name,omitempty"`
	AvatarURL        *string           `json:"avatar_url,omitempty"`
	Address          *Address          `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if r.EmployeeCode != nil && !validator.IsValidEmployeeCode(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match EMP followed by digits, e.g. EMP001",
		})
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active, inactive or terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries a partial update; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	FirstName        *string           `json:"first_name,omitempty"`
	LastName         *string           `json:"last_name,omitempty"`
	Email            *string           `json:"email,omitempty"`
	PhoneNumber      *string           `json:"phone_number,omitempty"`
	Position         *string           `json:"position,omitempty"`
	DepartmentID     *string           `json:"department_id,omitempty"`
	Salary           *decimal.Decimal  `json:"salary,omitempty"`
	Status           *string           `json:"status,omitempty"`
	ManagerName      *string           `json:"manager_name,omitempty"`
	AvatarURL        *string           `json:"avatar_url,omitempty"`
	Address          *Address          `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}

	if r.DepartmentID != nil && validator.IsEmpty(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must not be empty",
		})
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active, inactive or terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string           `json:"id"`
	UserID           *string          `json:"user_id,omitempty"`
	EmployeeCode     string           `json:"employee_code"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	PhoneNumber      string           `json:"phone_number"`
	Position         string           `json:"position"`
	DepartmentID     string           `json:"department_id"`
	DepartmentName   string           `json:"department_name,omitempty"`
	Salary           decimal.Decimal  `json:"salary"`
	HireDate         string           `json:"hire_date"`
	Status           string           `json:"status"`
	ManagerName      *string          `json:"manager_name,omitempty"`
	AvatarURL        *string          `json:"avatar_url,omitempty"`
	Address          Address          `json:"address"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}
