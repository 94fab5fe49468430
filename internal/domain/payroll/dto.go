package payroll

import (
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ProcessPayrollRequest struct {
	EmployeeID    string          `json:"employee_id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	Overtime      decimal.Decimal `json:"overtime"`
	Bonus         decimal.Decimal `json:"bonus"`
	GrossPay      decimal.Decimal `json:"gross_pay"`
	NetPay        decimal.Decimal `json:"net_pay"`
	TaxDeductions decimal.Decimal `json:"tax_deductions"`
	Status        *string         `json:"status,omitempty"`
	PayDate       *string         `json:"pay_date,omitempty"` // YYYY-MM-DD
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	// Arithmetic identities: gross = base + allowances + overtime + bonus,
	// net = gross - deductions - tax_deductions.
	expectedGross := r.BaseSalary.Add(r.Allowances).Add(r.Overtime).Add(r.Bonus)
	if !r.GrossPay.Equal(expectedGross) {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_pay",
			Message: "gross_pay must equal base_salary + allowances + overtime + bonus",
		})
	}
	expectedNet := r.GrossPay.Sub(r.Deductions).Sub(r.TaxDeductions)
	if !r.NetPay.Equal(expectedNet) {
		errs = append(errs, validator.ValidationError{
			Field:   "net_pay",
			Message: "net_pay must equal gross_pay - deductions - tax_deductions",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusPending), string(StatusPaid),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be pending or paid",
		})
	}

	if r.PayDate != nil {
		if _, ok := validator.IsValidDate(*r.PayDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "pay_date",
				Message: "pay_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePayrollRecordRequest carries a partial update; nil fields are left untouched.
type UpdatePayrollRecordRequest struct {
	Allowances    *decimal.Decimal `json:"allowances,omitempty"`
	Deductions    *decimal.Decimal `json:"deductions,omitempty"`
	Overtime      *decimal.Decimal `json:"overtime,omitempty"`
	Bonus         *decimal.Decimal `json:"bonus,omitempty"`
	GrossPay      *decimal.Decimal `json:"gross_pay,omitempty"`
	NetPay        *decimal.Decimal `json:"net_pay,omitempty"`
	TaxDeductions *decimal.Decimal `json:"tax_deductions,omitempty"`
	Status        *string          `json:"status,omitempty"`
	PayDate       *string          `json:"pay_date,omitempty"`
	// PaidBy is stamped by the service when marking a record paid; it is not
	// accepted from request bodies.
	PaidBy *string `json:"-"`
}

func (r *UpdatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusPending), string(StatusPaid),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be pending or paid",
		})
	}

	if r.PayDate != nil {
		if _, ok := validator.IsValidDate(*r.PayDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "pay_date",
				Message: "pay_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollRecordResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	Overtime      decimal.Decimal `json:"overtime"`
	Bonus         decimal.Decimal `json:"bonus"`
	GrossPay      decimal.Decimal `json:"gross_pay"`
	NetPay        decimal.Decimal `json:"net_pay"`
	TaxDeductions decimal.Decimal `json:"tax_deductions"`
	Status        string          `json:"status"`
	PayDate       *string         `json:"pay_date,omitempty"`
	PaidBy        *string         `json:"paid_by,omitempty"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}
