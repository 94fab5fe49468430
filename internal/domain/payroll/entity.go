package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// PayrollRecord - one pay period for one employee
type PayrollRecord struct {
	ID            string
	EmployeeID    string
	Month         int
	Year          int
	BaseSalary    decimal.Decimal
	Allowances    decimal.Decimal
	Deductions    decimal.Decimal
	Overtime      decimal.Decimal
	Bonus         decimal.Decimal
	GrossPay      decimal.Decimal
	NetPay        decimal.Decimal
	TaxDeductions decimal.Decimal
	Status        Status
	PayDate       *time.Time
	PaidBy        *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ExpectedGross returns baseSalary + allowances + overtime + bonus.
func (r *PayrollRecord) ExpectedGross() decimal.Decimal {
	return r.BaseSalary.Add(r.Allowances).Add(r.Overtime).Add(r.Bonus)
}

// ExpectedNet returns grossPay - deductions - taxDeductions.
func (r *PayrollRecord) ExpectedNet() decimal.Decimal {
	return r.GrossPay.Sub(r.Deductions).Sub(r.TaxDeductions)
}
