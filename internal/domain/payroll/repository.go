package payroll

import "context"

// PayrollRepository - interface for the payroll record collection
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]PayrollRecord, error)
	List(ctx context.Context) ([]PayrollRecord, error)
	Update(ctx context.Context, id string, updates UpdatePayrollRecordRequest) (PayrollRecord, error)
	Delete(ctx context.Context, id string) error
}
