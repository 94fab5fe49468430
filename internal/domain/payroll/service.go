package payroll

import "context"

type PayrollService interface {
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (PayrollRecordResponse, error)
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context) ([]PayrollRecordResponse, error)
	ListRecordsByEmployee(ctx context.Context, employeeID string) ([]PayrollRecordResponse, error)
	UpdateRecord(ctx context.Context, id string, req UpdatePayrollRecordRequest) (PayrollRecordResponse, error)
	MarkPaid(ctx context.Context, id, paidBy string) (PayrollRecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
