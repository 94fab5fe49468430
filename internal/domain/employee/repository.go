package employee

import "context"

// EmployeeRepository - interface for the employee collection
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, id string, updates UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	CountByDepartmentID(ctx context.Context, departmentID string) (int, error)
}
