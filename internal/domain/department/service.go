package department

import "context"

type DepartmentService interface {
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
}
