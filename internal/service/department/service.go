package department

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/department"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
	employees employee.EmployeeRepository
}

func NewDepartmentService(departmentRepository department.DepartmentRepository, employeeRepository employee.EmployeeRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepository,
		employees:            employeeRepository,
	}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByName(ctx, req.Name); err == nil {
		return department.DepartmentResponse{}, department.ErrDepartmentNameExists
	} else if !errors.Is(err, department.ErrDepartmentNotFound) {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}

	if req.ManagerID != nil {
		if _, err := s.employees.GetByID(ctx, *req.ManagerID); err != nil {
			return department.DepartmentResponse{}, err
		}
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return s.toResponse(ctx, created), nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return s.toResponse(ctx, dept), nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	list, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]department.DepartmentResponse, 0, len(list))
	for _, dept := range list {
		out = append(out, s.toResponse(ctx, dept))
	}
	return out, nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		if existing, err := s.DepartmentRepository.GetByName(ctx, *req.Name); err == nil && existing.ID != id {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		} else if err != nil && !errors.Is(err, department.ErrDepartmentNotFound) {
			return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
		}
	}

	if req.ManagerID != nil {
		if _, err := s.employees.GetByID(ctx, *req.ManagerID); err != nil {
			return department.DepartmentResponse{}, err
		}
	}

	updated, err := s.DepartmentRepository.Update(ctx, id, req)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return s.toResponse(ctx, updated), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	// The store refuses the delete while employees still reference the
	// department.
	return s.DepartmentRepository.Delete(ctx, id)
}

func (s *DepartmentServiceImpl) toResponse(ctx context.Context, dept department.Department) department.DepartmentResponse {
	count, err := s.employees.CountByDepartmentID(ctx, dept.ID)
	if err != nil {
		count = 0
	}

	return department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Description:   dept.Description,
		ManagerID:     dept.ManagerID,
		EmployeeCount: count,
		CreatedAt:     dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     dept.UpdatedAt.Format(time.RFC3339),
	}
}
