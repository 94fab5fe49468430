package employee

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/department"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	departments department.DepartmentRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, departmentRepository department.DepartmentRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		departments:        departmentRepository,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.departments.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.checkEmailUnique(ctx, req.Email, ""); err != nil {
		return employee.EmployeeResponse{}, err
	}

	code := ""
	if req.EmployeeCode != nil {
		code = *req.EmployeeCode
		if _, err := s.EmployeeRepository.GetByEmployeeCode(ctx, code); err == nil {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
		}
	} else {
		generated, err := s.nextEmployeeCode(ctx)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		code = generated
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	status := employee.StatusActive
	if req.Status != nil {
		status = employee.Status(*req.Status)
	}

	emp := employee.Employee{
		UserID:       req.UserID,
		EmployeeCode: code,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
		Salary:       req.Salary,
		HireDate:     hireDate,
		Status:       status,
		ManagerName:  req.ManagerName,
		AvatarURL:    req.AvatarURL,
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		emp.EmergencyContact = *req.EmergencyContact
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.toResponse(ctx, created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	list, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]employee.EmployeeResponse, 0, len(list))
	for _, emp := range list {
		out = append(out, s.toResponse(ctx, emp))
	}
	return out, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if req.Email != nil {
		if err := s.checkEmailUnique(ctx, *req.Email, id); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	updated, err := s.EmployeeRepository.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) checkEmailUnique(ctx context.Context, email, excludeID string) error {
	list, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	for _, emp := range list {
		if emp.Email == email && emp.ID != excludeID {
			return employee.ErrEmailExists
		}
	}
	return nil
}

// nextEmployeeCode returns the next sequential EMP-prefixed code, e.g. EMP004
// when EMP003 is the highest in use.
func (s *EmployeeServiceImpl) nextEmployeeCode(ctx context.Context) (string, error) {
	list, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate employee code: %w", err)
	}

	max := 0
	for _, emp := range list {
		numeric, ok := strings.CutPrefix(emp.EmployeeCode, "EMP")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(numeric)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("EMP%03d", max+1), nil
}

func (s *EmployeeServiceImpl) toResponse(ctx context.Context, emp employee.Employee) employee.EmployeeResponse {
	departmentName := ""
	if dept, err := s.departments.GetByID(ctx, emp.DepartmentID); err == nil {
		departmentName = dept.Name
	}

	return employee.EmployeeResponse{
		ID:               emp.ID,
		UserID:           emp.UserID,
		EmployeeCode:     emp.EmployeeCode,
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		Email:            emp.Email,
		PhoneNumber:      emp.PhoneNumber,
		Position:         emp.Position,
		DepartmentID:     emp.DepartmentID,
		DepartmentName:   departmentName,
		Salary:           emp.Salary,
		HireDate:         emp.HireDate.Format("2006-01-02"),
		Status:           string(emp.Status),
		ManagerName:      emp.ManagerName,
		AvatarURL:        emp.AvatarURL,
		Address:          emp.Address,
		EmergencyContact: emp.EmergencyContact,
		CreatedAt:        emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        emp.UpdatedAt.Format(time.RFC3339),
	}
}
