package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/department"
)

// EmployeeCounter reports how many employees reference a department. The
// department store consults it before a delete so a department with members
// cannot be removed.
type EmployeeCounter interface {
	CountByDepartmentID(ctx context.Context, departmentID string) (int, error)
}

type DepartmentStore struct {
	mu          sync.RWMutex
	departments []department.Department
	employees   EmployeeCounter
}

func NewDepartmentStore(employees EmployeeCounter) *DepartmentStore {
	return &DepartmentStore{employees: employees}
}

func (s *DepartmentStore) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	s.departments = append(s.departments, dept)
	return dept, nil
}

func (s *DepartmentStore) GetByID(ctx context.Context, id string) (department.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (s *DepartmentStore) GetByName(ctx context.Context, name string) (department.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (s *DepartmentStore) List(ctx context.Context) ([]department.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]department.Department, len(s.departments))
	copy(out, s.departments)
	return out, nil
}

func (s *DepartmentStore) Update(ctx context.Context, id string, updates department.UpdateDepartmentRequest) (department.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.departments {
		if d.ID != id {
			continue
		}

		if updates.Name != nil {
			d.Name = *updates.Name
		}
		if updates.Description != nil {
			d.Description = *updates.Description
		}
		if updates.ManagerID != nil {
			d.ManagerID = updates.ManagerID
		}
		d.UpdatedAt = time.Now().UTC()

		s.departments[i] = d
		return d, nil
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (s *DepartmentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.departments {
		if d.ID != id {
			continue
		}

		count, err := s.employees.CountByDepartmentID(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return department.ErrDepartmentInUse
		}

		s.departments = append(s.departments[:i:i], s.departments[i+1:]...)
		return nil
	}
	return department.ErrDepartmentNotFound
}
