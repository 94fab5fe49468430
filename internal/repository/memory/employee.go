package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
)

type EmployeeStore struct {
	mu        sync.RWMutex
	employees []employee.Employee
}

func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{}
}

func (s *EmployeeStore) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	s.employees = append(s.employees, emp)
	return emp, nil
}

func (s *EmployeeStore) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *EmployeeStore) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *EmployeeStore) List(ctx context.Context) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *EmployeeStore) Update(ctx context.Context, id string, updates employee.UpdateEmployeeRequest) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.employees {
		if e.ID != id {
			continue
		}

		if updates.FirstName != nil {
			e.FirstName = *updates.FirstName
		}
		if updates.LastName != nil {
			e.LastName = *updates.LastName
		}
		if updates.Email != nil {
			e.Email = *updates.Email
		}
		if updates.PhoneNumber != nil {
			e.PhoneNumber = *updates.PhoneNumber
		}
		if updates.Position != nil {
			e.Position = *updates.Position
		}
		if updates.DepartmentID != nil {
			e.DepartmentID = *updates.DepartmentID
		}
		if updates.Salary != nil {
			e.Salary = *updates.Salary
		}
		if updates.Status != nil {
			e.Status = employee.Status(*updates.Status)
		}
		if updates.ManagerName != nil {
			e.ManagerName = updates.ManagerName
		}
		if updates.AvatarURL != nil {
			e.AvatarURL = updates.AvatarURL
		}
		if updates.Address != nil {
			e.Address = *updates.Address
		}
		if updates.EmergencyContact != nil {
			e.EmergencyContact = *updates.EmergencyContact
		}
		e.UpdatedAt = time.Now().UTC()

		s.employees[i] = e
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *EmployeeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.employees {
		if e.ID == id {
			s.employees = append(s.employees[:i:i], s.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (s *EmployeeStore) CountByDepartmentID(ctx context.Context, departmentID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, e := range s.employees {
		if e.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}
