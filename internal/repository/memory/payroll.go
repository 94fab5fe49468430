package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
)

type PayrollStore struct {
	mu      sync.RWMutex
	records []payroll.PayrollRecord
}

func NewPayrollStore() *PayrollStore {
	return &PayrollStore{}
}

func (s *PayrollStore) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	s.records = append(s.records, record)
	return record, nil
}

func (s *PayrollStore) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (s *PayrollStore) GetByEmployeeID(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []payroll.PayrollRecord
	for _, r := range s.records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *PayrollStore) List(ctx context.Context) ([]payroll.PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]payroll.PayrollRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *PayrollStore) Update(ctx context.Context, id string, updates payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID != id {
			continue
		}

		if updates.Allowances != nil {
			r.Allowances = *updates.Allowances
		}
		if updates.Deductions != nil {
			r.Deductions = *updates.Deductions
		}
		if updates.Overtime != nil {
			r.Overtime = *updates.Overtime
		}
		if updates.Bonus != nil {
			r.Bonus = *updates.Bonus
		}
		if updates.GrossPay != nil {
			r.GrossPay = *updates.GrossPay
		}
		if updates.NetPay != nil {
			r.NetPay = *updates.NetPay
		}
		if updates.TaxDeductions != nil {
			r.TaxDeductions = *updates.TaxDeductions
		}
		if updates.Status != nil {
			r.Status = payroll.Status(*updates.Status)
		}
		if updates.PayDate != nil {
			if payDate, ok := validator.IsValidDate(*updates.PayDate); ok {
				r.PayDate = &payDate
			}
		}
		if updates.PaidBy != nil {
			r.PaidBy = updates.PaidBy
		}
		r.UpdatedAt = time.Now().UTC()

		s.records[i] = r
		return r, nil
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (s *PayrollStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i:i], s.records[i+1:]...)
			return nil
		}
	}
	return payroll.ErrPayrollRecordNotFound
}
