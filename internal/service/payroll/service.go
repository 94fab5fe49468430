package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employees employee.EmployeeRepository
	users     user.UserRepository
}

func NewPayrollService(payrollRepository payroll.PayrollRepository, employeeRepository employee.EmployeeRepository, userRepository user.UserRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: payrollRepository,
		employees:         employeeRepository,
		users:             userRepository,
	}
}

// ProcessPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	status := payroll.StatusPending
	if req.Status != nil {
		status = payroll.Status(*req.Status)
	}

	record := payroll.PayrollRecord{
		EmployeeID:    req.EmployeeID,
		Month:         req.Month,
		Year:          req.Year,
		BaseSalary:    req.BaseSalary,
		Allowances:    req.Allowances,
		Deductions:    req.Deductions,
		Overtime:      req.Overtime,
		Bonus:         req.Bonus,
		GrossPay:      req.GrossPay,
		NetPay:        req.NetPay,
		TaxDeductions: req.TaxDeductions,
		Status:        status,
	}
	if req.PayDate != nil {
		if payDate, ok := validator.IsValidDate(*req.PayDate); ok {
			record.PayDate = &payDate
		}
	}

	created, err := s.PayrollRepository.Create(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return toResponse(created), nil
}

// GetRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toResponse(record), nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context) ([]payroll.PayrollRecordResponse, error) {
	list, err := s.PayrollRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// ListRecordsByEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecordsByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecordResponse, error) {
	list, err := s.PayrollRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// UpdateRecord implements payroll.PayrollService. The merged record must
// still satisfy the gross/net identities, so a partial money update has to
// carry every component it shifts.
func (s *PayrollServiceImpl) UpdateRecord(ctx context.Context, id string, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if err := checkPayIdentities(mergeRecord(record, req)); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	updated, err := s.PayrollRepository.Update(ctx, id, req)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toResponse(updated), nil
}

func mergeRecord(record payroll.PayrollRecord, req payroll.UpdatePayrollRecordRequest) payroll.PayrollRecord {
	if req.Allowances != nil {
		record.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		record.Deductions = *req.Deductions
	}
	if req.Overtime != nil {
		record.Overtime = *req.Overtime
	}
	if req.Bonus != nil {
		record.Bonus = *req.Bonus
	}
	if req.GrossPay != nil {
		record.GrossPay = *req.GrossPay
	}
	if req.NetPay != nil {
		record.NetPay = *req.NetPay
	}
	if req.TaxDeductions != nil {
		record.TaxDeductions = *req.TaxDeductions
	}
	return record
}

func checkPayIdentities(record payroll.PayrollRecord) error {
	var errs validator.ValidationErrors

	expectedGross := record.BaseSalary.Add(record.Allowances).Add(record.Overtime).Add(record.Bonus)
	if !record.GrossPay.Equal(expectedGross) {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_pay",
			Message: "gross_pay must equal base_salary + allowances + overtime + bonus",
		})
	}
	expectedNet := record.GrossPay.Sub(record.Deductions).Sub(record.TaxDeductions)
	if !record.NetPay.Equal(expectedNet) {
		errs = append(errs, validator.ValidationError{
			Field:   "net_pay",
			Message: "net_pay must equal gross_pay - deductions - tax_deductions",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkPaid implements payroll.PayrollService. Marking stamps today's date as
// the pay date and records who ran the payout.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id, paidBy string) (payroll.PayrollRecordResponse, error) {
	payer, err := s.users.GetByID(ctx, paidBy)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if !payer.IsAdmin() {
		return payroll.PayrollRecordResponse{}, user.ErrAdminPrivilegeRequired
	}

	record, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if record.Status == payroll.StatusPaid {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollAlreadyPaid
	}

	status := string(payroll.StatusPaid)
	payDate := time.Now().UTC().Format("2006-01-02")
	updated, err := s.PayrollRepository.Update(ctx, id, payroll.UpdatePayrollRecordRequest{
		Status:  &status,
		PayDate: &payDate,
		PaidBy:  &payer.ID,
	})
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toResponse(updated), nil
}

// DeleteRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.PayrollRepository.Delete(ctx, id)
}

func toResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	resp := payroll.PayrollRecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Month:         r.Month,
		Year:          r.Year,
		BaseSalary:    r.BaseSalary,
		Allowances:    r.Allowances,
		Deductions:    r.Deductions,
		Overtime:      r.Overtime,
		Bonus:         r.Bonus,
		GrossPay:      r.GrossPay,
		NetPay:        r.NetPay,
		TaxDeductions: r.TaxDeductions,
		Status:        string(r.Status),
		PaidBy:        r.PaidBy,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
	if r.PayDate != nil {
		payDate := r.PayDate.Format("2006-01-02")
		resp.PayDate = &payDate
	}
	return resp
}

func toResponses(list []payroll.PayrollRecord) []payroll.PayrollRecordResponse {
	out := make([]payroll.PayrollRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toResponse(r))
	}
	return out
}
