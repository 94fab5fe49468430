package employee_dashboard

import (
	"context"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/config"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee_dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"golang.org/x/sync/errgroup"
)

type EmployeeDashboardServiceImpl struct {
	employees    employee.EmployeeRepository
	leaves       leave.LeaveRequestRepository
	payrolls     payroll.PayrollRepository
	attendance   employee_dashboard.AttendanceProvider
	entitlements config.LeaveConfig
}

func NewEmployeeDashboardService(
	employeeRepository employee.EmployeeRepository,
	leaveRepository leave.LeaveRequestRepository,
	payrollRepository payroll.PayrollRepository,
	attendanceProvider employee_dashboard.AttendanceProvider,
	entitlements config.LeaveConfig,
) employee_dashboard.EmployeeDashboardService {
	return &EmployeeDashboardServiceImpl{
		employees:    employeeRepository,
		leaves:       leaveRepository,
		payrolls:     payrollRepository,
		attendance:   attendanceProvider,
		entitlements: entitlements,
	}
}

// GetStats implements employee_dashboard.EmployeeDashboardService.
func (s *EmployeeDashboardServiceImpl) GetStats(ctx context.Context, employeeID string) (*employee_dashboard.EmployeeStatsResponse, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	stats := &employee_dashboard.EmployeeStatsResponse{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		requests, err := s.leaves.GetByEmployeeID(gctx, employeeID)
		if err != nil {
			return err
		}
		stats.LeaveBalance = s.leaveBalance(requests)
		for _, request := range requests {
			if request.Status == leave.StatusPending {
				stats.PendingRequests++
			}
		}
		return nil
	})

	g.Go(func() error {
		records, err := s.payrolls.GetByEmployeeID(gctx, employeeID)
		if err != nil {
			return err
		}
		stats.LastPayslip = lastPayslip(records)
		return nil
	})

	g.Go(func() error {
		attendance, err := s.attendance.ThisMonth(gctx, employeeID)
		if err != nil {
			return err
		}
		stats.AttendanceThisMonth = attendance
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// leaveBalance subtracts the days of every approved request from the annual
// entitlement per type. Pending and rejected requests do not consume balance.
func (s *EmployeeDashboardServiceImpl) leaveBalance(requests []leave.LeaveRequest) employee_dashboard.LeaveBalanceResponse {
	balance := employee_dashboard.LeaveBalanceResponse{
		Vacation: s.entitlements.VacationDays,
		Sick:     s.entitlements.SickDays,
		Personal: s.entitlements.PersonalDays,
	}

	for _, request := range requests {
		if request.Status != leave.StatusApproved {
			continue
		}
		switch request.Type {
		case leave.TypeVacation:
			balance.Vacation -= request.Days
		case leave.TypeSick:
			balance.Sick -= request.Days
		case leave.TypePersonal:
			balance.Personal -= request.Days
		}
	}

	return balance
}

// lastPayslip picks the most recently created record, nil when none exist.
func lastPayslip(records []payroll.PayrollRecord) *payroll.PayrollRecordResponse {
	if len(records) == 0 {
		return nil
	}

	latest := records[0]
	for _, record := range records[1:] {
		if record.CreatedAt.After(latest.CreatedAt) {
			latest = record
		}
	}

	resp := payroll.PayrollRecordResponse{
		ID:            latest.ID,
		EmployeeID:    latest.EmployeeID,
		Month:         latest.Month,
		Year:          latest.Year,
		BaseSalary:    latest.BaseSalary,
		Allowances:    latest.Allowances,
		Deductions:    latest.Deductions,
		Overtime:      latest.Overtime,
		Bonus:         latest.Bonus,
		GrossPay:      latest.GrossPay,
		NetPay:        latest.NetPay,
		TaxDeductions: latest.TaxDeductions,
		Status:        string(latest.Status),
		PaidBy:        latest.PaidBy,
		CreatedAt:     latest.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     latest.UpdatedAt.Format(time.RFC3339),
	}
	if latest.PayDate != nil {
		payDate := latest.PayDate.Format("2006-01-02")
		resp.PayDate = &payDate
	}
	return &resp
}
