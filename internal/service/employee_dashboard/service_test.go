package employee_dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/config"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee_dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-labs/hrms-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEntitlements = config.LeaveConfig{
	VacationDays: 15,
	SickDays:     10,
	PersonalDays: 5,
}

var testAttendance = employee_dashboard.StaticAttendanceProvider{
	Present: 20,
	Absent:  2,
	Late:    1,
}

func newTestEnv(t *testing.T) (employee_dashboard.EmployeeDashboardService, employee.Employee, *memory.LeaveRequestStore, *memory.PayrollStore) {
	t.Helper()
	ctx := context.Background()

	employees := memory.NewEmployeeStore()
	leaves := memory.NewLeaveRequestStore()
	payrolls := memory.NewPayrollStore()

	emp, err := employees.Create(ctx, employee.Employee{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	service := NewEmployeeDashboardService(employees, leaves, payrolls, testAttendance, testEntitlements)
	return service, emp, leaves, payrolls
}

func TestGetStats_LeaveBalance(t *testing.T) {
	service, emp, leaves, _ := newTestEnv(t)
	ctx := context.Background()

	// Approved requests consume balance; pending and rejected do not.
	for _, r := range []leave.LeaveRequest{
		{EmployeeID: emp.ID, Type: leave.TypeVacation, Days: 5, Status: leave.StatusApproved},
		{EmployeeID: emp.ID, Type: leave.TypeVacation, Days: 3, Status: leave.StatusPending},
		{EmployeeID: emp.ID, Type: leave.TypeSick, Days: 2, Status: leave.StatusApproved},
		{EmployeeID: emp.ID, Type: leave.TypePersonal, Days: 4, Status: leave.StatusRejected},
	} {
		_, err := leaves.Create(ctx, r)
		require.NoError(t, err)
	}

	stats, err := service.GetStats(ctx, emp.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, stats.LeaveBalance.Vacation)
	assert.Equal(t, 8, stats.LeaveBalance.Sick)
	assert.Equal(t, 5, stats.LeaveBalance.Personal)
	assert.Equal(t, 1, stats.PendingRequests)
}

func TestGetStats_FullEntitlementWithNoHistory(t *testing.T) {
	service, emp, _, _ := newTestEnv(t)

	stats, err := service.GetStats(context.Background(), emp.ID)
	require.NoError(t, err)

	assert.Equal(t, 15, stats.LeaveBalance.Vacation)
	assert.Equal(t, 10, stats.LeaveBalance.Sick)
	assert.Equal(t, 5, stats.LeaveBalance.Personal)
	assert.Zero(t, stats.PendingRequests)
	assert.Nil(t, stats.LastPayslip)
}

func TestGetStats_Attendance(t *testing.T) {
	service, emp, _, _ := newTestEnv(t)

	stats, err := service.GetStats(context.Background(), emp.ID)
	require.NoError(t, err)

	assert.Equal(t, 20, stats.AttendanceThisMonth.Present)
	assert.Equal(t, 2, stats.AttendanceThisMonth.Absent)
	assert.Equal(t, 1, stats.AttendanceThisMonth.Late)
}

func TestGetStats_LastPayslipIsLatestCreated(t *testing.T) {
	service, emp, _, payrolls := newTestEnv(t)
	ctx := context.Background()

	older := time.Date(2024, time.April, 25, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, time.May, 25, 0, 0, 0, 0, time.UTC)

	_, err := payrolls.Create(ctx, payroll.PayrollRecord{
		EmployeeID: emp.ID,
		Month:      4,
		Year:       2024,
		NetPay:     decimal.NewFromInt(6000),
		Status:     payroll.StatusPaid,
		CreatedAt:  older,
		UpdatedAt:  older,
	})
	require.NoError(t, err)

	_, err = payrolls.Create(ctx, payroll.PayrollRecord{
		EmployeeID: emp.ID,
		Month:      5,
		Year:       2024,
		NetPay:     decimal.NewFromInt(6500),
		Status:     payroll.StatusPaid,
		CreatedAt:  newer,
		UpdatedAt:  newer,
	})
	require.NoError(t, err)

	stats, err := service.GetStats(ctx, emp.ID)
	require.NoError(t, err)

	require.NotNil(t, stats.LastPayslip)
	assert.Equal(t, 5, stats.LastPayslip.Month)
	assert.True(t, stats.LastPayslip.NetPay.Equal(decimal.NewFromInt(6500)))
}

func TestGetStats_UnknownEmployee(t *testing.T) {
	service, _, _, _ := newTestEnv(t)

	_, err := service.GetStats(context.Background(), "no-such-employee")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
