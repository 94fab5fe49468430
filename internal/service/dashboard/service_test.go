package dashboard

import (
	"context"
	"testing"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/department"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-labs/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAdminStats(t *testing.T) {
	ctx := context.Background()

	employees := memory.NewEmployeeStore()
	departments := memory.NewDepartmentStore(employees)
	leaves := memory.NewLeaveRequestStore()
	payrolls := memory.NewPayrollStore()

	for _, name := range []string{"Engineering", "Marketing"} {
		_, err := departments.Create(ctx, department.Department{Name: name})
		require.NoError(t, err)
	}

	for _, e := range []employee.Employee{
		{EmployeeCode: "EMP001", Status: employee.StatusActive},
		{EmployeeCode: "EMP002", Status: employee.StatusActive},
		{EmployeeCode: "EMP003", Status: employee.StatusTerminated},
	} {
		_, err := employees.Create(ctx, e)
		require.NoError(t, err)
	}

	for _, status := range []leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusPending} {
		_, err := leaves.Create(ctx, leave.LeaveRequest{EmployeeID: "emp", Status: status})
		require.NoError(t, err)
	}

	for _, status := range []payroll.Status{payroll.StatusPending, payroll.StatusPaid} {
		_, err := payrolls.Create(ctx, payroll.PayrollRecord{EmployeeID: "emp", Status: status})
		require.NoError(t, err)
	}

	service := NewDashboardService(employees, departments, leaves, payrolls, dashboard.StaticRatingProvider{Rating: 4.2})

	stats, err := service.GetAdminStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, 2, stats.ActiveEmployees)
	assert.Equal(t, 2, stats.PendingLeaveRequests)
	assert.Equal(t, 1, stats.PendingPayroll)
	assert.Equal(t, 2, stats.DepartmentCount)
	assert.Equal(t, 4.2, stats.AverageRating)
}

func TestGetAdminStats_EmptyStores(t *testing.T) {
	employees := memory.NewEmployeeStore()
	service := NewDashboardService(
		employees,
		memory.NewDepartmentStore(employees),
		memory.NewLeaveRequestStore(),
		memory.NewPayrollStore(),
		dashboard.StaticRatingProvider{Rating: 4.2},
	)

	stats, err := service.GetAdminStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalEmployees)
	assert.Zero(t, stats.ActiveEmployees)
	assert.Zero(t, stats.PendingLeaveRequests)
	assert.Zero(t, stats.PendingPayroll)
	assert.Zero(t, stats.DepartmentCount)
	assert.Equal(t, 4.2, stats.AverageRating)
}
