package payroll

import (
	"context"
	"testing"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
	"github.com/hrms-labs/hrms-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	service  payroll.PayrollService
	employee employee.Employee
	admin    user.User
	regular  user.User
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctx := context.Background()

	payrolls := memory.NewPayrollStore()
	employees := memory.NewEmployeeStore()
	users := memory.NewUserStore()

	emp, err := employees.Create(ctx, employee.Employee{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	admin, err := users.Create(ctx, user.User{Email: "admin@hrms.com", Role: user.RoleAdmin})
	require.NoError(t, err)
	regular, err := users.Create(ctx, user.User{Email: "employee@hrms.com", Role: user.RoleEmployee})
	require.NoError(t, err)

	return testEnv{
		service:  NewPayrollService(payrolls, employees, users),
		employee: emp,
		admin:    admin,
		regular:  regular,
	}
}

func processRequest(employeeID string) payroll.ProcessPayrollRequest {
	return payroll.ProcessPayrollRequest{
		EmployeeID:    employeeID,
		Month:         5,
		Year:          2024,
		BaseSalary:    decimal.RequireFromString("7083.33"),
		Allowances:    decimal.RequireFromString("500"),
		Deductions:    decimal.RequireFromString("200"),
		Overtime:      decimal.RequireFromString("300"),
		Bonus:         decimal.RequireFromString("1000"),
		GrossPay:      decimal.RequireFromString("8883.33"),
		NetPay:        decimal.RequireFromString("6546.50"),
		TaxDeductions: decimal.RequireFromString("2136.83"),
	}
}

func TestProcessPayroll(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.service.ProcessPayroll(context.Background(), processRequest(env.employee.ID))
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.True(t, created.GrossPay.Equal(decimal.RequireFromString("8883.33")))
	assert.Nil(t, created.PayDate)
}

func TestProcessPayroll_GrossIdentityViolated(t *testing.T) {
	env := newTestEnv(t)

	req := processRequest(env.employee.ID)
	req.GrossPay = decimal.RequireFromString("9000")
	_, err := env.service.ProcessPayroll(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "gross_pay")
}

func TestProcessPayroll_NetIdentityViolated(t *testing.T) {
	env := newTestEnv(t)

	req := processRequest(env.employee.ID)
	req.NetPay = decimal.RequireFromString("7000")
	_, err := env.service.ProcessPayroll(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "net_pay")
}

func TestProcessPayroll_UnknownEmployee(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.ProcessPayroll(context.Background(), processRequest("no-such-employee"))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMarkPaid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.service.ProcessPayroll(ctx, processRequest(env.employee.ID))
	require.NoError(t, err)

	paid, err := env.service.MarkPaid(ctx, created.ID, env.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	assert.NotNil(t, paid.PayDate)
	require.NotNil(t, paid.PaidBy)
	assert.Equal(t, env.admin.ID, *paid.PaidBy)
}

func TestMarkPaid_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.service.ProcessPayroll(ctx, processRequest(env.employee.ID))
	require.NoError(t, err)

	_, err = env.service.MarkPaid(ctx, created.ID, env.regular.ID)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.service.ProcessPayroll(ctx, processRequest(env.employee.ID))
	require.NoError(t, err)

	_, err = env.service.MarkPaid(ctx, created.ID, env.admin.ID)
	require.NoError(t, err)

	_, err = env.service.MarkPaid(ctx, created.ID, env.admin.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)
}

func TestUpdateRecord_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	status := "paid"
	_, err := env.service.UpdateRecord(context.Background(), "no-such-record", payroll.UpdatePayrollRecordRequest{
		Status: &status,
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestUpdateRecord_BonusAloneBreaksGrossIdentity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.service.ProcessPayroll(ctx, processRequest(env.employee.ID))
	require.NoError(t, err)

	bonus := decimal.RequireFromString("2000")
	_, err = env.service.UpdateRecord(ctx, created.ID, payroll.UpdatePayrollRecordRequest{
		Bonus: &bonus,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "gross_pay")
}

func TestUpdateRecord_ConsistentMoneyUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.service.ProcessPayroll(ctx, processRequest(env.employee.ID))
	require.NoError(t, err)

	// +1000 bonus carried through gross and net.
	bonus := decimal.RequireFromString("2000")
	gross := decimal.RequireFromString("9883.33")
	net := decimal.RequireFromString("7546.50")
	updated, err := env.service.UpdateRecord(ctx, created.ID, payroll.UpdatePayrollRecordRequest{
		Bonus:    &bonus,
		GrossPay: &gross,
		NetPay:   &net,
	})
	require.NoError(t, err)
	assert.True(t, updated.GrossPay.Equal(gross))
	assert.True(t, updated.NetPay.Equal(net))
}

func TestListRecordsByEmployee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.service.ProcessPayroll(ctx, processRequest(env.employee.ID))
	require.NoError(t, err)

	second := processRequest(env.employee.ID)
	second.Month = 6
	_, err = env.service.ProcessPayroll(ctx, second)
	require.NoError(t, err)

	list, err := env.service.ListRecordsByEmployee(ctx, env.employee.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
