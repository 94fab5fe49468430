package department

import (
	"context"
	"testing"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/department"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (department.DepartmentService, *memory.EmployeeStore) {
	t.Helper()

	employees := memory.NewEmployeeStore()
	departments := memory.NewDepartmentStore(employees)
	return NewDepartmentService(departments, employees), employees
}

func TestCreateDepartment(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateDepartment(context.Background(), department.CreateDepartmentRequest{
		Name:        "Engineering",
		Description: "Software development and technical operations",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.EmployeeCount)
}

func TestCreateDepartment_DuplicateName(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)

	_, err = service.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
}

func TestDeleteDepartment_RefusedWhileInUse(t *testing.T) {
	service, employees := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)

	_, err = employees.Create(ctx, employee.Employee{
		EmployeeCode: "EMP001",
		DepartmentID: created.ID,
	})
	require.NoError(t, err)

	err = service.DeleteDepartment(ctx, created.ID)
	assert.ErrorIs(t, err, department.ErrDepartmentInUse)

	// Once the employee moves on, the delete goes through.
	list, err := employees.List(ctx)
	require.NoError(t, err)
	require.NoError(t, employees.Delete(ctx, list[0].ID))
	require.NoError(t, service.DeleteDepartment(ctx, created.ID))
}

func TestDeleteDepartment_UnknownID(t *testing.T) {
	service, _ := newTestService(t)

	err := service.DeleteDepartment(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestUpdateDepartment_RenameToExistingName(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	marketing, err := service.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Marketing"})
	require.NoError(t, err)

	taken := "Engineering"
	_, err = service.UpdateDepartment(ctx, marketing.ID, department.UpdateDepartmentRequest{Name: &taken})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)

	// Renaming to its own current name is fine.
	own := "Marketing"
	_, err = service.UpdateDepartment(ctx, marketing.ID, department.UpdateDepartmentRequest{Name: &own})
	assert.NoError(t, err)
}

func TestGetDepartment_CountsEmployees(t *testing.T) {
	service, employees := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)

	for _, code := range []string{"EMP001", "EMP002"} {
		_, err = employees.Create(ctx, employee.Employee{EmployeeCode: code, DepartmentID: created.ID})
		require.NoError(t, err)
	}

	fetched, err := service.GetDepartment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.EmployeeCount)
}
