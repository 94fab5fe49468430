// Package fixtures seeds the in-memory stores with a small demo company so
// the server is usable immediately after startup.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/department"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Demo credentials created by Seed.
const (
	AdminEmail       = "admin@hrms.com"
	AdminPassword    = "admin123"
	JanePassword     = "emp123"
	MikePassword     = "mike123"
	JaneEmail        = "employee@hrms.com"
	MikeEmail        = "mike@hrms.com"
	JaneEmployeeCode = "EMP001"
)

func strPtr(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Seed populates the stores with the demo company: three users, four
// departments, three employees, two leave requests and one paid payroll
// record. It is idempotent only in the sense that it is meant to run once
// against empty stores.
func Seed(
	ctx context.Context,
	users user.UserRepository,
	departments department.DepartmentRepository,
	employees employee.EmployeeRepository,
	leaves leave.LeaveRequestRepository,
	payrolls payroll.PayrollRepository,
) error {
	hash := func(password string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash seed password: %w", err)
		}
		return string(h), nil
	}

	adminHash, err := hash(AdminPassword)
	if err != nil {
		return err
	}
	janeHash, err := hash(JanePassword)
	if err != nil {
		return err
	}
	mikeHash, err := hash(MikePassword)
	if err != nil {
		return err
	}

	admin, err := users.Create(ctx, user.User{
		Email:        AdminEmail,
		PasswordHash: adminHash,
		Role:         user.RoleAdmin,
		FirstName:    "John",
		LastName:     "Admin",
		AvatarURL:    strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"),
		CreatedAt:    date(2024, time.January, 1),
		UpdatedAt:    date(2024, time.January, 1),
	})
	if err != nil {
		return err
	}

	janeUser, err := users.Create(ctx, user.User{
		Email:        JaneEmail,
		PasswordHash: janeHash,
		Role:         user.RoleEmployee,
		FirstName:    "Jane",
		LastName:     "Smith",
		AvatarURL:    strPtr("https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face"),
		CreatedAt:    date(2024, time.January, 2),
		UpdatedAt:    date(2024, time.January, 2),
	})
	if err != nil {
		return err
	}

	mikeUser, err := users.Create(ctx, user.User{
		Email:        MikeEmail,
		PasswordHash: mikeHash,
		Role:         user.RoleEmployee,
		FirstName:    "Mike",
		LastName:     "Johnson",
		AvatarURL:    strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face"),
		CreatedAt:    date(2024, time.January, 3),
		UpdatedAt:    date(2024, time.January, 3),
	})
	if err != nil {
		return err
	}

	engineering, err := departments.Create(ctx, department.Department{
		Name:        "Engineering",
		Description: "Software development and technical operations",
		CreatedAt:   date(2024, time.January, 1),
		UpdatedAt:   date(2024, time.January, 1),
	})
	if err != nil {
		return err
	}
	_, err = departments.Create(ctx, department.Department{
		Name:        "Human Resources",
		Description: "Employee relations and organizational development",
		CreatedAt:   date(2024, time.January, 1),
		UpdatedAt:   date(2024, time.January, 1),
	})
	if err != nil {
		return err
	}
	marketing, err := departments.Create(ctx, department.Department{
		Name:        "Marketing",
		Description: "Brand promotion and customer acquisition",
		CreatedAt:   date(2024, time.January, 1),
		UpdatedAt:   date(2024, time.January, 1),
	})
	if err != nil {
		return err
	}
	_, err = departments.Create(ctx, department.Department{
		Name:        "Finance",
		Description: "Financial planning and accounting",
		CreatedAt:   date(2024, time.January, 1),
		UpdatedAt:   date(2024, time.January, 1),
	})
	if err != nil {
		return err
	}

	jane, err := employees.Create(ctx, employee.Employee{
		UserID:       &janeUser.ID,
		EmployeeCode: JaneEmployeeCode,
		FirstName:    "Jane",
		LastName:     "Smith",
		Email:        JaneEmail,
		PhoneNumber:  "+1 (555) 123-4567",
		Position:     "Senior Software Engineer",
		DepartmentID: engineering.ID,
		Salary:       decimal.NewFromInt(85000),
		HireDate:     date(2023, time.March, 15),
		Status:       employee.StatusActive,
		ManagerName:  strPtr("John Admin"),
		AvatarURL:    strPtr("https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face"),
		Address: employee.Address{
			Street:  "123 Main St",
			City:    "San Francisco",
			State:   "CA",
			ZipCode: "94102",
			Country: "USA",
		},
		EmergencyContact: employee.EmergencyContact{
			Name:         "John Smith",
			Relationship: "Spouse",
			PhoneNumber:  "+1 (555) 987-6543",
		},
		CreatedAt: date(2023, time.March, 15),
		UpdatedAt: date(2024, time.January, 15),
	})
	if err != nil {
		return err
	}

	mike, err := employees.Create(ctx, employee.Employee{
		UserID:       &mikeUser.ID,
		EmployeeCode: "EMP002",
		FirstName:    "Mike",
		LastName:     "Johnson",
		Email:        MikeEmail,
		PhoneNumber:  "+1 (555) 234-5678",
		Position:     "Frontend Developer",
		DepartmentID: engineering.ID,
		Salary:       decimal.NewFromInt(72000),
		HireDate:     date(2023, time.June, 1),
		Status:       employee.StatusActive,
		ManagerName:  strPtr("Jane Smith"),
		AvatarURL:    strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face"),
		Address: employee.Address{
			Street:  "456 Oak Ave",
			City:    "San Francisco",
			State:   "CA",
			ZipCode: "94103",
			Country: "USA",
		},
		EmergencyContact: employee.EmergencyContact{
			Name:         "Sarah Johnson",
			Relationship: "Sister",
			PhoneNumber:  "+1 (555) 876-5432",
		},
		CreatedAt: date(2023, time.June, 1),
		UpdatedAt: date(2024, time.January, 10),
	})
	if err != nil {
		return err
	}

	sarah, err := employees.Create(ctx, employee.Employee{
		EmployeeCode: "EMP003",
		FirstName:    "Sarah",
		LastName:     "Davis",
		Email:        "sarah@hrms.com",
		PhoneNumber:  "+1 (555) 345-6789",
		Position:     "Marketing Manager",
		DepartmentID: marketing.ID,
		Salary:       decimal.NewFromInt(78000),
		HireDate:     date(2022, time.November, 20),
		Status:       employee.StatusActive,
		ManagerName:  strPtr("John Admin"),
		AvatarURL:    strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face"),
		Address: employee.Address{
			Street:  "789 Pine St",
			City:    "San Francisco",
			State:   "CA",
			ZipCode: "94104",
			Country: "USA",
		},
		EmergencyContact: employee.EmergencyContact{
			Name:         "Tom Davis",
			Relationship: "Father",
			PhoneNumber:  "+1 (555) 765-4321",
		},
		CreatedAt: date(2022, time.November, 20),
		UpdatedAt: date(2024, time.January, 5),
	})
	if err != nil {
		return err
	}

	// Department managers, now that employee ids exist.
	if _, err := departments.Update(ctx, engineering.ID, department.UpdateDepartmentRequest{ManagerID: &jane.ID}); err != nil {
		return err
	}
	if _, err := departments.Update(ctx, marketing.ID, department.UpdateDepartmentRequest{ManagerID: &sarah.ID}); err != nil {
		return err
	}

	if _, err := leaves.Create(ctx, leave.LeaveRequest{
		EmployeeID: jane.ID,
		Type:       leave.TypeVacation,
		StartDate:  date(2024, time.July, 15),
		EndDate:    date(2024, time.July, 19),
		Days:       5,
		Reason:     "Family vacation",
		Status:     leave.StatusPending,
		CreatedAt:  date(2024, time.June, 1),
		UpdatedAt:  date(2024, time.June, 1),
	}); err != nil {
		return err
	}

	approvedAt := date(2024, time.June, 8)
	if _, err := leaves.Create(ctx, leave.LeaveRequest{
		EmployeeID: mike.ID,
		Type:       leave.TypeSick,
		StartDate:  date(2024, time.June, 10),
		EndDate:    date(2024, time.June, 12),
		Days:       3,
		Reason:     "Medical appointment",
		Status:     leave.StatusApproved,
		ApprovedBy: &admin.ID,
		ApprovedAt: &approvedAt,
		CreatedAt:  date(2024, time.June, 5),
		UpdatedAt:  approvedAt,
	}); err != nil {
		return err
	}

	payDate := date(2024, time.May, 31)
	if _, err := payrolls.Create(ctx, payroll.PayrollRecord{
		EmployeeID:    jane.ID,
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
		Status:        payroll.StatusPaid,
		PayDate:       &payDate,
		PaidBy:        &admin.ID,
		CreatedAt:     date(2024, time.May, 25),
		UpdatedAt:     payDate,
	}); err != nil {
		return err
	}

	return nil
}
