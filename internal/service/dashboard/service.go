package dashboard

import (
	"context"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/department"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employees   employee.EmployeeRepository
	departments department.DepartmentRepository
	leaves      leave.LeaveRequestRepository
	payrolls    payroll.PayrollRepository
	ratings     dashboard.RatingProvider
}

func NewDashboardService(
	employeeRepository employee.EmployeeRepository,
	departmentRepository department.DepartmentRepository,
	leaveRepository leave.LeaveRequestRepository,
	payrollRepository payroll.PayrollRepository,
	ratingProvider dashboard.RatingProvider,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employees:   employeeRepository,
		departments: departmentRepository,
		leaves:      leaveRepository,
		payrolls:    payrollRepository,
		ratings:     ratingProvider,
	}
}

// GetAdminStats implements dashboard.DashboardService. The collections are
// read concurrently; each count comes from a single consistent snapshot.
func (s *DashboardServiceImpl) GetAdminStats(ctx context.Context) (*dashboard.AdminStatsResponse, error) {
	stats := &dashboard.AdminStatsResponse{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.employees.List(gctx)
		if err != nil {
			return err
		}
		stats.TotalEmployees = len(list)
		for _, emp := range list {
			if emp.Status == employee.StatusActive {
				stats.ActiveEmployees++
			}
		}
		return nil
	})

	g.Go(func() error {
		list, err := s.leaves.List(gctx)
		if err != nil {
			return err
		}
		for _, request := range list {
			if request.Status == leave.StatusPending {
				stats.PendingLeaveRequests++
			}
		}
		return nil
	})

	g.Go(func() error {
		list, err := s.payrolls.List(gctx)
		if err != nil {
			return err
		}
		for _, record := range list {
			if record.Status == payroll.StatusPending {
				stats.PendingPayroll++
			}
		}
		return nil
	})

	g.Go(func() error {
		list, err := s.departments.List(gctx)
		if err != nil {
			return err
		}
		stats.DepartmentCount = len(list)
		return nil
	})

	g.Go(func() error {
		rating, err := s.ratings.AverageRating(gctx)
		if err != nil {
			return err
		}
		stats.AverageRating = rating
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}
