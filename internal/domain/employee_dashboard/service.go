package employee_dashboard

import "context"

type EmployeeDashboardService interface {
	GetStats(ctx context.Context, employeeID string) (*EmployeeStatsResponse, error)
}

// AttendanceProvider supplies this month's attendance counts for an employee.
// No attendance log exists in the core; StaticAttendanceProvider stands in
// until a real subsystem is plugged in.
type AttendanceProvider interface {
	ThisMonth(ctx context.Context, employeeID string) (AttendanceResponse, error)
}

type StaticAttendanceProvider struct {
	Present int
	Absent  int
	Late    int
}

func (p StaticAttendanceProvider) ThisMonth(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	return AttendanceResponse{Present: p.Present, Absent: p.Absent, Late: p.Late}, nil
}
