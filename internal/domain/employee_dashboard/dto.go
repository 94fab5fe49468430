package employee_dashboard

import "github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"

// EmployeeStatsResponse is the combined response for the employee dashboard
type EmployeeStatsResponse struct {
	LeaveBalance        LeaveBalanceResponse           `json:"leave_balance"`
	AttendanceThisMonth AttendanceResponse             `json:"attendance_this_month"`
	PendingRequests     int                            `json:"pending_requests"`
	LastPayslip         *payroll.PayrollRecordResponse `json:"last_payslip,omitempty"`
}

// LeaveBalanceResponse holds remaining days per leave type: the annual
// entitlement minus the sum of days over approved requests of that type.
type LeaveBalanceResponse struct {
	Vacation int `json:"vacation"`
	Sick     int `json:"sick"`
	Personal int `json:"personal"`
}

// AttendanceResponse holds this month's attendance counts
type AttendanceResponse struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}
