package dashboard

// AdminStatsResponse is the combined response for the admin dashboard endpoint
type AdminStatsResponse struct {
	TotalEmployees       int     `json:"total_employees"`
	ActiveEmployees      int     `json:"active_employees"`       // status = 'active'
	PendingLeaveRequests int     `json:"pending_leave_requests"` // status = 'pending'
	PendingPayroll       int     `json:"pending_payroll"`        // status = 'pending'
	DepartmentCount      int     `json:"department_count"`
	AverageRating        float64 `json:"average_rating"`
}
